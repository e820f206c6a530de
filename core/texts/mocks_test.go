package texts

import (
	"context"
	"errors"

	"dip-digest/core/domain"
)

// mockSource serves text details by id
type mockSource struct {
	details map[domain.DocumentID]*domain.TextDetail
	errs    map[domain.DocumentID]error
	panics  map[domain.DocumentID]bool
	calls   []domain.DocumentID
}

func (m *mockSource) ListPage(ctx context.Context, window domain.DateWindow, cursor string) (*domain.ListPage, error) {
	return nil, errors.New("not used")
}

func (m *mockSource) ListPageURL(ctx context.Context, url string) (*domain.ListPage, error) {
	return nil, errors.New("not used")
}

func (m *mockSource) TextDetail(ctx context.Context, id domain.DocumentID) (*domain.TextDetail, error) {
	m.calls = append(m.calls, id)
	if m.panics[id] {
		panic("boom")
	}
	if err, ok := m.errs[id]; ok {
		return nil, err
	}
	if d, ok := m.details[id]; ok {
		return d, nil
	}
	return &domain.TextDetail{}, nil
}

// mockStore records writes in memory
type mockStore struct {
	dirs     []string
	files    map[string]string
	writeErr error
	dirErr   error
}

func newMockStore() *mockStore {
	return &mockStore{files: map[string]string{}}
}

func (m *mockStore) EnsureDir(dir string) error {
	if m.dirErr != nil {
		return m.dirErr
	}
	m.dirs = append(m.dirs, dir)
	return nil
}

func (m *mockStore) WriteText(path string, content string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = content
	return nil
}

// countingPacer records how often it was asked to wait
type countingPacer struct {
	waits int
}

func (p *countingPacer) Wait(ctx context.Context) error {
	p.waits++
	return nil
}

func strPtr(s string) *string {
	return &s
}
