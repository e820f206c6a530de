// ABOUTME: Per-item text fetcher downloads document full text into flat files
// ABOUTME: Failures stay with their record as data; the batch always completes

package texts

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"dip-digest/core/domain"
	coreerrors "dip-digest/core/errors"
	"dip-digest/core/interfaces"
)

// Fetcher downloads and stores the text of normalized records.
// Files go to <root>/<document type>/<date> <number>.txt.
type Fetcher struct {
	source interfaces.DocumentSource
	store  interfaces.TextStore
	pacer  interfaces.Pacer
	logger interfaces.Logger
	root   string
}

// NewFetcher creates a text fetcher writing below root
func NewFetcher(source interfaces.DocumentSource, deps interfaces.Dependencies, root string) *Fetcher {
	return &Fetcher{
		source: source,
		store:  deps.TextStore,
		pacer:  deps.Pacer,
		logger: interfaces.LoggerOrNop(deps.Logger),
		root:   root,
	}
}

// FetchAll processes records sequentially in input order, pacing between them.
// The returned outcomes line up one-to-one with records.
func (f *Fetcher) FetchAll(ctx context.Context, records []domain.NormalizedRecord) []domain.TextOutcome {
	outcomes := make([]domain.TextOutcome, 0, len(records))
	for i, record := range records {
		if i > 0 && f.pacer != nil {
			// A cancelled wait surfaces as a failed fetch below
			_ = f.pacer.Wait(ctx)
		}

		outcome := f.Fetch(ctx, record)
		if outcome.Err != nil {
			f.logger.Warn("Text not saved", map[string]interface{}{
				"id":     record.ID.String(),
				"number": record.Dokumentnummer,
				"error":  outcome.Err.Error(),
			})
		} else {
			f.logger.Debug("Text saved", map[string]interface{}{
				"id":   record.ID.String(),
				"path": *outcome.Record.LocalTextPath,
			})
		}

		f.logger.Info("Text progress", map[string]interface{}{
			"done":  i + 1,
			"total": len(records),
		})
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// Fetch downloads the text of one record and returns the enriched copy.
// It never returns an error or panics past the record boundary.
func (f *Fetcher) Fetch(ctx context.Context, record domain.NormalizedRecord) (outcome domain.TextOutcome) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic while fetching text: %v", r)
			record.MarkFailed(err)
			outcome = domain.TextOutcome{Record: record, Err: err}
		}
	}()

	if err := f.fetch(ctx, &record); err != nil {
		record.MarkFailed(err)
		return domain.TextOutcome{Record: record, Err: err}
	}
	return domain.TextOutcome{Record: record}
}

func (f *Fetcher) fetch(ctx context.Context, record *domain.NormalizedRecord) error {
	if f.source == nil || f.store == nil {
		return errors.New("text fetcher not configured")
	}
	if record.ID == "" {
		return errors.New("record has no id")
	}

	dir := filepath.Join(f.root, DirName(*record))
	if err := f.store.EnsureDir(dir); err != nil {
		return err
	}

	detail, err := f.source.TextDetail(ctx, record.ID)
	if err != nil {
		return err
	}

	text, ok := detail.UsableText()
	if !ok {
		return &coreerrors.NoTextError{ID: record.ID.String()}
	}

	path := filepath.Join(dir, FileName(*record, detail))
	if err := f.store.WriteText(path, text); err != nil {
		return err
	}

	record.MarkSaved(path)
	if record.PDFURL == "" {
		record.PDFURL = detail.PDFURL()
	}
	return nil
}

// Records returns the enriched records of the outcomes in order
func Records(outcomes []domain.TextOutcome) []domain.NormalizedRecord {
	out := make([]domain.NormalizedRecord, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, o.Record)
	}
	return out
}

// Saved counts outcomes that produced a text file
func Saved(outcomes []domain.TextOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Succeeded() {
			n++
		}
	}
	return n
}
