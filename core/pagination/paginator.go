// ABOUTME: Paginator walks the DIP list endpoint until the continuation runs out
// ABOUTME: Terminates on absent or repeated continuations and on a page safety bound

package pagination

import (
	"context"
	"errors"
	"fmt"

	"dip-digest/core/domain"
	"dip-digest/core/interfaces"
)

// DefaultMaxPages bounds the loop against a misbehaving server
const DefaultMaxPages = 10000

// StopReason explains why pagination ended
type StopReason string

const (
	StopExhausted StopReason = "exhausted"
	StopStalled   StopReason = "stalled"
	StopMaxPages  StopReason = "max_pages"
)

// Result is the accumulated output of one pagination run
type Result struct {
	Records []domain.RawRecord
	Pages   int
	Reason  StopReason

	// NumFound is the server's total hit count from the first page
	NumFound int

	// Skipped counts list documents that could not be decoded
	Skipped int
}

// Paginator fetches all list pages for a date window
type Paginator struct {
	source   interfaces.DocumentSource
	pacer    interfaces.Pacer
	logger   interfaces.Logger
	maxPages int
}

// NewPaginator creates a paginator; maxPages <= 0 selects DefaultMaxPages
func NewPaginator(source interfaces.DocumentSource, deps interfaces.Dependencies, maxPages int) *Paginator {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Paginator{
		source:   source,
		pacer:    deps.Pacer,
		logger:   interfaces.LoggerOrNop(deps.Logger),
		maxPages: maxPages,
	}
}

// FetchAll returns every record of the window in server order
func (p *Paginator) FetchAll(ctx context.Context, window domain.DateWindow) ([]domain.RawRecord, error) {
	result, err := p.Run(ctx, window)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// Run walks the pages and reports how the walk ended.
// The echoed cursor is the primary continuation; links.next is used only
// when the server echoes no cursor. Any page error aborts the run.
func (p *Paginator) Run(ctx context.Context, window domain.DateWindow) (*Result, error) {
	if p.source == nil {
		return nil, errors.New("document source not configured")
	}

	result := &Result{Records: make([]domain.RawRecord, 0)}
	var previous continuation

	for page := 1; ; page++ {
		if page > 1 {
			if err := p.wait(ctx); err != nil {
				return nil, fmt.Errorf("pagination interrupted before page %d: %w", page, err)
			}
		}

		listPage, err := p.fetch(ctx, window, previous)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", page, err)
		}
		result.Pages = page
		if page == 1 {
			result.NumFound = listPage.NumFound
		}

		result.Records = append(result.Records, listPage.Documents...)
		for _, malformed := range listPage.Malformed {
			result.Skipped++
			p.logger.Warn("Skipping malformed list document", map[string]interface{}{
				"page":  page,
				"index": malformed.Index,
				"error": malformed.Err,
			})
		}

		next := continuationOf(listPage)
		p.logger.Debug("Fetched list page", map[string]interface{}{
			"page":      page,
			"documents": len(listPage.Documents),
			"total":     len(result.Records),
			"has_next":  !next.empty(),
		})

		switch {
		case next.empty():
			result.Reason = StopExhausted
		case next == previous:
			result.Reason = StopStalled
			p.logger.Warn("Pagination cursor did not advance, stopping", map[string]interface{}{
				"page": page,
			})
		case page >= p.maxPages:
			result.Reason = StopMaxPages
			p.logger.Warn("Pagination safety bound reached", map[string]interface{}{
				"max_pages": p.maxPages,
			})
		}
		if result.Reason != "" {
			return result, nil
		}

		previous = next
	}
}

func (p *Paginator) fetch(ctx context.Context, window domain.DateWindow, cont continuation) (*domain.ListPage, error) {
	if cont.link != "" {
		return p.source.ListPageURL(ctx, cont.link)
	}
	return p.source.ListPage(ctx, window, cont.cursor)
}

func (p *Paginator) wait(ctx context.Context) error {
	if p.pacer == nil {
		return ctx.Err()
	}
	return p.pacer.Wait(ctx)
}

// continuation is either an echoed cursor or a links.next URL
type continuation struct {
	cursor string
	link   string
}

func (c continuation) empty() bool {
	return c.cursor == "" && c.link == ""
}

func continuationOf(page *domain.ListPage) continuation {
	if page.Cursor != "" {
		return continuation{cursor: page.Cursor}
	}
	return continuation{link: page.NextLink()}
}
