// ABOUTME: Pipeline runs one digest: paginate, filter, download texts, render, write
// ABOUTME: List phase errors abort the run; text failures are carried on the records

package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"dip-digest/core/config"
	"dip-digest/core/digest"
	"dip-digest/core/domain"
	coreerrors "dip-digest/core/errors"
	"dip-digest/core/filter"
	"dip-digest/core/interfaces"
	"dip-digest/core/pagination"
	"dip-digest/core/texts"
)

// Result summarises a pipeline run
type Result struct {
	RunID      string
	Raw        int
	NumFound   int
	Skipped    int
	Pages      int
	StopReason pagination.StopReason
	Filtered   []domain.NormalizedRecord
	Saved      int
	DigestPath string
	HTMLPath   string
	Markdown   string
	Duration   time.Duration
}

// Pipeline composes the digest components
type Pipeline struct {
	paginator *pagination.Paginator
	filter    *filter.Filter
	fetcher   *texts.Fetcher
	store     interfaces.TextStore
	logger    interfaces.Logger
	config    config.PipelineConfig
	newRunID  func() string
}

// NewPipeline creates a pipeline reading from source
func NewPipeline(source interfaces.DocumentSource, deps interfaces.Dependencies, cfg config.PipelineConfig) *Pipeline {
	return &Pipeline{
		paginator: pagination.NewPaginator(source, deps, cfg.MaxPages),
		filter:    filter.NewFilter(cfg.DocumentType),
		fetcher:   texts.NewFetcher(source, deps, cfg.TextDir),
		store:     deps.TextStore,
		logger:    interfaces.LoggerOrNop(deps.Logger),
		config:    cfg,
		newRunID:  uuid.NewString,
	}
}

// Run executes one digest run for the window
func (p *Pipeline) Run(ctx context.Context, window domain.DateWindow) (*Result, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if p.store == nil {
		return nil, errors.New("text store not configured")
	}

	started := time.Now()
	result := &Result{RunID: p.newRunID()}
	p.logger.Info("Digest run started", map[string]interface{}{
		"run_id": result.RunID,
		"start":  window.StartString(),
		"end":    window.EndString(),
	})

	page, err := p.paginator.Run(ctx, window)
	if err != nil {
		return nil, err
	}
	result.Raw = len(page.Records)
	result.NumFound = page.NumFound
	result.Skipped = page.Skipped
	result.Pages = page.Pages
	result.StopReason = page.Reason

	result.Filtered = p.filter.Apply(page.Records)
	p.logger.Info("Records filtered", map[string]interface{}{
		"run_id":    result.RunID,
		"raw":       result.Raw,
		"num_found": result.NumFound,
		"skipped":   result.Skipped,
		"pages":     result.Pages,
		"filtered":  len(result.Filtered),
	})

	enriched := false
	if p.config.FetchTexts && len(result.Filtered) > 0 {
		outcomes := p.fetcher.FetchAll(ctx, result.Filtered)
		result.Filtered = texts.Records(outcomes)
		result.Saved = texts.Saved(outcomes)
		enriched = true
		p.logger.Info("Texts downloaded", map[string]interface{}{
			"run_id": result.RunID,
			"saved":  result.Saved,
			"total":  len(outcomes),
		})
	}

	result.Markdown = digest.Render(window, result.Filtered, digest.Options{Enriched: enriched})
	if err := p.writeDigest(window, result); err != nil {
		return nil, err
	}

	result.Duration = time.Since(started)
	p.logger.Info("Digest run finished", map[string]interface{}{
		"run_id":   result.RunID,
		"digest":   result.DigestPath,
		"duration": result.Duration.String(),
	})
	return result, nil
}

func (p *Pipeline) writeDigest(window domain.DateWindow, result *Result) error {
	dir := p.config.DigestDir
	if err := p.store.EnsureDir(dir); err != nil {
		return coreerrors.WrapError(err, "failed to create digest directory")
	}

	base := filepath.Join(dir, window.EndString())
	result.DigestPath = base + ".md"
	if err := p.store.WriteText(result.DigestPath, result.Markdown); err != nil {
		return coreerrors.WrapError(err, "failed to write digest")
	}

	if !p.config.RenderHTML {
		return nil
	}
	html, err := digest.RenderHTML(result.Markdown)
	if err != nil {
		return err
	}
	result.HTMLPath = base + ".html"
	if err := p.store.WriteText(result.HTMLPath, html); err != nil {
		return coreerrors.WrapError(err, "failed to write HTML digest")
	}
	return nil
}
