// ABOUTME: Pipeline configuration for run-level control of optional steps
// ABOUTME: Provides functional options independent of the CLI flag layer

package config

// PipelineConfig controls which optional pipeline steps run
type PipelineConfig struct {
	// FetchTexts downloads one text file per filtered record
	FetchTexts bool

	// RenderHTML writes an HTML companion next to the markdown digest
	RenderHTML bool

	// TextDir is the root of the text output tree
	TextDir string

	// DigestDir receives the digest files
	DigestDir string

	// DocumentType is the answer discriminator for the filter
	DocumentType string

	// MaxPages bounds pagination; 0 selects the paginator default
	MaxPages int
}

// DefaultPipelineConfig returns the default configuration with text download enabled
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		FetchTexts:   true,
		RenderHTML:   false,
		TextDir:      "drucksache_texts",
		DigestDir:    "digests",
		DocumentType: "Antwort",
	}
}

// PipelineOption is a functional option for configuring the pipeline
type PipelineOption func(*PipelineConfig)

// WithTexts enables or disables the text download step
func WithTexts(enabled bool) PipelineOption {
	return func(c *PipelineConfig) {
		c.FetchTexts = enabled
	}
}

// WithoutTexts disables the text download step
func WithoutTexts() PipelineOption {
	return WithTexts(false)
}

// WithHTML enables or disables the HTML companion
func WithHTML(enabled bool) PipelineOption {
	return func(c *PipelineConfig) {
		c.RenderHTML = enabled
	}
}

// WithTextDir sets the text output root
func WithTextDir(dir string) PipelineOption {
	return func(c *PipelineConfig) {
		if dir != "" {
			c.TextDir = dir
		}
	}
}

// WithDigestDir sets the digest output directory
func WithDigestDir(dir string) PipelineOption {
	return func(c *PipelineConfig) {
		if dir != "" {
			c.DigestDir = dir
		}
	}
}

// WithDocumentType sets the answer discriminator
func WithDocumentType(documentType string) PipelineOption {
	return func(c *PipelineConfig) {
		if documentType != "" {
			c.DocumentType = documentType
		}
	}
}

// WithMaxPages sets the pagination safety bound
func WithMaxPages(maxPages int) PipelineOption {
	return func(c *PipelineConfig) {
		c.MaxPages = maxPages
	}
}

// NewPipelineConfig creates a new pipeline configuration with the given options
func NewPipelineConfig(opts ...PipelineOption) PipelineConfig {
	config := DefaultPipelineConfig()

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
