// ABOUTME: Root cobra command wiring configuration, infrastructure and the pipeline
// ABOUTME: Flags override the environment; counts go to stdout, logs to stderr

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	coreconfig "dip-digest/core/config"
	"dip-digest/core/dip"
	"dip-digest/core/domain"
	"dip-digest/core/interfaces"
	"dip-digest/core/pipeline"
	"dip-digest/infrastructure/cache/memory"
	stdhttp "dip-digest/infrastructure/http/standard"
	"dip-digest/infrastructure/logger/structured"
	"dip-digest/infrastructure/pacing"
	"dip-digest/infrastructure/storage/local"
	"dip-digest/pkg/config"
	datetime "dip-digest/pkg/utils/time"
)

// flags holds the command line overrides
type flags struct {
	days      int
	end       string
	textDir   string
	digestDir string
	envFile   string
	noTexts   bool
	html      bool
	print     bool
	verbose   bool
}

func newRootCommand() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "dipdigest",
		Short: "Build a digest of government answers to parliamentary inquiries",
		Long: `Fetches answers to Kleine and Grosse Anfragen from the DIP API of the
German Bundestag for a date window, downloads their full texts and writes a
markdown digest grouped by the asking faction.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, f, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&f.days, "days", 0, "window length in days ending on --end (default DIP_WINDOW_DAYS or 7)")
	cmd.Flags().StringVar(&f.end, "end", "", "last day of the window as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&f.textDir, "text-dir", "", "directory for downloaded texts (default DIP_TEXT_DIR)")
	cmd.Flags().StringVar(&f.digestDir, "digest-dir", "", "directory for the digest (default DIP_DIGEST_DIR)")
	cmd.Flags().StringVar(&f.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	cmd.Flags().BoolVar(&f.noTexts, "no-texts", false, "skip downloading document texts")
	cmd.Flags().BoolVar(&f.html, "html", false, "also write an HTML version of the digest")
	cmd.Flags().BoolVar(&f.print, "print", false, "print the digest to stdout")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(ctx context.Context, f *flags, out io.Writer) error {
	if err := config.LoadDotEnv(f.envFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", f.envFile, err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cfg, f)
	if err := cfg.Validate(); err != nil {
		return err
	}

	window, err := resolveWindow(f.end, cfg.Run.WindowDays, cfg.Run.Timezone)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Close() }()
	deps := interfaces.Dependencies{
		Cache:      memory.NewMemoryCache(),
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.API.Timeout).WithUserAgent(cfg.API.UserAgent),
		Logger:     logger,
		Pacer:      newPacer(cfg.API),
		TextStore:  local.NewStore(),
	}

	client := dip.NewClient(dip.Settings{
		BaseURL:      cfg.API.BaseURL,
		APIKey:       cfg.API.Key,
		UserAgent:    cfg.API.UserAgent,
		DocumentType: cfg.API.DocumentType,
	}, deps)

	p := pipeline.NewPipeline(client, deps, pipelineConfig(cfg, f))
	result, err := p.Run(ctx, window)
	if err != nil {
		logger.Error("Digest run failed", map[string]interface{}{"error": err.Error()})
		return err
	}

	return report(out, result, !f.noTexts, f.print)
}

// applyFlags copies explicitly set flags over the environment configuration
func applyFlags(cfg *config.Config, f *flags) {
	if f.days != 0 {
		cfg.Run.WindowDays = f.days
	}
	if f.textDir != "" {
		cfg.Output.TextDir = f.textDir
	}
	if f.digestDir != "" {
		cfg.Output.DigestDir = f.digestDir
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}
}

func pipelineConfig(cfg *config.Config, f *flags) coreconfig.PipelineConfig {
	return coreconfig.NewPipelineConfig(
		coreconfig.WithTexts(!f.noTexts),
		coreconfig.WithHTML(f.html),
		coreconfig.WithTextDir(cfg.Output.TextDir),
		coreconfig.WithDigestDir(cfg.Output.DigestDir),
		coreconfig.WithDocumentType(cfg.API.DocumentType),
		coreconfig.WithMaxPages(cfg.API.MaxPages),
	)
}

// resolveWindow builds the query window ending on end, or today in tz
func resolveWindow(end string, days int, tz string) (domain.DateWindow, error) {
	endDate := datetime.TodayIn(tz)
	if end != "" {
		parsed, ok := datetime.ParseISODate(end)
		if !ok {
			return domain.DateWindow{}, fmt.Errorf("invalid --end %q, want YYYY-MM-DD", end)
		}
		endDate = parsed
	}
	if days < 1 {
		return domain.DateWindow{}, fmt.Errorf("window must span at least one day, got %d", days)
	}
	return domain.NewDateWindow(endDate, days), nil
}

func newLogger(cfg *config.Config) *structured.StructuredLogger {
	return structured.NewStructuredLogger(structured.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
		JSON:  cfg.Log.JSON,
		Fields: map[string]interface{}{
			"app": "dipdigest",
		},
	})
}

// newPacer selects the token bucket when a rate is configured, else the fixed delay
func newPacer(api config.APIConfig) interfaces.Pacer {
	if api.RateLimitRPS > 0 {
		return pacing.NewRateLimit(api.RateLimitRPS, 1)
	}
	if api.RequestDelay <= 0 {
		return pacing.None{}
	}
	return pacing.NewFixedDelay(api.RequestDelay)
}

func report(out io.Writer, result *pipeline.Result, texts bool, printDigest bool) error {
	fmt.Fprintf(out, "Filtered entries: %d\n", len(result.Filtered))
	if texts {
		fmt.Fprintf(out, "Saved texts: %d of %d\n", result.Saved, len(result.Filtered))
	}
	fmt.Fprintf(out, "Digest written to %s\n", result.DigestPath)
	if result.HTMLPath != "" {
		fmt.Fprintf(out, "HTML digest written to %s\n", result.HTMLPath)
	}
	if printDigest {
		fmt.Fprintln(out)
		if _, err := io.WriteString(out, result.Markdown); err != nil {
			return err
		}
	}
	return nil
}
