package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	docs2pdf "github.com/alnah/go-docs2pdf"
	"github.com/alnah/go-docs2pdf/internal/assets"
	"github.com/alnah/go-docs2pdf/internal/config"
	"github.com/alnah/go-docs2pdf/internal/gitsource"
	"github.com/alnah/go-docs2pdf/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrConflictingFlags   = errors.New("conflicting flags")
)

// runExport acquires the documentation tree and runs the exporter.
func runExport(ctx context.Context, flags *exportFlags, env *Environment) error {
	cfg, err := loadExportConfig(flags)
	if err != nil {
		return err
	}

	timeout, err := cfg.RenderTimeout()
	if err != nil {
		return err
	}

	htmlMode, err := resolveHTMLMode(flags, cfg)
	if err != nil {
		return err
	}

	docsPath, err := syncSource(ctx, cfg, flags.source.skipSync, env)
	if err != nil {
		return err
	}

	opts := []docs2pdf.ExporterOption{docs2pdf.WithTimeout(timeout)}
	if cfg.Style != "" {
		opts = append(opts, docs2pdf.WithStyle(cfg.Style))
	}
	if cfg.AssetsDir != "" {
		opts = append(opts, docs2pdf.WithAssetsDir(cfg.AssetsDir))
	}

	exporter, err := docs2pdf.NewExporter(opts...)
	if err != nil {
		return withHint(err)
	}
	defer func() {
		if cerr := exporter.Close(); cerr != nil {
			slog.Debug("closing exporter", "error", cerr)
		}
	}()

	var rewrite *docs2pdf.AssetRewrite
	if cfg.Assets.Rewrite {
		rewrite = &docs2pdf.AssetRewrite{
			BaseURL:   cfg.Assets.BaseURL,
			URLSuffix: cfg.Assets.URLSuffix,
		}
	}

	start := env.Now()
	result, err := exporter.Export(ctx, docs2pdf.Options{
		ProjectName: cfg.ProjectName,
		DocsDir:     docsPath,
		SourceRoot:  cfg.Source.CloneDir,
		OutputDir:   cfg.Output.Dir,
		Assets:      rewrite,
		Page: &docs2pdf.PageSettings{
			Format:          cfg.Page.Format,
			Margin:          cfg.Page.Margin,
			Scale:           cfg.Page.Scale,
			PrintBackground: cfg.Page.PrintBackground,
		},
		Date:     cfg.Date,
		HTML:     htmlMode,
		HTMLOnly: flags.output.htmlOnly,
	})
	if err != nil {
		return withHint(err)
	}

	printResult(result, env.Now().Sub(start), env)
	return nil
}

// loadExportConfig builds the effective configuration: file values,
// then environment overrides, then flags.
func loadExportConfig(flags *exportFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if flags.misc.config != "" {
		cfg, err = config.LoadConfig(flags.misc.config)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, withHint(err)
	}

	cfg.ApplyEnv()
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into the config. Flag values win over
// both file and environment values.
func mergeFlags(flags *exportFlags, cfg *config.Config) {
	if flags.source.repoURL != "" {
		cfg.Source.RepoURL = flags.source.repoURL
	}
	if flags.source.branch != "" {
		cfg.Source.Branch = flags.source.branch
	}
	if flags.source.docsDir != "" {
		cfg.Source.DocsDir = flags.source.docsDir
	}
	if flags.source.cloneDir != "" {
		cfg.Source.CloneDir = flags.source.cloneDir
	}

	if flags.assets.rewriteSet {
		cfg.Assets.Rewrite = flags.assets.rewrite
	}
	if flags.assets.baseURL != "" {
		cfg.Assets.BaseURL = flags.assets.baseURL
	}
	if flags.assets.urlSuffix != "" {
		cfg.Assets.URLSuffix = flags.assets.urlSuffix
	}

	if flags.output.dir != "" {
		cfg.Output.Dir = flags.output.dir
	}
	if flags.output.htmlSet {
		cfg.Output.HTML = flags.output.html
	}

	if flags.page.format != "" {
		cfg.Page.Format = flags.page.format
	}
	if flags.page.marginSet {
		cfg.Page.Margin = flags.page.margin
	}
	if flags.page.scaleSet {
		cfg.Page.Scale = flags.page.scale
	}

	if flags.misc.style != "" {
		cfg.Style = flags.misc.style
	}
	if flags.misc.assetsDir != "" {
		cfg.AssetsDir = flags.misc.assetsDir
	}
	if flags.misc.date != "" {
		cfg.Date = flags.misc.date
	}
	if flags.misc.timeout != "" {
		cfg.Timeout = flags.misc.timeout
	}
}

// resolveHTMLMode maps the variant flags and config onto the HTML
// output selection. The three variant flags are mutually exclusive.
func resolveHTMLMode(flags *exportFlags, cfg *config.Config) (docs2pdf.HTMLOutput, error) {
	set := 0
	for _, on := range []bool{flags.output.html, flags.output.tocOnly, flags.output.contentOnly} {
		if on {
			set++
		}
	}
	if set > 1 {
		return docs2pdf.HTMLNone, fmt.Errorf("%w: choose one of --html, --toc-only, --content-only", ErrConflictingFlags)
	}

	switch {
	case flags.output.tocOnly:
		return docs2pdf.HTMLTOCOnly, nil
	case flags.output.contentOnly:
		return docs2pdf.HTMLContentOnly, nil
	case cfg.Output.HTML || flags.output.htmlOnly:
		// Skipping the PDF with no variant selected writes everything.
		return docs2pdf.HTMLAll, nil
	}
	return docs2pdf.HTMLNone, nil
}

// syncSource ensures the documentation checkout exists and is current,
// returning the docs directory path inside it.
func syncSource(ctx context.Context, cfg *config.Config, skip bool, env *Environment) (string, error) {
	client, err := gitsource.NewClient(gitsource.Options{
		RepoURL:  cfg.Source.RepoURL,
		Branch:   cfg.Source.Branch,
		DocsDir:  cfg.Source.DocsDir,
		CloneDir: cfg.Source.CloneDir,
		Progress: env.Stderr,
	})
	if err != nil {
		return "", err
	}

	if skip {
		if !client.Exists() {
			return "", fmt.Errorf("--skip-sync: no checkout at %s", cfg.Source.CloneDir)
		}
		return client.DocsPath(), nil
	}

	docsPath, err := client.Sync(ctx)
	if err != nil {
		return "", fmt.Errorf("syncing repository: %w%s", err, hints.ForRepositorySync(cfg.Source.CloneDir))
	}
	return docsPath, nil
}

// printResult reports generated files on stdout.
func printResult(result *docs2pdf.ExportResult, elapsed time.Duration, env *Environment) {
	for _, p := range result.HTMLPaths {
		fmt.Fprintf(env.Stdout, "Created %s\n", p)
	}
	if result.PDFPath != "" {
		fmt.Fprintf(env.Stdout, "Created %s\n", result.PDFPath)
	}
	fmt.Fprintf(env.Stdout, "Exported %d documents in %v\n", result.Documents, elapsed.Round(time.Millisecond))
}

// withHint appends an actionable hint to errors that have one.
func withHint(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	case errors.Is(err, docs2pdf.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, config.ErrConfigNotFound):
		return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(configSearchPaths()))
	case errors.Is(err, assets.ErrStyleNotFound):
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.NewEmbeddedLoader().ListStyles()))
	case errors.Is(err, docs2pdf.ErrOutputInUse):
		return fmt.Errorf("%w%s", err, hints.ForFileInUse())
	case errors.Is(err, docs2pdf.ErrOutputDir):
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	}
	return err
}

// configSearchPaths lists where a default config would be looked up,
// for the config-not-found hint.
func configSearchPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-docs2pdf", config.DefaultConfigName+".yaml")}
}
