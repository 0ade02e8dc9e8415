package docs2pdf

import (
	"fmt"
	"strings"
	"time"
)

// Page format constants.
const (
	PageFormatA4     = "a4"
	PageFormatLetter = "letter"
	PageFormatLegal  = "legal"
)

// Margin bounds in inches. The default is 50 CSS pixels at 96dpi.
const (
	MinMargin     = 0.0
	MaxMargin     = 3.0
	DefaultMargin = 0.52
)

// Scale bounds, matching what Chrome's print pipeline accepts.
const (
	MinScale     = 0.1
	MaxScale     = 2.0
	DefaultScale = 1.0
)

// PageSettings configures the printed page.
type PageSettings struct {
	Format          string  // "a4", "letter", "legal"
	Margin          float64 // inches, applied to all sides
	Scale           float64
	PrintBackground bool
}

// DefaultPageSettings returns the stock page geometry.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Format:          PageFormatA4,
		Margin:          DefaultMargin,
		Scale:           DefaultScale,
		PrintBackground: true,
	}
}

// Validate checks that page settings are usable. Nil means defaults and
// passes. Comparison is case-insensitive and does not mutate.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	switch strings.ToLower(p.Format) {
	case PageFormatA4, PageFormatLetter, PageFormatLegal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPageFormat, p.Format)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	if p.Scale < MinScale || p.Scale > MaxScale {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidScale, p.Scale, MinScale, MaxScale)
	}

	return nil
}

// AssetRewrite turns relative image references into CDN proxy URLs
// before rendering. Nil disables rewriting.
type AssetRewrite struct {
	BaseURL   string // prepended to the captured image path
	URLSuffix string // appended after the path, typically query args
}

// HTMLOutput selects which HTML variants Export writes next to the PDF.
type HTMLOutput int

const (
	HTMLNone        HTMLOutput = iota // PDF only
	HTMLAll                           // combined, TOC-only, and content-only files
	HTMLTOCOnly                       // the TOC variant only
	HTMLContentOnly                   // the content variant only
)

// Options parameterizes one export run.
type Options struct {
	ProjectName string        // used in the document title and output names
	DocsDir     string        // root of the local documentation tree
	SourceRoot  string        // checkout containing DocsDir; bounds local ref resolution, "" means DocsDir
	OutputDir   string        // destination directory, "" means current
	Assets      *AssetRewrite // image URL rewriting, nil disables
	Page        *PageSettings // nil means defaults
	Date        string        // cover/footer date: "auto", "auto:FORMAT", or literal
	HTML        HTMLOutput    // HTML variants to write alongside the PDF
	HTMLOnly    bool          // skip PDF rendering entirely
}

// ExportResult reports what one export run produced.
type ExportResult struct {
	Title     string   // computed document title
	Version   string   // highest version marker found, "" if none
	PDFPath   string   // "" when HTMLOnly was set
	HTMLPaths []string // variant files written, in write order
	Documents int      // documents included in the export
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// defaultTimeout bounds a full render when the context carries no
// deadline of its own.
const defaultTimeout = 2 * time.Minute

// WithTimeout sets the PDF render timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) ExporterOption {
	if d <= 0 {
		panic("docs2pdf: WithTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.timeout = d
	}
}

// WithStyle selects the stylesheet by name.
func WithStyle(name string) ExporterOption {
	return func(e *Exporter) {
		e.cfg.style = name
	}
}

// WithAssetsDir points the exporter at a directory of custom styles and
// templates that take precedence over the embedded ones.
func WithAssetsDir(dir string) ExporterOption {
	return func(e *Exporter) {
		e.cfg.assetsDir = dir
	}
}
