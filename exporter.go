package docs2pdf

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-docs2pdf/internal/assets"
	"github.com/alnah/go-docs2pdf/internal/dateutil"
	"github.com/alnah/go-docs2pdf/internal/docwalk"
	"github.com/alnah/go-docs2pdf/internal/fileutil"
	"github.com/alnah/go-docs2pdf/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pdfConverter           = (*rodConverter)(nil)
	_ pdfRenderer            = (*rodRenderer)(nil)
)

// markdownExtensions are the document types included in an export; other
// files in the tree (images, data files) are passed over.
var markdownExtensions = map[string]bool{
	".md":  true,
	".mdx": true,
}

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	timeout   time.Duration
	style     string
	assetsDir string
}

// Exporter turns a documentation tree into a single paginated document.
// Create with NewExporter, run with Export, and Close when done.
type Exporter struct {
	cfg           exporterConfig
	css           string
	coverTemplate *template.Template
	htmlConverter pipeline.HTMLConverter
	pdfConverter  pdfConverter
	now           func() time.Time
}

// NewExporter creates an Exporter with default configuration. Use
// options to customize behavior (e.g. WithTimeout, WithStyle,
// WithAssetsDir). Returns an error if asset loading or template parsing
// fails.
func NewExporter(opts ...ExporterOption) (*Exporter, error) {
	e := &Exporter{
		cfg: exporterConfig{
			timeout: defaultTimeout,
			style:   assets.DefaultStyleName,
		},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	loadStyle := assets.LoadStyle
	loadTemplate := assets.LoadTemplate
	if e.cfg.assetsDir != "" {
		resolver, err := assets.NewAssetResolver(e.cfg.assetsDir)
		if err != nil {
			return nil, fmt.Errorf("resolving assets directory %q: %w", e.cfg.assetsDir, err)
		}
		loadStyle = resolver.LoadStyle
		loadTemplate = resolver.LoadTemplate
	}

	css, err := loadStyle(e.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("loading style %q: %w", e.cfg.style, err)
	}
	e.css = css

	coverText, err := loadTemplate(assets.CoverTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading cover template: %w", err)
	}
	coverTemplate, err := template.New(assets.CoverTemplateName).Parse(coverText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCoverRender, err)
	}
	e.coverTemplate = coverTemplate

	// Create PDF converter if not injected (e.g. by tests)
	if e.pdfConverter == nil {
		e.pdfConverter = newRodConverter(e.cfg.timeout)
	}

	return e, nil
}

// Export walks the documentation tree, transforms every document,
// assembles the combined output, and renders the PDF. The context is
// used for cancellation and timeout.
func (e *Exporter) Export(ctx context.Context, opts Options) (*ExportResult, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	files, err := docwalk.Walk(opts.DocsDir)
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", opts.DocsDir, err)
	}

	sourceRoot := opts.SourceRoot
	if sourceRoot == "" {
		sourceRoot = opts.DocsDir
	}

	asm := pipeline.NewAssembler()
	count := 0

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !markdownExtensions[strings.ToLower(filepath.Ext(f.RelPath))] {
			continue
		}

		meta, bodyHTML, err := e.transformDocument(ctx, f, sourceRoot, opts.Assets, asm)
		if err != nil {
			return nil, err
		}

		asm.AppendDocument(meta, bodyHTML)
		count++
	}

	if count == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDocuments, opts.DocsDir)
	}

	// Markers can sit anywhere in the output, a frontmatter description
	// as easily as a body, so the scan runs over the assembled content.
	version := LatestVersion(asm.Content())

	now := e.now()
	title := DocumentTitle(opts.ProjectName, version)

	dateValue := opts.Date
	if dateValue == "" {
		dateValue = "auto"
	}
	date, err := dateutil.ResolveDate(dateValue, now)
	if err != nil {
		return nil, fmt.Errorf("resolving date: %w", err)
	}

	cover, err := e.renderCover(title, date)
	if err != nil {
		return nil, err
	}

	variants := asm.Build(cover, pipeline.ShellOptions{Title: title, CSS: e.css})

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOutputDir, outDir, err)
	}

	pdfName := OutputFileName(opts.ProjectName, version, now)
	pdfPath := filepath.Join(outDir, pdfName)
	if err := fileutil.EnsureWritable(pdfPath); err != nil {
		if errors.Is(err, fileutil.ErrFileInUse) {
			return nil, fmt.Errorf("%w: %s", ErrOutputInUse, pdfPath)
		}
		return nil, err
	}

	result := &ExportResult{
		Title:     title,
		Version:   version,
		Documents: count,
	}

	if err := writeVariants(result, outDir, strings.TrimSuffix(pdfName, ".pdf"), opts.HTML, variants); err != nil {
		return nil, err
	}

	if opts.HTMLOnly {
		return result, nil
	}

	pdfBytes, err := e.pdfConverter.ToPDF(ctx, variants.Combined, buildPrintOptions(opts.Page, title, date))
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", pdfPath, err)
	}
	result.PDFPath = pdfPath

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (e *Exporter) Close() error {
	if e.pdfConverter != nil {
		return e.pdfConverter.Close()
	}
	return nil
}

// transformDocument runs the per-file pipeline: read, rewrite, split
// frontmatter, number the outline entry, render, and resolve local refs.
// Documents without parsable frontmatter come back with nil meta.
func (e *Exporter) transformDocument(ctx context.Context, f docwalk.File, sourceRoot string, rewrite *AssetRewrite, asm *pipeline.Assembler) (*pipeline.DocMeta, string, error) {
	raw, err := os.ReadFile(f.Path) // #nosec G304 -- walked documentation tree
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", f.Path, err)
	}

	content := pipeline.NormalizeLineEndings(string(raw))
	if rewrite != nil {
		content = pipeline.RewriteAssetPaths(content, rewrite.BaseURL, rewrite.URLSuffix)
	}
	content = pipeline.RewriteCodeFences(content)

	frontmatter, body, found := pipeline.Split(content)
	var meta *pipeline.DocMeta
	if found {
		if data := pipeline.DecodeFrontmatter(frontmatter); data != nil {
			title := pipeline.StringField(data, "title", pipeline.DefaultTitle(filepath.Base(f.RelPath)))
			meta = &pipeline.DocMeta{
				Entry:       asm.AddEntry(f.Depth(), title),
				DocPath:     pipeline.DocPathFor(f.RelPath),
				Description: pipeline.StringField(data, "description", pipeline.DefaultDescription),
				Related:     pipeline.RelatedFromData(data),
			}
		}
	}

	bodyHTML, err := e.htmlConverter.ToHTML(ctx, body)
	if err != nil {
		return nil, "", fmt.Errorf("converting %s: %w", f.RelPath, err)
	}

	bodyHTML, err = pipeline.ResolveLocalRefs(bodyHTML, filepath.Dir(f.Path), sourceRoot)
	if err != nil {
		return nil, "", fmt.Errorf("resolving refs in %s: %w", f.RelPath, err)
	}

	return meta, pipeline.ConvertCodeHeaderPlaceholders(bodyHTML), nil
}

// renderCover executes the cover template with the computed title and
// resolved date.
func (e *Exporter) renderCover(title, date string) (string, error) {
	var buf strings.Builder
	data := struct {
		Title string
		Date  string
	}{Title: title, Date: date}
	if err := e.coverTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCoverRender, err)
	}
	return buf.String(), nil
}

// writeVariants writes the requested HTML variant files next to the PDF.
func writeVariants(result *ExportResult, outDir, stem string, mode HTMLOutput, v pipeline.Variants) error {
	write := func(suffix, content string) error {
		path := filepath.Join(outDir, stem+suffix)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		result.HTMLPaths = append(result.HTMLPaths, path)
		return nil
	}

	switch mode {
	case HTMLAll:
		if err := write(".html", v.Combined); err != nil {
			return err
		}
		if err := write("_toc.html", v.TOCOnly); err != nil {
			return err
		}
		return write("_content.html", v.ContentOnly)
	case HTMLTOCOnly:
		return write("_toc.html", v.TOCOnly)
	case HTMLContentOnly:
		return write("_content.html", v.ContentOnly)
	}
	return nil
}

// validateOptions checks that required fields are present and valid.
//
// This is a trust boundary for direct library users who build Options
// manually. CLI users have their input validated earlier at config load
// time; both paths converge here.
func validateOptions(opts Options) error {
	if opts.ProjectName == "" {
		return ErrEmptyProjectName
	}
	if !fileutil.DirExists(opts.DocsDir) {
		return fmt.Errorf("%w: %s", ErrMissingDocsDir, opts.DocsDir)
	}
	return opts.Page.Validate()
}
