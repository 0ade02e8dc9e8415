package docs2pdf

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-docs2pdf/internal/fileutil"
)

// pdfConverter abstracts HTML to PDF conversion to allow different backends.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string, printOpts *proto.PagePrintToPDF) ([]byte, error)
	Close() error
}

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing
// without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, printOpts *proto.PagePrintToPDF) ([]byte, error)
}

// Paper sizes in inches, portrait.
var paperSizes = map[string][2]float64{
	PageFormatA4:     {8.27, 11.69},
	PageFormatLetter: {8.5, 11},
	PageFormatLegal:  {8.5, 14},
}

// Rendering viewport; print output stays consistent across machines.
const (
	viewportWidth  = 1280
	viewportHeight = 1024
)

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use a pre-installed browser if specified (Docker/containerized environments)
	bin := os.Getenv("DOCS2PDF_BROWSER_BIN")
	if bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("DOCS2PDF_NO_SANDBOX") == "1" || os.Getenv("CI") == "true" || bin != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome and renders
// it to PDF. Returns explicit errors instead of panicking when browser
// operations fail.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, printOpts *proto.PagePrintToPDF) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	// Wait for page load with the context deadline when one is set
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(printOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPrintOptions constructs proto.PagePrintToPDF from page settings
// plus the running header and footer.
func buildPrintOptions(page *PageSettings, title, date string) *proto.PagePrintToPDF {
	if page == nil {
		page = DefaultPageSettings()
	}

	size, ok := paperSizes[strings.ToLower(page.Format)]
	if !ok {
		size = paperSizes[PageFormatA4]
	}

	return &proto.PagePrintToPDF{
		PaperWidth:          floatPtr(size[0]),
		PaperHeight:         floatPtr(size[1]),
		MarginTop:           floatPtr(page.Margin),
		MarginBottom:        floatPtr(page.Margin),
		MarginLeft:          floatPtr(page.Margin),
		MarginRight:         floatPtr(page.Margin),
		Scale:               floatPtr(page.Scale),
		PrintBackground:     page.PrintBackground,
		DisplayHeaderFooter: true,
		HeaderTemplate:      headerTemplate(title),
		FooterTemplate:      footerTemplate(date),
	}
}

// headerTemplate shows the document title on the left and the page
// counter on the right of every page.
func headerTemplate(title string) string {
	return `<div style="font-size: 10px; padding: 10px 20px; margin-top: 20px; width: 100%;">` +
		`<span style="float: left;">` + html.EscapeString(title) + `</span>` +
		`<span style="float: right;">Page <span class="pageNumber"></span> of <span class="totalPages"></span></span>` +
		`</div>`
}

// footerTemplate centers the generation date on every page.
func footerTemplate(date string) string {
	return `<div style="font-size: 10px; padding: 10px 20px; margin-bottom: 20px; width: 100%; text-align: center;">` +
		`Generated on ` + html.EscapeString(date) +
		`</div>`
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// rodConverter converts HTML to PDF through a temp file loaded in
// headless Chrome.
type rodConverter struct {
	renderer *rodRenderer
}

// newRodConverter creates a rodConverter with a production renderer.
func newRodConverter(timeout time.Duration) *rodConverter {
	return &rodConverter{
		renderer: newRodRenderer(timeout),
	}
}

// ToPDF writes htmlContent to a temp file and renders it.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string, printOpts *proto.PagePrintToPDF) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, printOpts)
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
