// Package docs2pdf exports a documentation tree of Markdown/MDX files
// into a single paginated document with a hierarchical table of
// contents, rendered to PDF by headless Chrome.
//
// # Quick Start
//
// Create an exporter, export a tree, and close when done:
//
//	exp, err := docs2pdf.NewExporter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer exp.Close()
//
//	result, err := exp.Export(ctx, docs2pdf.Options{
//	    ProjectName: "Next.js",
//	    DocsDir:     "nextjs-docs/docs",
//	    SourceRoot:  "nextjs-docs",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.PDFPath)
//
// # Export Pipeline
//
// The export proceeds in these stages:
//
//  1. Ordered walk of the tree (index documents lead their directory)
//  2. Per-document transformation: asset URL rewriting, code-fence
//     header extraction, frontmatter decoding, Markdown rendering via
//     Goldmark, local reference resolution
//  3. Assembly: numbered TOC, per-document metadata blocks, page
//     breaks, cover section, shared shell
//  4. PDF rendering via headless Chrome (go-rod) with running header
//     and footer
//
// The highest vMAJOR.MINOR.PATCH marker found across the rendered
// content stamps the document title and the output filename.
//
// # Configuration
//
// Use functional options to customize the exporter:
//
//	exp, err := docs2pdf.NewExporter(
//	    docs2pdf.WithTimeout(5 * time.Minute),
//	    docs2pdf.WithStyle("default"),
//	    docs2pdf.WithAssetsDir("/path/to/custom/assets"),
//	)
//
// Per-run options are passed via Options: page geometry, the cover
// date, image URL rewriting, and which HTML variants to write.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium on first run. For
// containers and CI environments, set DOCS2PDF_NO_SANDBOX=1 to disable
// the Chrome sandbox and DOCS2PDF_BROWSER_BIN to use a custom binary.
package docs2pdf
