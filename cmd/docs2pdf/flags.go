package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// sourceFlags holds repository acquisition flags.
type sourceFlags struct {
	repoURL  string
	branch   string
	docsDir  string
	cloneDir string
	skipSync bool
}

// rewriteFlags holds image URL rewrite flags.
type rewriteFlags struct {
	rewrite    bool
	rewriteSet bool // --rewrite-assets given explicitly, so false can disable
	baseURL    string
	urlSuffix  string
}

// outputFlags holds output location and HTML variant flags.
type outputFlags struct {
	dir         string
	html        bool
	htmlSet     bool
	tocOnly     bool
	contentOnly bool
	htmlOnly    bool
}

// pageFlags holds print layout flags. The set markers distinguish an
// explicit zero from an absent flag, since 0 is a valid margin.
type pageFlags struct {
	format    string
	margin    float64
	marginSet bool
	scale     float64
	scaleSet  bool
}

// miscFlags holds cross-cutting flags.
type miscFlags struct {
	config    string
	style     string
	assetsDir string
	date      string
	timeout   string
	verbose   bool
}

// exportFlags holds all flags for the export command.
type exportFlags struct {
	source sourceFlags
	assets rewriteFlags
	output outputFlags
	page   pageFlags
	misc   miscFlags
}

// addSourceFlags adds repository flags to a FlagSet.
func addSourceFlags(fs *flag.FlagSet, f *sourceFlags) {
	fs.StringVar(&f.repoURL, "repo-url", "", "documentation repository URL")
	fs.StringVar(&f.branch, "branch", "", "branch to clone or pull")
	fs.StringVar(&f.docsDir, "docs-dir", "", "docs directory inside the repository")
	fs.StringVar(&f.cloneDir, "clone-dir", "", "local checkout directory")
	fs.BoolVar(&f.skipSync, "skip-sync", false, "use the existing checkout without cloning or pulling")
}

// addRewriteFlags adds asset rewrite flags to a FlagSet.
func addRewriteFlags(fs *flag.FlagSet, f *rewriteFlags) {
	fs.BoolVar(&f.rewrite, "rewrite-assets", false, "rewrite relative image URLs through the asset proxy")
	fs.StringVar(&f.baseURL, "asset-base-url", "", "proxy prefix for rewritten image URLs")
	fs.StringVar(&f.urlSuffix, "asset-url-suffix", "", "query suffix for rewritten image URLs")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output-dir", "o", "", "output directory")
	fs.BoolVar(&f.html, "html", false, "also write combined, TOC, and content HTML")
	fs.BoolVar(&f.tocOnly, "toc-only", false, "write only the TOC HTML variant")
	fs.BoolVar(&f.contentOnly, "content-only", false, "write only the content HTML variant")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML variants and skip the PDF")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.format, "page-format", "p", "", "page format: a4, letter, legal")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0-3.0)")
	fs.Float64Var(&f.scale, "scale", 0, "print scale (0.1-2.0)")
}

// addMiscFlags adds cross-cutting flags to a FlagSet.
func addMiscFlags(fs *flag.FlagSet, f *miscFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.style, "style", "", "stylesheet name")
	fs.StringVar(&f.assetsDir, "assets-dir", "", "custom asset directory")
	fs.StringVar(&f.date, "date", "", `cover/footer date: "auto", "auto:FORMAT", or literal`)
	fs.StringVarP(&f.timeout, "timeout", "t", "", "render timeout (e.g. 90s, 5m)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
}

// parseExportFlags parses export command flags. The export command
// takes no positional arguments.
func parseExportFlags(args []string) (*exportFlags, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	f := &exportFlags{}

	addSourceFlags(fs, &f.source)
	addRewriteFlags(fs, &f.assets)
	addOutputFlags(fs, &f.output)
	addPageFlags(fs, &f.page)
	addMiscFlags(fs, &f.misc)

	fs.Usage = func() { printExportUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedArgument, fs.Arg(0))
	}

	f.assets.rewriteSet = fs.Changed("rewrite-assets")
	f.output.htmlSet = fs.Changed("html")
	f.page.marginSet = fs.Changed("margin")
	f.page.scaleSet = fs.Changed("scale")

	return f, nil
}
