package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docs2pdf [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  export     Export a documentation tree to a single PDF (default)")
	fmt.Fprintln(w, "  doctor     Check the environment for export readiness")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docs2pdf help <command>' for details on a specific command.")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docs2pdf export [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Clone or update the documentation repository, then render the")
	fmt.Fprintln(w, "tree into a single paginated PDF with a cover and table of contents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Source:")
	fmt.Fprintln(w, "      --repo-url <url>        Documentation repository URL")
	fmt.Fprintln(w, "      --branch <name>         Branch to clone or pull")
	fmt.Fprintln(w, "      --docs-dir <path>       Docs directory inside the repository")
	fmt.Fprintln(w, "      --clone-dir <path>      Local checkout directory")
	fmt.Fprintln(w, "      --skip-sync             Use the existing checkout as-is")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --rewrite-assets        Rewrite relative image URLs through the proxy")
	fmt.Fprintln(w, "      --asset-base-url <url>  Proxy prefix for rewritten image URLs")
	fmt.Fprintln(w, "      --asset-url-suffix <s>  Query suffix for rewritten image URLs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output-dir <path>     Output directory")
	fmt.Fprintln(w, "      --html                  Also write combined, TOC, and content HTML")
	fmt.Fprintln(w, "      --toc-only              Write only the TOC HTML variant")
	fmt.Fprintln(w, "      --content-only          Write only the content HTML variant")
	fmt.Fprintln(w, "      --html-only             Write HTML variants and skip the PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-format <s>       Page format: a4, letter, legal")
	fmt.Fprintln(w, "      --margin <f>            Margin in inches (0-3.0)")
	fmt.Fprintln(w, "      --scale <f>             Print scale (0.1-2.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "      --style <name>          Stylesheet name")
	fmt.Fprintln(w, "      --assets-dir <path>     Custom asset directory")
	fmt.Fprintln(w, "      --date <s>              Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                              Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                              Presets: iso, european, us, long")
	fmt.Fprintln(w, "  -t, --timeout <dur>         Render timeout (e.g. 90s, 5m)")
	fmt.Fprintln(w, "  -v, --verbose               Enable debug logging")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "export":
		printExportUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: docs2pdf doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome, the documentation repository, and the system")
		fmt.Fprintln(env.Stdout, "for export readiness.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: docs2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: docs2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
