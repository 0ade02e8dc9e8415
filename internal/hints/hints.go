// Package hints provides actionable error hints for common failure
// scenarios, formatted as "\n  hint: <text>" for appending to error
// messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-docs2pdf/internal/fileutil"
)

// IsInContainer detects a Docker container or similar by the
// /.dockerenv file Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors,
// detecting CI/Docker environments and suggesting the relevant
// environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("DOCS2PDF_NO_SANDBOX") != "1" {
		hints = append(hints, "set DOCS2PDF_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("DOCS2PDF_BROWSER_BIN") == "" {
		hints = append(hints, "set DOCS2PDF_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about slow renders of large trees.
func ForTimeout() string {
	return format("for large documentation trees, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-docs2pdf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForFileInUse returns hints when the output file is held open by
// another program, which on Windows blocks the rewrite entirely.
func ForFileInUse() string {
	return format("close the program that has the file open and retry")
}

// ForRepositorySync returns hints for clone and pull failures.
func ForRepositorySync(cloneDir string) string {
	hint := "check network access and the repository URL"
	if cloneDir != "" {
		hint += "; delete " + cloneDir + " to force a fresh clone"
	}
	return format(hint)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
