package main

import (
	"errors"
	"os"

	docs2pdf "github.com/alnah/go-docs2pdf"
	"github.com/alnah/go-docs2pdf/internal/assets"
	"github.com/alnah/go-docs2pdf/internal/config"
	"github.com/alnah/go-docs2pdf/internal/dateutil"
	"github.com/alnah/go-docs2pdf/internal/gitsource"
)

// Exit codes for the docs2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful export
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing input, output in use, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, docs2pdf.ErrBrowserConnect) ||
		errors.Is(err, docs2pdf.ErrPageCreate) ||
		errors.Is(err, docs2pdf.ErrPageLoad) ||
		errors.Is(err, docs2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, docs2pdf.ErrMissingDocsDir) ||
		errors.Is(err, docs2pdf.ErrNoDocuments) ||
		errors.Is(err, docs2pdf.ErrOutputInUse) ||
		errors.Is(err, docs2pdf.ErrOutputDir) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, docs2pdf.ErrEmptyProjectName) ||
		errors.Is(err, docs2pdf.ErrInvalidPageFormat) ||
		errors.Is(err, docs2pdf.ErrInvalidMargin) ||
		errors.Is(err, docs2pdf.ErrInvalidScale) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, gitsource.ErrMissingRepoURL) ||
		errors.Is(err, gitsource.ErrMissingBranch) ||
		errors.Is(err, gitsource.ErrMissingCloneDir) ||
		errors.Is(err, ErrUnexpectedArgument) ||
		errors.Is(err, ErrConflictingFlags) {
		return ExitUsage
	}

	return ExitGeneral
}
