package docs2pdf

import "errors"

// Sentinel errors for export operations.
var (
	ErrNoDocuments    = errors.New("no documents found")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrCoverRender    = errors.New("cover template rendering failed")
	ErrOutputInUse    = errors.New("output file is in use")
	ErrOutputDir      = errors.New("cannot create output directory")

	// Option validation errors.
	ErrEmptyProjectName  = errors.New("project name cannot be empty")
	ErrMissingDocsDir    = errors.New("documentation directory not found")
	ErrInvalidPageFormat = errors.New("invalid page format")
	ErrInvalidMargin     = errors.New("invalid margin")
	ErrInvalidScale      = errors.New("invalid scale")
)
