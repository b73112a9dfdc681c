package ipynb2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyNotebook  = errors.New("notebook content cannot be empty")
	ErrNotebookParse  = errors.New("notebook parsing failed")
	ErrHTMLRender     = errors.New("HTML rendering failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPaperSize   = errors.New("invalid paper size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Asset loading errors.
	ErrStyleNotFound = errors.New("style not found")
)
