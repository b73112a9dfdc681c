package main

import (
	"errors"
	"os"

	ipynb2pdf "github.com/nbkit/ipynb2pdf"
	"github.com/nbkit/ipynb2pdf/internal/config"
	"github.com/nbkit/ipynb2pdf/internal/notebook"
)

// Exit codes for the ipynb2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, ipynb2pdf.ErrBrowserConnect) ||
		errors.Is(err, ipynb2pdf.ErrPageCreate) ||
		errors.Is(err, ipynb2pdf.ErrPageLoad) ||
		errors.Is(err, ipynb2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadNotebook) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrWriteNotebook) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, ipynb2pdf.ErrEmptyNotebook) ||
		errors.Is(err, ipynb2pdf.ErrNotebookParse) ||
		errors.Is(err, ipynb2pdf.ErrInvalidPaperSize) ||
		errors.Is(err, ipynb2pdf.ErrInvalidOrientation) ||
		errors.Is(err, ipynb2pdf.ErrInvalidMargin) ||
		errors.Is(err, ipynb2pdf.ErrStyleNotFound) ||
		errors.Is(err, notebook.ErrInvalidJSON) ||
		errors.Is(err, notebook.ErrMissingField) ||
		errors.Is(err, notebook.ErrInvalidCellCounts) ||
		errors.Is(err, notebook.ErrInvalidFileCount) ||
		errors.Is(err, notebook.ErrNoCells) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrSplitMode) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
