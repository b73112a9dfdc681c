package ipynb2pdf

import (
	"fmt"
	"strings"
	"time"
)

// Paper size constants.
const (
	PaperSizeA3     = "a3"
	PaperSizeA4     = "a4"
	PaperSizeLetter = "letter"
	PaperSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin = 0.25
	MaxMargin = 3.0
	// DefaultMargin is 2cm expressed in inches, matching the margin the
	// classic notebook export uses on every side.
	DefaultMargin = 0.79
)

// paperDimensions maps a paper size to portrait width and height in inches.
var paperDimensions = map[string]struct{ width, height float64 }{
	PaperSizeA3:     {11.69, 16.54},
	PaperSizeA4:     {8.27, 11.69},
	PaperSizeLetter: {8.5, 11},
	PaperSizeLegal:  {8.5, 14},
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "a3", "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
// A3 portrait is the historical default for notebook exports.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PaperSizeA3,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil; zero-valued fields mean "use the default" and
// are accepted. Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if p.Size != "" && !isValidPaperSize(p.Size) {
		return fmt.Errorf("%w: %q (must be a3, a4, letter, or legal)", ErrInvalidPaperSize, p.Size)
	}

	if p.Orientation != "" && !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q (must be portrait or landscape)", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin != 0 && (p.Margin < MinMargin || p.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// Dimensions returns the paper width and height in inches, swapped for
// landscape orientation. An empty size uses the default paper. Panics on
// an unknown size; callers must Validate first.
func (p *PageSettings) Dimensions() (width, height float64) {
	size := strings.ToLower(p.Size)
	if size == "" {
		size = PaperSizeA3
	}
	dims, ok := paperDimensions[size]
	if !ok {
		panic("ipynb2pdf: Dimensions called with unvalidated paper size " + p.Size)
	}
	if strings.ToLower(p.Orientation) == OrientationLandscape {
		return dims.height, dims.width
	}
	return dims.width, dims.height
}

// isValidPaperSize checks if size is a known paper size (case-insensitive).
func isValidPaperSize(size string) bool {
	_, ok := paperDimensions[strings.ToLower(size)]
	return ok
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input contains conversion parameters.
type Input struct {
	Notebook []byte        // Raw .ipynb content (required)
	CSS      string        // Custom CSS appended after the converter style (optional)
	Page     *PageSettings // Page settings (optional, nil = defaults)
	HTMLOnly bool          // Skip PDF generation, return HTML only
}

// ConvertResult holds the conversion output.
type ConvertResult struct {
	HTML []byte // Intermediate HTML document
	PDF  []byte // Final PDF (nil when HTMLOnly was set)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout       time.Duration
	style         string
	noStyle       bool
	resolvedStyle string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("ipynb2pdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle selects an embedded stylesheet by name (default "classic").
func WithStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.style = name
	}
}

// WithoutStyle disables the embedded stylesheet. Per-conversion CSS passed
// via Input.CSS is still injected.
func WithoutStyle() Option {
	return func(c *Converter) {
		c.cfg.noStyle = true
	}
}
