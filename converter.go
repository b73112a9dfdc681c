package ipynb2pdf

import (
	"context"
	"fmt"

	"github.com/nbkit/ipynb2pdf/internal/assets"
	"github.com/nbkit/ipynb2pdf/internal/notebook"
	"github.com/nbkit/ipynb2pdf/internal/render"
)

// htmlRenderer abstracts notebook to HTML rendering.
type htmlRenderer interface {
	ToHTML(ctx context.Context, nb *notebook.Notebook) (string, error)
}

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ htmlRenderer = (*render.Renderer)(nil)
	_ pdfConverter = (*rodConverter)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// Converter orchestrates the notebook-to-PDF conversion pipeline.
// Create with NewConverter(), use Convert() for conversion, and Close() when done.
type Converter struct {
	cfg          converterConfig
	renderer     htmlRenderer
	pdfConverter pdfConverter
}

// DefaultStyle is the embedded stylesheet used when none is configured.
const DefaultStyle = "classic"

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithStyle).
// Returns error if the configured style cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:      converterConfig{timeout: defaultTimeout, style: DefaultStyle},
		renderer: render.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if !c.cfg.noStyle {
		css, err := assets.LoadStyle(c.cfg.style)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, c.cfg.style)
		}
		c.cfg.resolvedStyle = css
	}

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the result containing HTML and PDF.
// The context is used for cancellation and timeout.
// If input.HTMLOnly is true, PDF generation is skipped (for debugging).
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	// Parse notebook
	nb, err := notebook.Parse(input.Notebook)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotebookParse, err)
	}

	// Render to HTML
	htmlContent, err := c.renderer.ToHTML(ctx, nb)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	// Build combined CSS (converter style first, user CSS last so it can override)
	cssContent := c.cfg.resolvedStyle
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}
	htmlContent = render.InjectCSS(htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &ConvertResult{
		HTML: []byte(htmlContent),
	}

	// Skip PDF generation if HTMLOnly mode
	if input.HTMLOnly {
		return res, nil
	}

	// Convert to PDF
	page := input.Page
	if page == nil {
		page = DefaultPageSettings()
	}
	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input validated earlier at flag/config load time.
// Both paths converge here, ensuring all inputs are validated before processing.
func (c *Converter) validateInput(input Input) error {
	if len(input.Notebook) == 0 {
		return ErrEmptyNotebook
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return nil
}
