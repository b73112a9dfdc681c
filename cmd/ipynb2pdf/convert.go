package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ipynb2pdf "github.com/nbkit/ipynb2pdf"
	"github.com/nbkit/ipynb2pdf/internal/config"
	"github.com/nbkit/ipynb2pdf/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input notebook specified")
	ErrReadNotebook     = errors.New("failed to read notebook file")
	ErrReadCSS          = errors.New("failed to read CSS file")
	ErrWritePDF         = errors.New("failed to write PDF file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
	ErrInvalidExtension = errors.New("file must have .ipynb extension")
	ErrInvalidTimeout   = errors.New("invalid timeout value")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input ipynb2pdf.Input) (*ipynb2pdf.ConvertResult, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Converter = (*ipynb2pdf.Converter)(nil)

// newConverter is the converter factory, replaceable in tests.
var newConverter = func(opts ...ipynb2pdf.Option) (Converter, error) {
	return ipynb2pdf.NewConverter(opts...)
}

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates a single notebook conversion.
// All parameter validation happens before the converter is created, so
// invalid paper sizes and missing inputs never reach the browser.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nil))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Resolve and validate input path
	inputPath, err := resolveInputPath(positionalArgs)
	if err != nil {
		return err
	}
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("%w: %v", ErrReadNotebook, err)
	}

	// Build page settings (flags override config, defaults fill the rest)
	page, err := buildPageSettings(flags, cfg)
	if err != nil {
		return err
	}

	// Resolve output path
	outputPath := resolveOutputPath(inputPath, flags.output, cfg, flags.htmlOnly)

	// Resolve CSS and style options
	cssContent, err := resolveCSSContent(flags.style.cssFile, cfg)
	if err != nil {
		return err
	}
	opts, err := buildConverterOptions(flags, cfg)
	if err != nil {
		return err
	}

	// Create converter after validation; the browser is launched lazily on
	// first PDF render, never for --html-only runs.
	conv, err := newConverter(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = conv.Close() }()

	return convertFile(ctx, conv, inputPath, outputPath, cssContent, page, flags, env)
}

// resolveInputPath determines the input notebook path from args.
func resolveInputPath(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrNoInput
	}
	path := args[0]
	if !hasNotebookExtension(path) {
		return "", fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return path, nil
}

// hasNotebookExtension checks for the .ipynb extension, case-insensitive.
func hasNotebookExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ipynb")
}

// resolveOutputPath determines the output file path.
// Priority: -o flag > config output dir > input path with swapped extension.
func resolveOutputPath(inputPath, flagOutput string, cfg *config.Config, htmlOnly bool) string {
	ext := ".pdf"
	if htmlOnly {
		ext = ".html"
	}

	if flagOutput != "" {
		if strings.EqualFold(filepath.Ext(flagOutput), ext) {
			return flagOutput
		}
		return flagOutput + ext
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if cfg.Output.DefaultDir != "" {
		return filepath.Join(cfg.Output.DefaultDir, base+ext)
	}
	return filepath.Join(filepath.Dir(inputPath), base+ext)
}

// buildPageSettings creates ipynb2pdf.PageSettings from flags and config.
func buildPageSettings(flags *convertFlags, cfg *config.Config) (*ipynb2pdf.PageSettings, error) {
	ps := &ipynb2pdf.PageSettings{
		Size:        cfg.Page.Size,
		Orientation: cfg.Page.Orientation,
		Margin:      cfg.Page.Margin,
	}

	// CLI flags override config
	if flags.page.paper != "" {
		ps.Size = flags.page.paper
	}
	if flags.page.orientation != "" {
		ps.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		ps.Margin = flags.page.margin
	}

	// Apply defaults
	if ps.Size == "" {
		ps.Size = ipynb2pdf.PaperSizeA3
	}
	if ps.Orientation == "" {
		ps.Orientation = ipynb2pdf.OrientationPortrait
	}
	if ps.Margin == 0 {
		ps.Margin = ipynb2pdf.DefaultMargin
	}

	if err := ps.Validate(); err != nil {
		return nil, err
	}

	return ps, nil
}

// resolveCSSContent reads custom CSS from the flag path or config file path.
func resolveCSSContent(cssFile string, cfg *config.Config) (string, error) {
	if cssFile == "" {
		cssFile = cfg.CSS.File
	}
	if cssFile == "" {
		return "", nil
	}

	content, err := os.ReadFile(cssFile) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}

// buildConverterOptions assembles library options from flags and config.
func buildConverterOptions(flags *convertFlags, cfg *config.Config) ([]ipynb2pdf.Option, error) {
	var opts []ipynb2pdf.Option

	if flags.style.noStyle {
		opts = append(opts, ipynb2pdf.WithoutStyle())
	}

	style := cfg.CSS.Style
	if flags.style.style != "" {
		style = flags.style.style
	}
	if style != "" {
		opts = append(opts, ipynb2pdf.WithStyle(style))
	}

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q%s", ErrInvalidTimeout, flags.timeout, hints.ForTimeout())
		}
		opts = append(opts, ipynb2pdf.WithTimeout(d))
	}

	return opts, nil
}

// convertFile reads the notebook, converts it, and writes the output.
func convertFile(ctx context.Context, conv Converter, inputPath, outputPath, css string, page *ipynb2pdf.PageSettings, flags *convertFlags, env *Environment) error {
	start := env.Now()

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadNotebook, err)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %s (paper=%s, orientation=%s)\n", inputPath, page.Size, page.Orientation)
	}

	result, err := conv.Convert(ctx, ipynb2pdf.Input{
		Notebook: content,
		CSS:      css,
		Page:     page,
		HTMLOnly: flags.htmlOnly,
	})
	if err != nil {
		if errors.Is(err, ipynb2pdf.ErrBrowserConnect) {
			return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
		}
		return err
	}

	outDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
	}

	if flags.htmlOnly {
		if err := os.WriteFile(outputPath, result.HTML, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
	} else {
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(outputPath, result.PDF, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePDF, err)
		}
	}

	if !flags.common.quiet {
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", inputPath, outputPath, env.Now().Sub(start).Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
		}
	}

	return nil
}
