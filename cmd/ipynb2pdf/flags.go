package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	paper       string
	orientation string
	margin      float64
}

// styleFlags holds CSS-related flags.
type styleFlags struct {
	style   string // Embedded style name
	cssFile string // External CSS file path
	noStyle bool   // Disable CSS styling
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	timeout  string
	page     pageFlags
	style    styleFlags
	htmlOnly bool
}

// splitFlags holds all flags for the split command.
type splitFlags struct {
	files  int
	cells  string
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.paper, "paper", "p", "", "paper size: a3, a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addStyleFlags adds CSS flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "embedded style name (classic, minimal)")
	fs.StringVar(&f.cssFile, "css", "", "external CSS file path")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, errOut io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(errOut)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF file path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addStyleFlags(fs, &f.style)

	fs.Usage = func() { printConvertUsage(errOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseSplitFlags parses split command flags and returns positional args.
func parseSplitFlags(args []string, errOut io.Writer) (*splitFlags, []string, error) {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	fs.SetOutput(errOut)
	f := &splitFlags{}

	fs.IntVarP(&f.files, "files", "n", 0, "number of files to split into")
	fs.StringVar(&f.cells, "cells", "", "per-file cell counts (e.g., 5,3,4)")
	fs.StringVarP(&f.output, "output", "o", ".", "output directory")

	fs.Usage = func() { printSplitUsage(errOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
