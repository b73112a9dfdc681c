package main

import (
	"bytes"
	"testing"
)

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer
	flags, positional, err := parseConvertFlags([]string{
		"notes.ipynb",
		"-o", "out.pdf",
		"-p", "a4",
		"--orientation", "landscape",
		"--margin", "1.5",
		"-t", "45s",
		"--style", "minimal",
		"--css", "extra.css",
		"--html-only",
		"-q",
	}, &errOut)
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}

	if len(positional) != 1 || positional[0] != "notes.ipynb" {
		t.Errorf("positional = %v", positional)
	}
	if flags.output != "out.pdf" {
		t.Errorf("output = %q", flags.output)
	}
	if flags.page.paper != "a4" || flags.page.orientation != "landscape" || flags.page.margin != 1.5 {
		t.Errorf("page = %+v", flags.page)
	}
	if flags.timeout != "45s" {
		t.Errorf("timeout = %q", flags.timeout)
	}
	if flags.style.style != "minimal" || flags.style.cssFile != "extra.css" {
		t.Errorf("style = %+v", flags.style)
	}
	if !flags.htmlOnly {
		t.Error("htmlOnly not set")
	}
	if !flags.common.quiet {
		t.Error("quiet not set")
	}
}

func TestParseConvertFlags_Defaults(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer
	flags, _, err := parseConvertFlags([]string{"a.ipynb"}, &errOut)
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}

	if flags.page.paper != "" || flags.page.orientation != "" || flags.page.margin != 0 {
		t.Errorf("page flags should default empty, got %+v", flags.page)
	}
	if flags.common.quiet || flags.common.verbose || flags.htmlOnly {
		t.Error("boolean flags should default false")
	}
}

func TestParseConvertFlags_UnknownFlag(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer
	_, _, err := parseConvertFlags([]string{"--bogus"}, &errOut)
	if err == nil {
		t.Error("unknown flag should error")
	}
}

func TestParseSplitFlags(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer
	flags, positional, err := parseSplitFlags([]string{
		"big.ipynb", "-n", "3", "--cells", "5,3,", "-o", "parts",
	}, &errOut)
	if err != nil {
		t.Fatalf("parseSplitFlags() error = %v", err)
	}

	if len(positional) != 1 || positional[0] != "big.ipynb" {
		t.Errorf("positional = %v", positional)
	}
	if flags.files != 3 {
		t.Errorf("files = %d", flags.files)
	}
	if flags.cells != "5,3," {
		t.Errorf("cells = %q", flags.cells)
	}
	if flags.output != "parts" {
		t.Errorf("output = %q", flags.output)
	}
}

func TestParseSplitFlags_DefaultOutputDir(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer
	flags, _, err := parseSplitFlags([]string{"a.ipynb"}, &errOut)
	if err != nil {
		t.Fatalf("parseSplitFlags() error = %v", err)
	}
	if flags.output != "." {
		t.Errorf("default output dir = %q, want %q", flags.output, ".")
	}
}
