package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	ipynb2pdf "github.com/nbkit/ipynb2pdf"
	"github.com/nbkit/ipynb2pdf/internal/fileutil"
)

// paperChoices lists the paper sizes offered by the wizard, in menu order.
var paperChoices = []string{
	ipynb2pdf.PaperSizeA3,
	ipynb2pdf.PaperSizeA4,
	ipynb2pdf.PaperSizeLetter,
	ipynb2pdf.PaperSizeLegal,
}

// runInteractive walks the user through a conversion with prompts.
// Every answer is validated in a loop before moving on, so the browser is
// only launched once all parameters are known good.
func runInteractive(ctx context.Context, env *Environment) error {
	scanner := bufio.NewScanner(env.Stdin)

	color.Fprintln(env.Stdout, "<cyan>ipynb2pdf</> - notebook to PDF")
	fmt.Fprintln(env.Stdout)

	for {
		inputPath, ok := promptInputPath(scanner, env.Stdout)
		if !ok {
			return nil // EOF on stdin
		}

		outputPath, ok := promptOutputPath(scanner, env.Stdout, inputPath)
		if !ok {
			return nil
		}

		paper, ok := promptChoice(scanner, env.Stdout, "Paper size", paperChoices, ipynb2pdf.PaperSizeA3)
		if !ok {
			return nil
		}

		orientation, ok := promptChoice(scanner, env.Stdout, "Orientation",
			[]string{ipynb2pdf.OrientationPortrait, ipynb2pdf.OrientationLandscape},
			ipynb2pdf.OrientationPortrait)
		if !ok {
			return nil
		}

		fmt.Fprintln(env.Stdout)
		fmt.Fprintf(env.Stdout, "  Input:       %s\n", inputPath)
		fmt.Fprintf(env.Stdout, "  Output:      %s\n", outputPath)
		fmt.Fprintf(env.Stdout, "  Paper:       %s %s\n", paper, orientation)
		fmt.Fprintln(env.Stdout)

		if !promptYesNo(scanner, env.Stdout, "Proceed?", true) {
			color.Fprintln(env.Stdout, "<yellow>Cancelled.</>")
		} else {
			flags := &convertFlags{
				output: outputPath,
				page:   pageFlags{paper: paper, orientation: orientation},
			}
			if err := runConvert(ctx, []string{inputPath}, flags, env); err != nil {
				color.Fprintf(env.Stdout, "<red>Conversion failed:</> %v\n", err)
			} else {
				color.Fprintln(env.Stdout, "<green>Done.</>")
			}
		}

		fmt.Fprintln(env.Stdout)
		if !promptYesNo(scanner, env.Stdout, "Convert another notebook?", false) {
			return nil
		}
		fmt.Fprintln(env.Stdout)
	}
}

// promptInputPath asks for a notebook path until an existing .ipynb file is
// given. Returns ok=false on EOF.
func promptInputPath(scanner *bufio.Scanner, out io.Writer) (string, bool) {
	for {
		fmt.Fprint(out, "Notebook path (.ipynb): ")
		if !scanner.Scan() {
			return "", false
		}
		path := fileutil.StripQuotes(strings.TrimSpace(scanner.Text()))
		if path == "" {
			continue
		}
		if !hasNotebookExtension(path) {
			color.Fprintln(out, "<red>File must have the .ipynb extension.</>")
			continue
		}
		if !fileutil.FileExists(path) {
			color.Fprintf(out, "<red>File not found:</> %s\n", path)
			continue
		}
		return path, true
	}
}

// promptOutputPath asks for the output PDF path, defaulting to the input
// path with the extension swapped.
func promptOutputPath(scanner *bufio.Scanner, out io.Writer, inputPath string) (string, bool) {
	defaultOut := strings.TrimSuffix(inputPath, ".ipynb") + ".pdf"
	fmt.Fprintf(out, "Output PDF [%s]: ", defaultOut)
	if !scanner.Scan() {
		return "", false
	}
	path := fileutil.StripQuotes(strings.TrimSpace(scanner.Text()))
	if path == "" {
		return defaultOut, true
	}
	return path, true
}

// promptChoice asks the user to pick one of the choices, accepting either
// the number or the name. Empty input selects the default.
func promptChoice(scanner *bufio.Scanner, out io.Writer, label string, choices []string, def string) (string, bool) {
	for {
		fmt.Fprintf(out, "%s:\n", label)
		for i, c := range choices {
			marker := " "
			if c == def {
				marker = "*"
			}
			fmt.Fprintf(out, "  %s%d) %s\n", marker, i+1, c)
		}
		fmt.Fprintf(out, "Choose [%s]: ", def)
		if !scanner.Scan() {
			return "", false
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer == "" {
			return def, true
		}
		for i, c := range choices {
			if answer == c || answer == fmt.Sprintf("%d", i+1) {
				return c, true
			}
		}
		color.Fprintf(out, "<red>Invalid choice:</> %s\n", answer)
	}
}

// promptYesNo asks a yes/no question. Empty input selects the default.
func promptYesNo(scanner *bufio.Scanner, out io.Writer, question string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", question, hint)
		if !scanner.Scan() {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "":
			return def
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}
