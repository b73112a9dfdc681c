package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ipynb2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert      Convert a Jupyter notebook to PDF")
	fmt.Fprintln(w, "  split        Split a notebook into smaller notebooks")
	fmt.Fprintln(w, "  interactive  Guided conversion with prompts")
	fmt.Fprintln(w, "  doctor       Check Chrome and environment readiness")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A bare notebook path is treated as convert:")
	fmt.Fprintln(w, "  ipynb2pdf analysis.ipynb")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'ipynb2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ipynb2pdf convert <input.ipynb> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Jupyter notebook to PDF via headless Chrome.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Notebook file (.ipynb)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF path (default: input with .pdf)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <dur>       PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --html-only           Write intermediate HTML instead of PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --paper <s>           Paper size: a3, a4, letter, legal (default a3)")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>        Embedded style: classic, minimal")
	fmt.Fprintln(w, "      --css <path>          External CSS file")
	fmt.Fprintln(w, "      --no-style            Disable CSS styling")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printSplitUsage prints usage for the split command.
func printSplitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ipynb2pdf split <input.ipynb> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split a notebook's cells into several smaller notebooks,")
	fmt.Fprintln(w, "written as 1.ipynb, 2.ipynb, ... in the output directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -n, --files <n>           Number of files (cells divided evenly)")
	fmt.Fprintln(w, "      --cells <counts>      Per-file cell counts, e.g. 5,3,4")
	fmt.Fprintln(w, "                            A trailing comma puts remaining cells")
	fmt.Fprintln(w, "                            into one more file: 5,3,")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default .)")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "split":
		printSplitUsage(env.Stdout)
	case "interactive", "wizard":
		fmt.Fprintln(env.Stdout, "Usage: ipynb2pdf interactive")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Guided conversion: prompts for the notebook path, output")
		fmt.Fprintln(env.Stdout, "location, paper size, and orientation, then converts.")
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: ipynb2pdf doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome installation and environment readiness.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: ipynb2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: ipynb2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
