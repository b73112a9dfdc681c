package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nbkit/ipynb2pdf/internal/notebook"
)

// Sentinel errors for the split command.
var (
	ErrSplitMode     = errors.New("split needs --files or --cells")
	ErrWriteNotebook = errors.New("failed to write notebook file")
)

// runSplitCmd divides a notebook's cells into several smaller notebooks,
// written as 1.ipynb, 2.ipynb, ... in the output directory.
func runSplitCmd(args []string, env *Environment) error {
	flags, positional, err := parseSplitFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadNotebook, err)
	}

	nb, err := notebook.Parse(data)
	if err != nil {
		return err
	}

	if len(nb.Cells) == 0 {
		return notebook.ErrNoCells
	}

	counts, err := notebook.ParseCellCounts(flags.cells)
	if err != nil {
		return err
	}
	if len(counts) == 0 && flags.files <= 0 {
		return ErrSplitMode
	}

	distribution, err := notebook.Distribution(len(nb.Cells), flags.files, counts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(flags.output, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	parts := notebook.Split(nb, distribution)
	for i, part := range parts {
		outPath := filepath.Join(flags.output, fmt.Sprintf("%d.ipynb", i+1))
		out, err := notebook.Marshal(part)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, out, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteNotebook, err)
		}
		fmt.Fprintf(env.Stdout, "Created %s (%d cells)\n", outPath, len(part.Cells))
	}

	fmt.Fprintf(env.Stdout, "Split %d cells into %d notebooks\n", len(nb.Cells), len(parts))
	return nil
}
