package notebook

// Notes:
// - ParseCellCounts: tests full-width comma normalization and the trailing
//   comma placeholder
// - Distribution: tests even split with remainder and explicit counts with
//   shortfall/excess reconciliation
// - Split: tests chunk boundaries and metadata carry-over

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseCellCounts - Count String Parsing
// ---------------------------------------------------------------------------

func TestParseCellCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr error
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  nil,
		},
		{
			name:  "simple counts",
			input: "5,3,4",
			want:  []int{5, 3, 4},
		},
		{
			name:  "spaces around counts",
			input: " 5 , 3 , 4 ",
			want:  []int{5, 3, 4},
		},
		{
			name:  "trailing comma adds placeholder",
			input: "5,3,",
			want:  []int{5, 3, 0},
		},
		{
			name:  "full-width commas accepted",
			input: "5，3，4",
			want:  []int{5, 3, 4},
		},
		{
			name:  "full-width trailing comma",
			input: "5，3，",
			want:  []int{5, 3, 0},
		},
		{
			name:  "single count",
			input: "7",
			want:  []int{7},
		},
		{
			name:    "non-numeric",
			input:   "5,x,4",
			wantErr: ErrInvalidCellCounts,
		},
		{
			name:    "zero count",
			input:   "5,0,4",
			wantErr: ErrInvalidCellCounts,
		},
		{
			name:    "negative count",
			input:   "5,-1",
			wantErr: ErrInvalidCellCounts,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCellCounts(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseCellCounts() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCellCounts() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDistribution - Cell Distribution
// ---------------------------------------------------------------------------

func TestDistribution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		totalCells int
		numFiles   int
		counts     []int
		want       []int
		wantErr    error
	}{
		{
			name:       "even split",
			totalCells: 12,
			numFiles:   3,
			want:       []int{4, 4, 4},
		},
		{
			name:       "remainder spread over first files",
			totalCells: 13,
			numFiles:   3,
			want:       []int{5, 4, 4},
		},
		{
			name:       "more files than cells caps at cells",
			totalCells: 2,
			numFiles:   5,
			want:       []int{1, 1},
		},
		{
			name:       "explicit counts exact",
			totalCells: 12,
			counts:     []int{5, 3, 4},
			want:       []int{5, 3, 4},
		},
		{
			name:       "shortfall goes to last file",
			totalCells: 12,
			counts:     []int{5, 3},
			want:       []int{5, 7},
		},
		{
			name:       "trailing placeholder takes remainder",
			totalCells: 12,
			counts:     []int{5, 3, 0},
			want:       []int{5, 3, 4},
		},
		{
			name:       "excess truncated file by file",
			totalCells: 6,
			counts:     []int{5, 5, 5},
			want:       []int{5, 1, 0},
		},
		{
			name:       "no cells",
			totalCells: 0,
			numFiles:   3,
			wantErr:    ErrNoCells,
		},
		{
			name:       "no mode selected",
			totalCells: 12,
			numFiles:   0,
			wantErr:    ErrInvalidFileCount,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Distribution(tt.totalCells, tt.numFiles, tt.counts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Distribution() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Distribution() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSplit - Notebook Splitting
// ---------------------------------------------------------------------------

func makeTestNotebook(numCells int) *Notebook {
	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i] = Cell{
			CellType: CellTypeMarkdown,
			Source:   MultilineString(fmt.Sprintf("cell %d", i)),
		}
	}
	return &Notebook{
		Cells:         cells,
		Metadata:      Metadata{KernelSpec: &KernelSpec{Name: "python3"}},
		NBFormat:      4,
		NBFormatMinor: 5,
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	nb := makeTestNotebook(10)
	parts := Split(nb, []int{4, 3, 3})

	if len(parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(parts))
	}

	wantSizes := []int{4, 3, 3}
	cellIdx := 0
	for i, part := range parts {
		if len(part.Cells) != wantSizes[i] {
			t.Errorf("part %d has %d cells, want %d", i, len(part.Cells), wantSizes[i])
		}
		for _, cell := range part.Cells {
			want := fmt.Sprintf("cell %d", cellIdx)
			if cell.Source.String() != want {
				t.Errorf("cell order broken: got %q, want %q", cell.Source.String(), want)
			}
			cellIdx++
		}
		if part.NBFormat != 4 || part.NBFormatMinor != 5 {
			t.Errorf("part %d lost format version", i)
		}
		if part.Metadata.KernelSpec == nil || part.Metadata.KernelSpec.Name != "python3" {
			t.Errorf("part %d lost kernelspec", i)
		}
	}
}

func TestSplit_SkipsEmptyChunks(t *testing.T) {
	t.Parallel()

	nb := makeTestNotebook(6)
	parts := Split(nb, []int{5, 1, 0})

	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2 (zero chunk skipped)", len(parts))
	}
}

func TestSplit_RoundTripsThroughMarshal(t *testing.T) {
	t.Parallel()

	data := `{
	 "cells": [
	  {"cell_type": "markdown", "source": "a"},
	  {"cell_type": "code", "source": "b", "outputs": []},
	  {"cell_type": "markdown", "source": "c"}
	 ],
	 "metadata": {"language_info": {"name": "python"}, "custom": 1},
	 "nbformat": 4, "nbformat_minor": 5
	}`

	nb, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	parts := Split(nb, []int{2, 1})
	for i, part := range parts {
		out, err := Marshal(part)
		if err != nil {
			t.Fatalf("Marshal(part %d) error = %v", i, err)
		}
		reparsed, err := Parse(out)
		if err != nil {
			t.Fatalf("part %d does not reparse: %v", i, err)
		}
		if reparsed.Language() != "python" {
			t.Errorf("part %d lost language metadata", i)
		}
	}
}
