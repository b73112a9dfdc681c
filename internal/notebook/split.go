package notebook

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for split operations.
var (
	ErrInvalidCellCounts = errors.New("cell counts must be comma-separated positive integers")
	ErrInvalidFileCount  = errors.New("file count must be a positive integer")
	ErrNoCells           = errors.New("notebook has no cells to split")
)

// ParseCellCounts parses a user-supplied distribution like "5,3,4" into a
// list of per-file cell counts. A trailing comma means "remaining cells go
// into one more file" and is recorded as a trailing zero placeholder.
// Full-width commas are accepted for input typed with a CJK keyboard layout.
func ParseCellCounts(input string) ([]int, error) {
	input = strings.ReplaceAll(input, "，", ",")
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}

	trailingComma := strings.HasSuffix(trimmed, ",")

	var counts []int
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCellCounts, part)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidCellCounts, n)
		}
		counts = append(counts, n)
	}

	if trailingComma && len(counts) > 0 {
		counts = append(counts, 0)
	}

	return counts, nil
}

// Distribution computes the per-file cell counts for splitting totalCells.
//
// When counts is non-empty it wins: a shortfall is assigned to the last
// file, an excess is truncated file by file. Otherwise cells are divided
// evenly across numFiles with the remainder spread over the first files.
func Distribution(totalCells, numFiles int, counts []int) ([]int, error) {
	if totalCells == 0 {
		return nil, ErrNoCells
	}

	if len(counts) > 0 {
		return customDistribution(totalCells, counts), nil
	}

	if numFiles <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFileCount, numFiles)
	}
	if numFiles > totalCells {
		numFiles = totalCells
	}

	base := totalCells / numFiles
	remainder := totalCells % numFiles
	dist := make([]int, numFiles)
	for i := range dist {
		dist[i] = base
		if i < remainder {
			dist[i]++
		}
	}
	return dist, nil
}

// customDistribution reconciles explicit counts against the actual total.
func customDistribution(totalCells int, counts []int) []int {
	dist := make([]int, len(counts))
	copy(dist, counts)

	assigned := 0
	for _, n := range dist {
		assigned += n
	}

	if assigned < totalCells {
		// Remainder goes into the last file (which may be the trailing
		// zero placeholder from ParseCellCounts).
		dist[len(dist)-1] += totalCells - assigned
		return dist
	}

	if assigned > totalCells {
		remaining := totalCells
		for i, n := range dist {
			if n > remaining {
				n = remaining
			}
			dist[i] = n
			remaining -= n
		}
	}

	return dist
}

// Split divides the notebook's cells into consecutive chunks per the
// distribution, producing one notebook per non-empty chunk. Notebook-level
// metadata and format version are carried into every part.
func Split(nb *Notebook, distribution []int) []*Notebook {
	var parts []*Notebook
	start := 0
	for _, count := range distribution {
		if count <= 0 || start >= len(nb.Cells) {
			continue
		}
		end := start + count
		if end > len(nb.Cells) {
			end = len(nb.Cells)
		}
		parts = append(parts, &Notebook{
			Cells:         nb.Cells[start:end],
			Metadata:      nb.Metadata,
			NBFormat:      nb.NBFormat,
			NBFormatMinor: nb.NBFormatMinor,
			rawMetadata:   nb.rawMetadata,
		})
		start = end
	}
	return parts
}
