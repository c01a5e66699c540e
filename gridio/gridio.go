package gridio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gridnav/occupancy"
)

var (
	// ErrFormat indicates malformed or unsupported input.
	ErrFormat = errors.New("gridio: malformed grid data")
	// ErrEmpty indicates input without a single cell.
	ErrEmpty = errors.New("gridio: grid has no cells")
)

// Format names a supported encoding.
type Format string

const (
	// FormatText is whitespace or comma separated integers, one row per line.
	FormatText Format = "text"
	// FormatPGM is a Netpbm graymap, plain (P2) or binary (P5).
	FormatPGM Format = "pgm"
	// FormatPNG is a PNG image converted to 8-bit gray.
	FormatPNG Format = "png"
)

// FormatFromPath guesses the format from a file extension. ok is false for
// unknown extensions.
func FormatFromPath(path string) (f Format, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".grid", ".csv":
		return FormatText, true
	case ".pgm", ".pnm":
		return FormatPGM, true
	case ".png":
		return FormatPNG, true
	}
	return "", false
}

// sniff inspects leading bytes.
func sniff(head []byte) Format {
	switch {
	case bytes.HasPrefix(head, []byte("\x89PNG")):
		return FormatPNG
	case bytes.HasPrefix(head, []byte("P2")), bytes.HasPrefix(head, []byte("P5")):
		return FormatPGM
	}
	return FormatText
}

// Read decodes r as format f.
func Read(r io.Reader, f Format) ([][]int, error) {
	switch f {
	case FormatText:
		return ReadText(r)
	case FormatPGM:
		return ReadPGM(r)
	case FormatPNG:
		return ReadPNG(r)
	}
	return nil, fmt.Errorf("%w: unknown format %q", ErrFormat, f)
}

// ReadFile opens path and decodes it, choosing the format by extension or,
// failing that, by content.
func ReadFile(path string) ([][]int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: open: %w", err)
	}
	defer fh.Close()

	br := bufio.NewReader(fh)
	f, ok := FormatFromPath(path)
	if !ok {
		head, _ := br.Peek(4)
		f = sniff(head)
	}
	grid, err := Read(br, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

// Write encodes grid to w as format f.
func Write(w io.Writer, grid [][]int, f Format) error {
	switch f {
	case FormatText:
		return WriteText(w, grid)
	case FormatPGM:
		return WritePGM(w, grid)
	case FormatPNG:
		return WritePNG(w, grid)
	}
	return fmt.Errorf("%w: unknown format %q", ErrFormat, f)
}

// WriteFile creates path and encodes grid in the format implied by its
// extension (text when unknown).
func WriteFile(path string, grid [][]int) error {
	f, ok := FormatFromPath(path)
	if !ok {
		f = FormatText
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridio: create: %w", err)
	}
	if err := Write(fh, grid, f); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

// FromGrid renders a traversability grid as intensities: 255 free, 0 blocked.
func FromGrid(g *occupancy.Grid) [][]int {
	vals := g.Values()
	for _, row := range vals {
		for c, v := range row {
			row[c] = v * 255
		}
	}
	return vals
}

// dims checks that grid is non-empty and rectangular.
func dims(grid [][]int) (rows, cols int, err error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, 0, ErrEmpty
	}
	cols = len(grid[0])
	for r, row := range grid {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d values, want %d", ErrFormat, r, len(row), cols)
		}
	}
	return len(grid), cols, nil
}
