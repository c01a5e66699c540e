package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// MaxPGMCells bounds width×height of a decoded graymap.
const MaxPGMCells = 1 << 26

// ReadPGM decodes a plain (P2) or binary (P5) graymap.
func ReadPGM(r io.Reader) ([][]int, error) {
	br := bufio.NewReader(r)
	magic, err := pgmToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P2" && magic != "P5" {
		return nil, fmt.Errorf("%w: pgm magic %q", ErrFormat, magic)
	}
	var hdr [3]int
	for i := range hdr {
		tok, err := pgmToken(br)
		if err != nil {
			return nil, err
		}
		hdr[i], err = strconv.Atoi(tok)
		if err != nil || hdr[i] <= 0 {
			return nil, fmt.Errorf("%w: pgm header field %q", ErrFormat, tok)
		}
	}
	width, height, maxVal := hdr[0], hdr[1], hdr[2]
	if maxVal > 65535 {
		return nil, fmt.Errorf("%w: pgm maxval %d", ErrFormat, maxVal)
	}
	// both are positive, so the division cannot overflow
	if width > MaxPGMCells/height {
		return nil, fmt.Errorf("%w: pgm dimensions %dx%d", ErrFormat, width, height)
	}

	grid := make([][]int, height)
	for row := range grid {
		grid[row] = make([]int, width)
	}
	if magic == "P2" {
		err = readPlain(br, grid, maxVal)
	} else {
		err = readRaw(br, grid, maxVal)
	}
	if err != nil {
		return nil, err
	}
	return grid, nil
}

func readPlain(br *bufio.Reader, grid [][]int, maxVal int) error {
	for _, row := range grid {
		for c := range row {
			tok, err := pgmToken(br)
			if err != nil {
				return err
			}
			v, err := strconv.Atoi(tok)
			if err != nil || v < 0 || v > maxVal {
				return fmt.Errorf("%w: pgm sample %q", ErrFormat, tok)
			}
			row[c] = v
		}
	}
	return nil
}

func readRaw(br *bufio.Reader, grid [][]int, maxVal int) error {
	width := 1
	if maxVal > 255 {
		width = 2
	}
	buf := make([]byte, len(grid[0])*width)
	for _, row := range grid {
		if _, err := io.ReadFull(br, buf); err != nil {
			return fmt.Errorf("%w: pgm raster truncated: %v", ErrFormat, err)
		}
		for c := range row {
			if width == 1 {
				row[c] = int(buf[c])
			} else {
				row[c] = int(buf[2*c])<<8 | int(buf[2*c+1])
			}
		}
	}
	return nil
}

// pgmToken returns the next whitespace-delimited header or P2 token,
// skipping '#' comments. After a token exactly one whitespace byte has been
// consumed, which is where a P5 raster begins.
func pgmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", fmt.Errorf("%w: pgm: unexpected end of data", ErrFormat)
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: pgm: unexpected end of data", ErrFormat)
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

// WritePGM writes a plain (P2) graymap. maxval is 255 unless a sample
// exceeds it.
func WritePGM(w io.Writer, grid [][]int) error {
	rows, cols, err := dims(grid)
	if err != nil {
		return err
	}
	maxVal := 255
	for _, row := range grid {
		for _, v := range row {
			if v < 0 || v > 65535 {
				return fmt.Errorf("%w: pgm sample %d out of range", ErrFormat, v)
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P2\n%d %d\n%d\n", cols, rows, maxVal)
	if err := WriteText(bw, grid); err != nil {
		return err
	}
	return bw.Flush()
}
