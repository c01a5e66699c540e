package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadText parses whitespace-separated integers, one row per line.
func ReadText(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		row := make([]int, len(fields))
		for i, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrFormat, line, tok)
			}
			row[i] = v
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: read text: %w", err)
	}
	if _, _, err := dims(grid); err != nil {
		return nil, err
	}
	return grid, nil
}

// WriteText writes one space-separated row per line.
func WriteText(w io.Writer, grid [][]int) error {
	if _, _, err := dims(grid); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, row := range grid {
		for c, v := range row {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
