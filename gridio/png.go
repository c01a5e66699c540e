package gridio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// ReadPNG decodes a PNG and returns its 8-bit luminance per pixel.
func ReadPNG(r io.Reader) ([][]int, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: png: %v", ErrFormat, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmpty
	}
	grid := make([][]int, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make([]int, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			row[x-b.Min.X] = int(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
		}
		grid[y-b.Min.Y] = row
	}
	return grid, nil
}

// WritePNG encodes grid as an 8-bit grayscale PNG. Samples are clamped to
// [0, 255].
func WritePNG(w io.Writer, grid [][]int) error {
	rows, cols, err := dims(grid)
	if err != nil {
		return err
	}
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for r, row := range grid {
		for c, v := range row {
			img.SetGray(c, r, color.Gray{Y: uint8(min(max(v, 0), 255))})
		}
	}
	return png.Encode(w, img)
}
