package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/drakos74/free-som/internal/som"
	"gonum.org/v1/gonum/floats"
)

// Empty is the color of cells without a label.
var Empty = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Palette holds the colors of the labels, cycled when there are more labels than colors.
var Palette = []color.RGBA{
	{R: 51, G: 102, B: 204, A: 255},
	{R: 102, G: 170, B: 68, A: 255},
	{R: 170, G: 119, B: 68, A: 255},
	{R: 204, G: 68, B: 136, A: 255},
	{R: 238, G: 204, B: 68, A: 255},
	{R: 102, G: 204, B: 204, A: 255},
}

// Heatmap writes the matrix as a grayscale png, each cell being a scale x scale square.
// Low values are dark, so clusters show up as dark regions.
func Heatmap(w io.Writer, m [][]float64, scale int) error {
	rows, cols, err := shape(len(m), func(i int) int { return len(m[i]) }, scale)
	if err != nil {
		return err
	}
	min, max := bounds(m)
	img := image.NewGray(image.Rect(0, 0, cols*scale, rows*scale))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var y uint8
			if max > min {
				y = uint8(255 * (m[i][j] - min) / (max - min))
			}
			fill(img, i, j, scale, color.Gray{Y: y})
		}
	}
	return png.Encode(w, img)
}

// LabelImage writes the label map as a png with one color per label.
func LabelImage(w io.Writer, labels [][]int, scale int) error {
	rows, cols, err := shape(len(labels), func(i int) int { return len(labels[i]) }, scale)
	if err != nil {
		return err
	}
	img := image.NewRGBA(image.Rect(0, 0, cols*scale, rows*scale))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fill(img, i, j, scale, Color(labels[i][j]))
		}
	}
	return png.Encode(w, img)
}

// Color returns the color for the given label.
func Color(label int) color.RGBA {
	if label == som.NoLabel || label < 0 {
		return Empty
	}
	return Palette[label%len(Palette)]
}

type setter interface {
	Set(x, y int, c color.Color)
}

func fill(img setter, row, col, scale int, c color.Color) {
	for y := row * scale; y < (row+1)*scale; y++ {
		for x := col * scale; x < (col+1)*scale; x++ {
			img.Set(x, y, c)
		}
	}
}

func shape(rows int, cols func(i int) int, scale int) (int, int, error) {
	if scale < 1 {
		return 0, 0, fmt.Errorf("invalid scale %d", scale)
	}
	if rows == 0 || cols(0) == 0 {
		return 0, 0, fmt.Errorf("nothing to render [%d x 0]", rows)
	}
	c := cols(0)
	for i := 1; i < rows; i++ {
		if cols(i) != c {
			return 0, 0, fmt.Errorf("row %d has %d columns instead of %d", i, cols(i), c)
		}
	}
	return rows, c, nil
}

func bounds(m [][]float64) (float64, float64) {
	min, max := floats.Min(m[0]), floats.Max(m[0])
	for _, row := range m[1:] {
		if v := floats.Min(row); v < min {
			min = v
		}
		if v := floats.Max(row); v > max {
			max = v
		}
	}
	return min, max
}
