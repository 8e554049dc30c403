/*
Package sample reads the column of pixels a gradient is ripped from.

The column is resampled to the requested output height using the nearest
source row so that a short strip can be stretched over a full screen and a
tall one squeezed into it. The sampled colours can optionally be reduced to a
smaller palette first which trades accuracy for shorter tables.
*/
package sample

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	"github.com/ericpauley/go-quantize/quantize"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

var (
	errColumn = errors.New("sample: column outside of the image")
	errRange  = errors.New("sample: rows outside of the image")
	errHeight = errors.New("sample: output height must be positive")
)

// Load decodes the image in file and returns it along with the SHA1 of the
// file contents.
func Load(file string) (image.Image, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	return Decode(f)
}

// Decode decodes an image from r and returns it along with the SHA1 of the
// bytes read.
func Decode(r io.Reader) (image.Image, string, error) {
	h := sha1.New()
	m, _, err := image.Decode(io.TeeReader(r, h))
	if err != nil {
		return nil, "", err
	}
	// Consume any trailing bytes the decoder left so the hash covers the file
	if _, err := io.Copy(h, r); err != nil {
		return nil, "", err
	}
	return m, fmt.Sprintf("%X", h.Sum(nil)), nil
}

func toRGBA(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{n.R, n.G, n.B, 0xff}
}

// Column returns height colours taken from column x of m between rows start
// (inclusive) and end (exclusive). Coordinates are relative to the top-left
// corner of the image bounds.
func Column(m image.Image, x, start, end, height int) ([]color.RGBA, error) {
	b := m.Bounds()
	if x < 0 || x >= b.Dx() {
		return nil, errColumn
	}
	if start < 0 || end > b.Dy() || start >= end {
		return nil, errRange
	}
	if height < 1 {
		return nil, errHeight
	}

	span := end - start
	colours := make([]color.RGBA, height)
	for i := range colours {
		// Nearest source row, halves go to the lower row
		y := start + (2*i*span+height)/(2*height)
		if y >= end {
			y = end - 1
		}
		colours[i] = toRGBA(m.At(b.Min.X+x, b.Min.Y+y))
	}
	return colours, nil
}

// Reduce maps colours onto a palette of at most n colours chosen by median
// cut. Colours are returned unchanged if there are already n or fewer.
func Reduce(colours []color.RGBA, n int) []color.RGBA {
	unique := make(map[color.RGBA]struct{})
	for _, c := range colours {
		unique[c] = struct{}{}
	}
	if n < 1 || len(unique) <= n {
		return colours
	}

	// Lay the colours out as a one pixel wide strip
	b := image.Rect(0, 0, 1, len(colours))
	m := image.NewRGBA(b)
	for y, c := range colours {
		m.SetRGBA(0, y, c)
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	reduced := make([]color.RGBA, len(colours))
	for y := range reduced {
		reduced[y] = toRGBA(pm.At(0, y))
	}
	return reduced
}
