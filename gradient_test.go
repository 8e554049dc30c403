package gradient

import (
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.New(ioutil.Discard, "", 0)
}

// columnImage returns a one pixel wide image with the given colours from top
// to bottom
func columnImage(colours ...color.RGBA) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, 1, len(colours)))
	for y, c := range colours {
		m.SetRGBA(0, y, c)
	}
	return m
}

func writePNG(t *testing.T, file string, m image.Image) {
	f, err := os.Create(file)
	require.Nil(t, err)
	defer f.Close()
	require.Nil(t, png.Encode(f, m))
}

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0x00, 0x00, 0x00, 0xff}
	red   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	blue  = color.RGBA{0x00, 0x00, 0xff, 0xff}
)

func testFile(t *testing.T, dir, name string, colours ...color.RGBA) string {
	file := filepath.Join(dir, name)
	writePNG(t, file, columnImage(colours...))
	return file
}
