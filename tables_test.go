package gradient

import (
	"image/color"
	"testing"

	"github.com/bodgit/gradient/snes"
	"github.com/stretchr/testify/assert"
)

func TestColourChanges(t *testing.T) {
	colours := []color.RGBA{
		{0x00, 0x00, 0x00, 0xff},
		{0x08, 0x00, 0x01, 0xff},
		{0x10, 0x00, 0x08, 0xff},
		{0x18, 0x00, 0x08, 0xff},
	}

	assert.Equal(t, [3]int{4, 1, 2}, colourChanges(colours))
	assert.Equal(t, [3]int{0, 0, 0}, colourChanges(nil))
}

func TestSingleChannel(t *testing.T) {
	tables := []struct {
		changes [3]int
		want    snes.Channel
	}{
		// Green and blue are closest
		{[3]int{1, 5, 6}, snes.Red},
		// Red and green are closest
		{[3]int{5, 6, 1}, snes.Blue},
		{[3]int{4, 1, 2}, snes.Red},
		{[3]int{3, 3, 3}, snes.Blue},
	}

	for _, table := range tables {
		var colours []color.RGBA
		max := 0
		for _, n := range table.changes {
			if n > max {
				max = n
			}
		}
		// Channel value changes every row until it has changed enough times
		for y := 0; y < max; y++ {
			var v [3]byte
			for i, n := range table.changes {
				if y < n {
					v[i] = byte(y << 3)
				} else {
					v[i] = byte((n - 1) << 3)
				}
			}
			colours = append(colours, color.RGBA{v[0], v[1], v[2], 0xff})
		}

		assert.Equal(t, table.changes, colourChanges(colours))
		assert.Equal(t, table.want, singleChannel(colours))
	}
}

func TestTableNames(t *testing.T) {
	colours := []color.RGBA{{0x00, 0x00, 0x00, 0xff}}

	tables := fixedColourTables(colours)
	assert.Len(t, tables, 3)
	assert.Equal(t, "red_table", tables[0].Name())
	assert.Equal(t, "green_table", tables[1].Name())
	assert.Equal(t, "blue_table", tables[2].Name())

	big := bigTable(colours)
	assert.Equal(t, "gradient_table", big.Name())
	assert.Equal(t, 3, big.Size())
	assert.Equal(t, 0xff, big.Max())

	assert.Equal(t, 2, cgramTable(colours, -1).Size())
	assert.Equal(t, 4, cgramTable(colours, 0).Size())
}
