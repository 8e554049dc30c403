package gradient

import (
	"image/color"
	"sort"

	"github.com/bodgit/gradient/hdma"
	"github.com/bodgit/gradient/snes"
)

const pseudoTableMax = 0xff

func tableName(channels ...snes.Channel) string {
	name := ""
	for _, c := range channels {
		name += c.String() + "_"
	}
	return name + "table"
}

// fixedColourTables returns one table per channel
func fixedColourTables(colours []color.RGBA) []*hdma.Table {
	tables := make([]*hdma.Table, len(snes.Channels))
	for i, c := range snes.Channels {
		tables[i] = hdma.NewRealTable(1, hdma.Bytes, tableName(c))
	}

	for _, rgb := range colours {
		for i, c := range snes.Channels {
			tables[i].Push(hdma.NewScanline([]byte{snes.FixedColour(rgb, c)}))
		}
	}

	return tables
}

// colourChanges returns how many runs of the same fixed colour value each
// channel has
func colourChanges(colours []color.RGBA) [len(snes.Channels)]int {
	var changes [len(snes.Channels)]int
	for i, c := range snes.Channels {
		for j, rgb := range colours {
			if j == 0 || snes.FixedColour(rgb, c) != snes.FixedColour(colours[j-1], c) {
				changes[i]++
			}
		}
	}
	return changes
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// singleChannel picks the channel written on its own. The two channels with
// the closest number of changes share a table as neither then wastes many
// rows repeating a value while the other changes.
func singleChannel(colours []color.RGBA) snes.Channel {
	changes := colourChanges(colours)

	order := snes.Channels
	sort.SliceStable(order[:], func(i, j int) bool {
		return changes[order[i]] < changes[order[j]]
	})

	c0, c1, c2 := changes[order[0]], changes[order[1]], changes[order[2]]
	if abs(c0-c1) > abs(c1-c2) {
		return order[0]
	}
	return order[2]
}

// dualTables returns a single channel table and a table of the other two
// channels
func dualTables(colours []color.RGBA) []*hdma.Table {
	single := singleChannel(colours)

	var dual []snes.Channel
	for _, c := range snes.Channels {
		if c != single {
			dual = append(dual, c)
		}
	}

	singleTable := hdma.NewRealTable(1, hdma.Bytes, tableName(single))
	dualTable := hdma.NewRealTable(2, hdma.Bytes, tableName(dual...))

	for _, rgb := range colours {
		singleTable.Push(hdma.NewScanline([]byte{snes.FixedColour(rgb, single)}))
		dualTable.Push(hdma.NewScanline([]byte{snes.FixedColour(rgb, dual[0]), snes.FixedColour(rgb, dual[1])}))
	}

	return []*hdma.Table{singleTable, dualTable}
}

// bigTable returns a pseudo-table holding all three channels
func bigTable(colours []color.RGBA) *hdma.Table {
	t := hdma.New(len(snes.Channels), hdma.Bytes, "gradient_table", pseudoTableMax)
	for _, rgb := range colours {
		var b []byte
		for _, c := range snes.Channels {
			b = append(b, snes.FixedColour(rgb, c))
		}
		t.Push(hdma.NewScanline(b))
	}
	return t
}

// cgramTable returns a table of CG-RAM colours, prefixed with the CG-RAM
// index if index is not negative
func cgramTable(colours []color.RGBA, index int) *hdma.Table {
	size := 2
	if index >= 0 {
		size = 4
	}

	t := hdma.NewRealTable(size, hdma.Words, "colour_table")
	for _, rgb := range colours {
		if index >= 0 {
			t.Push(hdma.NewScanline(snes.CGRAMIndexBytes(rgb, byte(index))))
		} else {
			t.Push(hdma.NewScanline(snes.CGRAMBytes(rgb)))
		}
	}
	return t
}
