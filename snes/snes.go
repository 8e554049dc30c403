/*
Package snes converts 24-bit RGB colours to the 15-bit colours used by the
SNES.

Each channel keeps the top five bits of its 8-bit value. Fixed colour writes
carry a single channel tagged with a bit selecting the channel, CG-RAM colours
pack all three channels into one word as 0BBBBBGGGGGRRRRR.
*/
package snes

import "image/color"

// Channel identifies one of the colour channels
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists every channel in RGB order
var Channels = [...]Channel{Red, Green, Blue}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return ""
}

// Bit returns the bit selecting the channel in a fixed colour write
func (c Channel) Bit() byte {
	switch c {
	case Red:
		return 0x20
	case Green:
		return 0x40
	case Blue:
		return 0x80
	}
	return 0
}

// Value returns the 8-bit value of channel c in rgb
func (c Channel) Value(rgb color.RGBA) byte {
	switch c {
	case Red:
		return rgb.R
	case Green:
		return rgb.G
	case Blue:
		return rgb.B
	}
	return 0
}

// To5Bit reduces an 8-bit channel value to five bits
func To5Bit(v byte) byte {
	return v >> 3
}

// FixedColour returns the fixed colour byte of channel c in rgb
func FixedColour(rgb color.RGBA, c Channel) byte {
	return To5Bit(c.Value(rgb)) | c.Bit()
}

// CGRAMColour returns rgb packed as a 15-bit CG-RAM colour
func CGRAMColour(rgb color.RGBA) uint16 {
	return uint16(To5Bit(rgb.R)) | uint16(To5Bit(rgb.G))<<5 | uint16(To5Bit(rgb.B))<<10
}

// CGRAMBytes returns the CG-RAM colour of rgb as low and high byte
func CGRAMBytes(rgb color.RGBA) []byte {
	c := CGRAMColour(rgb)
	return []byte{byte(c), byte(c >> 8)}
}

// CGRAMIndexBytes returns the four bytes written to set CG-RAM colour index
// to rgb: a zero byte, the index and then the colour.
func CGRAMIndexBytes(rgb color.RGBA, index byte) []byte {
	return append([]byte{0x00, index}, CGRAMBytes(rgb)...)
}
