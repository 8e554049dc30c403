/*
Package hdma implements the SNES HDMA table model used to describe a
gradient, the coalescing pass that packs per-scanline values into repeat and
continuous rows, and the encoders that write the result as an assembly
listing or as raw bytes.

Each physical row starts with a line count byte. Values $01-$80 repeat the
following payload for that many scanlines, values $81-$FF are followed by
count-$80 payloads, one per scanline. A zero count byte ends the table.
Payloads are one to four bytes wide and are written either as individual
bytes or as little-endian words.
*/
package hdma

const (
	// MaxRepeat is the largest line count a repeat row of a real HDMA
	// table can hold
	MaxRepeat = 0x80
	// MaxContinuous is the largest number of scanlines a single physical
	// continuous row can hold
	MaxContinuous = 0x7f

	continuousBit = 0x80
	payloadSize   = 4
)

// WriteMode selects how each payload is written out
type WriteMode int

const (
	// Bytes writes each significant payload byte separately
	Bytes WriteMode = iota
	// Words writes the payload as one or two little-endian words
	Words
)

func (m WriteMode) String() string {
	switch m {
	case Bytes:
		return "bytes"
	case Words:
		return "words"
	}
	return ""
}

func checkSize(size int) {
	if size < 1 || size > payloadSize {
		panic("hdma: payload size outside of the range 1-4")
	}
}
