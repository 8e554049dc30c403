package hdma

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

var (
	errTruncated    = errors.New("hdma: table data truncated")
	errUnterminated = errors.New("hdma: table is not terminated")
)

func (t *Table) groupSize() int {
	if t.mode == Bytes {
		return t.size
	}
	if t.size <= 2 {
		return 2
	}
	return 4
}

// MarshalBinary returns the table as the bytes an assembler would produce
// from its listing
func (t *Table) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)

	if err := t.lines(func(l line) error {
		if err := b.WriteByte(l.count); err != nil {
			return err
		}
		for _, p := range l.data {
			switch t.mode {
			case Bytes:
				if _, err := b.Write(p[:t.size]); err != nil {
					return err
				}
			case Words:
				words := []uint16{uint16(p[1])<<8 | uint16(p[0]), uint16(p[3])<<8 | uint16(p[2])}
				if t.size <= 2 {
					words = words[:1]
				}
				if err := binary.Write(b, binary.LittleEndian, words); err != nil {
					return err
				}
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Decode reads the table bytes in b, as produced by MarshalBinary for a
// table with the same payload size, write mode and maximum line count, and
// returns the payload of every scanline in order. Line counts with the
// continuous bit set are only treated as continuous rows for real tables. A
// zero line count is only the end of the table if it is the final byte,
// otherwise it is a repeat row of no scanlines.
func Decode(b []byte, size int, mode WriteMode, max int) ([]Payload, error) {
	t := New(size, mode, "", max)
	group := t.groupSize()
	r := bytes.NewReader(b)

	readPayload := func() (Payload, error) {
		var p Payload
		if _, err := io.ReadFull(r, p[:group]); err != nil {
			return p, errTruncated
		}
		return p, nil
	}

	var scanlines []Payload
	for {
		count, err := r.ReadByte()
		if err != nil {
			return nil, errUnterminated
		}
		switch {
		case count == 0 && r.Len() == 0:
			return scanlines, nil
		case count > continuousBit && max <= MaxRepeat:
			for i := 0; i < int(count-continuousBit); i++ {
				p, err := readPayload()
				if err != nil {
					return nil, err
				}
				scanlines = append(scanlines, p)
			}
		default:
			p, err := readPayload()
			if err != nil {
				return nil, err
			}
			for i := 0; i < int(count); i++ {
				scanlines = append(scanlines, p)
			}
		}
	}
}
