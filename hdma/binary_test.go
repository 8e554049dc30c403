package hdma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBinary(t *testing.T) {
	bytesTable := NewRealTable(2, Bytes, "red_green_table")
	bytesTable.Push(NewRepeat(3, []byte{0x21, 0x41}))
	bytesTable.Push(NewContinuous([]byte{0x22, 0x42, 0x23, 0x43}, 2))
	bytesTable.Push(Finish{})

	b, err := bytesTable.MarshalBinary()
	require.Nil(t, err)
	assert.Equal(t, []byte{0x03, 0x21, 0x41, 0x82, 0x22, 0x42, 0x23, 0x43, 0x00}, b)

	wordsTable := NewRealTable(4, Words, "colour_table")
	wordsTable.Push(NewRepeat(2, []byte{0x00, 0x05, 0x34, 0x12}))
	wordsTable.Push(Finish{})

	b, err = wordsTable.MarshalBinary()
	require.Nil(t, err)
	assert.Equal(t, []byte{0x02, 0x00, 0x05, 0x34, 0x12, 0x00}, b)
}

func TestDecode(t *testing.T) {
	table := NewRealTable(2, Words, "colour_table")
	for _, v := range []byte{1, 1, 1, 2, 3, 4, 4, 5} {
		table.Push(NewScanline([]byte{v, v + 0x10}))
	}
	table.Coagulate()

	b, err := table.MarshalBinary()
	require.Nil(t, err)

	scanlines, err := Decode(b, 2, Words, MaxRepeat)
	require.Nil(t, err)

	want := []Payload{{1, 0x11}, {1, 0x11}, {1, 0x11}, {2, 0x12}, {3, 0x13}, {4, 0x14}, {4, 0x14}, {5, 0x15}}
	assert.Equal(t, want, scanlines)
}

func TestDecodeExactMultiple(t *testing.T) {
	values := make([]byte, 0, MaxRepeat+2)
	for i := 0; i < MaxRepeat; i++ {
		values = append(values, 1)
	}
	values = append(values, 2, 3)

	table := scanlineTable(values...)
	table.Coagulate()
	assert.Equal(t, "test_table:\ndb $80,$01\ndb $00,$01\ndb $82,$02,$03\ndb $00\n", table.String())

	b, err := table.MarshalBinary()
	require.Nil(t, err)

	scanlines, err := Decode(b, 1, Bytes, MaxRepeat)
	require.Nil(t, err)
	require.Len(t, scanlines, len(values))
	for i, v := range values {
		assert.Equal(t, Payload{v}, scanlines[i])
	}

	// A zero line count with nothing after it is the terminator
	_, err = Decode([]byte{0x80, 0x01, 0x00, 0x01}, 1, Bytes, MaxRepeat)
	assert.Equal(t, errUnterminated, err)
}

func TestDecodePseudoTable(t *testing.T) {
	table := New(3, Bytes, "gradient_table", 0xff)
	table.Push(NewRepeat(300, []byte{1, 2, 3}))
	table.Push(NewRepeat(2, []byte{4, 5, 6}))
	table.CoagulateRepeat()

	b, err := table.MarshalBinary()
	require.Nil(t, err)
	assert.Equal(t, []byte{0xff, 1, 2, 3, 0x2d, 1, 2, 3, 0x02, 4, 5, 6, 0x00}, b)

	scanlines, err := Decode(b, 3, Bytes, 0xff)
	require.Nil(t, err)
	assert.Len(t, scanlines, 302)
	assert.Equal(t, Payload{4, 5, 6}, scanlines[301])
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte{0x02, 0x21}, 1, Bytes, MaxRepeat)
	assert.Equal(t, errUnterminated, err)

	_, err = Decode([]byte{0x83, 0x21, 0x22}, 1, Bytes, MaxRepeat)
	assert.Equal(t, errTruncated, err)

	_, err = Decode([]byte{0x01, 0x21}, 2, Words, MaxRepeat)
	assert.Equal(t, errTruncated, err)

	scanlines, err := Decode([]byte{0x00}, 1, Bytes, MaxRepeat)
	assert.Nil(t, err)
	assert.Empty(t, scanlines)
}
