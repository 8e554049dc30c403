package hdma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRepeat(t *testing.T) {
	tables := []struct {
		count int
		data  []byte
		want  Repeat
	}{
		{1, []byte{0x21}, Repeat{1, Payload{0x21, 0, 0, 0}}},
		{3, []byte{0x21, 0x42}, Repeat{3, Payload{0x21, 0x42, 0, 0}}},
		{2, []byte{1, 2, 3, 4, 5, 6}, Repeat{2, Payload{1, 2, 3, 4}}},
		{1, nil, Repeat{1, Payload{}}},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, NewRepeat(table.count, table.data))
	}

	assert.Equal(t, Repeat{1, Payload{0x9f}}, NewScanline([]byte{0x9f}))
	assert.Panics(t, func() { NewRepeat(0, []byte{1}) })
}

func TestNewContinuous(t *testing.T) {
	tables := []struct {
		data []byte
		size int
		want []Payload
	}{
		{[]byte{1, 2, 3}, 1, []Payload{{1}, {2}, {3}}},
		{[]byte{1, 2, 3, 4}, 2, []Payload{{1, 2}, {3, 4}}},
		{[]byte{1, 2, 3, 4, 5}, 2, []Payload{{1, 2}, {3, 4}, {5}}},
		{[]byte{1, 2, 3, 4, 5, 6, 7}, 3, []Payload{{1, 2, 3}, {4, 5, 6}, {7}}},
		{[]byte{1, 2, 3, 4, 5, 6, 7, 8}, 4, []Payload{{1, 2, 3, 4}, {5, 6, 7, 8}}},
		{[]byte{}, 4, []Payload{}},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, NewContinuous(table.data, table.size).Data)
	}

	assert.Panics(t, func() { NewContinuous([]byte{1}, 0) })
	assert.Panics(t, func() { NewContinuous([]byte{1}, 5) })
}

func TestNew(t *testing.T) {
	assert.Panics(t, func() { New(0, Bytes, "t", 0xff) })
	assert.Panics(t, func() { New(5, Bytes, "t", 0xff) })
	assert.Panics(t, func() { NewRealTable(0, Words, "t") })
	assert.Panics(t, func() { New(1, Bytes, "t", 0) })

	table := NewRealTable(3, Words, "colour_table")
	assert.Equal(t, MaxRepeat, table.Max())
	assert.Equal(t, 3, table.Size())
	assert.Equal(t, Words, table.Mode())
	assert.Equal(t, "colour_table", table.Name())
	assert.Empty(t, table.Rows())
}
