package gradient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tables := []struct {
		s    string
		mode Mode
	}{
		{"", ModeAuto},
		{"a", ModeAuto},
		{"single", ModeSingle},
		{"S", ModeSingle},
		{"d", ModeDouble},
		{"big", ModeBig},
		{"c", ModeCGRAM},
		{"cgram", ModeCGRAM},
	}

	for _, table := range tables {
		mode, err := ParseMode(table.s)
		assert.Nil(t, err)
		assert.Equal(t, table.mode, mode)
	}

	_, err := ParseMode("triple")
	assert.NotNil(t, err)
}

func TestModeResolve(t *testing.T) {
	assert.Equal(t, ModeDouble, ModeAuto.resolve(MaxScanlines))
	assert.Equal(t, ModeBig, ModeAuto.resolve(MaxScanlines+1))
	assert.Equal(t, ModeCGRAM, ModeCGRAM.resolve(1000))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("bin")
	assert.Nil(t, err)
	assert.Equal(t, FormatBinary, f)
	assert.Equal(t, ".bin", f.Ext())

	f, err = ParseFormat("asm")
	assert.Nil(t, err)
	assert.Equal(t, ".asm", f.Ext())

	_, err = ParseFormat("hex")
	assert.NotNil(t, err)
}
