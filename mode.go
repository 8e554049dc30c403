package gradient

import (
	"fmt"
	"strings"
)

// Mode selects which HDMA tables make up a gradient
type Mode int

const (
	// ModeAuto picks ModeBig for gradients taller than the screen and
	// ModeDouble otherwise
	ModeAuto Mode = iota
	// ModeSingle writes one fixed colour table per channel
	ModeSingle
	// ModeDouble writes one single channel and one dual channel table
	ModeDouble
	// ModeBig writes one pseudo-table with all three channels
	ModeBig
	// ModeCGRAM writes one table of CG-RAM colours
	ModeCGRAM
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeSingle:
		return "single"
	case ModeDouble:
		return "double"
	case ModeBig:
		return "big"
	case ModeCGRAM:
		return "cgram"
	}
	return ""
}

// ParseMode returns the mode named by s, either in full or by its first
// letter
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "a", "auto":
		return ModeAuto, nil
	case "s", "single":
		return ModeSingle, nil
	case "d", "double":
		return ModeDouble, nil
	case "b", "big":
		return ModeBig, nil
	case "c", "cgram":
		return ModeCGRAM, nil
	}
	return ModeAuto, fmt.Errorf("gradient: invalid mode %q", s)
}

func (m Mode) resolve(height int) Mode {
	if m != ModeAuto {
		return m
	}
	if height > MaxScanlines {
		return ModeBig
	}
	return ModeDouble
}

// Format selects how a gradient is written out
type Format int

const (
	// FormatASM writes an assembly listing
	FormatASM Format = iota
	// FormatBinary writes the assembled table bytes
	FormatBinary
)

// ParseFormat returns the format named by s
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "asm":
		return FormatASM, nil
	case "bin", "binary":
		return FormatBinary, nil
	}
	return FormatASM, fmt.Errorf("gradient: invalid format %q", s)
}

// Ext returns the file extension used for the format
func (f Format) Ext() string {
	if f == FormatBinary {
		return ".bin"
	}
	return ".asm"
}
