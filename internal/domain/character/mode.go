package character

import (
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

// Mode is the creation track
type Mode string

const (
	// ModeZero creates a level 0 commoner with rolled attributes
	ModeZero Mode = "zero"
	// ModeTraditional creates a level 1-7 class character from an attribute array
	ModeTraditional Mode = "traditional"
)

const (
	MinTraditionalLevel = 1
	MaxLevel            = 7
)

// ValidateLevel checks the mode/level pairing
func ValidateLevel(mode Mode, level int) error {
	switch mode {
	case ModeZero:
		if level != 0 {
			return dnderr.InvalidArgumentf("zero mode characters are level 0, got %d", level)
		}
	case ModeTraditional:
		if level < MinTraditionalLevel || level > MaxLevel {
			return dnderr.InvalidArgumentf("traditional mode level must be between %d and %d, got %d",
				MinTraditionalLevel, MaxLevel, level)
		}
	default:
		return dnderr.InvalidArgumentf("unknown mode %q", mode)
	}
	return nil
}

// ArrayType names a fixed attribute array for traditional mode
type ArrayType string

const (
	ArrayChallenging ArrayType = "challenging"
	ArrayHeroic      ArrayType = "heroic"
)

var arrays = map[ArrayType][NumAttributes]int{
	ArrayChallenging: {2, 1, 1, 0, 0, -1, -2},
	ArrayHeroic:      {2, 2, 1, 0, 0, 0, -1},
}

// Values returns a fresh copy of the array, or nil for an unknown type
func (t ArrayType) Values() []int {
	values, ok := arrays[t]
	if !ok {
		return nil
	}
	return values[:]
}

// Valid reports whether t names a known array
func (t ArrayType) Valid() bool {
	_, ok := arrays[t]
	return ok
}

// SheetType is how the finished character is delivered
type SheetType string

const (
	SheetPDF          SheetType = "pdf"
	SheetGoogleSheets SheetType = "googlesheets"
	SheetXLSX         SheetType = "xlsx"
)

// Valid reports whether t is a supported sheet type
func (t SheetType) Valid() bool {
	switch t {
	case SheetPDF, SheetGoogleSheets, SheetXLSX:
		return true
	}
	return false
}
