package model

// BoardSize selects one of the two canonical breadboard configurations.
type BoardSize string

const (
	// Board830 is the full-size 830-point breadboard (63 columns).
	Board830 BoardSize = "830"
	// Board400 is the half-size 400-point breadboard (30 columns).
	Board400 BoardSize = "400"
)

// HoleID is the textual form of a breadboard hole. Two grammars exist:
// terminal holes ("a15") and power-rail holes ("+10", "-3"). Consumers must
// treat the string as opaque and go through the grid package for geometry.
type HoleID string
