package model

// PlacementKind tags the variant of a Placement.
type PlacementKind string

const (
	// PlacementTwoTerminal covers resistors, capacitors, diodes and LEDs:
	// a start and end hole in the same column section.
	PlacementTwoTerminal PlacementKind = "two-terminal"
	// PlacementDIP covers ICs and op-amps straddling the center gap.
	PlacementDIP PlacementKind = "dip"
	// PlacementJumper is a power-rail jumper wire.
	PlacementJumper PlacementKind = "jumper"
)

// JumperColor identifies the supply polarity a jumper carries.
type JumperColor string

const (
	// JumperRed feeds the positive supply.
	JumperRed JumperColor = "red"
	// JumperBlack feeds ground.
	JumperBlack JumperColor = "black"
)

// Placement assigns one component instance (or jumper) to concrete holes.
// The populated fields depend on Kind; Label is the reference designator
// exactly as supplied in the BOM (jumpers carry generated labels).
type Placement struct {
	Kind  PlacementKind `json:"kind"`
	Label string        `json:"label"`
	Type  ComponentType `json:"type,omitempty"`

	Start HoleID `json:"start"`
	End   HoleID `json:"end"`

	// PinCount is set for DIP placements only. Start is pin 1 (row e),
	// End is its mirror across the center gap (row f).
	PinCount int `json:"pin_count,omitempty"`

	// Color is set for jumper placements only.
	Color JumperColor `json:"color,omitempty"`
}

// InstanceFailure records one component instance the allocator could not
// place. Failures never abort the rest of the BOM.
type InstanceFailure struct {
	Label  string `json:"label"`
	Reason string `json:"reason"`
}

// Allocation is the result of placing one BOM onto one board.
type Allocation struct {
	Board      BoardSize         `json:"board"`
	Placements []Placement       `json:"placements"`
	Failures   []InstanceFailure `json:"failures,omitempty"`
	// Notes carries observable non-fatal events, such as an unknown IC
	// marking falling back to the default pin count.
	Notes []string `json:"notes,omitempty"`
}
