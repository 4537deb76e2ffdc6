// Package model defines the data structures shared by the codecs and the
// placement allocator.
package model

import (
	"fmt"
	"strings"
)

// ComponentType represents the category of a BOM component.
type ComponentType string

const (
	// TypeResistor represents fixed resistors.
	TypeResistor ComponentType = "resistor"
	// TypeCapacitor represents capacitors of any construction.
	TypeCapacitor ComponentType = "capacitor"
	// TypeDiode represents diodes, including rectifiers and zeners.
	TypeDiode ComponentType = "diode"
	// TypeTransistor represents discrete transistors.
	TypeTransistor ComponentType = "transistor"
	// TypeIC represents integrated circuits and op-amps.
	TypeIC ComponentType = "ic"
	// TypeLED represents light-emitting diodes.
	TypeLED ComponentType = "led"
	// TypeSwitch represents toggle and slide switches.
	TypeSwitch ComponentType = "switch"
	// TypeJack represents audio and power jacks.
	TypeJack ComponentType = "jack"
	// TypeFootswitch represents stomp footswitches.
	TypeFootswitch ComponentType = "footswitch"
	// TypePotentiometer represents panel-mount potentiometers.
	TypePotentiometer ComponentType = "potentiometer"
	// TypeOther represents anything outside the fixed enumeration.
	TypeOther ComponentType = "other"
)

// componentTypeAliases maps common upstream spellings to canonical types.
var componentTypeAliases = map[string]ComponentType{
	"resistor":      TypeResistor,
	"capacitor":     TypeCapacitor,
	"cap":           TypeCapacitor,
	"diode":         TypeDiode,
	"transistor":    TypeTransistor,
	"ic":            TypeIC,
	"opamp":         TypeIC,
	"op-amp":        TypeIC,
	"led":           TypeLED,
	"switch":        TypeSwitch,
	"jack":          TypeJack,
	"footswitch":    TypeFootswitch,
	"potentiometer": TypePotentiometer,
	"pot":           TypePotentiometer,
	"other":         TypeOther,
}

// ParseComponentType normalizes an upstream type string to a ComponentType.
// Unrecognized strings map to TypeOther rather than failing: the upstream
// producer is an AI recognizer and its labels are not trusted.
func ParseComponentType(s string) ComponentType {
	if t, ok := componentTypeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t
	}

	return TypeOther
}

// Active reports whether the component type is an active device that needs
// a supply connection.
func (t ComponentType) Active() bool {
	return t == TypeIC || t == TypeTransistor
}

// ComponentSpec is one BOM entry: a component type, its marking string, and
// the reference designators that instantiate it.
type ComponentSpec struct {
	Type        ComponentType `json:"type"`
	Value       string        `json:"value"`
	Quantity    int           `json:"quantity"`
	Designators []string      `json:"designators"`
}

// Validate checks the structural invariant that each designator instantiates
// exactly one placement.
func (c ComponentSpec) Validate() error {
	if c.Quantity < 0 {
		return fmt.Errorf("negative quantity %d", c.Quantity)
	}

	if len(c.Designators) != c.Quantity {
		return fmt.Errorf("quantity %d does not match %d designators", c.Quantity, len(c.Designators))
	}

	return nil
}

// BOM is an ordered bill of materials. Order is significant: the allocator
// processes entries, and designators within an entry, in listed order.
type BOM struct {
	Entries []ComponentSpec `json:"entries"`
	Power   *PowerSpec      `json:"power,omitempty"`
}

// HasActiveDevice reports whether any entry is an IC or transistor.
func (b BOM) HasActiveDevice() bool {
	for _, e := range b.Entries {
		if e.Type.Active() {
			return true
		}
	}

	return false
}

// PowerSpec describes the supply the circuit expects.
type PowerSpec struct {
	Voltage  float64 `json:"voltage"`
	Polarity string  `json:"polarity"` // e.g. "center-negative"
}
