package domain

import (
	"strings"

	m "github.com/solderless/breadboard/internal/model"
)

// spanByType is the lead-spacing table: how many columns a two-terminal
// component's leads straddle when placed.
var spanByType = map[m.ComponentType]int{
	m.TypeResistor:  3,
	m.TypeCapacitor: 2,
	m.TypeDiode:     3,
	m.TypeLED:       2,
}

// rowByType is the home row for each two-terminal type. All home rows sit
// in the a-e section; the wrap policy shifts within that section.
var rowByType = map[m.ComponentType]byte{
	m.TypeResistor:  'a',
	m.TypeCapacitor: 'c',
	m.TypeDiode:     'd',
	m.TypeLED:       'd',
}

// defaultPinCount is assumed for IC markings missing from the table.
const defaultPinCount = 8

// pinCountByMarking maps known device markings to their DIP pin count.
var pinCountByMarking = map[string]int{
	"TL071":   8,
	"TL072":   8,
	"TL074":   14,
	"NE5532":  8,
	"JRC4558": 8,
	"LM358":   8,
	"PT2399":  16,
}

// pinCountFor looks up a device marking, falling back to the 8-pin
// default. The second return reports whether the marking was recognized.
func pinCountFor(marking string) (int, bool) {
	key := strings.ToUpper(strings.TrimSpace(marking))
	if n, ok := pinCountByMarking[key]; ok {
		return n, true
	}

	return defaultPinCount, false
}
