// Package capacitor converts between capacitor marking notations and
// canonical farad values. Four marking dialects are recognized: EIA
// 3-digit codes, alphanumeric unit-letter forms, R-decimal forms and
// explicit electrolytic markings.
package capacitor

import (
	"errors"
	"fmt"
)

// Dielectric classifies the construction implied by a marking.
type Dielectric string

const (
	// Ceramic covers small non-polarized caps (below 1nF).
	Ceramic Dielectric = "ceramic"
	// Film covers mid-range non-polarized caps (1nF up to 1µF).
	Film Dielectric = "film"
	// Electrolytic covers polarized caps (1µF and up, or an explicit
	// electrolytic marking).
	Electrolytic Dielectric = "electrolytic"
)

// ErrNoGrammar reports a marking matching none of the four dialects.
var ErrNoGrammar = errors.New("unrecognized capacitor marking")

// ErrUnknownTolerance reports a tolerance letter outside the EIA table.
var ErrUnknownTolerance = errors.New("unknown tolerance letter")

// ErrOutOfRange reports a value the requested marking form cannot express.
var ErrOutOfRange = errors.New("value out of encodable range")

// toleranceByLetter is the EIA tolerance letter table, in percent.
var toleranceByLetter = map[byte]float64{
	'B': 0.1, 'C': 0.25, 'D': 0.5, 'F': 1, 'G': 2,
	'J': 5, 'K': 10, 'M': 20, 'Z': 80,
}

// Value is a decoded capacitor. The magnitude is carried in all three
// customary units at once so no consumer has to rescale and lose
// precision. Tolerance 0 and Voltage 0 mean "not specified".
type Value struct {
	Picofarads  float64
	Nanofarads  float64
	Microfarads float64
	Tolerance   float64 // percent
	Voltage     int     // volts
	Type        Dielectric
	Polarized   bool
}

// newValue builds a Value from a picofarad magnitude, classifying the
// dielectric by the documented thresholds unless the marking already
// settled polarity.
func newValue(picofarads float64, tolerance float64, voltage int, electrolytic bool) Value {
	v := Value{
		Picofarads:  picofarads,
		Nanofarads:  picofarads / 1e3,
		Microfarads: picofarads / 1e6,
		Tolerance:   tolerance,
		Voltage:     voltage,
	}

	switch {
	case electrolytic || picofarads >= 1e6:
		v.Type = Electrolytic
		v.Polarized = true
	case picofarads >= 1e3:
		v.Type = Film
	default:
		v.Type = Ceramic
	}

	return v
}

// Decode parses a marking against the four dialects in priority order:
// EIA 3-digit, alphanumeric, R-decimal, electrolytic. A marking matching
// none of them is rejected with the attempted grammars named.
func Decode(marking string) (Value, error) {
	s := normalizeMarking(marking)

	for _, parse := range []func(string) (Value, bool, error){
		parseEIA,
		parseAlphanumeric,
		parseRDecimal,
		parseElectrolytic,
	} {
		v, ok, err := parse(s)
		if err != nil {
			return Value{}, err
		}

		if ok {
			return v, nil
		}
	}

	return Value{}, fmt.Errorf("%w: %q (tried EIA 3-digit, alphanumeric, R-decimal, electrolytic)", ErrNoGrammar, marking)
}

func toleranceFor(letter string) (float64, error) {
	if letter == "" {
		return 0, nil
	}

	tol, ok := toleranceByLetter[letter[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTolerance, letter)
	}

	return tol, nil
}
