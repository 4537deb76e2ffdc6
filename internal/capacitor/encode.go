package capacitor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit names the customary capacitance units accepted by Encode.
type Unit string

const (
	UnitPF Unit = "pF"
	UnitNF Unit = "nF"
	UnitUF Unit = "uF"
)

var scaleByUnit = map[Unit]float64{UnitPF: 1, UnitNF: 1e3, UnitUF: 1e6}

// Encoding carries the two marking forms produced for one value.
type Encoding struct {
	EIA          string
	Alphanumeric string
}

// Encode renders a capacitance as both an EIA 3-digit code and an
// alphanumeric marking. Tolerance (percent) and voltage are appended using
// the same letter and digit tables the decoder reads, so decoding an
// encoded marking reproduces them exactly. The EIA form carries two
// significant digits; values it cannot express reject with ErrOutOfRange.
func Encode(magnitude float64, unit Unit, tolerance float64, voltage int) (Encoding, error) {
	scale, ok := scaleByUnit[unit]
	if !ok {
		return Encoding{}, fmt.Errorf("%w: unknown unit %q", ErrOutOfRange, unit)
	}

	if magnitude <= 0 {
		return Encoding{}, fmt.Errorf("%w: %g%s", ErrOutOfRange, magnitude, unit)
	}

	picofarads := magnitude * scale

	letter, err := toleranceLetter(tolerance)
	if err != nil {
		return Encoding{}, err
	}

	eia, err := encodeEIA(picofarads, letter, voltage)
	if err != nil {
		return Encoding{}, err
	}

	return Encoding{
		EIA:          eia,
		Alphanumeric: encodeAlphanumeric(picofarads, letter, voltage),
	}, nil
}

func encodeEIA(picofarads float64, tolLetter string, voltage int) (string, error) {
	if voltage < 0 || voltage > 999 {
		return "", fmt.Errorf("%w: voltage %dV does not fit the 2-3 digit code", ErrOutOfRange, voltage)
	}

	exponent := 0
	significand := 0

	for ; exponent <= 9; exponent++ {
		scale := 1.0
		for range exponent {
			scale *= 10
		}

		m := int(picofarads/scale + 0.5)
		if m >= 10 && m <= 99 {
			significand = m
			break
		}
	}

	if significand == 0 {
		return "", fmt.Errorf("%w: %gpF does not fit the EIA 3-digit form", ErrOutOfRange, picofarads)
	}

	code := fmt.Sprintf("%02d%d%s", significand, exponent, tolLetter)
	if voltage > 0 {
		code += fmt.Sprintf("%02d", voltage)
	}

	return code, nil
}

func encodeAlphanumeric(picofarads float64, tolLetter string, voltage int) string {
	letter := "p"
	scale := 1.0

	switch {
	case picofarads >= 1e6:
		letter, scale = "u", 1e6
	case picofarads >= 1e3:
		letter, scale = "n", 1e3
	}

	// Snap away float artifacts (0.047*1e6 is not exactly 47000) before
	// rendering, so markings never carry stray digits.
	scaled := math.Round(picofarads/scale*1e6) / 1e6
	magnitude := strconv.FormatFloat(scaled, 'f', -1, 64)

	var marking string
	if strings.Contains(magnitude, ".") {
		// Fractional values take the R-decimal form: 4.7n -> 4n7.
		marking = strings.Replace(magnitude, ".", letter, 1)
	} else {
		marking = magnitude + letter
	}

	marking += tolLetter
	if voltage > 0 {
		marking += fmt.Sprintf("%02d", voltage)
	}

	return marking
}

// toleranceLetter reverses the EIA tolerance table. Zero means "none";
// any other percentage must match the table exactly.
func toleranceLetter(percent float64) (string, error) {
	if percent == 0 {
		return "", nil
	}

	for letter, p := range toleranceByLetter {
		if p == percent {
			return string(letter), nil
		}
	}

	return "", fmt.Errorf("%w: no tolerance letter for %g%%", ErrUnknownTolerance, percent)
}
