// Package resistor converts between resistor color-band sequences and
// canonical ohm values, validates values against the IEC preferred-value
// series and formats values for humans.
package resistor

import (
	"errors"
	"fmt"
	"strings"
)

// Color is a canonical band color name. Decoding accepts the common
// alternate spellings "purple" (violet) and "gray" (grey).
type Color string

const (
	Black  Color = "black"
	Brown  Color = "brown"
	Red    Color = "red"
	Orange Color = "orange"
	Yellow Color = "yellow"
	Green  Color = "green"
	Blue   Color = "blue"
	Violet Color = "violet"
	Grey   Color = "grey"
	White  Color = "white"
	Gold   Color = "gold"
	Silver Color = "silver"
	// None marks an absent tolerance band (20%).
	None Color = "none"
)

// ErrUnknownColor reports a band name outside the color code.
var ErrUnknownColor = errors.New("unknown band color")

// ErrBandCount reports a sequence that is neither 4 nor 5 bands.
var ErrBandCount = errors.New("unsupported band count")

// ErrOutOfRange reports an ohm value no band combination can express.
var ErrOutOfRange = errors.New("value out of encodable range")

// ErrNoToleranceColor reports a tolerance percentage with no band color.
var ErrNoToleranceColor = errors.New("no color for tolerance")

var digitByColor = map[Color]int{
	Black: 0, Brown: 1, Red: 2, Orange: 3, Yellow: 4,
	Green: 5, Blue: 6, Violet: 7, Grey: 8, White: 9,
}

// multiplierExp maps multiplier band colors to the power of ten they apply.
// Gold and silver extend the range below ten ohms.
var multiplierExp = map[Color]int{
	Black: 0, Brown: 1, Red: 2, Orange: 3, Yellow: 4,
	Green: 5, Blue: 6, Violet: 7, Grey: 8, White: 9,
	Gold: -1, Silver: -2,
}

var toleranceByColor = map[Color]float64{
	Brown:  1,
	Red:    2,
	Gold:   5,
	Silver: 10,
	None:   20,
}

var colorAliases = map[string]Color{
	"purple": Violet,
	"gray":   Grey,
}

// normalizeColor folds case and alternate spellings into a canonical Color.
func normalizeColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorAliases[name]; ok {
		return c, nil
	}

	c := Color(name)
	if _, ok := digitByColor[c]; ok {
		return c, nil
	}

	if c == Gold || c == Silver || c == None {
		return c, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Value is a decoded resistor: canonical magnitude, tolerance and the
// preferred-series advisory.
type Value struct {
	Ohms      float64
	Tolerance float64 // percent
	Series    SeriesCheck
}

// Decode converts a 4-band (two digits, multiplier, tolerance) or 5-band
// (three digits, multiplier, tolerance) sequence to a canonical value. A
// tolerance band of "none" means the historical 20% default. Any other
// band count or color is rejected.
func Decode(bands []string) (Value, error) {
	if len(bands) != 4 && len(bands) != 5 {
		return Value{}, fmt.Errorf("%w: got %d bands, want 4 or 5", ErrBandCount, len(bands))
	}

	colors := make([]Color, 0, len(bands))

	for _, b := range bands {
		c, err := normalizeColor(b)
		if err != nil {
			return Value{}, err
		}

		colors = append(colors, c)
	}

	digitCount := len(colors) - 2

	mantissa := 0
	for i, c := range colors[:digitCount] {
		d, ok := digitByColor[c]
		if !ok {
			return Value{}, fmt.Errorf("%w: %q is not a digit color (band %d)", ErrUnknownColor, c, i+1)
		}

		mantissa = mantissa*10 + d
	}

	exp, ok := multiplierExp[colors[digitCount]]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q is not a multiplier color", ErrUnknownColor, colors[digitCount])
	}

	tol, ok := toleranceByColor[colors[digitCount+1]]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q is not a tolerance color", ErrUnknownColor, colors[digitCount+1])
	}

	ohms := float64(mantissa) * pow10(exp)

	return Value{Ohms: ohms, Tolerance: tol, Series: CheckSeries(ohms)}, nil
}

// Encoding is the result of encoding one ohm value: both standard band
// representations plus the preferred-series advisory.
type Encoding struct {
	FiveBand []Color
	FourBand []Color
	Series   SeriesCheck
}

// Encode produces the 5-band and 4-band representations of an ohm value.
// Tolerance must be one of the exactly representable percentages
// (1, 2, 5, 10, 20); 20% encodes as an absent ("none") tolerance band.
func Encode(ohms, tolerance float64) (Encoding, error) {
	if ohms <= 0 {
		return Encoding{}, fmt.Errorf("%w: %g ohms", ErrOutOfRange, ohms)
	}

	tolColor, err := toleranceColor(tolerance)
	if err != nil {
		return Encoding{}, err
	}

	five, err := encodeBands(ohms, 3, tolColor)
	if err != nil {
		return Encoding{}, err
	}

	four, err := encodeBands(ohms, 2, tolColor)
	if err != nil {
		return Encoding{}, err
	}

	return Encoding{FiveBand: five, FourBand: four, Series: CheckSeries(ohms)}, nil
}

// encodeBands scales ohms so the mantissa carries digitCount significant
// digits, then emits digit bands, multiplier band and tolerance band.
func encodeBands(ohms float64, digitCount int, tol Color) ([]Color, error) {
	lo := 1
	for range digitCount - 1 {
		lo *= 10
	}
	hi := lo*10 - 1

	// The mantissa must land in [10^(n-1), 10^n-1] after rounding.
	exp := -2 - (digitCount - 1)
	mantissa := 0

	for ; exp <= 9; exp++ {
		m := int(ohms/pow10(exp) + 0.5)
		if m >= lo && m <= hi {
			mantissa = m
			break
		}
	}

	if mantissa == 0 {
		return nil, fmt.Errorf("%w: %g ohms does not fit %d digit bands", ErrOutOfRange, ohms, digitCount)
	}

	multColor, err := multiplierColor(exp)
	if err != nil {
		return nil, fmt.Errorf("%w: %g ohms needs multiplier 10^%d", ErrOutOfRange, ohms, exp)
	}

	digits := make([]int, digitCount)
	for i := digitCount - 1; i >= 0; i-- {
		digits[i] = mantissa % 10
		mantissa /= 10
	}

	bands := make([]Color, 0, digitCount+2)
	for _, d := range digits {
		bands = append(bands, colorForDigit(d))
	}

	return append(bands, multColor, tol), nil
}

func colorForDigit(d int) Color {
	order := []Color{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White}

	return order[d]
}

func multiplierColor(exp int) (Color, error) {
	for c, e := range multiplierExp {
		if e == exp {
			return c, nil
		}
	}

	return "", ErrOutOfRange
}

func toleranceColor(percent float64) (Color, error) {
	for c, p := range toleranceByColor {
		if p == percent {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %g%% (supported: 1, 2, 5, 10, 20)", ErrNoToleranceColor, percent)
}

func pow10(exp int) float64 {
	v := 1.0

	for range max(exp, -exp) {
		if exp > 0 {
			v *= 10
		} else {
			v /= 10
		}
	}

	return v
}
