package capacitor

import (
	"regexp"
	"strconv"
	"strings"
)

// unitScalePF converts a unit letter to picofarads.
var unitScalePF = map[string]float64{"P": 1, "N": 1e3, "U": 1e6}

// normalizeMarking folds the micro sign variants to "U" and uppercases the
// marking so the grammars only deal with one alphabet.
func normalizeMarking(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("µ", "u", "μ", "u").Replace(s)

	return strings.ToUpper(s)
}

// EIA 3-digit: two significant digits and a power-of-ten multiplier in
// picofarads, optionally followed by a tolerance letter and/or a 2-3 digit
// voltage code ("473", "473K", "473K100", "473100").
var eiaPattern = regexp.MustCompile(`^([0-9]{2})([0-9])([A-Z]?)([0-9]{2,3})?$`)

func parseEIA(s string) (Value, bool, error) {
	match := eiaPattern.FindStringSubmatch(s)
	if match == nil {
		return Value{}, false, nil
	}

	significand, _ := strconv.Atoi(match[1])
	exponent, _ := strconv.Atoi(match[2])

	tol, err := toleranceFor(match[3])
	if err != nil {
		return Value{}, false, err
	}

	voltage := parseVoltage(match[4])

	picofarads := float64(significand)
	for range exponent {
		picofarads *= 10
	}

	return newValue(picofarads, tol, voltage, false), true, nil
}

// Alphanumeric: magnitude with a trailing unit letter ("47n", "0.047uF",
// "47nK100"). The optional F, tolerance letter and voltage code follow the
// unit with no separators.
var alphanumericPattern = regexp.MustCompile(`^([0-9]*\.?[0-9]+)([PNU])F?([A-Z]?)([0-9]{2,3})?$`)

func parseAlphanumeric(s string) (Value, bool, error) {
	match := alphanumericPattern.FindStringSubmatch(s)
	if match == nil {
		return Value{}, false, nil
	}

	magnitude, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return Value{}, false, nil
	}

	tol, err := toleranceFor(match[3])
	if err != nil {
		return Value{}, false, err
	}

	return newValue(magnitude*unitScalePF[match[2]], tol, parseVoltage(match[4]), false), true, nil
}

// R-decimal: the unit letter sits mid-digits as the decimal separator
// ("4n7", "2u2", "1n5K100").
var rDecimalPattern = regexp.MustCompile(`^([0-9]+)([PNU])([0-9]+)F?([A-Z]?)([0-9]{2,3})?$`)

func parseRDecimal(s string) (Value, bool, error) {
	match := rDecimalPattern.FindStringSubmatch(s)
	if match == nil {
		return Value{}, false, nil
	}

	magnitude, err := strconv.ParseFloat(match[1]+"."+match[3], 64)
	if err != nil {
		return Value{}, false, nil
	}

	tol, err := toleranceFor(match[4])
	if err != nil {
		return Value{}, false, err
	}

	return newValue(magnitude*unitScalePF[match[2]], tol, parseVoltage(match[5]), false), true, nil
}

// Electrolytic: explicit unit and explicit voltage rating separated by a
// space or slash ("47uF 25V", "100uF/16V"). Always polarized.
var electrolyticPattern = regexp.MustCompile(`^([0-9]*\.?[0-9]+)([PNU])F[ /]([0-9]{1,4})V?$`)

func parseElectrolytic(s string) (Value, bool, error) {
	match := electrolyticPattern.FindStringSubmatch(s)
	if match == nil {
		return Value{}, false, nil
	}

	magnitude, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return Value{}, false, nil
	}

	return newValue(magnitude*unitScalePF[match[2]], 0, parseVoltage(match[3]), true), true, nil
}

func parseVoltage(s string) int {
	if s == "" {
		return 0
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return v
}
