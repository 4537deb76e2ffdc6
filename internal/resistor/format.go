package resistor

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Format renders an ohm value as a human string with a metric prefix,
// e.g. 10000 -> "10kΩ", 4700 -> "4.7kΩ", 1500000 -> "1.5MΩ".
func Format(ohms float64) string {
	switch {
	case ohms >= 1e6:
		return trimFloat(ohms/1e6) + "MΩ"
	case ohms >= 1e3:
		return trimFloat(ohms/1e3) + "kΩ"
	default:
		return trimFloat(ohms) + "Ω"
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ErrBadShorthand reports a value string matching no shorthand form.
var ErrBadShorthand = errors.New("unrecognized resistance shorthand")

var (
	// 4k7, 2M2, 470R: the prefix letter is the decimal separator.
	midLetterPattern = regexp.MustCompile(`^([0-9]+)([kmr])([0-9]*)$`)
	// 10k, 2.2M, 470, 0.5: optional trailing prefix letter.
	plainPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)([kmr]?)$`)
)

var prefixScale = map[string]float64{"": 1, "r": 1, "k": 1e3, "m": 1e6}

// ParseShorthand converts BOM resistance shorthand ("10k", "4k7", "1M",
// "470R", "2.2k") to ohms. "m"/"M" always means mega; pedal BOMs never
// carry milliohms. A trailing ohm sign or "ohm(s)" word is tolerated.
func ParseShorthand(s string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, suffix := range []string{"ohms", "ohm", "ω"} {
		v = strings.TrimSuffix(v, suffix)
	}
	v = strings.TrimSpace(v)

	if match := midLetterPattern.FindStringSubmatch(v); match != nil {
		whole := match[1]
		frac := match[3]

		num, err := strconv.ParseFloat(whole+"."+zeroIfEmpty(frac), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadShorthand, s)
		}

		return num * prefixScale[match[2]], nil
	}

	if match := plainPattern.FindStringSubmatch(v); match != nil {
		num, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadShorthand, s)
		}

		return num * prefixScale[match[2]], nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadShorthand, s)
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}

	return s
}
