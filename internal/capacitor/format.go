package capacitor

import (
	"math"
	"strconv"
)

// Format renders a capacitance in picofarads as a human string with the
// customary unit, e.g. 47000 -> "47nF", 2.2e6 -> "2.2µF", 100 -> "100pF".
func Format(picofarads float64) string {
	switch {
	case picofarads >= 1e6:
		return trimFloat(picofarads/1e6) + "µF"
	case picofarads >= 1e3:
		return trimFloat(picofarads/1e3) + "nF"
	default:
		return trimFloat(picofarads) + "pF"
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}
