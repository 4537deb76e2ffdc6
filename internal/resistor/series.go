package resistor

import "math"

// SeriesCheck is the advisory result of testing a value against the IEC
// preferred-value series. When the value is off-series, Nearest holds the
// closest E96 value.
type SeriesCheck struct {
	OnSeries bool
	Series   string  // coarsest series containing the value, or "E96"
	Nearest  float64 // closest standard value when OnSeries is false
}

// E12 and E24 use the published preferred values, which deviate from the
// pure logarithmic grid. E48 and E96 follow the grid rounded to three
// significant figures.
var (
	e12 = []float64{1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2}
	e24 = []float64{
		1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0, 2.2, 2.4, 2.7, 3.0,
		3.3, 3.6, 3.9, 4.3, 4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
	}
	e48 = logSeries(48)
	e96 = logSeries(96)
)

func logSeries(n int) []float64 {
	values := make([]float64, n)
	for i := range n {
		v := math.Pow(10, float64(i)/float64(n))
		values[i] = math.Round(v*100) / 100
	}

	return values
}

const seriesEpsilon = 1e-6

// CheckSeries reports whether ohms lies on a standard series, checking the
// coarsest first. Off-series values get the nearest E96 value. Non-positive
// values are trivially off-series with no nearest.
func CheckSeries(ohms float64) SeriesCheck {
	if ohms <= 0 || math.IsInf(ohms, 0) || math.IsNaN(ohms) {
		return SeriesCheck{Series: "E96"}
	}

	mantissa, _ := splitDecade(ohms)

	for _, s := range []struct {
		name   string
		values []float64
	}{
		{"E12", e12},
		{"E24", e24},
		{"E48", e48},
		{"E96", e96},
	} {
		for _, v := range s.values {
			if math.Abs(mantissa-v) <= v*seriesEpsilon {
				return SeriesCheck{OnSeries: true, Series: s.name}
			}
		}
	}

	return SeriesCheck{Series: "E96", Nearest: nearestE96(ohms)}
}

// splitDecade normalizes ohms to a mantissa in [1, 10) and its decade.
func splitDecade(ohms float64) (float64, int) {
	decade := int(math.Floor(math.Log10(ohms)))
	mantissa := ohms / math.Pow(10, float64(decade))

	// Guard the float boundary where e.g. 0.999...e1 lands at 10.
	if mantissa >= 10 {
		mantissa /= 10
		decade++
	}

	return mantissa, decade
}

// nearestE96 scans the E96 values of the surrounding decades for the
// closest standard value in ohms.
func nearestE96(ohms float64) float64 {
	_, decade := splitDecade(ohms)

	best := 0.0
	bestDiff := math.Inf(1)

	for _, d := range []int{decade - 1, decade, decade + 1} {
		scale := math.Pow(10, float64(d))
		for _, v := range e96 {
			candidate := v * scale
			if diff := math.Abs(ohms - candidate); diff < bestDiff {
				best, bestDiff = candidate, diff
			}
		}
	}

	return best
}
