package tolerance

import "math"

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// MaxAbs returns the largest magnitude in xs, or 0 for an empty slice.
func MaxAbs(xs []float64) float64 {
	var m float64
	for _, x := range xs {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}

// SampleStdDev is the Bessel-corrected (N-1) standard deviation used by
// the metrological calculator. It needs at least two values.
func SampleStdDev(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, ErrInsufficientSample
	}
	return math.Sqrt(sumSq(xs) / float64(len(xs)-1)), nil
}

// PopulationStdDev is the uncorrected (N) standard deviation used by the
// normative calculator. The two calculators use different denominators
// on purpose; keep them distinct. Returns 0 for an empty slice.
func PopulationStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return math.Sqrt(sumSq(xs) / float64(len(xs)))
}

// sumSq is the sum of squared deviations from the mean.
func sumSq(xs []float64) float64 {
	mean := Mean(xs)
	var s float64
	for _, x := range xs {
		d := x - mean
		s += d * d
	}
	return s
}

// roundTo rounds v to the given number of decimal places. Result records
// round at output time only; the one exception is the practical
// tolerance, which the metrological calculator rounds before use.
func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
