package sample

// Point is one calibration record: the value the reference standard read
// and the instrument's deviation from it, both in sensor units.
type Point struct {
	Measured float64
	Error    float64
}

// Sample is an ordered series of calibration points. It is immutable by
// convention: parsers build it once and calculators only read it.
type Sample []Point

// Errors returns the error column as a fresh slice.
func (s Sample) Errors() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Error
	}
	return out
}

// Measured returns the measured-value column as a fresh slice.
func (s Sample) Measured() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Measured
	}
	return out
}
