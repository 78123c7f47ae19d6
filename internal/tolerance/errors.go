package tolerance

import "errors"

var (
	// ErrEmptySample is returned when a calculator receives zero
	// calibration records.
	ErrEmptySample = errors.New("tolerance: no calibration data provided")

	// ErrInsufficientSample is returned when a sample standard deviation
	// is requested for fewer than two records.
	ErrInsufficientSample = errors.New("tolerance: at least two calibration records are required")

	// ErrDegenerateRange is returned when range min equals max, which
	// makes the span a zero divisor in percentage figures.
	ErrDegenerateRange = errors.New("tolerance: range min and max must differ")
)
