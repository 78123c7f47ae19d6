// Package tolerance computes measurement-tolerance figures for calibrated
// sensors from calibration error samples.
//
// Two independent calculators share the sample model and the statistics
// helpers but exchange no data:
//
// normative.go derives the transmission tolerance from standards-based
// parameter tables keyed by sensor type and precision class, plus the
// observed error statistics (population standard deviation, N divisor).
//
// metrological.go derives a GUM-style tolerance: sample standard
// deviation (N-1 divisor) combined in quadrature with the reference
// standard's uncertainty, expanded with coverage factor k=2, and a
// whole-chain tolerance combining sensor, transmitter, controller and
// display contributions.
//
// Both calculators are pure: no I/O, no shared mutable state, safe to
// call concurrently. Unknown sensor types fall back to the temperature
// parameter table and unknown precision classes to the standard class —
// deliberate defensive defaults, documented at the fallback branches.
package tolerance
