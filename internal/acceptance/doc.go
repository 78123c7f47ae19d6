// Package acceptance evaluates pass/fail rules against computed
// tolerance records. Rules come from the device profile as small
// "<field> <op> <value>" expressions, where value may be a literal or
// another result field (e.g. "max_error > allowed_units"). Fired rules
// become verdicts; a reject-severity verdict marks the calibration as
// failed.
package acceptance
