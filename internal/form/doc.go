// Package form drives the interactive input session. It collects the
// same inputs the analyze command reads from the profile and data file,
// seeded with profile values, and validates inline so bad input never
// reaches the calculators.
package form
