package sample

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MalformedLineError reports the first input line that could not be parsed
// as a "<measured>,<error>" pair. Line is 1-based and counts every line of
// the input, including blank ones, so the user can locate it in an editor.
type MalformedLineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("sample: line %d %q: %s", e.Line, e.Text, e.Reason)
}

// ParseLines parses free-text calibration data, one "<measured>,<error>"
// pair per line. Blank lines are skipped. Parsing stops at the first
// malformed line: the returned error is a *MalformedLineError and any
// points parsed before it are discarded.
//
// An input with no data lines yields an empty Sample and no error; whether
// that is acceptable is the caller's decision.
func ParseLines(text string) (Sample, error) {
	var s Sample
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return nil, &MalformedLineError{
				Line:   i + 1,
				Text:   line,
				Reason: "expected two comma-separated values",
			}
		}

		measured, err := parseFinite(parts[0])
		if err != nil {
			return nil, &MalformedLineError{
				Line:   i + 1,
				Text:   line,
				Reason: fmt.Sprintf("measured value: %v", err),
			}
		}
		errVal, err := parseFinite(parts[1])
		if err != nil {
			return nil, &MalformedLineError{
				Line:   i + 1,
				Text:   line,
				Reason: fmt.Sprintf("error value: %v", err),
			}
		}

		s = append(s, Point{Measured: measured, Error: errVal})
	}
	return s, nil
}

// parseFinite parses a float and rejects NaN and infinities, which would
// poison every downstream statistic.
func parseFinite(tok string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not finite")
	}
	return v, nil
}
