package sample

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// DAQ exports publish one gauge per calibration point. The measured value
// rides in the "point" label; the sample value is the observed error.
const (
	expositionFamily = "calibration_error"
	pointLabel       = "point"
)

// ParseExposition reads calibration points from a Prometheus text
// exposition, the format most DAQ exporters already emit. Points are
// sorted by measured value so a re-exported file analyzes identically
// regardless of scrape order.
func ParseExposition(r io.Reader) (Sample, error) {
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(r)
	if err != nil && len(mfs) == 0 {
		return nil, fmt.Errorf("sample: parse exposition: %w", err)
	}

	mf := mfs[expositionFamily]
	if mf == nil {
		return nil, fmt.Errorf("sample: exposition has no %q metric family", expositionFamily)
	}

	var s Sample
	for _, m := range mf.GetMetric() {
		measured, ok := pointOf(m)
		if !ok {
			return nil, fmt.Errorf("sample: %s metric missing numeric %q label", expositionFamily, pointLabel)
		}
		s = append(s, Point{Measured: measured, Error: valueOf(m)})
	}

	sort.Slice(s, func(i, j int) bool { return s[i].Measured < s[j].Measured })
	return s, nil
}

// ReadFile loads a sample from disk, choosing the parser by extension:
// .prom and .metrics are treated as Prometheus text expositions, anything
// else as "<measured>,<error>" lines.
func ReadFile(path string) (Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sample: open data file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".prom", ".metrics":
		return ParseExposition(f)
	default:
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("sample: read data file: %w", err)
		}
		return ParseLines(string(data))
	}
}

// pointOf extracts the measured value from the metric's "point" label.
func pointOf(m *dto.Metric) (float64, bool) {
	for _, lp := range m.GetLabel() {
		if lp.GetName() != pointLabel {
			continue
		}
		v, err := strconv.ParseFloat(lp.GetValue(), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// valueOf reads the sample value from whichever metric type the exporter
// used. Returns 0 for types that carry no scalar value.
func valueOf(m *dto.Metric) float64 {
	switch {
	case m.Gauge != nil:
		return m.Gauge.GetValue()
	case m.Counter != nil:
		return m.Counter.GetValue()
	case m.Untyped != nil:
		return m.Untyped.GetValue()
	default:
		return 0
	}
}
