package sample

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const refExposition = `# HELP calibration_error Instrument error at each calibration point.
# TYPE calibration_error gauge
calibration_error{point="30.0"} -0.1
calibration_error{point="25.0"} 0.2
`

func TestParseExposition(t *testing.T) {
	s, err := ParseExposition(strings.NewReader(refExposition))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sorted by measured value regardless of exposition order.
	want := Sample{{25.0, 0.2}, {30.0, -0.1}}
	if len(s) != len(want) {
		t.Fatalf("got %d records, want %d", len(s), len(want))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, s[i], want[i])
		}
	}
}

func TestParseExposition_Untyped(t *testing.T) {
	s, err := ParseExposition(strings.NewReader(`calibration_error{point="25.0"} 0.2` + "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 1 || s[0] != (Point{25.0, 0.2}) {
		t.Errorf("sample = %v, want [{25 0.2}]", s)
	}
}

func TestParseExposition_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing family", "# TYPE other gauge\nother 1\n"},
		{"missing point label", "calibration_error 0.2\n"},
		{"non-numeric point label", `calibration_error{point="low"} 0.2` + "\n"},
		{"unparsable exposition", "calibration_error{point=\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseExposition(strings.NewReader(tc.text)); err == nil {
				t.Error("expected error, got none")
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("csv lines", func(t *testing.T) {
		s, err := ReadFile(write("data.csv", "25.0,0.2\n30.0,-0.1\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s) != 2 {
			t.Errorf("got %d records, want 2", len(s))
		}
	})

	t.Run("prom exposition", func(t *testing.T) {
		s, err := ReadFile(write("data.prom", refExposition))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s) != 2 {
			t.Errorf("got %d records, want 2", len(s))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ReadFile(filepath.Join(dir, "absent.csv")); err == nil {
			t.Error("expected error, got none")
		}
	})
}
