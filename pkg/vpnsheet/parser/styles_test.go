package parser

import (
	"testing"
)

func TestExtractCellStyles(t *testing.T) {
	f := openTestFile(t)

	styles, err := ExtractCellStyles(f, "Sheet1", 1, 3, 3)
	if err != nil {
		t.Fatalf("ExtractCellStyles failed: %v", err)
	}
	if len(styles) != 3 {
		t.Fatalf("Expected 3 styled cells, got %d: %+v", len(styles), styles)
	}

	for i, cell := range []string{"A1", "B1", "C1"} {
		st := styles[i]
		if st.Cell != cell {
			t.Errorf("styles[%d].Cell = %q, expected %q", i, st.Cell, cell)
		}
		if !st.Bold {
			t.Errorf("%s: expected bold", cell)
		}
		if st.FontColor != "FFFFFF" {
			t.Errorf("%s: font color = %q, expected FFFFFF", cell, st.FontColor)
		}
		if st.FillColor != "366092" {
			t.Errorf("%s: fill color = %q, expected 366092", cell, st.FillColor)
		}
		if st.FillPattern != 1 {
			t.Errorf("%s: fill pattern = %d, expected 1", cell, st.FillPattern)
		}
	}
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"#366092", "366092"},
		{"366092", "366092"},
		{"FF366092", "366092"},
		{"ffffff", "FFFFFF"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeColor(tt.input); got != tt.expected {
			t.Errorf("NormalizeColor(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
