package parser

import (
	"path/filepath"
	"testing"
)

func TestCountRows(t *testing.T) {
	counts, err := CountRows(newTestFile(t))
	if err != nil {
		t.Fatalf("CountRows failed: %v", err)
	}

	rc, ok := counts["Sheet1"]
	if !ok {
		t.Fatalf("Sheet1 missing from counts: %v", counts)
	}
	if rc.Rows != 3 {
		t.Errorf("Rows = %d, expected 3", rc.Rows)
	}
	if rc.Columns != 3 {
		t.Errorf("Columns = %d, expected 3", rc.Columns)
	}
}

func TestCountRowsMissingFile(t *testing.T) {
	if _, err := CountRows(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("Expected error for missing file")
	}
}
