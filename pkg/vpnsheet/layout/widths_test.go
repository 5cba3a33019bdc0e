package layout

import (
	"testing"

	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/content"
)

type panicker struct{}

func (panicker) String() string { panic("no text") }

type label string

func (l label) String() string { return "label:" + string(l) }

func TestCellText(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
		ok       bool
	}{
		{"hello", "hello", true},
		{"", "", true},
		{"a\nb", "a\nb", true},
		{42, "42", true},
		{int64(-7), "-7", true},
		{2.5, "2.5", true},
		{true, "true", true},
		{label("x"), "label:x", true},
		{nil, "", false},
		{panicker{}, "", false},
		{struct{}{}, "", false},
		{[]byte{0xff, 0xfe}, "", false},
	}

	for _, tt := range tests {
		got, ok := CellText(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("CellText(%#v) = (%q, %v), expected (%q, %v)",
				tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestTextLength(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"Status", 6},
		{"Name: AzureVNet\nAddress: 172.16.0.0/16", 38},
		{"Größe", 5},
	}

	for _, tt := range tests {
		if got := TextLength(tt.input); got != tt.expected {
			t.Errorf("TextLength(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func TestColumnWidthsSkipsUnconvertibleAndMissingCells(t *testing.T) {
	rows := [][]interface{}{
		{"Header", "H", "Third"},
		{nil, "longer value"},
		{panicker{}, 12345678},
	}

	got := ColumnWidths(rows, DefaultPadding)
	expected := []float64{8, 14, 7}
	if len(got) != len(expected) {
		t.Fatalf("ColumnWidths returned %d columns, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("column %d width = %v, expected %v", i+1, got[i], expected[i])
		}
	}
}

func TestColumnWidthsEmptyColumn(t *testing.T) {
	got := ColumnWidths([][]interface{}{{nil}, {nil}}, DefaultPadding)
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("ColumnWidths of an all-nil column = %v, expected [2]", got)
	}
}

func TestColumnWidthsBuiltInSheets(t *testing.T) {
	expected := map[string][]float64{
		content.SheetPrerequisites:   {20, 39, 50},
		content.SheetAzureSetup:      {7, 23, 56, 16},
		content.SheetAWSSetup:        {7, 25, 49, 16},
		content.SheetTesting:         {22, 25, 51, 8},
		content.SheetTroubleshooting: {32, 27, 55},
	}

	for _, sheet := range content.Workbook().Sheets {
		got := ColumnWidths(StringRows(sheet.Table.Rows), DefaultPadding)
		want := expected[sheet.Name]
		if len(got) != len(want) {
			t.Errorf("%s: %d columns, expected %d", sheet.Name, len(got), len(want))
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s column %d width = %v, expected %v", sheet.Name, i+1, got[i], want[i])
			}
		}
	}
}
