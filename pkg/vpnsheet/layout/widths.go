// Package layout computes column widths for sheet tables.
package layout

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// DefaultPadding is added to the longest cell text of each column.
const DefaultPadding = 2

// CellText renders a cell value as text. ok is false for values that have no
// text form (nil, unsupported types, or a Stringer that panics); such cells
// are skipped when measuring.
func CellText(v interface{}) (text string, ok bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case []byte:
		if !utf8.Valid(x) {
			return "", false
		}
		return string(x), true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case fmt.Stringer:
		return stringerText(x)
	}
	return "", false
}

func stringerText(s fmt.Stringer) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()
	return s.String(), true
}

// TextLength returns the length of s in characters. Line breaks count as
// one character each.
func TextLength(s string) int {
	return utf8.RuneCountInString(s)
}

// ColumnWidths returns, for each column, the longest cell text plus padding.
// The column count is taken from the widest row; cells missing from shorter
// rows and cells without a text form are skipped.
func ColumnWidths(rows [][]interface{}, padding int) []float64 {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	maxLen := make([]int, cols)
	for _, row := range rows {
		for c, v := range row {
			text, ok := CellText(v)
			if !ok {
				continue
			}
			if n := TextLength(text); n > maxLen[c] {
				maxLen[c] = n
			}
		}
	}

	widths := make([]float64, cols)
	for c, n := range maxLen {
		widths[c] = float64(n + padding)
	}
	return widths
}

// StringRows converts text rows for ColumnWidths.
func StringRows(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		out[i] = make([]interface{}, len(row))
		for j, v := range row {
			out[i][j] = v
		}
	}
	return out
}
