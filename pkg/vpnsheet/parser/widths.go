package parser

import (
	"github.com/xuri/excelize/v2"
)

// ExtractColumnWidths returns the display width of the first n columns.
func ExtractColumnWidths(f *excelize.File, sheetName string, n int) ([]float64, error) {
	widths := make([]float64, 0, n)
	for col := 1; col <= n; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return nil, err
		}
		w, err := f.GetColWidth(sheetName, name)
		if err != nil {
			return nil, err
		}
		widths = append(widths, w)
	}
	return widths, nil
}
