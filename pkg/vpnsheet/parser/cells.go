// Package parser provides readers for workbooks produced by the builder.
package parser

import (
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts cell data from a sheet.
// It returns the non-empty rows, each padded to the sheet width, and the
// sheet width (the widest row).
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, int, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, err
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		cells := make([]string, width)
		copy(cells, row)
		result = append(result, models.CellRow{
			R: rowIdx + 1, // 1-based row index
			C: cells,
		})
	}

	return result, width, nil
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
