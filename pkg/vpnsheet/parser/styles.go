package parser

import (
	"strings"

	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCellStyles returns the styles of cells in the given row range that
// carry a non-default style. Columns 1..width are scanned for rows
// firstRow..lastRow (1-based, inclusive).
func ExtractCellStyles(f *excelize.File, sheetName string, firstRow, lastRow, width int) ([]models.CellStyle, error) {
	var result []models.CellStyle
	cache := make(map[int]models.CellStyle)

	for row := firstRow; row <= lastRow; row++ {
		for col := 1; col <= width; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			styleID, err := f.GetCellStyle(sheetName, cell)
			if err != nil {
				return nil, err
			}
			if styleID == 0 {
				continue
			}

			st, ok := cache[styleID]
			if !ok {
				style, err := f.GetStyle(styleID)
				if err != nil {
					return nil, err
				}
				st = convertStyle(style)
				cache[styleID] = st
			}
			st.Cell = cell
			result = append(result, st)
		}
	}

	return result, nil
}

func convertStyle(style *excelize.Style) models.CellStyle {
	var st models.CellStyle
	if style == nil {
		return st
	}
	if style.Font != nil {
		st.Bold = style.Font.Bold
		st.FontColor = NormalizeColor(style.Font.Color)
	}
	st.FillPattern = style.Fill.Pattern
	if len(style.Fill.Color) > 0 {
		st.FillColor = NormalizeColor(style.Fill.Color[0])
	}
	return st
}

// NormalizeColor converts "#366092", "366092" or ARGB "FF366092" to
// upper-case six-digit RGB.
func NormalizeColor(c string) string {
	c = strings.ToUpper(strings.TrimPrefix(c, "#"))
	if len(c) == 8 {
		c = c[2:]
	}
	return c
}
