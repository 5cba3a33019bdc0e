package parser

import (
	"github.com/xuri/excelize/v2"
)

// ExtractFrozenRows returns how many rows are frozen at the top of the sheet.
// Split panes that are not frozen count as zero.
func ExtractFrozenRows(f *excelize.File, sheetName string) (int, error) {
	panes, err := f.GetPanes(sheetName)
	if err != nil {
		return 0, err
	}
	if !panes.Freeze {
		return 0, nil
	}
	return panes.YSplit, nil
}
