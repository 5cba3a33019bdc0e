package parser

import (
	"github.com/thedatashed/xlsxreader"
)

// RowCount holds the number of rows and the widest row of a sheet.
type RowCount struct {
	Rows    int
	Columns int
}

// CountRows streams every sheet of the file and counts the rows present in
// the sheet XML.
func CountRows(path string) (map[string]RowCount, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer xl.Close()

	result := make(map[string]RowCount, len(xl.Sheets))
	for _, sheet := range xl.Sheets {
		var rc RowCount
		var readErr error
		// Drain the channel even after an error so the reader goroutine exits.
		for row := range xl.ReadRows(sheet) {
			if row.Error != nil {
				if readErr == nil {
					readErr = row.Error
				}
				continue
			}
			rc.Rows++
			if len(row.Cells) > rc.Columns {
				rc.Columns = len(row.Cells)
			}
		}
		if readErr != nil {
			return nil, readErr
		}
		result[sheet] = rc
	}

	return result, nil
}
