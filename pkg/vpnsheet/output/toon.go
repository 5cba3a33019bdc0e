package output

import (
	"fmt"

	toon "github.com/mateuszkardas/toon-go"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"
	"github.com/xuri/excelize/v2"
)

// ToTOON renders inspected workbook data in TOON notation.
func ToTOON(wb *models.WorkbookData) (string, error) {
	return toon.Marshal(inspectionPayload(wb), nil)
}

// TablesToTOON renders the sheets of a workbook definition in TOON notation.
// Each sheet becomes a list of records keyed by its header. Blank or repeated
// header cells are keyed by column letter instead.
func TablesToTOON(wb models.Workbook) (string, error) {
	return toon.Marshal(tablesPayload(wb), nil)
}

func tablesPayload(wb models.Workbook) map[string]interface{} {
	sheets := make([]interface{}, 0, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		keys := recordKeys(sheet.Table.Header())
		sheets = append(sheets, map[string]interface{}{
			"name":    sheet.Name,
			"columns": keys,
			"rows":    records(keys, sheet.Table.Body()),
		})
	}
	return map[string]interface{}{"sheets": sheets}
}

func inspectionPayload(wb *models.WorkbookData) map[string]interface{} {
	sheets := make([]interface{}, 0, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		entry := map[string]interface{}{
			"name":         sheet.Name,
			"row_count":    sheet.RowCount,
			"column_count": sheet.ColumnCount,
		}
		if len(sheet.ColumnWidths) > 0 {
			entry["column_widths"] = sheet.ColumnWidths
		}
		if len(sheet.TableCandidates) > 0 {
			entry["table_candidates"] = sheet.TableCandidates
		}
		if len(sheet.Rows) > 0 {
			keys := recordKeys(sheet.Rows[0].C)
			body := make([][]string, 0, len(sheet.Rows)-1)
			for _, row := range sheet.Rows[1:] {
				body = append(body, row.C)
			}
			entry["columns"] = keys
			entry["rows"] = records(keys, body)
		}
		sheets = append(sheets, entry)
	}
	return map[string]interface{}{
		"book_name": wb.BookName,
		"sheets":    sheets,
	}
}

// recordKeys returns one unique key per header cell.
func recordKeys(header []string) []string {
	keys := make([]string, len(header))
	used := make(map[string]bool, len(header))
	for i, h := range header {
		key := h
		if key == "" || used[key] {
			col, _ := excelize.ColumnNumberToName(i + 1)
			key = col
			for n := 2; used[key]; n++ {
				key = fmt.Sprintf("%s_%d", col, n)
			}
		}
		used[key] = true
		keys[i] = key
	}
	return keys
}

func records(keys []string, body [][]string) []interface{} {
	out := make([]interface{}, 0, len(body))
	for _, row := range body {
		rec := make(map[string]interface{}, len(keys))
		for i, key := range keys {
			if i < len(row) {
				rec[key] = row[i]
			} else {
				rec[key] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}
