// Package output renders workbook data as JSON, TOON or Markdown.
package output

import (
	"encoding/json"

	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"
)

// ToJSON serializes inspected workbook data.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single inspected sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// TablesToJSON serializes the sheets of a workbook definition.
func TablesToJSON(wb models.Workbook, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
