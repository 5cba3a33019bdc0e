package models

// SheetData represents structured data read back from a single sheet.
type SheetData struct {
	// Name is the sheet tab name.
	Name string `json:"name"`
	// Rows contains non-empty rows with cell text.
	Rows []CellRow `json:"rows,omitempty"`
	// ColumnWidths holds the display width of each column, starting at A.
	ColumnWidths []float64 `json:"column_widths,omitempty"`
	// Styles lists cells carrying a non-default style.
	Styles []CellStyle `json:"styles,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// FrozenRows is the number of rows frozen at the top of the sheet view.
	FrozenRows int `json:"frozen_rows,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
	// RowCount is the number of rows present in the sheet XML.
	RowCount int `json:"row_count"`
	// ColumnCount is the widest row's cell count.
	ColumnCount int `json:"column_count"`
}

// Style returns the style recorded for a cell reference.
func (s SheetData) Style(cell string) (CellStyle, bool) {
	for _, st := range s.Styles {
		if st.Cell == cell {
			return st, true
		}
	}
	return CellStyle{}, false
}
