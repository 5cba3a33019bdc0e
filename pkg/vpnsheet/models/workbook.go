package models

// WorkbookData represents a workbook read back from disk.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds per-sheet data in tab order.
	Sheets []SheetData `json:"sheets"`
}

// SheetNames returns the sheet names in tab order.
func (w *WorkbookData) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}

// Sheet looks up a sheet by name.
func (w *WorkbookData) Sheet(name string) (*SheetData, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}
