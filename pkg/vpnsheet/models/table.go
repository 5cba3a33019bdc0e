// Package models defines the workbook data structures for building and
// reading back VPN setup workbooks.
package models

import "strings"

// Table is a header row followed by data rows. Every row has the header's
// column count.
type Table struct {
	// Rows holds the header at index 0 and data rows after it.
	Rows [][]string `json:"rows"`
}

// Header returns the first row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Body returns the data rows.
func (t Table) Body() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// Width returns the header's column count.
func (t Table) Width() int {
	return len(t.Header())
}

// Sheet is a named page holding exactly one table.
type Sheet struct {
	// Name is the sheet tab name, unique within a workbook.
	Name string `json:"name"`
	// Table is the sheet content.
	Table Table `json:"table"`
}

// Workbook is an ordered list of sheets plus the destination path.
// Sheet order is display order.
type Workbook struct {
	// Path is the destination file path (empty until a build assigns it).
	Path string `json:"path,omitempty"`
	// Sheets in display order.
	Sheets []Sheet `json:"sheets"`
}

// SheetNames returns the sheet names in display order.
func (w Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}

// Sheet looks up a sheet by name.
func (w Workbook) Sheet(name string) (Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}

// Validate checks that the workbook has at least one sheet, that sheet names
// are non-empty and unique ignoring case, and that every table is
// rectangular. Excel treats "Data" and "data" as the same sheet.
func (w Workbook) Validate() error {
	if len(w.Sheets) == 0 {
		return ErrEmptyWorkbook
	}
	seen := make(map[string]bool, len(w.Sheets))
	for _, s := range w.Sheets {
		if s.Name == "" {
			return &TableError{Sheet: s.Name, Err: ErrUnnamedSheet}
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			return &TableError{Sheet: s.Name, Err: ErrDuplicateSheet}
		}
		seen[key] = true
		if err := s.Table.validate(s.Name); err != nil {
			return err
		}
	}
	return nil
}

func (t Table) validate(sheet string) error {
	width := t.Width()
	if width == 0 {
		return &TableError{Sheet: sheet, Row: 1, Err: ErrEmptyTable}
	}
	for i, row := range t.Rows {
		if len(row) != width {
			return &TableError{Sheet: sheet, Row: i + 1, Err: ErrRaggedRow}
		}
	}
	return nil
}
