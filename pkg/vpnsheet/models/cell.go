package models

// CellRow represents a single row read back from a sheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C holds the cell text in column order, padded to the sheet width.
	C []string `json:"c"`
}

// CellStyle describes the formatting of one styled cell.
type CellStyle struct {
	// Cell is the cell reference (e.g., "A1").
	Cell string `json:"cell"`
	// Bold is true when the font weight is bold.
	Bold bool `json:"bold,omitempty"`
	// FontColor is the font RGB color as six upper-case hex digits.
	FontColor string `json:"font_color,omitempty"`
	// FillColor is the solid fill RGB color as six upper-case hex digits.
	FillColor string `json:"fill_color,omitempty"`
	// FillPattern is the pattern fill type (1 = solid).
	FillPattern int `json:"fill_pattern,omitempty"`
}
