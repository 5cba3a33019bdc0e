package vpnsheet

import (
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/layout"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/parser"
	"github.com/xuri/excelize/v2"
)

// Issue is one difference between a workbook file and its expected layout.
type Issue struct {
	Sheet   string `json:"sheet,omitempty"`
	Cell    string `json:"cell,omitempty"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	var loc []string
	if i.Sheet != "" {
		loc = append(loc, i.Sheet)
	}
	if i.Cell != "" {
		loc = append(loc, i.Cell)
	}
	if len(loc) == 0 {
		return i.Message
	}
	return strings.Join(loc, "!") + ": " + i.Message
}

// Verify reads the file at path and compares it with the workbook want would
// produce under opts: sheet order, cell text, header styling, unstyled body
// cells and column widths, plus the frozen header row and print area when
// opts enables them. An error is returned only when the file cannot be
// read.
func Verify(path string, want models.Workbook, opts Options) ([]Issue, error) {
	got, err := Inspect(path, InspectOptions{Mode: ModeVerbose, Logger: opts.Logger})
	if err != nil {
		return nil, err
	}
	return Compare(got, want, opts), nil
}

// Compare checks extracted workbook data against want.
func Compare(got *models.WorkbookData, want models.Workbook, opts Options) []Issue {
	var issues []Issue

	wantNames := want.SheetNames()
	gotNames := got.SheetNames()
	if strings.Join(wantNames, "\x00") != strings.Join(gotNames, "\x00") {
		issues = append(issues, Issue{
			Message: fmt.Sprintf("sheets = %q, expected %q", gotNames, wantNames),
		})
	}

	header := opts.HeaderStyleOrDefault()
	for _, ws := range want.Sheets {
		gs, ok := got.Sheet(ws.Name)
		if !ok {
			issues = append(issues, Issue{Sheet: ws.Name, Message: "sheet missing"})
			continue
		}
		issues = append(issues, compareCells(gs, ws)...)
		issues = append(issues, compareStyles(gs, ws, header)...)
		issues = append(issues, compareWidths(gs, ws, opts.Padding())...)
		issues = append(issues, compareView(gs, ws, opts)...)
	}

	return issues
}

func compareCells(got *models.SheetData, want models.Sheet) []Issue {
	var issues []Issue

	byRow := make(map[int][]string, len(got.Rows))
	for _, row := range got.Rows {
		byRow[row.R] = row.C
	}

	for r, wantRow := range want.Table.Rows {
		gotRow := byRow[r+1]
		for c, v := range wantRow {
			var actual string
			if c < len(gotRow) {
				actual = gotRow[c]
			}
			if actual != v {
				issues = append(issues, Issue{
					Sheet:   want.Name,
					Cell:    cellName(c+1, r+1),
					Message: fmt.Sprintf("value = %q, expected %q", actual, v),
				})
			}
		}
		if len(gotRow) > len(wantRow) {
			for c := len(wantRow); c < len(gotRow); c++ {
				if gotRow[c] != "" {
					issues = append(issues, Issue{
						Sheet:   want.Name,
						Cell:    cellName(c+1, r+1),
						Message: fmt.Sprintf("unexpected value %q", gotRow[c]),
					})
				}
			}
		}
	}

	for _, row := range got.Rows {
		if row.R > len(want.Table.Rows) {
			issues = append(issues, Issue{
				Sheet:   want.Name,
				Message: fmt.Sprintf("unexpected row %d", row.R),
			})
		}
	}

	return issues
}

func compareStyles(got *models.SheetData, want models.Sheet, header HeaderStyle) []Issue {
	var issues []Issue

	for c := 1; c <= want.Table.Width(); c++ {
		cell := cellName(c, 1)
		st, ok := got.Style(cell)
		if !ok || !isHeaderStyle(st, header) {
			issues = append(issues, Issue{
				Sheet:   want.Name,
				Cell:    cell,
				Message: "header cell is not bold/font/fill styled",
			})
		}
	}

	for _, st := range got.Styles {
		_, row, err := excelize.CellNameToCoordinates(st.Cell)
		if err != nil || row == 1 {
			continue
		}
		if isHeaderStyle(st, header) {
			issues = append(issues, Issue{
				Sheet:   want.Name,
				Cell:    st.Cell,
				Message: "body cell carries the header style",
			})
		}
	}

	return issues
}

func isHeaderStyle(st models.CellStyle, header HeaderStyle) bool {
	return st.Bold == header.Bold &&
		st.FontColor == parser.NormalizeColor(header.FontColor) &&
		st.FillColor == parser.NormalizeColor(header.FillColor) &&
		st.FillPattern == 1
}

func compareWidths(got *models.SheetData, want models.Sheet, padding int) []Issue {
	var issues []Issue

	expected := layout.ColumnWidths(layout.StringRows(want.Table.Rows), padding)
	for i, w := range expected {
		w = math.Min(w, excelize.MaxColumnWidth)
		var actual float64
		if i < len(got.ColumnWidths) {
			actual = got.ColumnWidths[i]
		}
		if math.Abs(actual-w) > 1e-6 {
			col, _ := excelize.ColumnNumberToName(i + 1)
			issues = append(issues, Issue{
				Sheet:   want.Name,
				Cell:    col,
				Message: fmt.Sprintf("column width = %v, expected %v", actual, w),
			})
		}
	}

	return issues
}

func compareView(got *models.SheetData, want models.Sheet, opts Options) []Issue {
	var issues []Issue

	if opts.FreezeHeader && got.FrozenRows != 1 {
		issues = append(issues, Issue{
			Sheet:   want.Name,
			Message: fmt.Sprintf("frozen rows = %d, expected 1", got.FrozenRows),
		})
	}

	if opts.PrintArea {
		area := models.PrintArea{R1: 1, C1: 1, R2: len(want.Table.Rows), C2: want.Table.Width()}
		if len(got.PrintAreas) != 1 || got.PrintAreas[0] != area {
			issues = append(issues, Issue{
				Sheet:   want.Name,
				Message: fmt.Sprintf("print areas = %v, expected [%v]", got.PrintAreas, area),
			})
		}
	}

	return issues
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
