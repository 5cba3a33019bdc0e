package vpnsheet

import (
	"fmt"

	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/content"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/layout"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// defaultSheet is the sheet excelize creates with every new file.
const defaultSheet = "Sheet1"

// Build writes the five-sheet VPN setup workbook to outputPath, replacing any
// existing file, and returns a confirmation message.
func Build(outputPath string, opts Options) (string, error) {
	wb := content.Workbook()
	wb.Path = outputPath

	if err := Write(wb, opts); err != nil {
		return "", err
	}
	return fmt.Sprintf("Excel file created: %s", outputPath), nil
}

// Write builds wb and saves it to wb.Path.
func Write(wb models.Workbook, opts Options) error {
	if wb.Path == "" {
		return &WriteError{Op: "create", Path: wb.Path, Err: fmt.Errorf("empty output path")}
	}

	f, err := BuildFile(wb, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	return Save(f, wb.Path, opts)
}

// BuildFile lays wb out in a new in-memory excelize file: one sheet per
// table in order, styled header rows and auto-sized columns.
func BuildFile(wb models.Workbook, opts Options) (*excelize.File, error) {
	if err := wb.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(excelStyle(opts.HeaderStyleOrDefault()))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, sheet := range wb.Sheets {
		if i == 0 {
			err = f.SetSheetName(defaultSheet, sheet.Name)
		} else {
			var idx int
			if idx, err = f.NewSheet(sheet.Name); err == nil && idx != i {
				err = &models.TableError{Sheet: sheet.Name, Err: models.ErrDuplicateSheet}
			}
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet, headerStyle, opts); err != nil {
			f.Close()
			return nil, fmt.Errorf("write sheet %q: %w", sheet.Name, err)
		}
		log.Debug("Sheet written",
			zap.String("sheet", sheet.Name),
			zap.Int("rows", len(sheet.Table.Rows)),
			zap.Int("cols", sheet.Table.Width()))
	}
	f.SetActiveSheet(0)

	return f, nil
}

func excelStyle(h HeaderStyle) *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{Bold: h.Bold, Color: h.FontColor},
		Fill: excelize.Fill{Type: "pattern", Color: []string{h.FillColor}, Pattern: 1},
	}
}

func writeSheet(f *excelize.File, sheet models.Sheet, headerStyle int, opts Options) error {
	name := sheet.Name
	rows := sheet.Table.Rows
	width := sheet.Table.Width()

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for c, v := range row {
			values[c] = v
		}
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return err
		}
	}

	lastHeader, err := excelize.CoordinatesToCellName(width, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, w := range layout.ColumnWidths(layout.StringRows(rows), opts.Padding()) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if w > excelize.MaxColumnWidth {
			w = excelize.MaxColumnWidth
		}
		if err := f.SetColWidth(name, col, col, w); err != nil {
			return err
		}
	}

	if opts.FreezeHeader {
		if err := f.SetPanes(name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
			Selection: []excelize.Selection{
				{SQRef: "A2", ActiveCell: "A2", Pane: "bottomLeft"},
			},
		}); err != nil {
			return err
		}
	}

	if opts.PrintArea {
		ref, err := parser.FormatPrintAreaReference(name, models.PrintArea{R1: 1, C1: 1, R2: len(rows), C2: width})
		if err != nil {
			return err
		}
		if err := f.SetDefinedName(&excelize.DefinedName{
			Name:     parser.PrintAreaName,
			RefersTo: ref,
			Scope:    name,
		}); err != nil {
			return err
		}
	}

	return nil
}
