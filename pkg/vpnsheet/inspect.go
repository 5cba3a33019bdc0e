package vpnsheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Inspect reads an Excel file back into structured data.
// Per-sheet component failures are logged and leave that component empty.
func Inspect(path string, opts InspectOptions) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	log := opts.logger()
	warn := func(err *ExtractionError) {
		log.Warn("Inspection component skipped",
			zap.String("sheet", err.SheetName),
			zap.String("component", err.Component),
			zap.Error(err.Err))
	}

	var printAreas map[string][]models.PrintArea
	if opts.ShouldIncludePrintAreas() {
		printAreas, err = parser.ExtractPrintAreas(f)
		if err != nil {
			warn(NewExtractionError("", "print_areas", err))
		}
	}

	var counts map[string]parser.RowCount
	if opts.ShouldIncludeLayout() {
		counts, err = parser.CountRows(path)
		if err != nil {
			warn(NewExtractionError("", "rows", err))
		}
	}

	sheetList := f.GetSheetList()
	sheets := make([]models.SheetData, 0, len(sheetList))

	for _, sheetName := range sheetList {
		sheet := models.SheetData{Name: sheetName}

		rows, width, err := parser.ExtractCells(f, sheetName)
		if err != nil {
			warn(NewExtractionError(sheetName, "cells", err))
			rows, width = nil, 0
		}
		sheet.Rows = rows

		sheet.TableCandidates, err = parser.DetectTables(rows, parser.DefaultTableParams())
		if err != nil {
			warn(NewExtractionError(sheetName, "tables", err))
		}

		if opts.ShouldIncludeLayout() && width > 0 {
			sheet.ColumnWidths, err = parser.ExtractColumnWidths(f, sheetName, width)
			if err != nil {
				warn(NewExtractionError(sheetName, "widths", err))
			}

			lastRow := 1
			if opts.ShouldIncludeBodyStyles() && len(rows) > 0 {
				lastRow = rows[len(rows)-1].R
			}
			sheet.Styles, err = parser.ExtractCellStyles(f, sheetName, 1, lastRow, width)
			if err != nil {
				warn(NewExtractionError(sheetName, "styles", err))
			}

			sheet.FrozenRows, err = parser.ExtractFrozenRows(f, sheetName)
			if err != nil {
				warn(NewExtractionError(sheetName, "panes", err))
			}

			rc := counts[sheetName]
			sheet.RowCount, sheet.ColumnCount = rc.Rows, rc.Columns
		}

		sheet.PrintAreas = printAreas[sheetName]
		sheets = append(sheets, sheet)
	}

	return &models.WorkbookData{
		BookName: filepath.Base(path),
		Sheets:   sheets,
	}, nil
}
