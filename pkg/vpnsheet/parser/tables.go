package parser

import (
	"fmt"

	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	CoverageMin      float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		CoverageMin:      0.2,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects the table-like region of a sheet from its rows.
// Returns a list of cell ranges (e.g., "A1:D10") that likely represent tables.
func DetectTables(rows []models.CellRow, params TableDetectionParams) ([]string, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	// Find the bounding box of non-empty cells
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minCol, maxCol)

	if nonEmptyCells < params.MinNonemptyCells {
		return nil, nil
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return nil, nil
	}

	// Share of rows inside the box that carry data
	coverage := float64(len(rows)) / float64(maxRow-minRow+1)
	if coverage < params.CoverageMin {
		return nil, nil
	}

	startCell, err := excelize.CoordinatesToCellName(minCol, minRow)
	if err != nil {
		return nil, err
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol, maxRow)
	if err != nil {
		return nil, err
	}

	return []string{fmt.Sprintf("%s:%s", startCell, endCell)}, nil
}

// findDataBounds finds the 1-based bounding box of non-empty cells.
func findDataBounds(rows []models.CellRow) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for _, row := range rows {
		for colIdx, cell := range row.C {
			if cell == "" {
				continue
			}
			col := colIdx + 1
			if minRow < 0 || row.R < minRow {
				minRow = row.R
			}
			if maxRow < 0 || row.R > maxRow {
				maxRow = row.R
			}
			if minCol < 0 || col < minCol {
				minCol = col
			}
			if maxCol < 0 || col > maxCol {
				maxCol = col
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within the column bounds.
func countNonEmptyCells(rows []models.CellRow, minCol, maxCol int) int {
	count := 0
	for _, row := range rows {
		for colIdx := minCol - 1; colIdx < maxCol && colIdx < len(row.C); colIdx++ {
			if row.C[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
