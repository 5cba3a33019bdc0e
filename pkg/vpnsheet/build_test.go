package vpnsheet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/content"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"
	"github.com/xuri/excelize/v2"
)

var expectedWidths = map[string][]float64{
	"Prerequisites":   {20, 39, 50},
	"Azure Setup":     {7, 23, 56, 16},
	"AWS Setup":       {7, 25, 49, 16},
	"Testing":         {22, 25, 51, 8},
	"Troubleshooting": {32, 27, 55},
}

func buildTemp(t *testing.T, opts Options) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.xlsx")
	msg, err := Build(path, opts)
	require.NoError(t, err)
	assert.Equal(t, "Excel file created: "+path, msg)
	return path
}

func openBuilt(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

// readTable returns the sheet rows padded to the header width.
func readTable(t *testing.T, f *excelize.File, sheet string) [][]string {
	t.Helper()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	width := len(rows[0])
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		rows[i] = padded
	}
	return rows
}

func TestBuildSheetNamesAndOrder(t *testing.T) {
	f := openBuilt(t, buildTemp(t, DefaultOptions()))

	assert.Equal(t,
		[]string{"Prerequisites", "Azure Setup", "AWS Setup", "Testing", "Troubleshooting"},
		f.GetSheetList())
	assert.Equal(t, 0, f.GetActiveSheetIndex())
}

func TestBuildContentMatchesTables(t *testing.T) {
	f := openBuilt(t, buildTemp(t, DefaultOptions()))

	for _, sheet := range content.Workbook().Sheets {
		got := readTable(t, f, sheet.Name)
		assert.Equal(t, sheet.Table.Rows, got, "sheet %q", sheet.Name)

		for i, row := range got {
			assert.Lenf(t, row, len(got[0]), "sheet %q row %d", sheet.Name, i+1)
		}
	}
}

func TestBuildPrerequisitesScenario(t *testing.T) {
	f := openBuilt(t, buildTemp(t, DefaultOptions()))

	rows := readTable(t, f, "Prerequisites")
	require.Len(t, rows, 7)
	assert.Len(t, rows[0], 3)
	assert.Equal(t, []string{
		"Azure Subscription",
		"Active subscription with admin access",
		"Verify permissions for network resource creation",
	}, rows[1])
}

func TestBuildKeepsLineBreakInOneCell(t *testing.T) {
	f := openBuilt(t, buildTemp(t, DefaultOptions()))

	resource, err := f.GetCellValue("Azure Setup", "B3")
	require.NoError(t, err)
	require.Equal(t, "Virtual Network", resource)

	config, err := f.GetCellValue("Azure Setup", "C3")
	require.NoError(t, err)
	assert.Equal(t, "Name: AzureVNet\nAddress: 172.16.0.0/16", config)

	next, err := f.GetCellValue("Azure Setup", "D3")
	require.NoError(t, err)
	assert.Equal(t, "10 minutes", next)
}

func TestBuildHeaderStyling(t *testing.T) {
	f := openBuilt(t, buildTemp(t, DefaultOptions()))

	for _, sheet := range content.Workbook().Sheets {
		for r := range sheet.Table.Rows {
			for c := range sheet.Table.Rows[r] {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				id, err := f.GetCellStyle(sheet.Name, cell)
				require.NoError(t, err)

				if r > 0 {
					assert.Zerof(t, id, "%s!%s should be unstyled", sheet.Name, cell)
					continue
				}

				style, err := f.GetStyle(id)
				require.NoError(t, err)
				require.NotNil(t, style.Font, "%s!%s font", sheet.Name, cell)
				assert.True(t, style.Font.Bold, "%s!%s bold", sheet.Name, cell)
				assert.Contains(t, []string{"FFFFFF", "FFFFFFFF"}, style.Font.Color)
				require.NotEmpty(t, style.Fill.Color)
				assert.Contains(t, []string{"366092", "FF366092"}, style.Fill.Color[0])
				assert.Equal(t, 1, style.Fill.Pattern)
			}
		}
	}
}

func TestBuildColumnWidths(t *testing.T) {
	f := openBuilt(t, buildTemp(t, DefaultOptions()))

	for sheet, widths := range expectedWidths {
		for i, want := range widths {
			col, err := excelize.ColumnNumberToName(i + 1)
			require.NoError(t, err)
			got, err := f.GetColWidth(sheet, col)
			require.NoError(t, err)
			assert.Equalf(t, want, got, "%s column %s", sheet, col)
		}
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	path := buildTemp(t, DefaultOptions())
	first, err := Inspect(path, InspectOptions{Mode: ModeVerbose})
	require.NoError(t, err)

	_, err = Build(path, DefaultOptions())
	require.NoError(t, err)
	second, err := Inspect(path, InspectOptions{Mode: ModeVerbose})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	_, err := Build(path, DefaultOptions())
	require.NoError(t, err)

	f := openBuilt(t, path)
	assert.Len(t, f.GetSheetList(), 5)
}

func TestBuildUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not a directory"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{"parent is a file", filepath.Join(blocker, "out.xlsx")},
		{"missing parent", filepath.Join(dir, "missing", "out.xlsx")},
		{"empty path", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Build(tt.path, DefaultOptions())
			require.Error(t, err)
			assert.Empty(t, msg)
			assert.True(t, errors.Is(err, ErrWrite))

			var we *WriteError
			require.True(t, errors.As(err, &we))
			assert.Equal(t, tt.path, we.Path)

			if tt.path != "" {
				_, statErr := os.Stat(tt.path)
				assert.Error(t, statErr, "no file should exist at %s", tt.path)
			}
		})
	}
}

func TestBuildOntoDirectoryLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.xlsx")
	require.NoError(t, os.Mkdir(target, 0o755))

	_, err := Build(target, DefaultOptions())
	require.Error(t, err)

	var we *WriteError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, "rename", we.Op)
	assertNoTempFiles(t, dir)
}

func TestBuildFileRejectsInvalidWorkbook(t *testing.T) {
	wb := models.Workbook{Sheets: []models.Sheet{
		{Name: "Ragged", Table: models.Table{Rows: [][]string{{"A", "B"}, {"1"}}}},
	}}

	_, err := BuildFile(wb, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrRaggedRow)
}

func TestBuildCustomOptions(t *testing.T) {
	padding := 4
	opts := Options{
		Header:       HeaderStyle{Bold: true, FontColor: "000000", FillColor: "FFC000"},
		WidthPadding: &padding,
		FreezeHeader: true,
		PrintArea:    true,
	}
	path := buildTemp(t, opts)
	f := openBuilt(t, path)

	w, err := f.GetColWidth("Prerequisites", "A")
	require.NoError(t, err)
	assert.Equal(t, float64(22), w)

	panes, err := f.GetPanes("Testing")
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 1, panes.YSplit)

	data, err := Inspect(path, DefaultInspectOptions())
	require.NoError(t, err)
	azure, ok := data.Sheet("Azure Setup")
	require.True(t, ok)
	assert.Equal(t, 1, azure.FrozenRows)
	require.Len(t, azure.PrintAreas, 1)
	assert.Equal(t, models.PrintArea{R1: 1, C1: 1, R2: 8, C2: 4}, azure.PrintAreas[0])

	issues, err := Verify(path, content.Workbook(), opts)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestOptionsDefaults(t *testing.T) {
	var zero Options
	assert.Equal(t, DefaultHeaderStyle(), zero.HeaderStyleOrDefault())
	assert.Equal(t, 2, zero.Padding())
	assert.NotNil(t, zero.logger())

	light := InspectOptions{Mode: ModeLight}
	assert.False(t, light.ShouldIncludeLayout())
	assert.False(t, light.ShouldIncludePrintAreas())

	include := true
	light.IncludePrintAreas = &include
	assert.True(t, light.ShouldIncludePrintAreas())

	verbose := InspectOptions{Mode: ModeVerbose}
	assert.True(t, verbose.ShouldIncludeBodyStyles())
	assert.False(t, DefaultInspectOptions().ShouldIncludeBodyStyles())

	mode, ok := ParseMode("verbose")
	assert.True(t, ok)
	assert.Equal(t, ModeVerbose, mode)
	_, ok = ParseMode("loud")
	assert.False(t, ok)
}

func TestWriteRejectsSheetNamesDifferingOnlyInCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	wb := models.Workbook{
		Path: path,
		Sheets: []models.Sheet{
			{Name: "Data", Table: models.Table{Rows: [][]string{{"A"}, {"first"}}}},
			{Name: "data", Table: models.Table{Rows: [][]string{{"A"}, {"second"}}}},
		},
	}

	err := Write(wb, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDuplicateSheet)

	var te *models.TableError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "data", te.Sheet)

	_, statErr := os.Stat(path)
	assert.Error(t, statErr, "no file should be written")
}
