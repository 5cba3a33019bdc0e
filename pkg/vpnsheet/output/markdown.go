package output

import (
	"fmt"
	"strings"

	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"
)

// TablesToMarkdown renders each sheet of a workbook definition as a heading
// followed by a pipe table.
func TablesToMarkdown(wb models.Workbook) string {
	var b strings.Builder
	for i, sheet := range wb.Sheets {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", sheet.Name)
		writeTable(&b, sheet.Table.Header(), sheet.Table.Body())
	}
	return b.String()
}

// ToMarkdown renders inspected workbook data.
func ToMarkdown(wb *models.WorkbookData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", wb.BookName)

	for _, sheet := range wb.Sheets {
		fmt.Fprintf(&b, "\n## %s\n\n", sheet.Name)
		if sheet.RowCount > 0 {
			fmt.Fprintf(&b, "- Rows: %d\n- Columns: %d\n", sheet.RowCount, sheet.ColumnCount)
		}
		if len(sheet.TableCandidates) > 0 {
			fmt.Fprintf(&b, "- Table: %s\n", strings.Join(sheet.TableCandidates, ", "))
		}
		if len(sheet.ColumnWidths) > 0 {
			widths := make([]string, len(sheet.ColumnWidths))
			for i, w := range sheet.ColumnWidths {
				widths[i] = fmt.Sprintf("%g", w)
			}
			fmt.Fprintf(&b, "- Widths: %s\n", strings.Join(widths, ", "))
		}
		if len(sheet.Rows) == 0 {
			continue
		}

		b.WriteString("\n")
		body := make([][]string, 0, len(sheet.Rows)-1)
		for _, row := range sheet.Rows[1:] {
			body = append(body, row.C)
		}
		writeTable(&b, sheet.Rows[0].C, body)
	}
	return b.String()
}

func writeTable(b *strings.Builder, header []string, body [][]string) {
	writeRow(b, header)
	seps := make([]string, len(header))
	for i := range seps {
		seps[i] = "---"
	}
	writeRow(b, seps)
	for _, row := range body {
		writeRow(b, row)
	}
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(escapeCell(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

// escapeCell keeps multi-line cells on one Markdown row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}
