// Package render draws the CLI's tabular output. Unlike the teacher's
// client-side terminal UI, which hand-padded cells with a strings.Repeat
// loop and drew its own separator line (with a runtime.GOOS branch for
// non-UTF8 terminals), this package lets lipgloss's Style.Width do the
// column alignment and wraps the result in a single bordered box.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a titled, bordered table for terminal output.
type Table struct {
	headers []string
	rows    [][]string
	title   string
}

// NewTable creates a Table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{headers: headers}
}

// WithTitle sets a title line rendered above the table.
func (t *Table) WithTitle(title string) *Table {
	t.title = title
	return t
}

// AddRow appends one row. Cells beyond len(headers) are ignored.
func (t *Table) AddRow(row []string) *Table {
	t.rows = append(t.rows, row)
	return t
}

// Render draws the table as a single bordered box: a header line, then
// one line per row, each cell width-aligned by lipgloss rather than by
// hand-built padding.
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	widths := columnWidths(t.headers, t.rows)

	lines := make([]string, 0, len(t.rows)+1)
	lines = append(lines, joinCells(t.headers, widths, tableHeaderStyle))
	for _, row := range t.rows {
		lines = append(lines, joinCells(row, widths, lipgloss.NewStyle()))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	var out strings.Builder
	if t.title != "" {
		out.WriteString("\n")
		out.WriteString(titleStyle.Render(t.title))
		out.WriteString("\n")
	}
	out.WriteString(box)
	out.WriteString("\n")

	return out.String()
}

// Print writes the rendered table to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

// columnWidths returns the rendered width lipgloss should reserve for
// each column, covering both the header and every row's cell in that
// position.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// joinCells styles and width-aligns each cell in row, then joins them
// with a column separator.
func joinCells(row []string, widths []int, cellStyle lipgloss.Style) string {
	cells := make([]string, len(widths))
	for i := range widths {
		text := ""
		if i < len(row) {
			text = row[i]
		}
		cells[i] = cellStyle.Width(widths[i]).Render(text)
	}
	return strings.Join(cells, " │ ")
}
