package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"loan-amortizer/domain"
)

var (
	ColorBorder = lipgloss.Color("#575653")
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorAccent = lipgloss.Color("#3AA99F")
	ColorGreen  = lipgloss.Color("#879A39")
	ColorMuted  = lipgloss.Color("#6F6E69")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	borderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Table is a bordered text table. Cells are right-aligned except the first
// column.
type Table struct {
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a title inside a rounded box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 2)
	return box.Render(titleStyle.Render(title))
}

// RenderTable renders t with box-drawing borders.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < numCols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(left, mid, right string) string {
		parts := make([]string, numCols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return borderStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
	}

	cell := func(i int, s string) string {
		if i == 0 {
			return fmt.Sprintf(" %-*s ", widths[i], s)
		}
		return fmt.Sprintf(" %*s ", widths[i], s)
	}

	var b strings.Builder
	b.WriteString(line("╭", "┬", "╮"))

	sep := borderStyle.Render("│")
	b.WriteString(sep)
	for i, h := range t.Headers {
		b.WriteString(headerStyle.Render(cell(i, h)))
		b.WriteString(sep)
	}
	b.WriteString("\n")
	b.WriteString(line("├", "┼", "┤"))

	for _, row := range t.Rows {
		b.WriteString(sep)
		for i := 0; i < numCols; i++ {
			var v string
			if i < len(row) {
				v = row[i]
			}
			b.WriteString(cell(i, v))
			b.WriteString(sep)
		}
		b.WriteString("\n")
	}

	b.WriteString(line("╰", "┴", "╯"))
	return b.String()
}

// ScheduleTable lays out a schedule as a Table.
func ScheduleTable(result domain.ScheduleResult) Table {
	t := Table{
		Headers: []string{"Month", "Period", "Payment", "Interest", "Principal", "Extra", "Balance"},
		Rows:    make([][]string, 0, len(result.Rows)),
	}
	for _, row := range result.Rows {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", row.Idx),
			row.Period.String(),
			FormatMoney(row.Payment),
			FormatMoney(row.Interest),
			FormatMoney(row.Principal),
			FormatMoney(row.Extra),
			FormatMoney(row.Balance),
		})
	}
	return t
}

// RenderSummary renders label/value pairs, one per line.
func RenderSummary(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}

	var b strings.Builder
	for _, p := range pairs {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", width, p[0])))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(p[1]))
		b.WriteString("\n")
	}
	return b.String()
}
