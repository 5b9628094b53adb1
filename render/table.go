package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/spektr-org/newsdash/engine"
)

// MaxCellWidth caps rendered cell text; longer values are cut with "...".
const MaxCellWidth = 40

// Table renders td as a bordered grid. Numeric columns are right aligned,
// and a footer row is added when td carries a summary.
func Table(td *engine.TableData) string {
	if td == nil || len(td.Columns) == 0 {
		return NoData("No rows to show.")
	}

	headers := make([]string, len(td.Columns))
	right := make([]bool, len(td.Columns))
	for i, c := range td.Columns {
		headers[i] = truncateStr(c.Label, MaxCellWidth)
		right[i] = c.Align == "right"
	}

	rows := make([][]string, 0, len(td.Rows)+1)
	for _, r := range td.Rows {
		cells := make([]string, len(r))
		for i, v := range r {
			cells[i] = truncateStr(v, MaxCellWidth)
		}
		rows = append(rows, cells)
	}

	footer := -1
	if td.Summary != nil && td.Summary.Label != "" {
		cells := make([]string, len(td.Columns))
		cells[0] = td.Summary.Label
		for i, c := range td.Columns {
			if v, ok := td.Summary.Values[c.Key]; ok && i > 0 {
				cells[i] = v
			}
		}
		footer = len(rows)
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				s = headerCellStyle
			case row == footer:
				s = footerCellStyle
			default:
				s = cellStyle
			}
			if col < len(right) && right[col] {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	var b strings.Builder
	b.WriteString(t.Render())
	if td.Truncated > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("… %s more rows not shown", engine.FormatInt(td.Truncated))))
	}
	return b.String()
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
