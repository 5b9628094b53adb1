package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spektr-org/newsdash/engine"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

const (
	barRune   = "█"
	sliceRune = "█"
	dotRune   = "●"
)

// BarChart renders cfg as horizontal bars, one per point, each in its own
// color with the count printed after the bar.
func BarChart(cfg *engine.ChartConfig, width int) string {
	points := chartPoints(cfg)
	if len(points) == 0 {
		return NoData("Nothing to plot.")
	}
	if width <= 0 {
		width = DefaultWidth
	}

	labelW, valueW := 0, 0
	maxVal := 0.0
	for _, p := range points {
		labelW = max(labelW, lipgloss.Width(truncateStr(p.Label, MaxCellWidth/2)))
		valueW = max(valueW, len(engine.FormatNumber(p.Value)))
		maxVal = math.Max(maxVal, p.Value)
	}

	barSpace := width - labelW - valueW - 3
	if barSpace < 10 {
		barSpace = 10
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(cfg.Title))
	for _, p := range points {
		n := 0
		if maxVal > 0 {
			n = int(math.Round(p.Value / maxVal * float64(barSpace)))
		}
		if n == 0 && p.Value > 0 {
			n = 1
		}
		label := truncateStr(p.Label, MaxCellWidth/2)
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(strings.Repeat(barRune, n))

		b.WriteString("\n")
		b.WriteString(barLabelStyle.Render(padRight(label, labelW)))
		b.WriteString(" ")
		b.WriteString(bar)
		b.WriteString(" ")
		b.WriteString(barValueStyle.Render(engine.FormatNumber(p.Value)))
	}
	if cfg.YAxis != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%s per %s", cfg.YAxis, strings.ToLower(cfg.XAxis))))
	}
	return b.String()
}

// PieChart renders cfg as a proportional strip (one colored segment per
// slice) followed by a legend with counts and percentages.
func PieChart(cfg *engine.ChartConfig, width int) string {
	points := chartPoints(cfg)
	if len(points) == 0 {
		return NoData("Nothing to plot.")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	stripW := width - 2
	if stripW < 10 {
		stripW = 10
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	widths := sliceWidths(values, stripW)

	var strip strings.Builder
	for i, p := range points {
		strip.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(strings.Repeat(sliceRune, widths[i])))
	}

	labelW := 0
	for _, p := range points {
		labelW = max(labelW, lipgloss.Width(truncateStr(p.Label, MaxCellWidth/2)))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(cfg.Title))
	b.WriteString("\n")
	b.WriteString(strip.String())
	for _, p := range points {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(dotRune)
		b.WriteString("\n")
		b.WriteString(dot)
		b.WriteString(" ")
		b.WriteString(barLabelStyle.Render(padRight(truncateStr(p.Label, MaxCellWidth/2), labelW)))
		b.WriteString(" ")
		b.WriteString(barValueStyle.Render(fmt.Sprintf("%s (%.2f%%)", engine.FormatNumber(p.Value), p.Percent)))
	}
	return b.String()
}

// sliceWidths splits width cells in proportion to values. Widths come from
// rounding the running total, so they always sum to width, and every
// non-zero value keeps at least one cell while a wider slice can spare it.
func sliceWidths(values []float64, width int) []int {
	widths := make([]int, len(values))
	total := 0.0
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 || width <= 0 {
		return widths
	}

	cum, used := 0.0, 0
	for i, v := range values {
		if v > 0 {
			cum += v
		}
		end := int(math.Round(cum / total * float64(width)))
		widths[i] = end - used
		used = end
	}

	for i, v := range values {
		if v <= 0 || widths[i] > 0 {
			continue
		}
		widest := -1
		for j, w := range widths {
			if w > 1 && (widest < 0 || w > widths[widest]) {
				widest = j
			}
		}
		if widest < 0 {
			break
		}
		widths[widest]--
		widths[i] = 1
	}
	return widths
}

func chartPoints(cfg *engine.ChartConfig) []engine.ChartPoint {
	if cfg == nil || len(cfg.Series) == 0 {
		return nil
	}
	return cfg.Series[0].Data
}

func padRight(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
