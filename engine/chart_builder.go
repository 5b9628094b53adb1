package engine

// ============================================================================
// CHART BUILDER — Produces ChartConfig from count summaries
// ============================================================================
// Bar: one bar per category, colored per bar, counts printed on the bars.
// Pie: one slice per source with its share of the total, donut hole 0.4.
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// PieHole is the donut ratio used for proportional charts.
const PieHole = 0.4

// BuildBarChart produces a bar chart of counts for column.
// Returns nil when there is nothing to plot.
func BuildBarChart(counts CountSummary, column string, title string) *ChartConfig {
	if len(counts) == 0 {
		return nil
	}
	if title == "" {
		title = "Articles by " + LabelForDimension(column)
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      title,
		XAxis:      LabelForDimension(column),
		YAxis:      "Quantity",
		Series:     buildSeries(counts, "Quantity"),
		Colors:     assignColors(len(counts)),
		ShowLegend: true,
		ShowGrid:   true,
		ShowValues: true,
	}
}

// BuildPieChart produces a proportional chart of counts for column.
// Returns nil when there is nothing to plot.
func BuildPieChart(counts CountSummary, column string, title string) *ChartConfig {
	if len(counts) == 0 {
		return nil
	}
	if title == "" {
		title = "Share of articles by " + LabelForDimension(column)
	}

	return &ChartConfig{
		ChartType:  "pie",
		Title:      title,
		Series:     buildSeries(counts, LabelForDimension(column)),
		Colors:     assignColors(len(counts)),
		Hole:       PieHole,
		ShowLegend: true,
		ShowGrid:   false,
		ShowValues: true,
	}
}

// ============================================================================
// SERIES BUILDERS
// ============================================================================

func buildSeries(counts CountSummary, seriesName string) []ChartSeries {
	total := counts.Total()
	points := make([]ChartPoint, 0, len(counts))
	for i, c := range counts {
		points = append(points, ChartPoint{
			Label:   LabelForValue(c.Value),
			Value:   float64(c.Count),
			Percent: RoundTo(Percent(c.Count, total), 2),
			Color:   defaultColors[i%len(defaultColors)],
		})
	}

	return []ChartSeries{{
		Name: seriesName,
		Data: points,
	}}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
