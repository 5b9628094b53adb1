package engine

import (
	"math"
	"sort"
)

// ============================================================================
// DESCRIBE — Per-column descriptive statistics
// ============================================================================
// Numeric columns: count, mean, std, min, quartiles, max.
// Text columns:    count, unique, top, freq.
// Missing cells are excluded everywhere, never read as zero. For text
// columns the empty string is missing.
// ============================================================================

// Describe summarizes every column of view in header order.
// A zero-row view yields Count == 0 for each column and no stats.
func Describe(view RecordView) SummaryTable {
	columns := view.Columns()
	table := SummaryTable{
		Rows:    view.Len(),
		Columns: make([]ColumnSummary, 0, len(columns)),
	}

	numeric := make(map[string]bool, len(view.MeasureKeys()))
	for _, k := range view.MeasureKeys() {
		numeric[k] = true
	}

	for _, col := range columns {
		if numeric[col] {
			table.Columns = append(table.Columns, describeNumeric(view, col))
		} else {
			table.Columns = append(table.Columns, describeText(view, col))
		}
	}
	return table
}

func describeNumeric(view RecordView, column string) ColumnSummary {
	summary := ColumnSummary{Column: column, Kind: KindNumeric}

	values := make([]float64, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		if v, ok := view.Measure(i, column); ok && !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	summary.Count = len(values)
	if len(values) == 0 {
		return summary
	}

	// Welford's running mean / variance
	var mean, m2 float64
	for i, v := range values {
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}

	sort.Float64s(values)
	stats := &NumericStats{
		Mean: mean,
		Min:  values[0],
		Q25:  quantile(values, 0.25),
		Q50:  quantile(values, 0.5),
		Q75:  quantile(values, 0.75),
		Max:  values[len(values)-1],
	}
	if len(values) > 1 {
		stats.Std = math.Sqrt(m2 / float64(len(values)-1))
	}
	summary.Numeric = stats
	return summary
}

func describeText(view RecordView, column string) ColumnSummary {
	summary := ColumnSummary{Column: column, Kind: KindText}

	freq := make(map[string]int)
	var order []string
	for i := 0; i < view.Len(); i++ {
		v := view.Dimension(i, column)
		if v == "" {
			continue
		}
		if _, seen := freq[v]; !seen {
			order = append(order, v)
		}
		freq[v]++
		summary.Count++
	}
	if summary.Count == 0 {
		return summary
	}

	stats := &TextStats{Unique: len(order)}
	for _, v := range order {
		if freq[v] > stats.Freq {
			stats.Top = v
			stats.Freq = freq[v]
		}
	}
	summary.Text = stats
	return summary
}

// quantile interpolates linearly between closest ranks of a sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
