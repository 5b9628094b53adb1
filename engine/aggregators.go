package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ============================================================================
// AGGREGATORS — Grouping, Counting, and Sorting via RecordView
// ============================================================================
// All functions operate on RecordView — zero-copy access to any data source.
// Grouping produces SubViews (index lists into parent view).
// ============================================================================

// Count sort modes.
const (
	SortCountDesc = "count_desc"
	SortCountAsc  = "count_asc"
	SortLabelAsc  = "label_asc"
	SortLabelDesc = "label_desc"
	SortNone      = ""
)

// ValidCountSort reports whether mode is a known count ordering.
func ValidCountSort(mode string) bool {
	switch mode {
	case SortCountDesc, SortCountAsc, SortLabelAsc, SortLabelDesc, SortNone:
		return true
	}
	return false
}

// CountBy groups rows by the distinct values of column and counts each group.
// Pairs come back in first-seen order. Numeric columns group by their
// formatted value; missing cells group under "".
func CountBy(view RecordView, column string) CountSummary {
	groups := GroupBy(view, column)
	counts := make(CountSummary, 0, len(groups))
	for _, g := range groups {
		counts = append(counts, Count{Value: g.Key, Count: g.Count})
	}
	return counts
}

// ============================================================================
// GROUPING
// ============================================================================

// GroupBy partitions view by column value, first-seen order.
func GroupBy(view RecordView, column string) []Group {
	if view.Len() == 0 {
		return nil
	}

	numeric := IsMeasure(view, column)
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		var key string
		if numeric {
			key = CellString(view, i, column)
		} else {
			key = view.Dimension(i, column)
		}
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{
			Key:   key,
			Count: len(grouped[key]),
			View:  newSubView(view, grouped[key]),
		})
	}
	return groups
}

// DistinctValues returns the distinct values of a text column in first-seen
// order. The empty string is included when present.
func DistinctValues(view RecordView, column string) []string {
	seen := make(map[string]bool)
	var result []string
	for i := 0; i < view.Len(); i++ {
		val := view.Dimension(i, column)
		if !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}

// ============================================================================
// SORTING
// ============================================================================

// SortCounts returns a sorted copy of counts. Ties keep grouping order.
func SortCounts(counts CountSummary, mode string) CountSummary {
	out := make(CountSummary, len(counts))
	copy(out, counts)

	switch mode {
	case SortCountDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	case SortCountAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Count < out[j].Count })
	case SortLabelAsc:
		sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Value) < strings.ToLower(out[j].Value) })
	case SortLabelDesc:
		sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Value) > strings.ToLower(out[j].Value) })
	default:
		// preserve grouping order
	}
	return out
}

// Sorted is SortCounts as a method.
func (c CountSummary) Sorted(mode string) CountSummary {
	return SortCounts(c, mode)
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// FormatNumber prints whole numbers without decimals and others with up to
// four significant decimals.
func FormatNumber(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(RoundTo(v, 4), 'f', -1, 64)
}

// FormatStat prints a statistic with six significant digits.
func FormatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Percent returns part/total as a percentage, 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// LabelForDimension returns a capitalized label for a column.
func LabelForDimension(dimension string) string {
	if len(dimension) == 0 {
		return ""
	}
	return strings.ToUpper(dimension[:1]) + dimension[1:]
}

// LabelForValue shows missing values as "(blank)".
func LabelForValue(value string) string {
	if value == "" {
		return "(blank)"
	}
	return value
}
