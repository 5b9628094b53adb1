package engine

import (
	"fmt"
)

// ============================================================================
// TABLE BUILDER — Produces TableData for the data grid, summary, and counts
// ============================================================================
// All functions operate on RecordView — zero-copy access to any data source.
// Column discovery uses view.Columns() so the header order is preserved.
// ============================================================================

// BuildDataTable produces one row per record. limit > 0 caps the rows; the
// number of omitted rows is reported in Truncated.
func BuildDataTable(view RecordView, title string, limit int) *TableData {
	keys := view.Columns()
	if view.Len() == 0 || len(keys) == 0 {
		return &TableData{
			Title:   title,
			Columns: []Column{},
			Rows:    [][]string{},
		}
	}

	numeric := make(map[string]bool, len(view.MeasureKeys()))
	for _, k := range view.MeasureKeys() {
		numeric[k] = true
	}

	columns := make([]Column, 0, len(keys))
	for _, key := range keys {
		col := Column{Key: key, Label: LabelForDimension(key), Type: "text", Align: "left"}
		if numeric[key] {
			col.Type = "number"
			col.Align = "right"
		}
		columns = append(columns, col)
	}

	n := view.Len()
	if limit > 0 && n > limit {
		n = limit
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, 0, len(keys))
		for _, key := range keys {
			if numeric[key] {
				if v, ok := view.Measure(i, key); ok {
					row = append(row, FormatNumber(v))
				} else {
					row = append(row, "")
				}
				continue
			}
			row = append(row, view.Dimension(i, key))
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:     title,
		Columns:   columns,
		Rows:      rows,
		Truncated: view.Len() - n,
		Summary: &Summary{
			Label:  fmt.Sprintf("Total (%s records)", FormatInt(view.Len())),
			Values: map[string]string{},
		},
	}
}

// summaryColumns are the statistic columns of the summary grid.
var summaryColumns = []Column{
	{Key: "column", Label: "Column", Type: "text", Align: "left"},
	{Key: "count", Label: "Count", Type: "number", Align: "right"},
	{Key: "unique", Label: "Unique", Type: "number", Align: "right"},
	{Key: "top", Label: "Top", Type: "text", Align: "left"},
	{Key: "freq", Label: "Freq", Type: "number", Align: "right"},
	{Key: "mean", Label: "Mean", Type: "number", Align: "right"},
	{Key: "std", Label: "Std", Type: "number", Align: "right"},
	{Key: "min", Label: "Min", Type: "number", Align: "right"},
	{Key: "q25", Label: "25%", Type: "number", Align: "right"},
	{Key: "q50", Label: "50%", Type: "number", Align: "right"},
	{Key: "q75", Label: "75%", Type: "number", Align: "right"},
	{Key: "max", Label: "Max", Type: "number", Align: "right"},
}

// BuildSummaryTable lays a SummaryTable out as one row per column. Cells for
// statistics that do not apply are blank.
func BuildSummaryTable(summary SummaryTable, title string) *TableData {
	rows := make([][]string, 0, len(summary.Columns))
	for _, c := range summary.Columns {
		row := make([]string, len(summaryColumns))
		row[0] = c.Column
		row[1] = FormatInt(c.Count)
		if t := c.Text; t != nil {
			row[2] = FormatInt(t.Unique)
			row[3] = t.Top
			row[4] = FormatInt(t.Freq)
		}
		if n := c.Numeric; n != nil {
			row[5] = FormatStat(n.Mean)
			row[6] = FormatStat(n.Std)
			row[7] = FormatStat(n.Min)
			row[8] = FormatStat(n.Q25)
			row[9] = FormatStat(n.Q50)
			row[10] = FormatStat(n.Q75)
			row[11] = FormatStat(n.Max)
		}
		rows = append(rows, row)
	}

	columns := make([]Column, len(summaryColumns))
	copy(columns, summaryColumns)

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label:  fmt.Sprintf("%s rows", FormatInt(summary.Rows)),
			Values: map[string]string{},
		},
	}
}

// BuildCountTable lays out (value, count) pairs under the given column name.
func BuildCountTable(counts CountSummary, column string) *TableData {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Value, fmt.Sprintf("%d", c.Count)})
	}

	return &TableData{
		Title: fmt.Sprintf("Articles by %s", LabelForDimension(column)),
		Columns: []Column{
			{Key: "value", Label: LabelForDimension(column), Type: "text", Align: "left"},
			{Key: "count", Label: "Quantity", Type: "number", Align: "right"},
		},
		Rows: rows,
		Summary: &Summary{
			Label:  "Total",
			Values: map[string]string{"count": fmt.Sprintf("%d", counts.Total())},
		},
	}
}
