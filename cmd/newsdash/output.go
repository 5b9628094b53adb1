package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spektr-org/newsdash/engine"
)

// ============================================================================
// CSV OUTPUT — newsdash → Sheets-ready CSV
// ============================================================================

// writeCSV writes the first panel present in result: table, summary,
// category counts, source counts. Without any panel the reply is written
// as a single row.
func writeCSV(w io.Writer, result *engine.Result) error {
	cw := csv.NewWriter(w)

	switch {
	case result == nil:
		cw.Write([]string{"Result", "No data"})
	case result.TableData != nil:
		writeTableCSV(cw, result.TableData)
	case result.SummaryData != nil:
		writeTableCSV(cw, result.SummaryData)
	case result.CategoryChart != nil:
		writeChartCSV(cw, result.CategoryChart)
	case result.SourceChart != nil:
		writeChartCSV(cw, result.SourceChart)
	default:
		reply := result.Reply
		if reply == "" {
			reply = "No data"
		}
		cw.Write([]string{"Summary"})
		cw.Write([]string{reply})
	}

	cw.Flush()
	return cw.Error()
}

func writeChartCSV(cw *csv.Writer, chart *engine.ChartConfig) {
	if len(chart.Series) == 0 {
		return
	}

	xLabel := chart.XAxis
	yLabel := chart.YAxis
	if xLabel == "" {
		xLabel = chart.Series[0].Name
	}
	if yLabel == "" {
		yLabel = "Quantity"
	}

	cw.Write([]string{xLabel, yLabel, "Percent"})
	for _, d := range chart.Series[0].Data {
		cw.Write([]string{d.Label, engine.FormatNumber(d.Value), fmt.Sprintf("%.2f", d.Percent)})
	}
}

func writeTableCSV(cw *csv.Writer, table *engine.TableData) {
	headers := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		headers[i] = c.Key
	}
	cw.Write(headers)
	for _, row := range table.Rows {
		cw.Write(row)
	}
}

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w io.Writer, v any, format string) error {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}
