package engine

import (
	"encoding/json"
	"strings"
	"testing"
)

// ============================================================================
// DASHBOARD PASS & BUILDER TESTS
// ============================================================================

func TestExecuteAllPanels(t *testing.T) {
	view := newsView()
	result := Execute(Request{Selection: SelectAll(view), Panels: AllPanels()}, view)

	if !result.Success || result.Empty || result.NoMatch {
		t.Fatalf("unexpected flags: %+v", result)
	}
	if result.Total != 8 || result.Matched != 8 {
		t.Errorf("Total/Matched = %d/%d", result.Total, result.Matched)
	}
	if result.TableData == nil || len(result.TableData.Rows) != 8 {
		t.Fatalf("table rows missing: %+v", result.TableData)
	}
	if result.Summary == nil || result.SummaryData == nil {
		t.Fatal("summary panel missing")
	}
	if result.CategoryChart == nil || result.CategoryChart.ChartType != "bar" {
		t.Fatalf("category chart = %+v", result.CategoryChart)
	}
	if result.SourceChart == nil || result.SourceChart.ChartType != "pie" {
		t.Fatalf("source chart = %+v", result.SourceChart)
	}
	if result.SourceChart.Hole != PieHole {
		t.Errorf("pie hole = %v", result.SourceChart.Hole)
	}

	// value_counts ordering: G1 (3) leads the sources.
	if result.SourceCounts[0].Value != "G1" || result.SourceCounts[0].Count != 3 {
		t.Errorf("first source = %+v", result.SourceCounts[0])
	}
	if !strings.Contains(result.Reply, "Showing 8 of 8 articles") {
		t.Errorf("reply = %q", result.Reply)
	}
}

func TestExecutePanelsAreOptional(t *testing.T) {
	view := newsView()
	result := Execute(Request{Selection: SelectAll(view), Panels: Panels{CategoryChart: true}}, view)

	if result.TableData != nil || result.Summary != nil || result.SourceChart != nil {
		t.Error("only the category chart was requested")
	}
	if result.CategoryChart == nil {
		t.Error("category chart missing")
	}
}

func TestExecuteNoMatch(t *testing.T) {
	view := newsView()
	result := Execute(Request{Selection: Selection{}, Panels: AllPanels()}, view)

	if !result.Success || !result.NoMatch || result.Empty {
		t.Fatalf("flags = %+v", result)
	}
	if result.Matched != 0 || result.TableData != nil {
		t.Errorf("no panels expected on an empty match: %+v", result)
	}
	if result.Reply != replyNoMatch {
		t.Errorf("reply = %q", result.Reply)
	}
}

func TestExecuteEmptyDataset(t *testing.T) {
	result := Execute(Request{Panels: AllPanels()}, EmptyView())
	if !result.Success || !result.Empty {
		t.Fatalf("flags = %+v", result)
	}
	if result.Reply != replyEmpty {
		t.Errorf("reply = %q", result.Reply)
	}
}

func TestExecuteLoadedZeroRows(t *testing.T) {
	view := NewSliceView(nil, "Category", "Source")

	result := Execute(Request{Panels: AllPanels()}, view, WithEmptyDataset(false))
	if result.Empty || !result.NoMatch {
		t.Fatalf("flags = %+v", result)
	}
	if result.Reply != replyNoMatch {
		t.Errorf("reply = %q", result.Reply)
	}

	missing := Execute(Request{Panels: AllPanels()}, EmptyView(), WithEmptyDataset(true))
	if !missing.Empty || missing.Reply != replyEmpty {
		t.Errorf("flags = %+v", missing)
	}
}

func TestExecuteRowLimit(t *testing.T) {
	view := newsView()
	result := Execute(Request{Selection: SelectAll(view), Panels: Panels{Table: true}}, view, WithRowLimit(3))
	if len(result.TableData.Rows) != 3 || result.TableData.Truncated != 5 {
		t.Errorf("rows = %d truncated = %d", len(result.TableData.Rows), result.TableData.Truncated)
	}
}

func TestExecuteResultJSON(t *testing.T) {
	view := newsView()
	result := Execute(Request{Selection: SelectAll(view), Panels: AllPanels()}, view)
	if _, err := json.Marshal(result); err != nil {
		t.Fatalf("result should marshal: %v", err)
	}
}

func TestBuildDataTableCells(t *testing.T) {
	table := BuildDataTable(newsView(), "grid", 0)

	if len(table.Columns) != 4 {
		t.Fatalf("columns = %d", len(table.Columns))
	}
	if table.Columns[3].Key != "Views" || table.Columns[3].Type != "number" {
		t.Errorf("Views column = %+v", table.Columns[3])
	}
	if got := table.Rows[0]; got[0] != "Politics" || got[3] != "100" {
		t.Errorf("first row = %v", got)
	}
}

func TestBuildSummaryTableBlankCells(t *testing.T) {
	table := BuildSummaryTable(Describe(newsView()), "summary")
	if len(table.Rows) != 4 {
		t.Fatalf("rows = %d", len(table.Rows))
	}
	category := table.Rows[0]
	if category[3] != "Politics" || category[5] != "" {
		t.Errorf("category row = %v", category)
	}
	views := table.Rows[3]
	if views[3] != "" || views[5] != "450" {
		t.Errorf("views row = %v", views)
	}
}

func TestBuildCharts(t *testing.T) {
	counts := CountSummary{{"Politics", 3}, {"", 1}}

	bar := BuildBarChart(counts, "Category", "")
	if bar.Title != "Articles by Category" || len(bar.Series[0].Data) != 2 {
		t.Fatalf("bar = %+v", bar)
	}
	if bar.Series[0].Data[1].Label != "(blank)" {
		t.Errorf("blank label = %q", bar.Series[0].Data[1].Label)
	}

	pie := BuildPieChart(counts, "Source", "")
	if pie.Series[0].Data[0].Percent != 75 {
		t.Errorf("percent = %v", pie.Series[0].Data[0].Percent)
	}

	if BuildBarChart(nil, "Category", "") != nil || BuildPieChart(nil, "Source", "") != nil {
		t.Error("charts over empty counts should be nil")
	}

	countTable := BuildCountTable(counts, "Category")
	if countTable.Columns[1].Label != "Quantity" || countTable.Summary.Values["count"] != "4" {
		t.Errorf("count table = %+v", countTable)
	}
}
