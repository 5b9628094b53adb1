package engine

import (
	"log"
)

// ============================================================================
// EXECUTOR — One dashboard pass
// ============================================================================
// Entry point: Execute(req, view, opts...)
//
// Pipeline:
//   1. Empty dataset → explicit Empty result (see WithEmptyDataset)
//   2. Filter by the request's Selection → SubView
//   3. Zero matches → NoMatch result (a valid value, not an error)
//   4. Build each requested panel (grid, summary, category bar, source pie)
//   5. Return Result
//
// Nothing here is cached. Every call recomputes from the shared view.
// ============================================================================

// Execute runs one filter → aggregate → build pass over view.
//
// Options:
//   - WithCategoryColumn / WithSourceColumn — filter columns
//   - WithRowLimit(n) — cap data grid rows
//   - WithCountSort(mode) — chart ordering (default count_desc)
//   - WithEmptyDataset(empty) — whether the view stands for missing data
func Execute(req Request, view RecordView, opts ...Option) *Result {
	cfg := applyOptions(opts)
	total := view.Len()

	if cfg.isEmpty(total) {
		return &Result{
			Success: true,
			Empty:   true,
			Reply:   replyEmpty,
		}
	}

	// 1. Filter → SubView (zero-copy)
	filtered := Filter(view, req.Selection, opts...)

	log.Printf("🔧 newsdash: %d of %d articles selected (%d categories, %d sources)",
		filtered.Len(), total, len(req.Selection.Categories), len(req.Selection.Sources))

	result := &Result{
		Success:  true,
		Total:    total,
		Matched:  filtered.Len(),
		Filtered: filtered,
		Reply:    BuildText(filtered, total, opts...),
	}

	if filtered.Len() == 0 {
		result.NoMatch = true
		return result
	}

	// 2. Build requested panels
	p := req.Panels
	if p.Table {
		result.TableData = BuildDataTable(filtered, "Article data", cfg.RowLimit)
	}
	if p.Summary {
		summary := Describe(filtered)
		result.Summary = &summary
		result.SummaryData = BuildSummaryTable(summary, "Summary statistics")
	}
	if p.CategoryChart {
		result.CategoryCounts = SortCounts(CountBy(filtered, cfg.CategoryColumn), cfg.CountSort)
		result.CategoryChart = BuildBarChart(result.CategoryCounts, cfg.CategoryColumn,
			"Articles by "+LabelForDimension(cfg.CategoryColumn))
	}
	if p.SourceChart {
		result.SourceCounts = SortCounts(CountBy(filtered, cfg.SourceColumn), cfg.CountSort)
		result.SourceChart = BuildPieChart(result.SourceCounts, cfg.SourceColumn,
			"Share of articles by "+LabelForDimension(cfg.SourceColumn))
	}

	return result
}
