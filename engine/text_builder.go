package engine

import (
	"fmt"
)

// ============================================================================
// TEXT BUILDER — One-line summaries for a dashboard pass
// ============================================================================

const (
	replyEmpty   = "No articles available. Run the data collection first."
	replyNoMatch = "No articles match the selected categories and sources."
)

// BuildText describes a filtered view relative to the full dataset. total is
// the dataset's row count; without WithEmptyDataset a zero total means no data.
func BuildText(view RecordView, total int, opts ...Option) string {
	cfg := applyOptions(opts)
	if cfg.isEmpty(total) {
		return replyEmpty
	}
	if view.Len() == 0 {
		return replyNoMatch
	}

	categories := len(DistinctValues(view, cfg.CategoryColumn))
	sources := len(DistinctValues(view, cfg.SourceColumn))

	return fmt.Sprintf("Showing %s of %s articles across %s and %s.",
		FormatInt(view.Len()), FormatInt(total),
		plural(categories, "category", "categories"),
		plural(sources, "source", "sources"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", one)
	}
	return fmt.Sprintf("%s %s", FormatInt(n), many)
}
