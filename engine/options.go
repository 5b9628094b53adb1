package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Filter() and Execute()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	CategoryColumn string // column holding the article category
	SourceColumn   string // column holding the publishing source
	RowLimit       int    // data grid row cap, 0 = all
	CountSort      string // chart ordering, see SortCounts
	EmptySet       bool   // Empty was given explicitly
	Empty          bool   // no data behind the view
}

// WithCategoryColumn sets the column filtered by Selection.Categories.
func WithCategoryColumn(column string) Option {
	return func(c *config) {
		if column != "" {
			c.CategoryColumn = column
		}
	}
}

// WithSourceColumn sets the column filtered by Selection.Sources.
func WithSourceColumn(column string) Option {
	return func(c *config) {
		if column != "" {
			c.SourceColumn = column
		}
	}
}

// WithRowLimit caps the rows placed in the data grid. 0 keeps every row.
func WithRowLimit(limit int) Option {
	return func(c *config) {
		if limit >= 0 {
			c.RowLimit = limit
		}
	}
}

// WithCountSort sets how chart counts are ordered ("count_desc", "count_asc",
// "label_asc", "label_desc", or "" for grouping order).
func WithCountSort(mode string) Option {
	return func(c *config) {
		c.CountSort = mode
	}
}

// WithEmptyDataset marks whether the view comes from a dataset that failed to
// load. Without it a zero-row view counts as empty. With it a zero-row view
// from a loaded snapshot yields NoMatch instead.
func WithEmptyDataset(empty bool) Option {
	return func(c *config) {
		c.EmptySet = true
		c.Empty = empty
	}
}

// isEmpty reports whether a dataset of total rows stands for missing data.
func (c *config) isEmpty(total int) bool {
	if c.EmptySet {
		return c.Empty
	}
	return total == 0
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		CategoryColumn: DefaultCategoryColumn,
		SourceColumn:   DefaultSourceColumn,
		CountSort:      SortCountDesc, // matches value_counts ordering
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
