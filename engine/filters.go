package engine

// ============================================================================
// FILTERS — Category/Source Selection via RecordView
// ============================================================================
// Single-pass filter: checks ALL dimension constraints per record in one loop.
// Returns a SubView (index list into parent) — zero data copy, order kept.
//
// Membership is exact and case-sensitive. An empty set selects nothing;
// "select everything" is the presentation layer's job (see SelectAll).
// ============================================================================

// Filter returns the records whose category is in sel.Categories AND whose
// source is in sel.Sources. Column names come from WithCategoryColumn and
// WithSourceColumn (defaults "Category" and "Source").
func Filter(view RecordView, sel Selection, opts ...Option) RecordView {
	cfg := applyOptions(opts)
	return ApplyFilters(view, selectionFilters(sel, cfg))
}

// ApplyFilters returns a view of records matching all dimension filters.
// Dimensions are AND-combined; values within a dimension are OR-combined.
// No constrained dimension = no restriction (returns original view).
func ApplyFilters(view RecordView, filters Filters) RecordView {
	if filters.IsNil() {
		return view
	}

	type constraint struct {
		dim string
		set Set
	}
	constraints := make([]constraint, 0, len(filters.Dimensions))
	for dim, set := range filters.Dimensions {
		if len(set) == 0 {
			// Nothing can satisfy an empty selection.
			return newSubView(view, nil)
		}
		constraints = append(constraints, constraint{dim: dim, set: set})
	}

	// Single pass — record passes if it matches ALL dimension filters
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		pass := true
		for _, c := range constraints {
			if !c.set.Contains(view.Dimension(i, c.dim)) {
				pass = false
				break
			}
		}
		if pass {
			indices = append(indices, i)
		}
	}

	return newSubView(view, indices)
}

// SelectAll returns the selection of every category and source value present
// in view, including the empty string when a cell is missing.
func SelectAll(view RecordView, opts ...Option) Selection {
	cfg := applyOptions(opts)
	return Selection{
		Categories: NewSet(DistinctValues(view, cfg.CategoryColumn)...),
		Sources:    NewSet(DistinctValues(view, cfg.SourceColumn)...),
	}
}

func selectionFilters(sel Selection, cfg *config) Filters {
	categories := sel.Categories
	if categories == nil {
		categories = Set{}
	}
	sources := sel.Sources
	if sources == nil {
		sources = Set{}
	}

	if cfg.CategoryColumn == cfg.SourceColumn {
		// Same column on both axes: a value must be in both sets.
		both := Set{}
		for v := range categories {
			if sources.Contains(v) {
				both[v] = struct{}{}
			}
		}
		return Filters{Dimensions: map[string]Set{cfg.CategoryColumn: both}}
	}

	return Filters{Dimensions: map[string]Set{
		cfg.CategoryColumn: categories,
		cfg.SourceColumn:   sources,
	}}
}
