package engine

import "sort"

// ============================================================================
// RECORD VIEW — Zero-Copy Data Access Interface
// ============================================================================
// The engine never owns consumer data. It reads through this interface.
//
// Implementations:
//   SliceView — wraps []Record (CSV snapshot, ad-hoc tables)
//   SubView   — filtered subset (indices into parent, zero-copy)
//
// The loaded dataset is a SliceView shared read-only by every session.
// Filtered views and groups are SubViews over it.
// ============================================================================

// RecordView provides indexed access to a dataset.
// The engine calls Dimension/Measure in tight loops — keep implementations fast.
type RecordView interface {
	Len() int
	Dimension(index int, key string) string
	Measure(index int, key string) (float64, bool)
	Columns() []string       // all columns in header order
	DimensionKeys() []string // text columns
	MeasureKeys() []string   // numeric columns
}

// ============================================================================
// SLICE VIEW — wraps []Record
// ============================================================================

// SliceView wraps a []Record slice as a RecordView.
// Used by helpers.ParseCSV and ad-hoc consumers.
type SliceView struct {
	records []Record
	columns []string
	dimKeys []string
	mesKeys []string
}

// NewSliceView creates a RecordView from a []Record slice.
// columns fixes the header order; when omitted it is derived from the
// records (dimensions first, then measures, in first-seen order).
func NewSliceView(records []Record, columns ...string) RecordView {
	v := &SliceView{records: records}
	v.cacheKeys(columns)
	return v
}

// EmptyView returns a view with no rows and no columns.
func EmptyView() RecordView {
	return &SliceView{}
}

func (v *SliceView) cacheKeys(columns []string) {
	dimSeen := make(map[string]bool)
	mesSeen := make(map[string]bool)
	for _, r := range v.records {
		for k := range r.Dimensions {
			dimSeen[k] = true
		}
		for k := range r.Measures {
			mesSeen[k] = true
		}
	}

	if len(columns) == 0 {
		columns = deriveColumns(v.records)
	}
	v.columns = columns

	for _, c := range columns {
		switch {
		case mesSeen[c] && !dimSeen[c]:
			v.mesKeys = append(v.mesKeys, c)
		default:
			v.dimKeys = append(v.dimKeys, c)
		}
	}
}

// deriveColumns lists keys in first-seen order when no header is known.
func deriveColumns(records []Record) []string {
	seen := make(map[string]bool)
	var dims, meas []string
	for _, r := range records {
		for _, k := range sortedKeys(r.Dimensions) {
			if !seen[k] {
				seen[k] = true
				dims = append(dims, k)
			}
		}
		for _, k := range sortedMeasureKeys(r.Measures) {
			if !seen[k] {
				seen[k] = true
				meas = append(meas, k)
			}
		}
	}
	return append(dims, meas...)
}

func (v *SliceView) Len() int { return len(v.records) }

func (v *SliceView) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.records) {
		return ""
	}
	return v.records[i].Dimensions[key]
}

func (v *SliceView) Measure(i int, key string) (float64, bool) {
	if i < 0 || i >= len(v.records) {
		return 0, false
	}
	val, ok := v.records[i].Measures[key]
	return val, ok
}

func (v *SliceView) Columns() []string       { return v.columns }
func (v *SliceView) DimensionKeys() []string { return v.dimKeys }
func (v *SliceView) MeasureKeys() []string   { return v.mesKeys }

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent RecordView.
// Holds indices into the parent — no data copy.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.parent.Dimension(v.indices[i], key)
}

func (v *SubView) Measure(i int, key string) (float64, bool) {
	if i < 0 || i >= len(v.indices) {
		return 0, false
	}
	return v.parent.Measure(v.indices[i], key)
}

func (v *SubView) Columns() []string       { return v.parent.Columns() }
func (v *SubView) DimensionKeys() []string { return v.parent.DimensionKeys() }
func (v *SubView) MeasureKeys() []string   { return v.parent.MeasureKeys() }

// ============================================================================
// VIEW HELPERS
// ============================================================================

// IsMeasure reports whether key is a numeric column of view.
func IsMeasure(view RecordView, key string) bool {
	for _, k := range view.MeasureKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// CellString returns a printable value for any column; missing cells are "".
func CellString(view RecordView, i int, key string) string {
	if IsMeasure(view, key) {
		if val, ok := view.Measure(i, key); ok {
			return FormatNumber(val)
		}
		return ""
	}
	return view.Dimension(i, key)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedMeasureKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
