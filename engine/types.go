package engine

import (
	"encoding/json"
	"sort"
)

// ============================================================================
// NEWSDASH ENGINE TYPES — Article Table Filtering & Aggregation
// ============================================================================
// Record carries one row of the article snapshot. Text columns live in
// Dimensions, numeric columns in Measures. A missing cell is an absent key.
//
// Dependency: engine has ZERO external dependencies.
// ============================================================================

// Default column names for the two filterable attributes.
const (
	DefaultCategoryColumn = "Category"
	DefaultSourceColumn   = "Source"
)

// ============================================================================
// RECORD — Generic data row
// ============================================================================

// Record is a single data row with string dimensions and numeric measures.
//
//	Record{Dimensions: {"Category": "Politics", "Source": "G1", "Title": "..."},
//	       Measures:   {"Views": 1532}}
type Record struct {
	Dimensions map[string]string  `json:"dimensions"`
	Measures   map[string]float64 `json:"measures"`
}

// ============================================================================
// SELECTION — Filter Selection
// ============================================================================

// Set is a hash set of strings.
type Set map[string]struct{}

// NewSet builds a Set from values. Duplicates collapse.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is a member.
func (s Set) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Values returns the members in no particular order.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := s.Values()
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s Set) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array into the set. null leaves the set nil.
func (s *Set) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if values == nil {
		*s = nil
		return nil
	}
	*s = NewSet(values...)
	return nil
}

// Selection holds the user-chosen category and source values.
// An empty set selects nothing; "select all" is built with SelectAll.
type Selection struct {
	Categories Set `json:"categories"`
	Sources    Set `json:"sources"`
}

// Filters define which records to include.
// Keys are dimension names, values are the accepted values.
// OR within a dimension, AND across dimensions.
// A listed dimension with an empty set matches nothing.
type Filters struct {
	Dimensions map[string]Set `json:"dimensions"`
}

// IsNil returns true if no dimension is constrained at all.
func (f Filters) IsNil() bool {
	return len(f.Dimensions) == 0
}

// ============================================================================
// COUNT SUMMARY
// ============================================================================

// Count is one (value, frequency) pair.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CountSummary maps distinct values to frequencies, in first-seen order.
type CountSummary []Count

// Total sums all counts.
func (c CountSummary) Total() int {
	total := 0
	for _, e := range c {
		total += e.Count
	}
	return total
}

// Map returns the summary as a value → count map.
func (c CountSummary) Map() map[string]int {
	m := make(map[string]int, len(c))
	for _, e := range c {
		m[e.Value] = e.Count
	}
	return m
}

// ============================================================================
// SUMMARY TABLE — Descriptive statistics
// ============================================================================

// ColumnKind tells numeric columns from text columns.
type ColumnKind string

const (
	KindNumeric ColumnKind = "numeric"
	KindText    ColumnKind = "text"
)

// SummaryTable holds per-column descriptive statistics.
type SummaryTable struct {
	Rows    int             `json:"rows"`
	Columns []ColumnSummary `json:"columns"`
}

// ColumnSummary describes one column. Count is always set; exactly one of
// Numeric or Text is populated when Count > 0.
type ColumnSummary struct {
	Column  string        `json:"column"`
	Kind    ColumnKind    `json:"kind"`
	Count   int           `json:"count"`
	Numeric *NumericStats `json:"numeric,omitempty"`
	Text    *TextStats    `json:"text,omitempty"`
}

// NumericStats are computed over non-missing values only.
// Std is the sample standard deviation, zero for fewer than two values.
type NumericStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Q25  float64 `json:"q25"`
	Q50  float64 `json:"q50"`
	Q75  float64 `json:"q75"`
	Max  float64 `json:"max"`
}

// TextStats are computed over non-empty values only.
type TextStats struct {
	Unique int    `json:"unique"`
	Top    string `json:"top"`
	Freq   int    `json:"freq"`
}

// Lookup finds a column summary by name.
func (s SummaryTable) Lookup(column string) (ColumnSummary, bool) {
	for _, c := range s.Columns {
		if c.Column == column {
			return c, true
		}
	}
	return ColumnSummary{}, false
}

// ============================================================================
// DASHBOARD REQUEST / RESULT
// ============================================================================

// Panels selects which outputs a dashboard pass builds.
type Panels struct {
	Table         bool `json:"table"`
	Summary       bool `json:"summary"`
	CategoryChart bool `json:"categoryChart"`
	SourceChart   bool `json:"sourceChart"`
}

// AllPanels enables every panel.
func AllPanels() Panels {
	return Panels{Table: true, Summary: true, CategoryChart: true, SourceChart: true}
}

// Any reports whether at least one panel is enabled.
func (p Panels) Any() bool {
	return p.Table || p.Summary || p.CategoryChart || p.SourceChart
}

// Request is one dashboard interaction.
type Request struct {
	Selection Selection `json:"selection"`
	Panels    Panels    `json:"panels"`
}

// Result is the engine's render-ready output for one pass.
type Result struct {
	Success bool   `json:"success"`
	Empty   bool   `json:"empty"`   // no dataset loaded
	NoMatch bool   `json:"noMatch"` // dataset loaded, nothing selected
	Reply   string `json:"reply"`
	Total   int    `json:"total"`
	Matched int    `json:"matched"`

	TableData      *TableData    `json:"tableData,omitempty"`
	Summary        *SummaryTable `json:"summary,omitempty"`
	SummaryData    *TableData    `json:"summaryData,omitempty"`
	CategoryCounts CountSummary  `json:"categoryCounts,omitempty"`
	SourceCounts   CountSummary  `json:"sourceCounts,omitempty"`
	CategoryChart  *ChartConfig  `json:"categoryChart,omitempty"`
	SourceChart    *ChartConfig  `json:"sourceChart,omitempty"`

	Filtered RecordView `json:"-"`
}

// ============================================================================
// GROUP — Intermediate computation result
// ============================================================================

// Group is a set of rows sharing one value of a grouping column.
type Group struct {
	Key   string     `json:"key"`
	Count int        `json:"count"`
	View  RecordView `json:"-"` // sub-view for records in this group (zero-copy)
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "bar", "pie"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	Hole       float64       `json:"hole,omitempty"` // donut ratio for pie charts
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
	ShowValues bool          `json:"showValues"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent,omitempty"`
	Color   string  `json:"color,omitempty"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title     string     `json:"title"`
	Columns   []Column   `json:"columns"`
	Rows      [][]string `json:"rows"`
	Truncated int        `json:"truncated,omitempty"` // rows omitted by the row limit
	Summary   *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}
