package engine

import (
	"reflect"
	"testing"
)

// ============================================================================
// FILTER TESTS
// ============================================================================

func rec(category, source string, extra ...string) Record {
	r := Record{
		Dimensions: map[string]string{"Category": category, "Source": source},
		Measures:   map[string]float64{},
	}
	for i := 0; i+1 < len(extra); i += 2 {
		r.Dimensions[extra[i]] = extra[i+1]
	}
	return r
}

// threeRowView is a minimal two-category, two-source snapshot.
func threeRowView() RecordView {
	return NewSliceView([]Record{
		rec("Politics", "A", "Title", "row1"),
		rec("Sports", "B", "Title", "row2"),
		rec("Politics", "B", "Title", "row3"),
	}, "Category", "Source", "Title")
}

// newsView is a larger mixed dataset.
func newsView() RecordView {
	records := []Record{
		rec("Politics", "G1", "Title", "Election results"),
		rec("Sports", "UOL", "Title", "Final match"),
		rec("Economy", "G1", "Title", "Inflation rises"),
		rec("Politics", "Folha", "Title", "Senate vote"),
		rec("Technology", "UOL", "Title", "New phone"),
		rec("Sports", "G1", "Title", "Transfer window"),
		rec("", "Folha", "Title", "Untagged story"),
		rec("Economy", "Estadao", "Title", "Market close"),
	}
	for i := range records {
		records[i].Measures["Views"] = float64((i + 1) * 100)
	}
	return NewSliceView(records, "Category", "Source", "Title", "Views")
}

func titles(view RecordView) []string {
	out := make([]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		out = append(out, view.Dimension(i, "Title"))
	}
	return out
}

func TestFilterSingleCategoryAllSources(t *testing.T) {
	got := Filter(threeRowView(), Selection{
		Categories: NewSet("Politics"),
		Sources:    NewSet("A", "B"),
	})

	want := []string{"row1", "row3"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Fatalf("Filter = %v, want %v", titles(got), want)
	}
}

func TestFilterIdempotent(t *testing.T) {
	view := newsView()
	sel := Selection{Categories: NewSet("Politics", "Sports"), Sources: NewSet("G1", "UOL")}

	once := Filter(view, sel)
	twice := Filter(once, sel)

	if !reflect.DeepEqual(titles(once), titles(twice)) {
		t.Errorf("filter not idempotent: %v vs %v", titles(once), titles(twice))
	}
	if once.Len() != 3 {
		t.Errorf("expected 3 rows, got %d", once.Len())
	}
}

func TestFilterMonotonic(t *testing.T) {
	view := newsView()
	small := Filter(view, Selection{Categories: NewSet("Politics"), Sources: NewSet("G1")})
	large := Filter(view, Selection{Categories: NewSet("Politics", "Economy"), Sources: NewSet("G1", "Folha")})

	inLarge := make(map[string]bool)
	for _, title := range titles(large) {
		inLarge[title] = true
	}
	for _, title := range titles(small) {
		if !inLarge[title] {
			t.Errorf("%q in smaller selection but missing from larger one", title)
		}
	}
}

func TestFilterFullSelectionIdentity(t *testing.T) {
	view := newsView()
	got := Filter(view, SelectAll(view))

	if !reflect.DeepEqual(titles(got), titles(view)) {
		t.Errorf("full selection changed rows: %v", titles(got))
	}
}

func TestFilterEmptySelection(t *testing.T) {
	view := newsView()

	if got := Filter(view, Selection{}); got.Len() != 0 {
		t.Errorf("nil sets: expected 0 rows, got %d", got.Len())
	}
	if got := Filter(view, Selection{Categories: NewSet(), Sources: NewSet()}); got.Len() != 0 {
		t.Errorf("empty sets: expected 0 rows, got %d", got.Len())
	}
	// One empty dimension is enough to select nothing.
	all := SelectAll(view)
	if got := Filter(view, Selection{Categories: all.Categories, Sources: NewSet()}); got.Len() != 0 {
		t.Errorf("empty sources: expected 0 rows, got %d", got.Len())
	}
}

func TestFilterUnknownValues(t *testing.T) {
	got := Filter(newsView(), Selection{
		Categories: NewSet("Weather", "Politics"),
		Sources:    NewSet("Nowhere", "G1"),
	})
	want := []string{"Election results"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("Filter = %v, want %v", titles(got), want)
	}

	none := Filter(newsView(), Selection{Categories: NewSet("Weather"), Sources: NewSet("Nowhere")})
	if none.Len() != 0 {
		t.Errorf("unknown-only selection should be empty, got %d", none.Len())
	}
}

func TestFilterCaseSensitive(t *testing.T) {
	got := Filter(newsView(), Selection{Categories: NewSet("politics"), Sources: NewSet("g1")})
	if got.Len() != 0 {
		t.Errorf("expected exact matching, got %d rows", got.Len())
	}
}

func TestFilterMissingCategoryPassThrough(t *testing.T) {
	view := newsView()
	got := Filter(view, Selection{Categories: NewSet(""), Sources: NewSet("Folha")})
	want := []string{"Untagged story"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("Filter = %v, want %v", titles(got), want)
	}

	all := SelectAll(view)
	if !all.Categories.Contains("") {
		t.Error("SelectAll should include the blank category")
	}
}

func TestFilterCustomColumns(t *testing.T) {
	view := NewSliceView([]Record{
		{Dimensions: map[string]string{"Categoria": "Esportes", "Fonte": "G1"}},
		{Dimensions: map[string]string{"Categoria": "Política", "Fonte": "G1"}},
	})

	got := Filter(view, Selection{Categories: NewSet("Esportes"), Sources: NewSet("G1")},
		WithCategoryColumn("Categoria"), WithSourceColumn("Fonte"))
	if got.Len() != 1 || got.Dimension(0, "Categoria") != "Esportes" {
		t.Errorf("custom columns: got %d rows", got.Len())
	}
}

func TestApplyFiltersNilIsIdentity(t *testing.T) {
	view := newsView()
	if got := ApplyFilters(view, Filters{}); got != view {
		t.Error("nil filters should return the view unchanged")
	}
}

func TestSetJSON(t *testing.T) {
	s := NewSet("b", "a")
	data, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `["a","b"]` {
		t.Errorf("MarshalJSON = %s", data)
	}

	var back Set
	if err := back.UnmarshalJSON([]byte(`["x","x","y"]`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if len(back) != 2 || !back.Contains("x") || !back.Contains("y") {
		t.Errorf("UnmarshalJSON = %v", back.Sorted())
	}

	var null Set
	if err := null.UnmarshalJSON([]byte(`null`)); err != nil {
		t.Fatalf("UnmarshalJSON(null): %v", err)
	}
	if null != nil {
		t.Error("null should leave the set nil")
	}
}
