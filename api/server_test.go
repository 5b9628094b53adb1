package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/spektr-org/newsdash/dataset"
	"github.com/spektr-org/newsdash/engine"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testDataset() *dataset.Dataset {
	rec := func(cat, src, title string, views float64) engine.Record {
		return engine.Record{
			Dimensions: map[string]string{"Category": cat, "Source": src, "Title": title},
			Measures:   map[string]float64{"Views": views},
		}
	}
	view := engine.NewSliceView([]engine.Record{
		rec("Politics", "A", "Vote", 10),
		rec("Sports", "B", "Match", 20),
		rec("Politics", "B", "Debate", 30),
	}, "Category", "Source", "Title", "Views")
	return &dataset.Dataset{Path: "news.csv", View: view, CategoryColumn: "Category", SourceColumn: "Source"}
}

func emptyDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Path:           "missing.csv",
		View:           engine.EmptyView(),
		CategoryColumn: "Category",
		SourceColumn:   "Source",
		Empty:          true,
		Warning:        errors.New("article snapshot missing or unreadable: missing.csv"),
	}
}

func do(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	r := NewRouter(NewServer(testDataset()))
	w := do(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("health = %d %s", w.Code, w.Body.String())
	}
}

func TestMeta(t *testing.T) {
	r := NewRouter(NewServer(testDataset()))
	w := do(t, r, http.MethodGet, "/api/meta", "")

	var meta MetaResponse
	decode(t, w, &meta)
	if meta.Rows != 3 || meta.Empty {
		t.Errorf("meta = %+v", meta)
	}
	if strings.Join(meta.Categories, ",") != "Politics,Sports" || strings.Join(meta.Sources, ",") != "A,B" {
		t.Errorf("default selection = %v / %v", meta.Categories, meta.Sources)
	}
}

func TestMetaEmptyDataset(t *testing.T) {
	r := NewRouter(NewServer(emptyDataset()))
	w := do(t, r, http.MethodGet, "/api/meta", "")

	var meta MetaResponse
	decode(t, w, &meta)
	if !meta.Empty || meta.Warning == "" || meta.Rows != 0 {
		t.Errorf("meta = %+v", meta)
	}
}

func TestArticlesDefaultsToAll(t *testing.T) {
	r := NewRouter(NewServer(testDataset()))
	w := do(t, r, http.MethodGet, "/api/articles", "")

	var resp struct {
		Matched int              `json:"matched"`
		Table   engine.TableData `json:"table"`
	}
	decode(t, w, &resp)
	if resp.Matched != 3 || len(resp.Table.Rows) != 3 {
		t.Errorf("matched = %d rows = %d", resp.Matched, len(resp.Table.Rows))
	}
}

func TestArticlesFiltered(t *testing.T) {
	r := NewRouter(NewServer(testDataset()))
	w := do(t, r, http.MethodGet, "/api/articles?category=Politics&source=A&source=B&limit=1", "")

	var resp struct {
		Matched int              `json:"matched"`
		Table   engine.TableData `json:"table"`
	}
	decode(t, w, &resp)
	if resp.Matched != 2 {
		t.Errorf("matched = %d, want 2", resp.Matched)
	}
	if len(resp.Table.Rows) != 1 || resp.Table.Truncated != 1 {
		t.Errorf("limit not applied: rows=%d truncated=%d", len(resp.Table.Rows), resp.Table.Truncated)
	}
	if resp.Table.Rows[0][2] != "Vote" {
		t.Errorf("first row = %v", resp.Table.Rows[0])
	}
}

func TestArticlesBadLimit(t *testing.T) {
	r := NewRouter(NewServer(testDataset()))
	if w := do(t, r, http.MethodGet, "/api/articles?limit=ten", ""); w.Code != http.StatusBadRequest {
		t.Errorf("code = %d", w.Code)
	}
}

func TestSummary(t *testing.T) {
	r := NewRouter(NewServer(testDataset()))
	w := do(t, r, http.MethodGet, "/api/summary?source=B", "")

	var summary engine.SummaryTable
	decode(t, w, &summary)
	if summary.Rows != 2 {
		t.Errorf("rows = %d", summary.Rows)
	}
	views, ok := summary.Lookup("Views")
	if !ok || views.Numeric == nil || views.Numeric.Mean != 25 {
		t.Errorf("Views summary = %+v", views)
	}
}

func TestCounts(t *testing.T) {
	r := NewRouter(NewServer(testDataset()))
	w := do(t, r, http.MethodGet, "/api/counts/Source", "")

	var resp struct {
		Total  int                 `json:"total"`
		Counts engine.CountSummary `json:"counts"`
	}
	decode(t, w, &resp)
	if resp.Total != 3 {
		t.Errorf("total = %d", resp.Total)
	}
	if resp.Counts.Map()["B"] != 2 || resp.Counts[0].Value != "B" {
		t.Errorf("counts = %+v", resp.Counts)
	}

	w = do(t, r, http.MethodGet, "/api/counts/Source?sort=", "")
	decode(t, w, &resp)
	if resp.Counts[0].Value != "A" {
		t.Errorf("grouping order lost: %+v", resp.Counts)
	}
}

func TestCountsErrors(t *testing.T) {
	r := NewRouter(NewServer(testDataset()))
	if w := do(t, r, http.MethodGet, "/api/counts/Author", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown column code = %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/counts/Source?sort=random", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad sort code = %d", w.Code)
	}
}

func TestDashboard(t *testing.T) {
	r := NewRouter(NewServer(testDataset()))

	w := do(t, r, http.MethodPost, "/api/dashboard", `{"categories": null, "sources": ["B"], "panels": {"categoryChart": true}}`)
	var res engine.Result
	decode(t, w, &res)
	if res.Matched != 2 || res.TableData != nil || res.CategoryChart == nil {
		t.Errorf("dashboard = %+v", res)
	}

	w = do(t, r, http.MethodPost, "/api/dashboard", `{"categories": [], "sources": null}`)
	res = engine.Result{}
	decode(t, w, &res)
	if !res.NoMatch || res.Matched != 0 {
		t.Errorf("empty list should select nothing: %+v", res)
	}
}

func TestDashboardNoBody(t *testing.T) {
	r := NewRouter(NewServer(testDataset()))
	w := do(t, r, http.MethodPost, "/api/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d %s", w.Code, w.Body.String())
	}
	var res engine.Result
	decode(t, w, &res)
	if res.Matched != 3 || res.SourceChart == nil || res.TableData == nil {
		t.Errorf("defaults should select everything with all panels: %+v", res)
	}
}

func TestDashboardBadJSON(t *testing.T) {
	r := NewRouter(NewServer(testDataset()))
	if w := do(t, r, http.MethodPost, "/api/dashboard", `{"categories": "Politics"}`); w.Code != http.StatusBadRequest {
		t.Errorf("code = %d", w.Code)
	}
}

func TestDashboardEmptyDataset(t *testing.T) {
	r := NewRouter(NewServer(emptyDataset()))
	w := do(t, r, http.MethodPost, "/api/dashboard", `{}`)
	var res engine.Result
	decode(t, w, &res)
	if !res.Empty || !strings.Contains(res.Reply, "No articles available") {
		t.Errorf("empty dataset = %+v", res)
	}

	w = do(t, r, http.MethodGet, "/api/counts/Category", "")
	if w.Code != http.StatusOK {
		t.Errorf("counts on empty dataset = %d", w.Code)
	}
}

func TestDashboardHeaderOnlyDataset(t *testing.T) {
	ds := &dataset.Dataset{
		Path:           "news.csv",
		View:           engine.NewSliceView(nil, "Category", "Source"),
		CategoryColumn: "Category",
		SourceColumn:   "Source",
	}
	r := NewRouter(NewServer(ds))

	var meta MetaResponse
	decode(t, do(t, r, http.MethodGet, "/api/meta", ""), &meta)
	if meta.Empty {
		t.Errorf("meta = %+v", meta)
	}

	var res engine.Result
	decode(t, do(t, r, http.MethodPost, "/api/dashboard", `{}`), &res)
	if res.Empty || !res.NoMatch {
		t.Errorf("header-only dashboard = %+v", res)
	}

	var articles struct {
		Empty bool   `json:"empty"`
		Reply string `json:"reply"`
	}
	decode(t, do(t, r, http.MethodGet, "/api/articles", ""), &articles)
	if articles.Empty || strings.Contains(articles.Reply, "No articles available") {
		t.Errorf("articles = %+v", articles)
	}
}
