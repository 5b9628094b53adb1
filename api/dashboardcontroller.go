package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spektr-org/newsdash/engine"
)

// RegisterDashboardRoutes registers the read-only dashboard endpoints.
func (s *Server) RegisterDashboardRoutes(r *gin.Engine) {
	g := r.Group("/api")
	g.GET("/meta", s.handleMeta)
	g.GET("/articles", s.handleArticles)
	g.GET("/summary", s.handleSummary)
	g.GET("/counts/:column", s.handleCounts)
	g.POST("/dashboard", s.handleDashboard)
}

// DashboardRequest is the POST /api/dashboard payload. A null or absent
// list selects every value present; an empty list selects nothing.
type DashboardRequest struct {
	Categories engine.Set     `json:"categories"`
	Sources    engine.Set     `json:"sources"`
	Panels     *engine.Panels `json:"panels"`
}

// MetaResponse describes the loaded snapshot and the default selection.
type MetaResponse struct {
	Path       string   `json:"path"`
	Empty      bool     `json:"empty"`
	Warning    string   `json:"warning,omitempty"`
	Rows       int      `json:"rows"`
	Columns    []string `json:"columns"`
	Categories []string `json:"categories"`
	Sources    []string `json:"sources"`
}

// handleMeta returns the snapshot shape and every selectable value.
func (s *Server) handleMeta(c *gin.Context) {
	resp := MetaResponse{
		Path:       s.ds.Path,
		Empty:      s.ds.IsEmpty(),
		Rows:       s.ds.Len(),
		Columns:    s.ds.View.Columns(),
		Categories: engine.DistinctValues(s.ds.View, s.ds.CategoryColumn),
		Sources:    engine.DistinctValues(s.ds.View, s.ds.SourceColumn),
	}
	if s.ds.Warning != nil {
		resp.Warning = s.ds.Warning.Error()
	}
	if resp.Columns == nil {
		resp.Columns = []string{}
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	if resp.Sources == nil {
		resp.Sources = []string{}
	}
	c.JSON(http.StatusOK, resp)
}

// handleArticles returns the filtered rows.
// Query params: category, source (repeatable; absent = all), limit (int, optional)
func (s *Server) handleArticles(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	filtered := engine.Filter(s.ds.View, s.selectionFromQuery(c), s.opts...)
	c.JSON(http.StatusOK, gin.H{
		"empty":   s.ds.IsEmpty(),
		"total":   s.ds.Len(),
		"matched": filtered.Len(),
		"reply":   engine.BuildText(filtered, s.ds.Len(), s.opts...),
		"table":   engine.BuildDataTable(filtered, "Article data", limit),
	})
}

// handleSummary returns descriptive statistics of the filtered rows.
func (s *Server) handleSummary(c *gin.Context) {
	filtered := engine.Filter(s.ds.View, s.selectionFromQuery(c), s.opts...)
	c.JSON(http.StatusOK, engine.Describe(filtered))
}

// handleCounts returns value counts for one column of the filtered rows.
// Query params: sort (count_desc by default; empty keeps grouping order)
func (s *Server) handleCounts(c *gin.Context) {
	column := c.Param("column")
	mode := c.DefaultQuery("sort", engine.SortCountDesc)
	if !engine.ValidCountSort(mode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort " + strconv.Quote(mode)})
		return
	}
	if !s.ds.IsEmpty() && !hasColumn(s.ds.View, column) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown column " + strconv.Quote(column)})
		return
	}

	filtered := engine.Filter(s.ds.View, s.selectionFromQuery(c), s.opts...)
	counts := engine.CountBy(filtered, column).Sorted(mode)
	if counts == nil {
		counts = engine.CountSummary{}
	}
	c.JSON(http.StatusOK, gin.H{
		"column": column,
		"total":  counts.Total(),
		"counts": counts,
	})
}

// handleDashboard runs one full dashboard pass.
func (s *Server) handleDashboard(c *gin.Context) {
	var req DashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	all := s.ds.SelectAll()
	sel := engine.Selection{Categories: req.Categories, Sources: req.Sources}
	if sel.Categories == nil {
		sel.Categories = all.Categories
	}
	if sel.Sources == nil {
		sel.Sources = all.Sources
	}
	panels := engine.AllPanels()
	if req.Panels != nil {
		panels = *req.Panels
	}

	c.JSON(http.StatusOK, engine.Execute(engine.Request{Selection: sel, Panels: panels}, s.ds.View, s.opts...))
}

// selectionFromQuery reads repeated category/source params. An absent
// param selects every value present.
func (s *Server) selectionFromQuery(c *gin.Context) engine.Selection {
	sel := s.ds.SelectAll()
	if v, ok := c.GetQueryArray("category"); ok {
		sel.Categories = engine.NewSet(v...)
	}
	if v, ok := c.GetQueryArray("source"); ok {
		sel.Sources = engine.NewSet(v...)
	}
	return sel
}

func hasColumn(view engine.RecordView, column string) bool {
	for _, c := range view.Columns() {
		if c == column {
			return true
		}
	}
	return false
}
