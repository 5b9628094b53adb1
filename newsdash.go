// Package newsdash is a dashboard core for a snapshot of collected news
// articles.
//
// Usage:
//
//	import (
//	    "github.com/spektr-org/newsdash/dataset"
//	    "github.com/spektr-org/newsdash/engine"
//	)
//
//	ds := dataset.Load(ctx, "noticias_completas.csv")
//	sel := engine.Selection{
//	    Categories: engine.NewSet("Politics"),
//	    Sources:    engine.NewSet("G1", "UOL"),
//	}
//	result := engine.Execute(engine.Request{Selection: sel, Panels: engine.AllPanels()},
//	    ds.View, ds.EngineOptions()...)
//
// The dataset is read once per path and shared. Filtering keeps an article
// only when its category and its source are both in the selection; an empty
// set selects nothing. The result carries render-ready output for the data
// table, the summary statistics, and the category and source counts.
//
// Terminal rendering lives in render and tui, the HTTP surface in api.
// All computation is local.
package newsdash
