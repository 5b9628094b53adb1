package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/spektr-org/newsdash/dataset"
	"github.com/spektr-org/newsdash/engine"
	"github.com/spektr-org/newsdash/render"
)

type showFlags struct {
	categories    []string
	sources       []string
	table         bool
	summary       bool
	categoryChart bool
	sourceChart   bool
	format        string
	out           string
	width         int
}

func newShowCmd(g *globalFlags) *cobra.Command {
	f := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Run one dashboard pass and print it",
		Long: `Run one filter → aggregate pass and print the requested panels.

Without --category or --source every value is selected. Repeat a flag to
select several values. Without a panel flag every panel is printed.

Formats:
  text      Rendered tables and charts (default)
  json      Full JSON result
  pretty    Pretty-printed JSON
  csv       The first requested panel as CSV (ready for Sheets/Excel)`,
		Example: `  newsdash show --category Politics --source G1 --source UOL
  newsdash show --category-chart --format csv --out categories.csv
  newsdash show --summary --format pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, g, f)
		},
	}

	fl := cmd.Flags()
	fl.StringArrayVar(&f.categories, "category", nil, "category to include (repeatable)")
	fl.StringArrayVar(&f.sources, "source", nil, "source to include (repeatable)")
	fl.BoolVar(&f.table, "table", false, "show the data table")
	fl.BoolVar(&f.summary, "summary", false, "show summary statistics")
	fl.BoolVar(&f.categoryChart, "category-chart", false, "show the category bar chart")
	fl.BoolVar(&f.sourceChart, "source-chart", false, "show the source proportional chart")
	fl.StringVar(&f.format, "format", "text", "output format: text, json, pretty, csv")
	fl.StringVarP(&f.out, "out", "o", "", "write output to file instead of stdout")
	fl.IntVar(&f.width, "width", render.DefaultWidth, "chart width for text output")
	return cmd
}

func runShow(cmd *cobra.Command, g *globalFlags, f *showFlags) error {
	switch f.format {
	case "text", "json", "pretty", "csv":
	default:
		return fmt.Errorf("unknown format %q (valid: text, json, pretty, csv)", f.format)
	}

	cfg, ds, err := load(cmd.Context(), g)
	if err != nil {
		return err
	}

	req := engine.Request{
		Selection: buildSelection(cmd, ds, f),
		Panels:    buildPanels(f),
	}
	result := engine.Execute(req, ds.View, append(ds.EngineOptions(), cfg.EngineOptions()...)...)

	// ── Output writer ─────────────────────────────────────────────────────
	var w io.Writer = cmd.OutOrStdout()
	if f.out != "" {
		file, err := os.Create(f.out)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	switch f.format {
	case "json", "pretty":
		err = writeJSON(w, result, f.format)
	case "csv":
		err = writeCSV(w, result)
	default:
		if ds.IsEmpty() && ds.Warning != nil {
			fmt.Fprintln(w, render.Warning(ds.Warning.Error()))
		}
		_, err = fmt.Fprintln(w, render.Dashboard(result, f.width))
	}
	if err != nil {
		return err
	}
	if f.out != "" {
		log.Printf("📄 %s written to %s", f.format, f.out)
	}
	return nil
}

// buildSelection uses the flags that were given and every value for the
// ones that were not.
func buildSelection(cmd *cobra.Command, ds *dataset.Dataset, f *showFlags) engine.Selection {
	sel := ds.SelectAll()
	if cmd.Flags().Changed("category") {
		sel.Categories = engine.NewSet(f.categories...)
	}
	if cmd.Flags().Changed("source") {
		sel.Sources = engine.NewSet(f.sources...)
	}
	return sel
}

func buildPanels(f *showFlags) engine.Panels {
	p := engine.Panels{
		Table:         f.table,
		Summary:       f.summary,
		CategoryChart: f.categoryChart,
		SourceChart:   f.sourceChart,
	}
	if !p.Any() {
		return engine.AllPanels()
	}
	return p
}
