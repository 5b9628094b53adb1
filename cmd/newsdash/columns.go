package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spektr-org/newsdash/engine"
	"github.com/spektr-org/newsdash/render"
	"github.com/spektr-org/newsdash/schema"
)

func newColumnsCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Print the discovered columns of the snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ds, err := load(cmd.Context(), g)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if ds.IsEmpty() {
				fmt.Fprintln(w, render.Warning(ds.Warning.Error()))
				return nil
			}
			if format == "json" || format == "pretty" {
				return writeJSON(w, ds.Schema, format)
			}
			fmt.Fprintln(w, render.Table(schemaTable(ds.Schema)))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json, pretty")
	return cmd
}

// schemaTable lays the schema out as one row per column.
func schemaTable(sch *schema.Config) *engine.TableData {
	td := &engine.TableData{
		Title: sch.Name,
		Columns: []engine.Column{
			{Key: "column", Label: "Column", Type: "text", Align: "left"},
			{Key: "kind", Label: "Kind", Type: "text", Align: "left"},
			{Key: "unique", Label: "Unique", Type: "number", Align: "right"},
			{Key: "nulls", Label: "Nulls", Type: "number", Align: "right"},
			{Key: "samples", Label: "Samples", Type: "text", Align: "left"},
		},
		Summary: &engine.Summary{
			Label:  fmt.Sprintf("%s rows", engine.FormatInt(sch.Rows)),
			Values: map[string]string{},
		},
	}
	for _, c := range sch.Columns {
		kind := string(c.Kind)
		if c.IsTemporal {
			kind += " (" + c.TemporalFormat + ")"
		}
		td.Rows = append(td.Rows, []string{
			c.Key,
			kind,
			engine.FormatInt(c.UniqueCount),
			engine.FormatInt(c.NullCount),
			strings.Join(c.SampleValues, ", "),
		})
	}
	return td
}
