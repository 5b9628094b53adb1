// Package render draws dashboard results for a terminal with lipgloss.
package render

import (
	"strings"

	"github.com/spektr-org/newsdash/engine"
)

// Warning renders a highlighted warning box.
func Warning(msg string) string {
	return warningStyle.Render("⚠ " + msg)
}

// NoData renders the "no data" indicator.
func NoData(msg string) string {
	return noDataStyle.Render(msg)
}

// Dashboard renders every panel present in res, in the order table,
// summary, category chart, source chart.
func Dashboard(res *engine.Result, width int) string {
	if res == nil {
		return NoData("No result.")
	}
	if res.Empty {
		return Warning(res.Reply)
	}

	var sections []string
	sections = append(sections, replyStyle.Render(res.Reply))

	if res.NoMatch {
		sections = append(sections, NoData("No data for the current selection."))
		return strings.Join(sections, "\n")
	}

	if res.TableData != nil {
		sections = append(sections, panelTitleStyle.Render("📋 "+res.TableData.Title), Table(res.TableData))
	}
	if res.SummaryData != nil {
		sections = append(sections, panelTitleStyle.Render("📊 "+res.SummaryData.Title), Table(res.SummaryData))
	}
	if res.CategoryChart != nil {
		sections = append(sections, panelTitleStyle.Render("📊 Category distribution"), BarChart(res.CategoryChart, width))
	}
	if res.SourceChart != nil {
		sections = append(sections, panelTitleStyle.Render("📊 Articles by source"), PieChart(res.SourceChart, width))
	}

	return strings.Join(sections, "\n")
}
