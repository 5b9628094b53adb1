package tui

import (
	"strings"

	"github.com/spektr-org/newsdash/engine"
)

// checklist is a multi-select over the distinct values of one column.
// Every value starts selected.
type checklist struct {
	title    string
	values   []string
	selected map[string]bool
	cursor   int
}

func newChecklist(title string, values []string) checklist {
	c := checklist{title: title, values: values, selected: make(map[string]bool, len(values))}
	c.selectAll()
	return c
}

func (c *checklist) up() {
	if c.cursor > 0 {
		c.cursor--
	}
}

func (c *checklist) down() {
	if c.cursor < len(c.values)-1 {
		c.cursor++
	}
}

func (c *checklist) toggleCurrent() {
	if c.cursor >= len(c.values) {
		return
	}
	v := c.values[c.cursor]
	c.selected[v] = !c.selected[v]
}

func (c *checklist) selectAll() {
	for _, v := range c.values {
		c.selected[v] = true
	}
}

func (c *checklist) selectNone() {
	for _, v := range c.values {
		c.selected[v] = false
	}
}

func (c *checklist) set() engine.Set {
	s := engine.NewSet()
	for _, v := range c.values {
		if c.selected[v] {
			s[v] = struct{}{}
		}
	}
	return s
}

func (c *checklist) count() int {
	n := 0
	for _, v := range c.values {
		if c.selected[v] {
			n++
		}
	}
	return n
}

func (c *checklist) render(active bool, height int) string {
	var b strings.Builder
	b.WriteString(listTitleStyle.Render(c.title))
	b.WriteString(checkOffStyle.Render(" " + itoa(c.count()) + "/" + itoa(len(c.values))))

	if len(c.values) == 0 {
		b.WriteString("\n")
		b.WriteString(checkOffStyle.Render("  (none)"))
	}

	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if c.cursor >= visible {
		start = c.cursor - visible + 1
	}
	end := min(start+visible, len(c.values))

	for i := start; i < end; i++ {
		v := c.values[i]
		box := checkOffStyle.Render("[ ]")
		if c.selected[v] {
			box = checkOnStyle.Render("[x]")
		}
		label := truncateStr(engine.LabelForValue(v), sidebarWidth-8)
		if active && i == c.cursor {
			label = itemCursorStyle.Render("> " + label)
		} else {
			label = itemStyle.Render("  " + label)
		}
		b.WriteString("\n")
		b.WriteString(box + label)
	}

	style := listPaneStyle
	if active {
		style = listPaneActiveStyle
	}
	return style.Render(b.String())
}

func itoa(n int) string {
	return engine.FormatInt(n)
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
