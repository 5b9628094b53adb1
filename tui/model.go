// Package tui is the interactive terminal dashboard: category and source
// checklists on the left, the rendered panels on the right.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spektr-org/newsdash/dataset"
	"github.com/spektr-org/newsdash/engine"
	"github.com/spektr-org/newsdash/render"
)

type focusList int

const (
	focusCategories focusList = iota
	focusSources
)

// Model holds one session's selection. The dataset is shared read-only.
type Model struct {
	ds   *dataset.Dataset
	opts []engine.Option

	categories checklist
	sources    checklist
	focus      focusList
	panels     engine.Panels

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	result   *engine.Result

	width  int
	height int
}

// New builds a Model over ds with every category, source, and panel
// selected. opts are passed to every engine pass.
func New(ds *dataset.Dataset, opts ...engine.Option) *Model {
	sel := ds.SelectAll()
	all := append(ds.EngineOptions(), opts...)

	vp := viewport.New(render.DefaultWidth, 20)
	vp.KeyMap = scrollKeys()

	m := &Model{
		ds:         ds,
		opts:       all,
		categories: newChecklist(engine.LabelForDimension(ds.CategoryColumn), orderedValues(ds.View, ds.CategoryColumn, sel.Categories)),
		sources:    newChecklist(engine.LabelForDimension(ds.SourceColumn), orderedValues(ds.View, ds.SourceColumn, sel.Sources)),
		panels:     engine.AllPanels(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		viewport:   vp,
		width:      render.DefaultWidth + sidebarWidth,
		height:     24,
	}
	m.recompute()
	return m
}

// orderedValues lists the members of set in dataset order.
func orderedValues(view engine.RecordView, column string, set engine.Set) []string {
	var out []string
	for _, v := range engine.DistinctValues(view, column) {
		if set.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// Selection returns the current category and source selection.
func (m *Model) Selection() engine.Selection {
	return engine.Selection{Categories: m.categories.set(), Sources: m.sources.set()}
}

// Result returns the latest dashboard pass.
func (m *Model) Result() *engine.Result {
	return m.result
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.recompute()
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	list := m.activeList()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, tea.Quit
	case key.Matches(msg, m.keys.Up):
		list.up()
		return true, nil
	case key.Matches(msg, m.keys.Down):
		list.down()
		return true, nil
	case key.Matches(msg, m.keys.Switch):
		if m.focus == focusCategories {
			m.focus = focusSources
		} else {
			m.focus = focusCategories
		}
		return true, nil
	case key.Matches(msg, m.keys.Toggle):
		list.toggleCurrent()
	case key.Matches(msg, m.keys.All):
		list.selectAll()
	case key.Matches(msg, m.keys.None):
		list.selectNone()
	case key.Matches(msg, m.keys.Table):
		m.panels.Table = !m.panels.Table
	case key.Matches(msg, m.keys.Summary):
		m.panels.Summary = !m.panels.Summary
	case key.Matches(msg, m.keys.CatChart):
		m.panels.CategoryChart = !m.panels.CategoryChart
	case key.Matches(msg, m.keys.SrcChart):
		m.panels.SourceChart = !m.panels.SourceChart
	default:
		return false, nil
	}

	m.recompute()
	return true, nil
}

func (m *Model) activeList() *checklist {
	if m.focus == focusSources {
		return &m.sources
	}
	return &m.categories
}

func (m *Model) contentWidth() int {
	w := m.width - sidebarWidth - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) resize() {
	m.viewport.Width = m.contentWidth()
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	m.viewport.Height = h
}

// recompute runs one full pass for the current selection and panels.
func (m *Model) recompute() {
	m.result = engine.Execute(engine.Request{Selection: m.Selection(), Panels: m.panels}, m.ds.View, m.opts...)

	content := render.Dashboard(m.result, m.contentWidth()-2)
	if m.ds.IsEmpty() && m.ds.Warning != nil {
		content = render.Warning(m.ds.Warning.Error()) + "\n" + content
	}
	if !m.result.Empty && !m.panels.Any() {
		content += "\n" + render.NoData("All panels are hidden. Press 1-4 to show one.")
	}
	m.viewport.SetContent(content)
}

func (m *Model) View() string {
	header := headerStyle.Render("📰 News dashboard") + " " + m.panelTabs()

	listH := (m.height - 6) / 2
	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		m.categories.render(m.focus == focusCategories, listH),
		m.sources.render(m.focus == focusSources, listH),
	)
	content := contentPaneStyle.Render(m.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusBar())
}

func (m *Model) panelTabs() string {
	tab := func(n int, label string, on bool) string {
		s := panelOffStyle
		if on {
			s = panelOnStyle
		}
		return s.Render(fmt.Sprintf("%d %s", n, label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tab(1, "Table", m.panels.Table),
		tab(2, "Summary", m.panels.Summary),
		tab(3, "Categories", m.panels.CategoryChart),
		tab(4, "Sources", m.panels.SourceChart),
	)
}

func (m *Model) statusBar() string {
	left := fmt.Sprintf("%s of %s articles", engine.FormatInt(m.result.Matched), engine.FormatInt(m.ds.Len()))
	right := m.help.ShortHelpView(m.keys.ShortHelp())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Render(left + fmt.Sprintf("%*s", gap, "") + right)
}

// Run starts the dashboard on the alternate screen.
func Run(ds *dataset.Dataset, opts ...engine.Option) error {
	p := tea.NewProgram(New(ds, opts...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
