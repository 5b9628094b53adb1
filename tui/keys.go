package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	All      key.Binding
	None     key.Binding
	Switch   key.Binding
	Table    key.Binding
	Summary  key.Binding
	CatChart key.Binding
	SrcChart key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		All:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		None:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "none")),
		Switch:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch list")),
		Table:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "table")),
		Summary:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "summary")),
		CatChart: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "categories")),
		SrcChart: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "sources")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.All, k.None, k.Switch, k.Table, k.Summary, k.CatChart, k.SrcChart, k.Quit}
}

// scrollKeys leaves only paging to the viewport; arrows and space belong to
// the selection lists.
func scrollKeys() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "f")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "b")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	}
}
