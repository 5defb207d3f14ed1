package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	Add            key.Binding
	Complete       key.Binding
	Delete         key.Binding
	SortByDate     key.Binding
	SortByPriority key.Binding
	ToggleForm     key.Binding
	ToggleActive   key.Binding
	ToggleDone     key.Binding
	Quit           key.Binding

	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c", " "),
			key.WithHelp("c", "complete"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete"),
		),
		SortByDate: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by date"),
		),
		SortByPriority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "sort by priority"),
		),
		ToggleForm: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1/2/3", "toggle sections"),
		),
		ToggleActive: key.NewBinding(
			key.WithKeys("2"),
		),
		ToggleDone: key.NewBinding(
			key.WithKeys("3"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close form"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Complete, k.Delete, k.SortByDate, k.SortByPriority, k.ToggleForm, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Complete, k.Delete},
		{k.Add, k.SortByDate, k.SortByPriority, k.ToggleForm, k.Quit},
	}
}

type formKeys keyMap

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
