package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Switch key.Binding
	Save   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev keyword")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next keyword")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev candidate")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next candidate")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle")),
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "keywords/candidates")),
		Save:   key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter/s", "save")),
		Quit:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc/q", "exit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Switch, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Toggle, k.Switch, k.Save, k.Quit},
	}
}
