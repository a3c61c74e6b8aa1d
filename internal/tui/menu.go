package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type menuModel struct {
	items []string
	idx   int
}

func newMenuModel() *menuModel {
	return &menuModel{items: []string{"Log in", "Sign up"}}
}

func (m *menuModel) Init() tea.Cmd {
	return nil
}

func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		switch m.idx {
		case 0:
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		case 1:
			return m, func() tea.Msg { return NavigateTo{Page: "register"} }
		}
	}

	return m, nil
}

func (m *menuModel) View() string {
	out := "Travel further.\n\nChoose an action:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	return renderPage(titleStyle.Render("HORIZONE"), out, "↑/↓: select │ enter: confirm")
}
