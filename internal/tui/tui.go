package tui

import (
	"pubcat/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(s store.Store, c *store.Catalog) error {
	applyColorProfilePreference()
	m := newAppModel(s, c)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
