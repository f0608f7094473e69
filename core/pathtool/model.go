// Package pathtool is the interactive terminal view for the persisted PATH
// list. It only calls the store's Load/Add/Remove operations; everything
// else is presentation.
package pathtool

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/falshproject/falsh/core/pathstore"
)

// Model holds the view state.
type Model struct {
	store *pathstore.Store

	// Entries mirrors the persisted list; reloaded after every mutation.
	Entries []string
	// Cursor points at an entry, or at len(Entries) for the add row.
	Cursor int

	// Adding is true while the new-path input is focused.
	Adding bool
	Input  textinput.Model

	Err error
}

// New loads the persisted entries and returns the initial view state.
func New(store *pathstore.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/add"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{store: store, Input: ti}
	m.reload()
	return m
}

func (m *Model) reload() {
	entries, err := m.store.Load()
	if err != nil {
		m.Err = err
		return
	}
	m.Entries = entries
	if m.Cursor > len(m.Entries) {
		m.Cursor = len(m.Entries)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
