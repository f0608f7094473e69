package pathtool

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key events. The last list row is the add row; Enter there
// opens the input, Enter on an entry deletes it.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.Adding {
		switch keyMsg.Type {
		case tea.KeyEnter:
			value := strings.TrimSpace(m.Input.Value())
			if value != "" {
				if err := m.store.Add(value, false); err != nil {
					m.Err = err
				}
				m.reload()
			}
			m.Adding = false
			m.Input.Blur()
			m.Input.SetValue("")
			return m, nil
		case tea.KeyEsc:
			m.Adding = false
			m.Input.Blur()
			m.Input.SetValue("")
			return m, nil
		}
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}

	addRow := len(m.Entries)

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		} else {
			m.Cursor = addRow
		}

	case "down", "j":
		if m.Cursor < addRow {
			m.Cursor++
		} else {
			m.Cursor = 0
		}

	case "enter":
		if m.Cursor == addRow {
			m.Adding = true
			m.Input.Focus()
			return m, textinput.Blink
		}
		if len(m.Entries) > 0 {
			if err := m.store.Remove(m.Cursor); err != nil {
				m.Err = err
			}
			m.reload()
			if m.Cursor >= len(m.Entries) && m.Cursor > 0 {
				m.Cursor--
			}
		}
	}

	return m, nil
}
