package pathtool

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Foreground(lipgloss.Color("205"))

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("252"))

	addRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// View renders the entry list, the add row and the key hints.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("falsh path entries"))
	b.WriteString("\n\n")

	for i, entry := range m.Entries {
		if i == m.Cursor && !m.Adding {
			b.WriteString(selectedItemStyle.Render("> " + entry))
		} else {
			b.WriteString(unselectedItemStyle.Render(entry))
		}
		b.WriteString("\n")
	}

	addLabel := "[+ add new path]"
	if m.Cursor == len(m.Entries) && !m.Adding {
		b.WriteString(selectedItemStyle.Render("> " + addLabel))
	} else {
		b.WriteString(addRowStyle.Render("  " + addLabel))
	}
	b.WriteString("\n")

	if m.Adding {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Enter path to add: %s\n", m.Input.View()))
	}

	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(fmt.Sprintf("error: %v", m.Err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("↑/↓ navigate · enter delete/add · esc exit"))
	b.WriteString("\n")

	return b.String()
}
