package pathtool

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/falshproject/falsh/core/pathstore"
)

// Run blocks in the interactive view until the user exits. The caller's
// terminal is handed to bubbletea for the duration; cooked mode is restored
// on every exit path, including panics inside the program.
func Run(store *pathstore.Store, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(store), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
