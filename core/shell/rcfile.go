package shell

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Source replays a startup script file line by line through the executor.
//
// Blank lines and lines whose first non-whitespace character is '#' are
// skipped. A failing line is reported with its 1-based line number and does
// not stop the remaining lines. An absent file is not an error.
func (ex *Executor) Source(path string) error {
	contents, err := afero.ReadFile(ex.state.Fs(), path)
	if err != nil {
		return nil
	}

	name := filepath.Base(path)
	for i, line := range strings.Split(string(contents), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if err := ex.Execute(trimmed); err != nil {
			fmt.Fprintf(ex.state.Stderr(), "%s: line %d: %q: %v\n", name, i+1, trimmed, err)
		}
	}

	return nil
}
