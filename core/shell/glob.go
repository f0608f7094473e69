package shell

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// hasWildcard reports whether the token should be glob expanded.
func hasWildcard(token string) bool {
	return strings.ContainsAny(token, "*?")
}

// expandGlobs replaces wildcard tokens with their filesystem matches,
// resolved against the shell's working directory. A pattern matching
// nothing contributes zero tokens; the literal pattern is not passed
// through. Plain tokens pass through unchanged.
func (ex *Executor) expandGlobs(tokens []string) ([]string, error) {
	var out []string
	for _, token := range tokens {
		if !hasWildcard(token) {
			out = append(out, token)
			continue
		}

		matches, err := afero.Glob(ex.state.Fs(), ex.state.Abs(token))
		if err != nil {
			return nil, WrapError(KindGlob, err, "bad pattern %q", token)
		}

		for _, match := range matches {
			if filepath.IsAbs(token) {
				out = append(out, match)
				continue
			}
			// Keep relative patterns relative, the way the user typed them.
			if rel, err := filepath.Rel(ex.state.Getwd(), match); err == nil {
				out = append(out, rel)
			} else {
				out = append(out, match)
			}
		}
	}

	return out, nil
}
