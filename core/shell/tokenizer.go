package shell

import "strings"

// Tokenize splits one input line into argument tokens.
//
// A single quote toggles single-quoted state unless inside double quotes,
// and vice versa. Unquoted spaces delimit tokens; runs of spaces collapse
// and never emit empty tokens. Quote characters are consumed, not copied.
// There is no escape character. An unterminated quote is tolerated and
// closes the final token with whatever accumulated.
func Tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, ch := range line {
		switch {
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
		case ch == '"' && !inSingle:
			inDouble = !inDouble
		case ch == ' ' && !inSingle && !inDouble:
			flush()
		default:
			current.WriteRune(ch)
		}
	}
	flush()

	return tokens
}
