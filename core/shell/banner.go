package shell

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Banner writes the startup banner: the shell name in a per-character
// orange-to-pink gradient.
func Banner(w io.Writer) {
	const text = "falsh"

	start := [3]int{255, 165, 0}
	end := [3]int{255, 0, 200}
	n := len(text)

	fmt.Fprint(w, "Running in ")
	for i, c := range text {
		r := start[0] + (end[0]-start[0])*i/n
		g := start[1] + (end[1]-start[1])*i/n
		b := start[2] + (end[2]-start[2])*i/n

		color.RGB(r, g, b).Add(color.Bold, color.Italic).Fprint(w, string(c))
	}
	fmt.Fprintln(w)
}
