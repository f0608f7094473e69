// Package shell implements the falsh command interpreter: tokenizing,
// glob expansion, builtin dispatch and pipeline execution over an explicit
// shell state.
package shell

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/falshproject/falsh/core/pathstore"
	"github.com/falshproject/falsh/core/state"
)

// ErrNotFound is the error resulting if a path search failed to find an
// executable file.
var ErrNotFound = exec.ErrNotFound

// Executor turns raw input lines into builtin calls and spawned pipelines.
type Executor struct {
	state *state.ShellState
	store *pathstore.Store
}

func NewExecutor(st *state.ShellState, store *pathstore.Store) *Executor {
	return &Executor{state: st, store: store}
}

// State returns the shell state the executor mutates.
func (ex *Executor) State() *state.ShellState {
	return ex.state
}

// Store returns the persisted PATH store.
func (ex *Executor) Store() *pathstore.Store {
	return ex.store
}

// stage is one command of a pipeline with its redirection targets resolved.
type stage struct {
	argv    []string
	inFile  string
	outFile string
}

// parseStage scans tokens for redirection operators. The operator and its
// operand are removed from argv along with everything after them, matching
// how the interpreter treats trailing tokens past a redirection.
func parseStage(tokens []string) (*stage, error) {
	st := &stage{argv: tokens}

	if pos := indexOf(st.argv, ">"); pos >= 0 {
		if pos+1 >= len(st.argv) {
			return nil, Errorf(KindParse, "syntax error: '>' requires a filename")
		}
		st.outFile = st.argv[pos+1]
		st.argv = st.argv[:pos]
	}

	if pos := indexOf(st.argv, "<"); pos >= 0 {
		if pos+1 >= len(st.argv) {
			return nil, Errorf(KindParse, "syntax error: '<' requires a filename")
		}
		st.inFile = st.argv[pos+1]
		st.argv = st.argv[:pos]
	}

	// A stage made of nothing but redirections, e.g. "> out.txt", has no
	// program to run.
	if len(st.argv) == 0 {
		return nil, Errorf(KindParse, "syntax error: missing command")
	}

	return st, nil
}

func indexOf(list []string, want string) int {
	for i, v := range list {
		if v == want {
			return i
		}
	}
	return -1
}

// Execute runs one raw input line: split on the pipe character, dispatch
// builtins in-process and spawn everything else, chaining stage output into
// the next stage's input.
//
// Stages are launched and awaited one at a time in textual order; data
// between stages flows through an in-memory buffer, so an upstream stage
// always drains fully before its consumer starts.
func (ex *Executor) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	stages := strings.Split(line, "|")
	var prev *bytes.Buffer

	for i, raw := range stages {
		tokens := Tokenize(strings.TrimSpace(raw))
		if len(tokens) == 0 {
			// "a | | b" silently drops the empty middle stage.
			continue
		}

		// Builtins run standalone against inherited streams and never
		// participate in pipe plumbing.
		if builtin, ok := AllBuiltins[tokens[0]]; ok {
			if err := builtin.Main(ex, tokens); err != nil {
				return err
			}
			continue
		}

		st, err := parseStage(tokens)
		if err != nil {
			return err
		}

		next, err := ex.runStage(st, prev, i == len(stages)-1)
		if err != nil {
			return err
		}
		prev = next
	}

	return nil
}

// runStage spawns one external command and waits for it to exit. It
// returns the captured output when the stage feeds a following one.
func (ex *Executor) runStage(st *stage, prev *bytes.Buffer, last bool) (*bytes.Buffer, error) {
	var stdin io.Reader = ex.state.Stdin()
	if prev != nil {
		stdin = prev
	}
	if st.inFile != "" {
		fd, err := ex.state.Fs().Open(ex.state.Abs(st.inFile))
		if err != nil {
			return nil, WrapError(KindIO, err, "cannot open %s", st.inFile)
		}
		defer fd.Close()
		stdin = fd
	}

	var stdout io.Writer = ex.state.Stdout()
	if st.outFile != "" {
		fd, err := ex.state.Fs().Create(ex.state.Abs(st.outFile))
		if err != nil {
			return nil, WrapError(KindIO, err, "cannot create %s", st.outFile)
		}
		defer fd.Close()
		stdout = fd
	}

	var capture *bytes.Buffer
	if !last {
		// A mid-pipeline '>' still creates its file, but the stage output
		// feeds the next stage.
		capture = &bytes.Buffer{}
		stdout = capture
	}

	args, err := ex.expandGlobs(st.argv[1:])
	if err != nil {
		return nil, err
	}

	execPath, err := ex.lookPath(st.argv[0])
	if err != nil {
		return nil, WrapError(KindLookup, err, "command failed: %s", st.argv[0])
	}

	cmd := exec.Cmd{
		Path:   execPath,
		Args:   append([]string{st.argv[0]}, args...),
		Dir:    ex.state.Getwd(),
		Env:    ex.state.Environ(),
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: ex.state.Stderr(),
	}

	if err := cmd.Start(); err != nil {
		return nil, WrapError(KindLookup, err, "command failed: %s", st.argv[0])
	}
	if err := cmd.Wait(); err != nil {
		// A nonzero exit status is the program's business, not a pipeline
		// failure.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, WrapError(KindIO, err, "wait: %s", st.argv[0])
		}
	}

	return capture, nil
}

// lookPath searches for an executable named file in the directories of the
// shell's PATH variable. If file contains a slash it is tried directly and
// PATH is not consulted.
func (ex *Executor) lookPath(file string) (string, error) {
	if strings.Contains(file, "/") {
		path := ex.state.Abs(file)
		if err := ex.findExecutable(path); err != nil {
			return "", err
		}
		return path, nil
	}

	for _, dir := range filepath.SplitList(ex.state.Getenv(state.EnvPath)) {
		if dir == "" {
			// Unix shell semantics: path element "" means ".".
			dir = "."
		}
		path := ex.state.Abs(filepath.Join(dir, file))
		if err := ex.findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}

func (ex *Executor) findExecutable(file string) error {
	d, err := ex.state.Fs().Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}
