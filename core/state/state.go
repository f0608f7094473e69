// Package state holds the mutable shell session state: environment
// variables, the working directory and the standard streams. Keeping it as
// an explicit value instead of mutating the process-wide environment lets
// builtins and the executor be tested in isolation.
package state

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// EnvPath is the executable search variable mirrored by the path store.
	EnvPath = "PATH"
	EnvHome = "HOME"
)

// ShellState is the process-wide mutable state of one shell session.
type ShellState struct {
	env *Env
	fs  afero.Fs
	io  *IOAdapter

	cwd string
}

// New creates a ShellState over the given filesystem and streams, starting
// in cwd with an empty environment.
func New(fs afero.Fs, cwd string, stdin io.Reader, stdout, stderr io.Writer) *ShellState {
	return &ShellState{
		env: NewEnv(),
		fs:  fs,
		io:  NewIOAdapter(stdin, stdout, stderr),
		cwd: cwd,
	}
}

// NewFromOS creates a ShellState mirroring the real process: OS filesystem,
// os.Environ and the current working directory.
func NewFromOS() (*ShellState, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	s := New(afero.NewOsFs(), wd, os.Stdin, os.Stdout, os.Stderr)
	s.env = NewEnvFromList(os.Environ())
	return s, nil
}

func (s *ShellState) Fs() afero.Fs { return s.fs }

func (s *ShellState) Stdin() io.ReadCloser   { return s.io.Stdin() }
func (s *ShellState) Stdout() io.WriteCloser { return s.io.Stdout() }
func (s *ShellState) Stderr() io.WriteCloser { return s.io.Stderr() }

func (s *ShellState) Setenv(key, value string) error { return s.env.Setenv(key, value) }
func (s *ShellState) Getenv(key string) string       { return s.env.Getenv(key) }
func (s *ShellState) LookupEnv(key string) (string, bool) {
	return s.env.LookupEnv(key)
}
func (s *ShellState) Environ() []string { return s.env.Environ() }

// Getwd returns the shell's current working directory.
func (s *ShellState) Getwd() string {
	return s.cwd
}

// Chdir changes the working directory after checking the target exists and
// is a directory. On failure the working directory is unchanged.
func (s *ShellState) Chdir(dir string) error {
	abs := s.Abs(dir)

	info, err := s.fs.Stat(abs)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", dir)
	}

	s.cwd = abs
	return nil
}

// Abs resolves a possibly relative path against the shell's working
// directory.
func (s *ShellState) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(s.cwd, path)
}
