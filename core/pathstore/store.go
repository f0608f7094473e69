// Package pathstore persists the user-managed list of PATH entries and
// mirrors their resolved form into the shell's executable search variable.
package pathstore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/falshproject/falsh/core/state"
)

// Shell is the slice of shell state the store needs: environment access for
// mirroring resolved entries, and working-directory context so relative
// entries resolve against the shell's cwd rather than the process's.
type Shell interface {
	Getenv(key string) string
	Setenv(key, value string) error
	Abs(path string) string
}

// Store manages the persisted PATH entry list.
//
// The file holds one user-supplied path string per line in insertion order.
// Entries are persisted literally; the directory appended to the search
// variable is derived per Resolve.
type Store struct {
	fs    afero.Fs
	file  string
	shell Shell

	// warnings receives non-fatal notes, e.g. adding a path that does not
	// exist on disk.
	warnings io.Writer
}

func New(fs afero.Fs, file string, shell Shell, warnings io.Writer) *Store {
	if warnings == nil {
		warnings = io.Discard
	}
	return &Store{fs: fs, file: file, shell: shell, warnings: warnings}
}

// File returns the path of the backing file.
func (s *Store) File() string {
	return s.file
}

// Load reads the persisted entries. An absent file yields an empty list;
// any other read failure is an error, so a transiently unreadable file is
// never mistaken for an empty list and clobbered by the next Save.
func (s *Store) Load() ([]string, error) {
	contents, err := afero.ReadFile(s.fs, s.file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []string
	for _, line := range strings.Split(string(contents), "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

// Save overwrites the persisted file with the given entries in order.
func (s *Store) Save(entries []string) error {
	var buf strings.Builder
	for _, e := range entries {
		buf.WriteString(e)
		buf.WriteByte('\n')
	}
	return afero.WriteFile(s.fs, s.file, []byte(buf.String()), 0644)
}

// Resolve derives the directory to place on the search variable from a
// user-supplied entry: a file resolves to its parent directory, a directory
// to itself, and a missing path to its literal value with ok=false. Relative
// entries are checked against the shell's working directory.
func (s *Store) Resolve(userInput string) (resolved string, ok bool) {
	info, err := s.fs.Stat(s.shell.Abs(userInput))
	if err != nil {
		return userInput, false
	}
	if info.IsDir() {
		return userInput, true
	}
	return filepath.Dir(userInput), true
}

// Add records a new entry. Unless temporary, the literal input is appended
// to the persisted list when not already present. The resolved directory is
// always appended to the search variable unless one of its colon-delimited
// segments already matches.
func (s *Store) Add(userInput string, temporary bool) error {
	resolved, exists := s.Resolve(userInput)
	if !exists {
		fmt.Fprintln(s.warnings, color.YellowString("warning: path %s does not exist", userInput))
	}

	if !temporary {
		entries, err := s.Load()
		if err != nil {
			return err
		}
		if !contains(entries, userInput) {
			if err := s.Save(append(entries, userInput)); err != nil {
				return err
			}
		}
	}

	pathVar := s.shell.Getenv(state.EnvPath)
	if !contains(filepath.SplitList(pathVar), resolved) {
		if pathVar != "" {
			pathVar += string(filepath.ListSeparator)
		}
		pathVar += resolved
		return s.shell.Setenv(state.EnvPath, pathVar)
	}

	return nil
}

// Remove deletes the persisted entry at index and re-saves the list. The
// search variable keeps the resolved entry for the rest of the session.
func (s *Store) Remove(index int) error {
	entries, err := s.Load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(entries) {
		return fmt.Errorf("no path entry at index %d", index)
	}

	return s.Save(append(entries[:index], entries[index+1:]...))
}

// ApplyAllTemporary mirrors every persisted entry into the search variable
// without re-writing the file. Called once at startup.
func (s *Store) ApplyAllTemporary() error {
	entries, err := s.Load()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := s.Add(e, true); err != nil {
			return err
		}
	}
	return nil
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
