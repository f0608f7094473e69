package state

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// NewEnv creates a new empty environment backed by a map.
func NewEnv() *Env {
	return &Env{}
}

// NewEnvFromList creates a new environment seeded from entries in the
// "KEY=VALUE" form returned by os.Environ.
func NewEnvFromList(environ []string) *Env {
	out := &Env{}

	for _, e := range environ {
		split := strings.SplitN(e, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}
		// Ignore error, it will never be set for Env.
		_ = out.Setenv(key, value)
	}

	return out
}

// Env implements an in-memory environment variable table.
type Env struct {
	rw  sync.RWMutex
	env map[string]string
}

// Setenv sets the value of the variable named by key.
func (m *Env) Setenv(key, value string) error {
	m.rw.Lock()
	defer m.rw.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
	return nil
}

// Unsetenv removes the variable named by key.
func (m *Env) Unsetenv(key string) error {
	m.rw.Lock()
	defer m.rw.Unlock()
	if m.env != nil {
		delete(m.env, key)
	}
	return nil
}

// LookupEnv fetches the value of the variable and whether it was present.
func (m *Env) LookupEnv(key string) (string, bool) {
	m.rw.RLock()
	defer m.rw.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

// Getenv fetches the value of the variable, blank if unset.
func (m *Env) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// Environ returns all variables as "KEY=VALUE" entries sorted by key so
// output is stable for display and tests.
func (m *Env) Environ() []string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	var env []string
	for k, v := range m.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)

	return env
}
