package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falshproject/falsh/core/pathstore"
	"github.com/falshproject/falsh/core/state"
)

// newOsExecutor builds an executor over the real filesystem in a temporary
// working directory so real programs can be spawned.
func newOsExecutor(t *testing.T) (*Executor, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("spawn tests rely on POSIX userland")
	}

	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	fs := afero.NewOsFs()
	st := state.New(fs, dir, strings.NewReader(""), stdout, stderr)
	require.NoError(t, st.Setenv(state.EnvPath, "/usr/bin:/bin"))

	store := pathstore.New(fs, filepath.Join(dir, ".falsh_path"), st, stderr)
	return NewExecutor(st, store), stdout, stderr
}

func TestParseStage(t *testing.T) {
	cases := map[string]struct {
		tokens  []string
		argv    []string
		inFile  string
		outFile string
	}{
		"plain":        {[]string{"ls", "-l"}, []string{"ls", "-l"}, "", ""},
		"out":          {[]string{"ls", ">", "f"}, []string{"ls"}, "", "f"},
		"in":           {[]string{"wc", "<", "f"}, []string{"wc"}, "f", ""},
		"both":         {[]string{"sort", "<", "in", ">", "out"}, []string{"sort"}, "in", "out"},
		// Everything past the first operator is dropped, so a later "<"
		// never survives the ">" truncation.
		"out-then-in": {[]string{"sort", ">", "out", "<", "in"}, []string{"sort"}, "", "out"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			st, err := parseStage(tc.tokens)
			require.NoError(t, err)
			assert.Equal(t, tc.argv, st.argv)
			assert.Equal(t, tc.inFile, st.inFile)
			assert.Equal(t, tc.outFile, st.outFile)
		})
	}
}

func TestParseStage_missingFilename(t *testing.T) {
	for _, tokens := range [][]string{
		{"echo", "hi", ">"},
		{"wc", "<"},
	} {
		_, err := parseStage(tokens)
		require.Error(t, err, "tokens %v", tokens)

		var shellErr *Error
		require.ErrorAs(t, err, &shellErr)
		assert.Equal(t, KindParse, shellErr.Kind)
	}
}

func TestParseStage_missingCommand(t *testing.T) {
	for _, tokens := range [][]string{
		{">", "out.txt"},
		{"<", "in.txt"},
		{"<", "in.txt", ">", "out.txt"},
	} {
		_, err := parseStage(tokens)
		require.Error(t, err, "tokens %v", tokens)

		var shellErr *Error
		require.ErrorAs(t, err, &shellErr)
		assert.Equal(t, KindParse, shellErr.Kind)
	}
}

func TestExecute_redirectionOnlyStage(t *testing.T) {
	ex, stdout, _ := newMemExecutor(t)

	// A bare redirection has no program to run and must surface as a parse
	// error, not take the whole shell down.
	err := ex.Execute("> out.txt")
	require.Error(t, err)

	var shellErr *Error
	require.ErrorAs(t, err, &shellErr)
	assert.Equal(t, KindParse, shellErr.Kind)
	assert.Empty(t, stdout.String())

	_, statErr := ex.State().Fs().Stat("/home/user/out.txt")
	assert.Error(t, statErr, "no file may be created")
}

func TestExecute_emptyLine(t *testing.T) {
	ex, stdout, _ := newMemExecutor(t)

	assert.NoError(t, ex.Execute(""))
	assert.NoError(t, ex.Execute("   "))
	assert.Empty(t, stdout.String())
}

func TestExecute_pipelineWordCount(t *testing.T) {
	ex, stdout, _ := newOsExecutor(t)

	require.NoError(t, ex.Execute("echo hello | wc -w"))
	assert.Equal(t, "1", strings.TrimSpace(stdout.String()))
}

func TestExecute_redirectRoundTrip(t *testing.T) {
	ex, stdout, _ := newOsExecutor(t)

	require.NoError(t, ex.Execute("echo falsh roundtrip > out.txt"))
	assert.Empty(t, stdout.String())

	contents, err := os.ReadFile(filepath.Join(ex.State().Getwd(), "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "falsh roundtrip\n", string(contents))

	require.NoError(t, ex.Execute("cat < out.txt"))
	assert.Equal(t, "falsh roundtrip\n", stdout.String())
}

func TestExecute_redirectTruncates(t *testing.T) {
	ex, stdout, _ := newOsExecutor(t)

	require.NoError(t, ex.Execute("echo first first first > out.txt"))
	require.NoError(t, ex.Execute("echo second > out.txt"))
	require.NoError(t, ex.Execute("cat out.txt"))
	assert.Equal(t, "second\n", stdout.String())
}

func TestExecute_missingRedirectTarget(t *testing.T) {
	ex, stdout, _ := newOsExecutor(t)

	err := ex.Execute("echo hi >")
	require.Error(t, err)

	var shellErr *Error
	require.ErrorAs(t, err, &shellErr)
	assert.Equal(t, KindParse, shellErr.Kind)
	assert.Empty(t, stdout.String(), "no process may run")
}

func TestExecute_parseErrorHaltsPipeline(t *testing.T) {
	ex, stdout, _ := newOsExecutor(t)

	err := ex.Execute("echo one | sort > | wc -l")
	require.Error(t, err)
	assert.Empty(t, stdout.String(), "later stages must not run")
}

func TestExecute_unknownCommand(t *testing.T) {
	ex, _, _ := newOsExecutor(t)

	err := ex.Execute("definitely-not-a-command-xyzzy")
	require.Error(t, err)

	var shellErr *Error
	require.ErrorAs(t, err, &shellErr)
	assert.Equal(t, KindLookup, shellErr.Kind)
	assert.Contains(t, err.Error(), "definitely-not-a-command-xyzzy")
}

func TestExecute_emptyStageSkipped(t *testing.T) {
	ex, stdout, _ := newOsExecutor(t)

	require.NoError(t, ex.Execute("echo hello | | wc -w"))
	assert.Equal(t, "1", strings.TrimSpace(stdout.String()))
}

func TestExecute_globExpandsArguments(t *testing.T) {
	ex, stdout, _ := newOsExecutor(t)
	dir := ex.State().Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0644))

	require.NoError(t, ex.Execute("echo *.txt"))
	assert.Equal(t, "a.txt b.txt\n", stdout.String())
}

func TestExecute_globNoMatchContributesNothing(t *testing.T) {
	ex, stdout, _ := newOsExecutor(t)

	require.NoError(t, ex.Execute("echo *.nomatch"))
	assert.Equal(t, "\n", stdout.String(), "pattern dropped, echo ran bare")
}

func TestExecute_inputRedirectOverridesPipe(t *testing.T) {
	ex, stdout, _ := newOsExecutor(t)
	dir := ex.State().Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.txt"), []byte("from file\n"), 0644))

	require.NoError(t, ex.Execute("echo from pipe | cat < in.txt"))
	assert.Equal(t, "from file\n", stdout.String())
}

func TestExecute_missingInputFile(t *testing.T) {
	ex, _, _ := newOsExecutor(t)

	err := ex.Execute("cat < nope.txt")
	require.Error(t, err)

	var shellErr *Error
	require.ErrorAs(t, err, &shellErr)
	assert.Equal(t, KindIO, shellErr.Kind)
}

func TestLookPath(t *testing.T) {
	ex, _, _ := newMemExecutor(t)
	fs := ex.State().Fs()
	require.NoError(t, fs.MkdirAll("/bin", 0755))
	require.NoError(t, afero.WriteFile(fs, "/bin/tool", []byte("#!"), 0755))
	require.NoError(t, afero.WriteFile(fs, "/bin/data", []byte{}, 0644))
	require.NoError(t, ex.State().Setenv(state.EnvPath, "/bin"))

	path, err := ex.lookPath("tool")
	require.NoError(t, err)
	assert.Equal(t, "/bin/tool", path)

	_, err = ex.lookPath("data")
	assert.Error(t, err, "not executable")

	_, err = ex.lookPath("absent")
	assert.ErrorIs(t, err, ErrNotFound)

	// A name with a slash bypasses PATH.
	path, err = ex.lookPath("/bin/tool")
	require.NoError(t, err)
	assert.Equal(t, "/bin/tool", path)
}
