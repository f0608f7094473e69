package shell

import (
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)
}

func TestHelp_golden(t *testing.T) {
	ex, stdout, _ := newMemExecutor(t)

	require.NoError(t, ex.Execute("help"))
	newGoldie(t).Assert(t, "help", stdout.Bytes())
}

func TestBanner_golden(t *testing.T) {
	ex, stdout, _ := newMemExecutor(t)

	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	Banner(ex.State().Stdout())
	newGoldie(t).Assert(t, "banner", stdout.Bytes())
}
