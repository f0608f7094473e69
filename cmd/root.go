package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/falshproject/falsh/core/config"
	"github.com/falshproject/falsh/core/pathstore"
	"github.com/falshproject/falsh/core/shell"
	"github.com/falshproject/falsh/core/state"
)

var (
	noRC        bool
	commandLine string
)

// session wires the executor to the real process: OS filesystem, inherited
// environment, the persisted path list mirrored into PATH.
func session() (*shell.Executor, *config.Configuration, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, home)
	if err != nil {
		return nil, nil, err
	}

	st, err := state.NewFromOS()
	if err != nil {
		return nil, nil, err
	}

	store := pathstore.New(fs, cfg.PathFile, st, st.Stderr())
	ex := shell.NewExecutor(st, store)

	if err := store.ApplyAllTemporary(); err != nil {
		fmt.Fprintf(st.Stderr(), "falsh: loading path list: %v\n", err)
	}

	return ex, cfg, nil
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "falsh",
	Short: "An interactive shell with a persisted, user-editable PATH list",
	Long: `falsh is an interactive command interpreter with pipelines,
redirection, globbing and a persisted PATH list managed through an
interactive view (run pathTool inside the shell or falsh paths).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, cfg, err := session()
		if err != nil {
			return err
		}

		if commandLine != "" {
			if err := ex.Execute(commandLine); err != nil {
				fmt.Fprintf(ex.State().Stderr(), "falsh: %v\n", err)
				os.Exit(1)
			}
			return nil
		}

		if !cfg.NoBanner {
			shell.Banner(ex.State().Stdout())
		}
		if !noRC {
			_ = ex.Source(cfg.RCFile)
		}

		sh, err := shell.NewShell(ex, cfg)
		if err != nil {
			return fmt.Errorf("line editor init: %w", err)
		}

		code := sh.Run()
		sh.Close()
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.Flags().BoolVar(&noRC, "norc", false, "skip the startup script")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single line and exit")
}
