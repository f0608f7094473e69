package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"

	"github.com/falshproject/falsh/core/config"
)

// Shell owns the interactive read loop around an Executor.
type Shell struct {
	Executor *Executor
	Config   *config.Configuration
	Readline *readline.Instance
}

// NewShell builds the readline instance over the executor's streams. A
// failure here is the one fatal startup error the interpreter has.
func NewShell(ex *Executor, cfg *config.Configuration) (*Shell, error) {
	var completions []readline.PrefixCompleterInterface
	for _, name := range BuiltinNames() {
		completions = append(completions, readline.PcItem(name))
	}
	completions = append(completions, readline.PcItem("exit"))

	rlCfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(ex.State().Stdin()),
		Stdout:      ex.State().Stdout(),
		Stderr:      ex.State().Stderr(),
		HistoryFile: cfg.HistoryFile,

		AutoComplete: readline.NewPrefixCompleter(completions...),
	}

	if err := rlCfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		Executor: ex,
		Config:   cfg,
		Readline: rl,
	}, nil
}

// prompt is the absolute working directory followed by the configured
// suffix.
func (s *Shell) prompt() string {
	return s.Executor.State().Getwd() + s.Config.PromptSuffix
}

// Run reads lines until exit or end of input. Errors from a line are
// reported and the loop continues.
func (s *Shell) Run() int {
	for {
		s.Readline.SetPrompt(s.prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return 0 // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			fmt.Fprintf(s.Readline, "falsh: %v\n", err)
			return 1
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return 0
		}

		if err := s.Executor.Execute(line); err != nil {
			fmt.Fprintf(s.Readline, "falsh: %v\n", err)
		}
	}
}

func (s *Shell) Close() error {
	return s.Readline.Close()
}
