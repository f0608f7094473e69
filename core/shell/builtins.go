package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pborman/getopt/v2"

	"github.com/falshproject/falsh/core/pathtool"
)

// AllBuiltins holds every registered shell builtin keyed by name. Builtins
// run in-process against the inherited streams and never join the pipe
// chain.
var AllBuiltins = make(map[string]Builtin)

type Builtin interface {
	Main(ex *Executor, args []string) error
}

type BuiltinFunc func(ex *Executor, args []string) error

func (f BuiltinFunc) Main(ex *Executor, args []string) error {
	return f(ex, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// BuiltinNames lists the registered builtin names sorted alphabetically.
func BuiltinNames() []string {
	var names []string
	for k := range AllBuiltins {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Cd changes the shell working directory. A failed change is reported and
// leaves the working directory untouched.
func Cd(ex *Executor, args []string) error {
	if len(args) < 2 {
		return Errorf(KindUsage, "cd: missing argument")
	}
	if err := ex.state.Chdir(args[1]); err != nil {
		fmt.Fprintf(ex.state.Stderr(), "cd: %v\n", err)
	}
	return nil
}

// Pwd prints the absolute current working directory.
func Pwd(ex *Executor, args []string) error {
	fmt.Fprintln(ex.state.Stdout(), ex.state.Getwd())
	return nil
}

// AddToPath records a new PATH entry through the store. --temp matched
// anywhere in the arguments suppresses persistence.
func AddToPath(ex *Executor, args []string) error {
	temp := false
	var rest []string
	for _, arg := range args[1:] {
		if arg == "--temp" {
			temp = true
			continue
		}
		rest = append(rest, arg)
	}

	if len(rest) == 0 {
		return Errorf(KindUsage, "addToPath: missing argument")
	}

	if err := ex.store.Add(rest[0], temp); err != nil {
		return WrapError(KindIO, err, "addToPath: %s", rest[0])
	}
	return nil
}

// Which resolves commands against the shell's PATH the same way the
// executor does before spawning.
func Which(ex *Executor, args []string) error {
	opts := getopt.New()
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil {
		return WrapError(KindUsage, err, "which")
	}
	if *helpOpt || len(opts.Args()) == 0 {
		w := ex.state.Stdout()
		fmt.Fprintln(w, "usage: which COMMAND...")
		fmt.Fprintln(w, "Locate a command.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		opts.PrintOptions(w)
		return nil
	}

	for _, name := range opts.Args() {
		path, err := ex.lookPath(name)
		if err != nil {
			fmt.Fprintf(ex.state.Stderr(), "which: %s: not found\n", name)
			continue
		}
		fmt.Fprintln(ex.state.Stdout(), path)
	}
	return nil
}

// PathTool opens the interactive PATH management view, blocking the read
// loop until it exits.
func PathTool(ex *Executor, args []string) error {
	if err := pathtool.Run(ex.store, ex.state.Stdin(), ex.state.Stdout()); err != nil {
		return WrapError(KindIO, err, "pathTool")
	}
	return nil
}

// Export sets environment variables from KEY=VALUE arguments, or prints
// every variable when called bare. A malformed assignment is reported and
// the remaining arguments still apply.
func Export(ex *Executor, args []string) error {
	if len(args) == 1 {
		for _, kv := range ex.state.Environ() {
			fmt.Fprintln(ex.state.Stdout(), kv)
		}
		return nil
	}

	for _, assignment := range args[1:] {
		eq := strings.Index(assignment, "=")
		if eq < 0 {
			fmt.Fprintf(ex.state.Stderr(), "export: invalid syntax %q, expected VAR=VALUE\n", assignment)
			continue
		}
		_ = ex.state.Setenv(assignment[:eq], assignment[eq+1:])
	}
	return nil
}

// Help lists the registered builtins.
func Help(ex *Executor, args []string) error {
	w := ex.state.Stdout()
	fmt.Fprintln(w, "These commands are implemented by the shell itself.")
	fmt.Fprintln(w, "Everything else is looked up on PATH and spawned.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Join(BuiltinNames(), "\n"))
	return nil
}

func init() {
	AllBuiltins["cd"] = BuiltinFunc(Cd)
	AllBuiltins["pwd"] = BuiltinFunc(Pwd)
	AllBuiltins["addToPath"] = BuiltinFunc(AddToPath)
	AllBuiltins["pathTool"] = BuiltinFunc(PathTool)
	AllBuiltins["export"] = BuiltinFunc(Export)
	AllBuiltins["which"] = BuiltinFunc(Which)
	AllBuiltins["help"] = BuiltinFunc(Help)
}
