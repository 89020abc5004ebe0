package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mfridman/xflag"
)

// Runner holds the sub-command registry and dispatches invocations. It is
// constructed once at process start and passed to whoever registers
// commands.
type Runner struct {
	// Name is the executable name shown in help text.
	Name string

	Stdout io.Writer
	Stderr io.Writer

	commands map[string]*SubCommand
	order    []string
}

// NewRunner returns a Runner writing to the standard streams.
func NewRunner(name string) *Runner {
	return &Runner{
		Name:     name,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		commands: make(map[string]*SubCommand),
	}
}

// Register adds a named sub-command. The configure callback declares the
// command's arguments and options and binds its handler. Registering the
// same name twice replaces the earlier definition: last registration wins.
func (r *Runner) Register(name, description string, configure func(*SubCommand)) {
	cmd := &SubCommand{Name: name, Description: description}
	configure(cmd)
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
}

// Run parses argv and dispatches to the matching sub-command. Usage errors
// (empty argv, unknown command, unknown flag, missing or surplus positional
// argument) print help to the error stream and return a non-zero code
// without invoking any handler. Otherwise Run returns exactly what the
// handler returns.
func (r *Runner) Run(argv []string) (int, error) {
	if len(argv) == 0 {
		r.printUsage(r.Stderr)
		return 1, nil
	}
	cmd, ok := r.commands[argv[0]]
	if !ok {
		fmt.Fprintf(r.Stderr, "unknown command %q\n\n", argv[0])
		r.printUsage(r.Stderr)
		return 1, nil
	}
	inv, err := cmd.parse(argv[1:])
	if err != nil {
		fmt.Fprintf(r.Stderr, "%v\n\n", err)
		r.printCommandUsage(r.Stderr, cmd)
		return 1, nil
	}
	if cmd.run == nil {
		return 1, fmt.Errorf("command %q has no handler", cmd.Name)
	}
	inv.Stdout = r.Stdout
	inv.Stderr = r.Stderr
	return cmd.run(inv)
}

// parse consumes tokens against the command's declared shape. Flag-prefixed
// tokens fill options, each taking exactly one value token (even a token
// that itself looks like a flag); every other token fills the next unfilled
// positional argument in declaration order.
func (c *SubCommand) parse(tokens []string) (*Invocation, error) {
	fs := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	optValues := make(map[string]*string, len(c.options))
	for _, opt := range c.options {
		optValues[opt.Name] = fs.String(opt.Name, "", opt.Description)
	}
	if err := xflag.ParseToEnd(fs, tokens); err != nil {
		return nil, fmt.Errorf("command %q: %w", c.Name, err)
	}

	positionals := fs.Args()
	if len(positionals) < len(c.arguments) {
		return nil, fmt.Errorf("command %q: missing required argument %q", c.Name, c.arguments[len(positionals)].Name)
	}
	if len(positionals) > len(c.arguments) {
		return nil, fmt.Errorf("command %q: unexpected argument %q", c.Name, positionals[len(c.arguments)])
	}

	inv := &Invocation{
		values: make(map[string]string, len(c.arguments)+len(c.options)),
		raw:    tokens,
	}
	for i, arg := range c.arguments {
		inv.values[arg.Name] = positionals[i]
	}
	// Only options that were actually set end up in the invocation, so
	// handlers can distinguish "absent" from "empty".
	fs.Visit(func(f *flag.Flag) {
		inv.values[f.Name] = *optValues[f.Name]
	})
	return inv, nil
}
