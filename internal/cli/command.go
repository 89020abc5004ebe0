// Package cli is a small declarative sub-command registry. Each sub-command
// declares required positional arguments and optional single-value options,
// and binds a handler that returns the process exit code. The registry is an
// explicit object constructed at process start; there is no package-level
// state.
package cli

import (
	"io"
	"strings"
)

// Handler is the execution function bound to a sub-command. The returned int
// becomes the process exit code. A non-nil error is never swallowed by the
// framework; [Runner.Run] hands it back to the caller, which is expected to
// report it and exit non-zero.
type Handler func(inv *Invocation) (int, error)

// Argument declares a required positional argument. Arguments are bound in
// declaration order; an unfilled argument is a usage error.
type Argument struct {
	Name        string
	Description string
}

// Option declares an optional flag. Each option consumes exactly one value
// token. An absent option is never an error.
type Option struct {
	Name        string
	Description string
}

// SubCommand is a named command within the registry. It is configured once
// during [Runner.Register] and immutable afterwards.
type SubCommand struct {
	Name        string
	Description string

	arguments []Argument
	options   []Option
	run       Handler
}

// Argument declares a required positional argument. Arguments fill in
// declaration order.
func (c *SubCommand) Argument(name, description string) {
	c.arguments = append(c.arguments, Argument{Name: name, Description: description})
}

// Option declares an optional flag taking a single value token.
func (c *SubCommand) Option(name, description string) {
	c.options = append(c.options, Option{Name: name, Description: description})
}

// OnRun binds the handler invoked after a successful parse.
func (c *SubCommand) OnRun(h Handler) {
	c.run = h
}

// hidden reports whether the sub-command is excluded from help listings.
// A leading underscore marks internal entry points; they remain
// dispatchable by name.
func (c *SubCommand) hidden() bool {
	return strings.HasPrefix(c.Name, "_")
}

// Invocation is the parsed form of a single sub-command invocation. It is
// constructed fresh per [Runner.Run] call and discarded after the handler
// returns.
type Invocation struct {
	// Stdout and Stderr are the runner's output streams, made available to
	// handlers so they never reach for the process globals directly.
	Stdout io.Writer
	Stderr io.Writer

	values map[string]string
	raw    []string
}

// Value returns the value bound to the named argument or option, or the
// empty string when the name was not supplied.
func (inv *Invocation) Value(name string) string {
	return inv.values[name]
}

// Lookup returns the value bound to the named argument or option and
// reports whether it was supplied on the command line.
func (inv *Invocation) Lookup(name string) (string, bool) {
	v, ok := inv.values[name]
	return v, ok
}

// Raw returns the original token list following the sub-command name,
// unmodified and in order.
func (inv *Invocation) Raw() []string {
	return inv.raw
}
