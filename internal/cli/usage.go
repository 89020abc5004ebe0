package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// printUsage lists the registered sub-commands in registration order.
// Hidden commands are not enumerated.
func (r *Runner) printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> [args] [options]\n\n", r.Name)

	var visible []*SubCommand
	maxLen := 0
	for _, name := range r.order {
		cmd := r.commands[name]
		if cmd.hidden() {
			continue
		}
		visible = append(visible, cmd)
		if len(cmd.Name) > maxLen {
			maxLen = len(cmd.Name)
		}
	}
	if len(visible) == 0 {
		return
	}
	fmt.Fprintln(w, headerStyle.Render("Commands:"))
	for _, cmd := range visible {
		fmt.Fprintf(w, "  %-*s  %s\n", maxLen, cmd.Name, cmd.Description)
	}
}

// printCommandUsage renders the usage line, arguments and options of a
// single sub-command.
func (r *Runner) printCommandUsage(w io.Writer, cmd *SubCommand) {
	parts := []string{"Usage:", r.Name, cmd.Name}
	for _, arg := range cmd.arguments {
		parts = append(parts, "<"+arg.Name+">")
	}
	if len(cmd.options) > 0 {
		parts = append(parts, "[options]")
	}
	fmt.Fprintln(w, strings.Join(parts, " "))

	if len(cmd.arguments) > 0 {
		maxLen := 0
		for _, arg := range cmd.arguments {
			if len(arg.Name) > maxLen {
				maxLen = len(arg.Name)
			}
		}
		fmt.Fprintf(w, "\n%s\n", headerStyle.Render("Arguments:"))
		for _, arg := range cmd.arguments {
			fmt.Fprintf(w, "  %-*s  %s\n", maxLen, arg.Name, arg.Description)
		}
	}
	if len(cmd.options) > 0 {
		maxLen := 0
		for _, opt := range cmd.options {
			if len(opt.Name)+2 > maxLen {
				maxLen = len(opt.Name) + 2
			}
		}
		fmt.Fprintf(w, "\n%s\n", headerStyle.Render("Options:"))
		for _, opt := range cmd.options {
			fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "--"+opt.Name, opt.Description)
		}
	}
}
