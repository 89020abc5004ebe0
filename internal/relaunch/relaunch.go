// Package relaunch implements the outer half of the two-stage tofile
// protocol: it re-invokes the tool's own executable as a child process whose
// environment points at the target application's manifests, forwards the
// original argument list behind the internal sub-command, and blocks until
// the child exits.
package relaunch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"swagdump.dev/cli/internal/assembly"
)

// Environment variables carrying the execution directive to the inner
// invocation and, through it, to the hosted target process.
const (
	EnvDepsFile      = "SWAGDUMP_DEPS_FILE"
	EnvRuntimeConfig = "SWAGDUMP_RUNTIME_CONFIG"
)

// InternalCommand is the hidden sub-command the child process is dispatched
// to. It is not enumerated in help output but behaves identically if
// invoked directly.
const InternalCommand = "_tofile"

// Relauncher spawns the inner invocation. Fields default to the current
// process's executable, environment and standard streams via New; tests
// substitute their own.
type Relauncher struct {
	ExecPath string
	Env      []string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// New returns a Relauncher bound to the current executable and stdio.
func New() (*Relauncher, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve own executable: %w", err)
	}
	return &Relauncher{
		ExecPath: exe,
		Env:      os.Environ(),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}, nil
}

// Run spawns the inner invocation and waits for it to finish. The child
// inherits the relauncher's streams; its exit code, zero or not, is
// returned as-is. Only a failure to start the child surfaces as an error.
func (r *Relauncher) Run(ctx context.Context, desc assembly.Descriptor, rawArgs []string) (int, error) {
	cmd := exec.CommandContext(ctx, r.ExecPath, childArgs(rawArgs)...)
	cmd.Env = childEnv(r.Env, desc)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("failed to relaunch %s: %w", r.ExecPath, err)
	}
	return 0, nil
}

// childArgs prepends the internal sub-command to the original argument
// list, which is forwarded verbatim and in order.
func childArgs(rawArgs []string) []string {
	args := make([]string, 0, len(rawArgs)+1)
	args = append(args, InternalCommand)
	return append(args, rawArgs...)
}

// childEnv copies the base environment and appends the manifest directive.
func childEnv(base []string, desc assembly.Descriptor) []string {
	env := append([]string(nil), base...)
	return append(env,
		EnvDepsFile+"="+desc.DepsManifestPath,
		EnvRuntimeConfig+"="+desc.RuntimeConfigPath,
	)
}
