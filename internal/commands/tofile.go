// Package commands registers the tofile sub-command pair: the public outer
// command that relaunches the tool under the target application's runtime
// shape, and the hidden inner command that hosts the target and serializes
// its swagger document.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"swagdump.dev/cli/internal/assembly"
	"swagdump.dev/cli/internal/cli"
	"swagdump.dev/cli/internal/host"
	"swagdump.dev/cli/internal/relaunch"
	"swagdump.dev/cli/internal/swagger"
	"swagdump.dev/cli/pkg/provider"
)

const (
	argTarget = "targetpath"
	argDoc    = "swaggerdoc"

	optOutput   = "output"
	optHost     = "host"
	optBasePath = "basepath"
	optFormat   = "format"
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

// Options carries the collaborators the handlers depend on. Zero values
// select the real implementations; tests substitute fakes.
type Options struct {
	// Relaunch spawns the inner invocation and reports its exit code.
	Relaunch func(ctx context.Context, desc assembly.Descriptor, rawArgs []string) (int, error)

	// Load hosts the target application and returns its swagger provider
	// together with a handle that releases the target.
	Load func(desc assembly.Descriptor, logger hclog.Logger) (provider.Provider, io.Closer, error)

	// Logger receives diagnostics on stderr; stdout stays reserved for the
	// document and the confirmation message.
	Logger hclog.Logger
}

// Register installs the public tofile sub-command and its hidden inner
// counterpart on r.
func Register(r *cli.Runner, opts Options) {
	if opts.Relaunch == nil {
		opts.Relaunch = defaultRelaunch
	}
	if opts.Load == nil {
		opts.Load = defaultLoad
	}
	if opts.Logger == nil {
		opts.Logger = NewLogger()
	}

	declare := func(c *cli.SubCommand) {
		c.Argument(argTarget, "path to the target application's built artifact")
		c.Argument(argDoc, "name of the swagger doc to retrieve")
		c.Option(optOutput, "relative path where the document will be saved; writes to stdout when omitted")
		c.Option(optHost, "override the document's host value")
		c.Option(optBasePath, "override the document's basePath value")
		c.Option(optFormat, "output formatting: Indented or None (default None)")
	}

	r.Register("tofile", "retrieves a swagger document from a target application and writes it to file or stdout", func(c *cli.SubCommand) {
		declare(c)
		c.OnRun(func(inv *cli.Invocation) (int, error) {
			return runToFile(inv, opts)
		})
	})

	r.Register(relaunch.InternalCommand, "inner half of tofile; reached via relaunch", func(c *cli.SubCommand) {
		declare(c)
		c.OnRun(func(inv *cli.Invocation) (int, error) {
			return runToFileInternal(inv, opts)
		})
	})
}

// runToFile is the outer state: derive the manifest paths and hand the
// original argument list to the inner invocation. No other output or side
// effect happens here; the child's exit code is the result.
func runToFile(inv *cli.Invocation, opts Options) (int, error) {
	desc := assembly.Describe(inv.Value(argTarget))
	return opts.Relaunch(context.Background(), desc, inv.Raw())
}

// runToFileInternal is the inner state: host the target application, fetch
// the named document and serialize it to the requested destination.
func runToFileInternal(inv *cli.Invocation, opts Options) (int, error) {
	desc := assembly.Describe(inv.Value(argTarget))

	prov, release, err := opts.Load(desc, opts.Logger)
	if err != nil {
		return 1, err
	}
	defer release.Close()

	// Diagnostic pass over the target's startup-marked types. Composition
	// is resolved by the capability convention, never by this listing.
	types, err := prov.StartupTypes()
	if err != nil {
		return 1, err
	}
	for _, typeName := range types {
		opts.Logger.Info("startup type", "type", typeName)
	}

	doc, err := prov.Document(inv.Value(argDoc), inv.Value(optHost), inv.Value(optBasePath))
	if err != nil {
		return 1, err
	}

	outputPath, toFile := inv.Lookup(optOutput)
	var dest io.Writer = inv.Stdout
	if toFile {
		f, err := os.Create(outputPath)
		if err != nil {
			return 1, fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		dest = f
	}

	if err := swagger.Write(dest, doc, swagger.ParseFormat(inv.Value(optFormat))); err != nil {
		return 1, err
	}
	if toFile {
		fmt.Fprintln(inv.Stdout, successStyle.Render(fmt.Sprintf("Swagger JSON successfully written to %s", outputPath)))
	}
	return 0, nil
}

func defaultRelaunch(ctx context.Context, desc assembly.Descriptor, rawArgs []string) (int, error) {
	r, err := relaunch.New()
	if err != nil {
		return 1, err
	}
	return r.Run(ctx, desc, rawArgs)
}

func defaultLoad(desc assembly.Descriptor, logger hclog.Logger) (provider.Provider, io.Closer, error) {
	target, err := host.Load(desc, logger)
	if err != nil {
		return nil, nil, err
	}
	return target.Provider(), target, nil
}

// NewLogger builds the tool's stderr logger. Setting SWAGDUMP_DEBUG raises
// the level to Debug, which also surfaces go-plugin handshake tracing.
func NewLogger() hclog.Logger {
	level := hclog.Info
	if os.Getenv("SWAGDUMP_DEBUG") != "" {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swagdump",
		Level:  level,
		Output: os.Stderr,
	})
}
