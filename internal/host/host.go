// Package host loads a target application as a subprocess and exposes its
// swagger provider capability to the inner invocation.
package host

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"swagdump.dev/cli/internal/assembly"
	"swagdump.dev/cli/internal/relaunch"
	"swagdump.dev/cli/pkg/provider"
)

// Target is a running target application.
type Target struct {
	client   *plugin.Client
	provider provider.Provider
}

// Load validates the target artifact, shapes the subprocess environment
// from the runtime-configuration manifest and dispenses the swagger
// provider capability. The caller owns the returned Target and must Close
// it.
func Load(desc assembly.Descriptor, logger hclog.Logger) (*Target, error) {
	info, err := os.Stat(desc.AssemblyPath)
	if err != nil {
		return nil, fmt.Errorf("target check failed: %w", err)
	}
	if !info.Mode().IsRegular() || info.Mode()&0111 == 0 {
		return nil, fmt.Errorf("target %s is not executable", desc.AssemblyPath)
	}

	cfg, err := assembly.LoadRuntimeConfig(desc.RuntimeConfigPath)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(desc.AssemblyPath)
	cmd.Env = targetEnv(os.Environ(), desc, cfg)

	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  provider.Handshake,
		Plugins:          provider.PluginMap(nil),
		Cmd:              cmd,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
		Logger:           logger,
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to start target %s: %w", desc.AssemblyPath, err)
	}
	raw, err := rpcClient.Dispense(provider.Name)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("failed to dispense swagger provider: %w", err)
	}
	p, ok := raw.(provider.Provider)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("target %s does not implement the swagger provider", desc.AssemblyPath)
	}

	return &Target{client: client, provider: p}, nil
}

// Provider returns the dispensed swagger capability.
func (t *Target) Provider() provider.Provider {
	return t.provider
}

// Close terminates the target subprocess.
func (t *Target) Close() error {
	t.client.Kill()
	return nil
}

// targetEnv layers the manifest's configProperties and the manifest-path
// directive over the base environment.
func targetEnv(base []string, desc assembly.Descriptor, cfg *assembly.RuntimeConfig) []string {
	env := append([]string(nil), base...)
	env = append(env, cfg.Environ()...)
	return append(env,
		relaunch.EnvDepsFile+"="+desc.DepsManifestPath,
		relaunch.EnvRuntimeConfig+"="+desc.RuntimeConfigPath,
	)
}
