package assembly

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
)

// RuntimeConfig is the parsed runtime-configuration manifest.
type RuntimeConfig struct {
	RuntimeOptions RuntimeOptions `json:"runtimeOptions"`
}

// RuntimeOptions carries the subset of the manifest the host applies to the
// target process.
type RuntimeOptions struct {
	ConfigProperties map[string]any `json:"configProperties"`
}

// LoadRuntimeConfig reads the manifest at path. A missing file yields an
// empty configuration; a file that exists but cannot be read or parsed is
// an error.
func LoadRuntimeConfig(path string) (*RuntimeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &RuntimeConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read runtime config %s: %w", path, err)
	}
	var cfg RuntimeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse runtime config %s: %w", path, err)
	}
	return &cfg, nil
}

// Environ renders the configuration properties as environment entries for
// the target process, in stable key order.
func (c *RuntimeConfig) Environ() []string {
	if len(c.RuntimeOptions.ConfigProperties) == 0 {
		return nil
	}
	env := make([]string, 0, len(c.RuntimeOptions.ConfigProperties))
	for _, k := range slices.Sorted(maps.Keys(c.RuntimeOptions.ConfigProperties)) {
		env = append(env, fmt.Sprintf("%s=%v", k, c.RuntimeOptions.ConfigProperties[k]))
	}
	return env
}
