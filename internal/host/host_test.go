package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swagdump.dev/cli/internal/assembly"
)

func TestLoad_NonexistentTarget(t *testing.T) {
	desc := assembly.Describe(filepath.Join(t.TempDir(), "missing.dll"))

	_, err := Load(desc, hclog.NewNullLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "target check failed")
}

func TestLoad_NonExecutableTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.dll")
	require.NoError(t, os.WriteFile(path, []byte("not a binary"), 0o644))

	_, err := Load(assembly.Describe(path), hclog.NewNullLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not executable")
}

func TestLoad_MalformedRuntimeConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.runtimeconfig.json"), []byte("{bad"), 0o644))

	_, err := Load(assembly.Describe(path), hclog.NewNullLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "runtime config")
}

func TestTargetEnv(t *testing.T) {
	desc := assembly.Describe("bin/app.dll")
	cfg := &assembly.RuntimeConfig{}
	cfg.RuntimeOptions.ConfigProperties = map[string]any{
		"App.BindAddress": "127.0.0.1",
	}
	base := []string{"PATH=/usr/bin"}

	env := targetEnv(base, desc, cfg)

	assert.Equal(t, []string{"PATH=/usr/bin"}, base, "base environment must not be mutated")
	assert.Contains(t, env, "App.BindAddress=127.0.0.1")
	assert.Contains(t, env, "SWAGDUMP_DEPS_FILE=bin/app.deps.json")
	assert.Contains(t, env, "SWAGDUMP_RUNTIME_CONFIG=bin/app.runtimeconfig.json")
}
