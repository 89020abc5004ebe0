package assembly

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDescribe_SuffixSubstitution(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantDeps    string
		wantRuntime string
	}{
		{
			name:        "PlainAssembly",
			path:        "app.dll",
			wantDeps:    "app.deps.json",
			wantRuntime: "app.runtimeconfig.json",
		},
		{
			name:        "NestedDirectory",
			path:        "bin/Debug/net6.0/api.dll",
			wantDeps:    "bin/Debug/net6.0/api.deps.json",
			wantRuntime: "bin/Debug/net6.0/api.runtimeconfig.json",
		},
		{
			name:        "CasePreserved",
			path:        "MyApp.DLL",
			wantDeps:    "MyApp.deps.json",
			wantRuntime: "MyApp.runtimeconfig.json",
		},
		{
			name:        "DottedBaseName",
			path:        "my.service.dll",
			wantDeps:    "my.service.deps.json",
			wantRuntime: "my.service.runtimeconfig.json",
		},
		{
			name:        "NoExtension",
			path:        "service",
			wantDeps:    "service.deps.json",
			wantRuntime: "service.runtimeconfig.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := Describe(tt.path)
			assert.Equal(t, tt.path, desc.AssemblyPath)
			assert.Equal(t, tt.wantDeps, desc.DepsManifestPath)
			assert.Equal(t, tt.wantRuntime, desc.RuntimeConfigPath)
		})
	}
}

// TestDescribe_SharedBaseInvariant checks that the three derived paths
// always share the same directory and base name for arbitrary inputs.
func TestDescribe_SharedBaseInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dir := rapid.SampledFrom([]string{"", "bin/", "bin/Debug/net6.0/", "./out/"}).Draw(t, "dir")
		base := rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9_-]{0,12}`).Draw(t, "base")
		ext := rapid.SampledFrom([]string{".dll", ".exe", ".so", ""}).Draw(t, "ext")

		desc := Describe(dir + base + ext)

		if got := desc.DepsManifestPath; got != dir+base+".deps.json" {
			t.Fatalf("deps manifest: got %q", got)
		}
		if got := desc.RuntimeConfigPath; got != dir+base+".runtimeconfig.json" {
			t.Fatalf("runtime config: got %q", got)
		}
		if filepath.Dir(desc.DepsManifestPath) != filepath.Dir(desc.AssemblyPath) {
			t.Fatalf("directory not preserved: %q vs %q", desc.DepsManifestPath, desc.AssemblyPath)
		}
	})
}
