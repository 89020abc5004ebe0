// Package assembly describes a target application's built artifact and the
// manifests that accompany it.
package assembly

import (
	"path/filepath"
	"strings"
)

// Descriptor names the target artifact and its sibling manifests. The three
// paths always share the same directory and base name.
type Descriptor struct {
	AssemblyPath      string
	DepsManifestPath  string
	RuntimeConfigPath string
}

// Describe derives the dependency-manifest and runtime-configuration paths
// from the artifact path by suffix substitution: app.dll yields
// app.deps.json and app.runtimeconfig.json. Derivation is purely textual
// and never checks the filesystem; the paths are verified only when the
// target is actually launched.
func Describe(assemblyPath string) Descriptor {
	base := strings.TrimSuffix(assemblyPath, filepath.Ext(assemblyPath))
	return Descriptor{
		AssemblyPath:      assemblyPath,
		DepsManifestPath:  base + ".deps.json",
		RuntimeConfigPath: base + ".runtimeconfig.json",
	}
}
