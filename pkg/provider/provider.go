// Package provider defines the contract between the swagdump host and a
// target application. A target application compiles against this package
// and calls Serve from its main to expose its swagger documents; the host
// dispenses the same capability from the other side of the process
// boundary.
package provider

import (
	"encoding/json"

	"github.com/hashicorp/go-plugin"
)

// Name is the capability name the host dispenses. Entry-point resolution
// is this fixed convention; the startup-type enumeration plays no part in
// it.
const Name = "swagger"

// Handshake must match between the host and the target application. A
// mismatch means the launched binary is not a swagger provider.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "SWAGDUMP_PLUGIN",
	MagicCookieValue: "swagdump_swagger_provider",
}

// Provider produces swagger documents for a hosted target application.
type Provider interface {
	// Document returns the named swagger document as raw JSON. An empty
	// host or basePath means the override was not supplied and the target
	// decides. Document fails with the target's own error when name is not
	// configured.
	Document(name, host, basePath string) (json.RawMessage, error)

	// StartupTypes enumerates the target's declared types carrying the
	// startup marker. Diagnostic only; nothing dispatches on the result.
	StartupTypes() ([]string, error)
}

// PluginMap returns the go-plugin map served by targets and dispensed by
// the host. impl is nil on the host side.
func PluginMap(impl Provider) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		Name: &providerPlugin{impl: impl},
	}
}

// Serve exposes impl from a target application's main. It blocks until the
// host disconnects.
func Serve(impl Provider) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap(impl),
	})
}
