package provider

import (
	"encoding/json"
	"fmt"
	"net"
	"net/rpc"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	docs    map[string]json.RawMessage
	types   []string
	gotHost string
	gotBase string
}

func (f *fakeProvider) Document(name, host, basePath string) (json.RawMessage, error) {
	f.gotHost, f.gotBase = host, basePath
	doc, ok := f.docs[name]
	if !ok {
		return nil, fmt.Errorf("document %q not configured", name)
	}
	return doc, nil
}

func (f *fakeProvider) StartupTypes() ([]string, error) {
	return f.types, nil
}

func newRPCPair(t *testing.T, impl Provider) *providerClient {
	t.Helper()
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("Plugin", &providerServer{impl: impl}))

	clientConn, serverConn := net.Pipe()
	go srv.ServeConn(serverConn)

	rpcClient := rpc.NewClient(clientConn)
	t.Cleanup(func() { _ = rpcClient.Close() })
	return &providerClient{client: rpcClient}
}

func TestProviderRPC_DocumentRoundTrip(t *testing.T) {
	impl := &fakeProvider{
		docs: map[string]json.RawMessage{
			"v1": json.RawMessage(`{"swagger":"2.0","host":"example.com"}`),
		},
	}
	client := newRPCPair(t, impl)

	doc, err := client.Document("v1", "example.com", "/api")

	require.NoError(t, err)
	assert.JSONEq(t, `{"swagger":"2.0","host":"example.com"}`, string(doc))
	assert.Equal(t, "example.com", impl.gotHost, "host override passes through unchanged")
	assert.Equal(t, "/api", impl.gotBase, "basePath override passes through unchanged")
}

func TestProviderRPC_UnknownDocumentFails(t *testing.T) {
	client := newRPCPair(t, &fakeProvider{docs: map[string]json.RawMessage{}})

	_, err := client.Document("missing", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestProviderRPC_StartupTypes(t *testing.T) {
	impl := &fakeProvider{types: []string{"Startup", "TestStartup"}}
	client := newRPCPair(t, impl)

	types, err := client.StartupTypes()

	require.NoError(t, err)
	assert.Equal(t, []string{"Startup", "TestStartup"}, types)
}
