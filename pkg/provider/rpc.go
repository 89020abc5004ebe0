package provider

import (
	"encoding/json"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// providerPlugin implements plugin.Plugin over net/rpc.
type providerPlugin struct {
	impl Provider
}

func (p *providerPlugin) Server(*plugin.MuxBroker) (interface{}, error) {
	return &providerServer{impl: p.impl}, nil
}

func (p *providerPlugin) Client(_ *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &providerClient{client: c}, nil
}

// DocumentArgs is the wire form of a Document call.
type DocumentArgs struct {
	Name     string
	Host     string
	BasePath string
}

// providerServer runs inside the target application's process.
type providerServer struct {
	impl Provider
}

func (s *providerServer) Document(args DocumentArgs, resp *[]byte) error {
	doc, err := s.impl.Document(args.Name, args.Host, args.BasePath)
	if err != nil {
		return err
	}
	*resp = doc
	return nil
}

func (s *providerServer) StartupTypes(_ interface{}, resp *[]string) error {
	types, err := s.impl.StartupTypes()
	if err != nil {
		return err
	}
	*resp = types
	return nil
}

// providerClient is the host-side view of the capability.
type providerClient struct {
	client *rpc.Client
}

func (c *providerClient) Document(name, host, basePath string) (json.RawMessage, error) {
	var resp []byte
	args := DocumentArgs{Name: name, Host: host, BasePath: basePath}
	if err := c.client.Call("Plugin.Document", args, &resp); err != nil {
		return nil, err
	}
	return json.RawMessage(resp), nil
}

func (c *providerClient) StartupTypes() ([]string, error) {
	var resp []string
	if err := c.client.Call("Plugin.StartupTypes", new(interface{}), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
