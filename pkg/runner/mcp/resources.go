package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerSelectionResource(srv, svc)
	registerOptionsResource(srv, svc)
}

func registerSelectionResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"multiselect://selection",
		"Selection",
		mcp.WithResourceDescription("Persisted ids of the selected options."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dto, err := svc.Selection(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func registerOptionsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"multiselect://options",
		"Options",
		mcp.WithResourceDescription("Selected and filtered options with the display state."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		snap, err := svc.List(ctx, nil)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, snap)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
