package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListOptionsTool(srv, svc)
	registerToggleOptionTool(srv, svc)
	registerSetFilterTool(srv, svc)
	registerClearSelectionTool(srv, svc)
	registerReloadCatalogTool(srv, svc)
}

func registerListOptionsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_options",
		mcp.WithDescription("List the selected options and the unselected options matching the filter."),
		mcp.WithString("filter",
			mcp.Description("Optional filter text applied to this response only; use set_filter to change the session filter."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Filter *string `json:"filter"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		snap, err := svc.List(ctx, args.Filter)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(snap)
	})
}

func registerToggleOptionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_option",
		mcp.WithDescription("Select or unselect an option by id or label."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Option id or label."),
		),
		mcp.WithBoolean("checked",
			mcp.Description("Whether the option should be selected. Defaults to true."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID      string `json:"id"`
			Checked *bool  `json:"checked"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		checked := true
		if args.Checked != nil {
			checked = *args.Checked
		}

		snap, err := svc.Toggle(ctx, args.ID, checked)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(snap)
	})
}

func registerSetFilterTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_filter",
		mcp.WithDescription("Set the case-insensitive substring filter for unselected options."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Filter text; empty matches every option."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		snap, err := svc.SetFilter(ctx, text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(snap)
	})
}

func registerClearSelectionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"clear_selection",
		mcp.WithDescription("Unselect every option and remove the persisted selection."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snap, err := svc.Clear(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(snap)
	})
}

func registerReloadCatalogTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"reload_catalog",
		mcp.WithDescription("Fetch the option catalog again and reconcile the selection with it."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snap, err := svc.Reload(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(snap)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
