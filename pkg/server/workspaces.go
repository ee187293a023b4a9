package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type workspaceArgs struct {
	WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
}

type createWorkspaceArgs struct {
	WorkspaceName string `json:"workspace_name" jsonschema:"name for the workspace"`
	Isolated      bool   `json:"isolated,omitempty" jsonschema:"if true the workspace is isolated (default false)"`
}

type workspacesResult struct {
	Workspaces any `json:"workspaces"`
	StatusCode int `json:"status_code"`
}

type workspaceResult struct {
	Workspace  any `json:"workspace"`
	StatusCode int `json:"status_code"`
}

type wmsSettingsResult struct {
	WmsSettings any `json:"wms_settings"`
	StatusCode  int `json:"status_code"`
}

func (s *Server) registerWorkspaceTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workspaces",
		Description: "List all GeoServer workspaces.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, workspacesResult, error) {
		content, code, err := s.geoserver.GetWorkspaces(ctx)
		if err != nil {
			return nil, workspacesResult{}, err
		}
		return nil, workspacesResult{Workspaces: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workspace",
		Description: "Get details of a specific workspace.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args workspaceArgs) (*mcp.CallToolResult, workspaceResult, error) {
		content, code, err := s.geoserver.GetWorkspace(ctx, args.WorkspaceName)
		if err != nil {
			return nil, workspaceResult{}, err
		}
		return nil, workspaceResult{Workspace: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_workspace",
		Description: "Create a new workspace. If the workspace already exists it is updated.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createWorkspaceArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateWorkspace(ctx, args.WorkspaceName, args.Isolated)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workspace",
		Description: "Delete a workspace and all its contents recursively. WARNING: this deletes all datastores, layers and styles in the workspace.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args workspaceArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteWorkspace(ctx, args.WorkspaceName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recreate_workspace",
		Description: "Recreate a workspace by deleting it if it exists, then creating it fresh. WARNING: all existing content of the workspace is deleted.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createWorkspaceArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.RecreateWorkspace(ctx, args.WorkspaceName, args.Isolated)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workspace_wms_settings",
		Description: "Get the WMS service settings of a workspace.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args workspaceArgs) (*mcp.CallToolResult, wmsSettingsResult, error) {
		content, code, err := s.geoserver.GetWorkspaceWmsSettings(ctx, args.WorkspaceName)
		if err != nil {
			return nil, wmsSettingsResult{}, err
		}
		return nil, wmsSettingsResult{WmsSettings: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "publish_workspace",
		Description: "Enable and publish the WMS service for a workspace with default settings.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args workspaceArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.PublishWorkspace(ctx, args.WorkspaceName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	type localeArgs struct {
		WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
		Locale        string `json:"locale" jsonschema:"language code, e.g. 'en', 'fr', 'de'"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_default_locale_for_service",
		Description: "Set a default language for localized WMS requests on a workspace.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args localeArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.SetDefaultLocaleForService(ctx, args.WorkspaceName, args.Locale)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})
}
