package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type layerGroupArgs struct {
	WorkspaceName  string `json:"workspace_name" jsonschema:"name of the workspace"`
	LayerGroupName string `json:"layer_group_name" jsonschema:"name of the layer group"`
}

type layerGroupsResult struct {
	LayerGroups any `json:"layer_groups"`
	StatusCode  int `json:"status_code"`
}

type layerGroupResult struct {
	LayerGroup any `json:"layer_group"`
	StatusCode int `json:"status_code"`
}

func (s *Server) registerLayerGroupTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_layer_groups",
		Description: "List the layer groups of a workspace.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args workspaceArgs) (*mcp.CallToolResult, layerGroupsResult, error) {
		content, code, err := s.geoserver.GetLayerGroups(ctx, args.WorkspaceName)
		if err != nil {
			return nil, layerGroupsResult{}, err
		}
		return nil, layerGroupsResult{LayerGroups: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_layer_group",
		Description: "Get details of a layer group.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args layerGroupArgs) (*mcp.CallToolResult, layerGroupResult, error) {
		content, code, err := s.geoserver.GetLayerGroup(ctx, args.WorkspaceName, args.LayerGroupName)
		if err != nil {
			return nil, layerGroupResult{}, err
		}
		return nil, layerGroupResult{LayerGroup: jsonValue(content), StatusCode: code}, nil
	})

	type createLayerGroupArgs struct {
		GroupName      string   `json:"group_name" jsonschema:"name for the new layer group"`
		WorkspaceName  string   `json:"workspace_name" jsonschema:"name of the workspace"`
		Layers         []string `json:"layers" jsonschema:"ordered layer names to include in the group"`
		Styles         []string `json:"styles,omitempty" jsonschema:"style names matching the layers (default: layer defaults)"`
		Title          string   `json:"title,omitempty" jsonschema:"layer group title (default: group name)"`
		Abstract       string   `json:"abstract,omitempty" jsonschema:"layer group abstract"`
		Epsg           *int     `json:"epsg,omitempty" jsonschema:"EPSG code of the group bounds (default 4326)"`
		Mode           string   `json:"mode,omitempty" jsonschema:"group mode: SINGLE, OPAQUE_CONTAINER, NAMED, CONTAINER or EO (default SINGLE)"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_layer_group",
		Description: "Create a layer group from published layers of a workspace.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createLayerGroupArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateLayerGroup(ctx, args.GroupName, args.WorkspaceName,
			args.Layers, args.Styles, args.Title, args.Abstract, epsgOrDefault(args.Epsg), args.Mode)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_layer_group",
		Description: "Delete a layer group without removing its layers.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args layerGroupArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteLayerGroup(ctx, args.WorkspaceName, args.LayerGroupName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})
}
