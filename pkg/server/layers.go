package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type layerArgs struct {
	WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
	LayerName     string `json:"layer_name" jsonschema:"name of the layer"`
}

type layersResult struct {
	Layers     any `json:"layers"`
	StatusCode int `json:"status_code"`
}

type layerResult struct {
	Layer      any `json:"layer"`
	StatusCode int `json:"status_code"`
}

func (s *Server) registerLayerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_layers",
		Description: "List the published layers of a workspace.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args workspaceArgs) (*mcp.CallToolResult, layersResult, error) {
		content, code, err := s.geoserver.GetLayers(ctx, args.WorkspaceName)
		if err != nil {
			return nil, layersResult{}, err
		}
		return nil, layersResult{Layers: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_layer",
		Description: "Get details of a published layer.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args layerArgs) (*mcp.CallToolResult, layerResult, error) {
		content, code, err := s.geoserver.GetLayer(ctx, args.WorkspaceName, args.LayerName)
		if err != nil {
			return nil, layerResult{}, err
		}
		return nil, layerResult{Layer: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_layer",
		Description: "Delete a published layer without removing its underlying resource.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args layerArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteLayer(ctx, args.WorkspaceName, args.LayerName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})
}
