package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type gwcLayerArgs struct {
	WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
	LayerName     string `json:"layer_name" jsonschema:"name of the layer"`
}

type gwcLayerResult struct {
	GwcLayer   string `json:"gwc_layer"`
	StatusCode int    `json:"status_code"`
}

func (s *Server) registerGwcTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_gwc_layer",
		Description: "Get the tile cache configuration of a layer as XML.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args gwcLayerArgs) (*mcp.CallToolResult, gwcLayerResult, error) {
		content, code, err := s.geoserver.GetGwcLayer(ctx, args.WorkspaceName, args.LayerName)
		if err != nil {
			return nil, gwcLayerResult{}, err
		}
		return nil, gwcLayerResult{GwcLayer: content, StatusCode: code}, nil
	})

	type publishGwcLayerArgs struct {
		WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
		LayerName     string `json:"layer_name" jsonschema:"name of the layer"`
		Epsg          *int   `json:"epsg,omitempty" jsonschema:"EPSG code of the cached gridset (default 4326)"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "publish_gwc_layer",
		Description: "Enable tile caching for a layer on the gridset of the given EPSG code.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args publishGwcLayerArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.PublishGwcLayer(ctx, args.WorkspaceName, args.LayerName, epsgOrDefault(args.Epsg))
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_gwc_layer",
		Description: "Disable tile caching for a layer.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args gwcLayerArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteGwcLayer(ctx, args.WorkspaceName, args.LayerName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	type gridsetArgs struct {
		Epsg int `json:"epsg" jsonschema:"EPSG code of the gridset (2056, 21781 or 3857)"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_gridset",
		Description: "Create a tile cache gridset for an EPSG code. Supports 2056, 21781 and 3857.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args gridsetArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateGridset(ctx, args.Epsg)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_gridset",
		Description: "Delete the tile cache gridset of an EPSG code.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args gridsetArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteGridset(ctx, args.Epsg)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})
}
