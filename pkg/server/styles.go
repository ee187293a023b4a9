package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type styleArgs struct {
	StyleName     string `json:"style_name" jsonschema:"name of the style"`
	WorkspaceName string `json:"workspace_name,omitempty" jsonschema:"workspace of the style (default: global styles)"`
}

type stylesResult struct {
	Styles     any `json:"styles"`
	StatusCode int `json:"status_code"`
}

type styleDefinitionResult struct {
	StyleDefinition string `json:"style_definition"`
	StatusCode      int    `json:"status_code"`
}

func (s *Server) registerStyleTools() {
	type listStylesArgs struct {
		WorkspaceName string `json:"workspace_name,omitempty" jsonschema:"workspace to list styles from (default: global styles)"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_styles",
		Description: "List styles, either global or from a workspace.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args listStylesArgs) (*mcp.CallToolResult, stylesResult, error) {
		content, code, err := s.geoserver.GetStyles(ctx, args.WorkspaceName)
		if err != nil {
			return nil, stylesResult{}, err
		}
		return nil, stylesResult{Styles: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_style_definition",
		Description: "Get the SLD definition of a style.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args styleArgs) (*mcp.CallToolResult, styleDefinitionResult, error) {
		content, code, err := s.geoserver.GetStyleDefinition(ctx, args.StyleName, args.WorkspaceName)
		if err != nil {
			return nil, styleDefinitionResult{}, err
		}
		return nil, styleDefinitionResult{StyleDefinition: content, StatusCode: code}, nil
	})

	type createStyleArgs struct {
		StyleName     string `json:"style_name" jsonschema:"name for the style"`
		StyleContent  string `json:"style_content" jsonschema:"SLD 1.0 document defining the style"`
		WorkspaceName string `json:"workspace_name,omitempty" jsonschema:"workspace for the style (default: global styles)"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_style_from_string",
		Description: "Create or update a style from an SLD document.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createStyleArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateStyleFromString(ctx, args.StyleName, args.StyleContent, args.WorkspaceName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_style",
		Description: "Delete a style, purging its definition file.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args styleArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteStyle(ctx, args.StyleName, args.WorkspaceName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	type defaultStyleArgs struct {
		WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
		LayerName     string `json:"layer_name" jsonschema:"name of the layer"`
		StyleName     string `json:"style_name" jsonschema:"name of the style to set as default"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_default_layer_style",
		Description: "Set the default style of a published layer.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args defaultStyleArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.SetDefaultLayerStyle(ctx, args.WorkspaceName, args.LayerName, args.StyleName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})
}
