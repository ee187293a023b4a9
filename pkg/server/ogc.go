package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type capabilitiesResult struct {
	Capabilities string `json:"capabilities"`
	StatusCode   int    `json:"status_code"`
}

func (s *Server) registerOgcTools() {
	type wmsLayersArgs struct {
		WorkspaceName   string `json:"workspace_name" jsonschema:"name of the workspace"`
		AcceptLanguages string `json:"accept_languages,omitempty" jsonschema:"preferred languages for layer metadata, e.g. fr,de"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_wms_layers",
		Description: "Get the WMS capabilities of a workspace, listing its map layers.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args wmsLayersArgs) (*mcp.CallToolResult, capabilitiesResult, error) {
		content, code, err := s.geoserver.GetWmsLayers(ctx, args.WorkspaceName, args.AcceptLanguages)
		if err != nil {
			return nil, capabilitiesResult{}, err
		}
		return nil, capabilitiesResult{Capabilities: content, StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_wfs_layers",
		Description: "Get the WFS capabilities of a workspace, listing its feature types.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args workspaceArgs) (*mcp.CallToolResult, capabilitiesResult, error) {
		content, code, err := s.geoserver.GetWfsLayers(ctx, args.WorkspaceName)
		if err != nil {
			return nil, capabilitiesResult{}, err
		}
		return nil, capabilitiesResult{Capabilities: content, StatusCode: code}, nil
	})

	type getFeatureArgs struct {
		WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
		TypeName      string `json:"type_name" jsonschema:"name of the feature type to query"`
		FeatureID     string `json:"feature_id,omitempty" jsonschema:"specific feature identifier to fetch"`
		MaxFeatures   int    `json:"max_features,omitempty" jsonschema:"maximum number of features to return"`
	}
	type featuresResult struct {
		Features   any `json:"features"`
		StatusCode int `json:"status_code"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_feature",
		Description: "Fetch features from a layer through WFS GetFeature, as GeoJSON.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args getFeatureArgs) (*mcp.CallToolResult, featuresResult, error) {
		content, code, err := s.geoserver.GetFeature(ctx, args.WorkspaceName, args.TypeName, args.FeatureID, args.MaxFeatures)
		if err != nil {
			return nil, featuresResult{}, err
		}
		return nil, featuresResult{Features: jsonValue(content), StatusCode: code}, nil
	})

	type describeArgs struct {
		WorkspaceName string `json:"workspace_name,omitempty" jsonschema:"name of the workspace (default: the global server schema)"`
		TypeName      string `json:"type_name,omitempty" jsonschema:"feature type to describe (default: all types of the workspace)"`
	}
	type schemaResult struct {
		Schema     string `json:"schema"`
		StatusCode int    `json:"status_code"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "describe_feature_type",
		Description: "Describe the attribute schema of feature types through WFS DescribeFeatureType.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args describeArgs) (*mcp.CallToolResult, schemaResult, error) {
		content, code, err := s.geoserver.DescribeFeatureType(ctx, args.WorkspaceName, args.TypeName)
		if err != nil {
			return nil, schemaResult{}, err
		}
		return nil, schemaResult{Schema: content, StatusCode: code}, nil
	})

	type propertyValueArgs struct {
		WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
		TypeName      string `json:"type_name" jsonschema:"feature type to query"`
		PropertyName  string `json:"property_name" jsonschema:"attribute name to extract values for"`
	}
	type propertyValuesResult struct {
		Values     string `json:"values"`
		StatusCode int    `json:"status_code"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_property_value",
		Description: "Extract the values of one attribute across a feature type through WFS GetPropertyValue.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args propertyValueArgs) (*mcp.CallToolResult, propertyValuesResult, error) {
		content, code, err := s.geoserver.GetPropertyValue(ctx, args.WorkspaceName, args.TypeName, args.PropertyName)
		if err != nil {
			return nil, propertyValuesResult{}, err
		}
		return nil, propertyValuesResult{Values: content, StatusCode: code}, nil
	})
}
