package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type featureTypeArgs struct {
	WorkspaceName   string `json:"workspace_name" jsonschema:"name of the workspace"`
	DatastoreName   string `json:"datastore_name" jsonschema:"name of the datastore"`
	FeatureTypeName string `json:"feature_type_name" jsonschema:"name of the feature type"`
}

type featureTypesResult struct {
	FeatureTypes any `json:"feature_types"`
	StatusCode   int `json:"status_code"`
}

type featureTypeResult struct {
	FeatureType any `json:"feature_type"`
	StatusCode  int `json:"status_code"`
}

func (s *Server) registerFeatureTypeTools() {
	type featureTypesArgs struct {
		WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
		DatastoreName string `json:"datastore_name" jsonschema:"name of the datastore"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_feature_types",
		Description: "List the feature types of a datastore.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args featureTypesArgs) (*mcp.CallToolResult, featureTypesResult, error) {
		content, code, err := s.geoserver.GetFeatureTypes(ctx, args.WorkspaceName, args.DatastoreName)
		if err != nil {
			return nil, featureTypesResult{}, err
		}
		return nil, featureTypesResult{FeatureTypes: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_feature_type",
		Description: "Get details of a feature type.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args featureTypeArgs) (*mcp.CallToolResult, featureTypeResult, error) {
		content, code, err := s.geoserver.GetFeatureType(ctx, args.WorkspaceName, args.DatastoreName, args.FeatureTypeName)
		if err != nil {
			return nil, featureTypeResult{}, err
		}
		return nil, featureTypeResult{FeatureType: jsonValue(content), StatusCode: code}, nil
	})

	type createFeatureTypeArgs struct {
		LayerName     string   `json:"layer_name" jsonschema:"name of the layer to publish"`
		WorkspaceName string   `json:"workspace_name" jsonschema:"name of the workspace"`
		DatastoreName string   `json:"datastore_name" jsonschema:"name of the datastore containing the table"`
		Title         string   `json:"title,omitempty" jsonschema:"layer title (default: layer name)"`
		Abstract      string   `json:"abstract,omitempty" jsonschema:"layer abstract"`
		Epsg          *int     `json:"epsg,omitempty" jsonschema:"EPSG code of the layer (default 4326)"`
		Keywords      []string `json:"keywords,omitempty" jsonschema:"keywords to attach to the layer"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_feature_type",
		Description: "Publish a vector layer (feature type) from a datastore table.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createFeatureTypeArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateFeatureType(ctx, args.LayerName, args.WorkspaceName,
			args.DatastoreName, args.Title, args.Abstract, epsgOrDefault(args.Epsg), args.Keywords)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	type deleteFeatureTypeArgs struct {
		WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
		DatastoreName string `json:"datastore_name" jsonschema:"name of the datastore"`
		LayerName     string `json:"layer_name" jsonschema:"name of the layer to delete"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_feature_type",
		Description: "Delete a feature type and its layer.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args deleteFeatureTypeArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteFeatureType(ctx, args.WorkspaceName, args.DatastoreName, args.LayerName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})
}
