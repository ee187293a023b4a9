package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type datastoreArgs struct {
	WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
	DatastoreName string `json:"datastore_name" jsonschema:"name of the datastore"`
}

type datastoresResult struct {
	Datastores any `json:"datastores"`
	StatusCode int `json:"status_code"`
}

type datastoreResult struct {
	Datastore  any `json:"datastore"`
	StatusCode int `json:"status_code"`
}

func (s *Server) registerDatastoreTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_datastores",
		Description: "List all datastores in a workspace.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args workspaceArgs) (*mcp.CallToolResult, datastoresResult, error) {
		content, code, err := s.geoserver.GetDatastores(ctx, args.WorkspaceName)
		if err != nil {
			return nil, datastoresResult{}, err
		}
		return nil, datastoresResult{Datastores: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_datastore",
		Description: "Get details of a specific datastore.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args datastoreArgs) (*mcp.CallToolResult, datastoreResult, error) {
		content, code, err := s.geoserver.GetDatastore(ctx, args.WorkspaceName, args.DatastoreName)
		if err != nil {
			return nil, datastoreResult{}, err
		}
		return nil, datastoreResult{Datastore: jsonValue(content), StatusCode: code}, nil
	})

	type pgDatastoreArgs struct {
		WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
		DatastoreName string `json:"datastore_name" jsonschema:"name for the new datastore"`
		PgHost        string `json:"pg_host" jsonschema:"PostgreSQL host"`
		PgPort        int    `json:"pg_port" jsonschema:"PostgreSQL port"`
		PgDb          string `json:"pg_db" jsonschema:"database name"`
		PgUser        string `json:"pg_user" jsonschema:"database username"`
		PgPassword    string `json:"pg_password" jsonschema:"database password"`
		PgSchema      string `json:"pg_schema,omitempty" jsonschema:"schema name (default public)"`
		Description   string `json:"description,omitempty" jsonschema:"optional description"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_pg_datastore",
		Description: "Create a PostGIS datastore connection.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args pgDatastoreArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreatePostGISDatastore(ctx, args.WorkspaceName, args.DatastoreName,
			args.PgHost, args.PgPort, args.PgDb, args.PgUser, args.PgPassword, args.PgSchema, args.Description)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	type jndiDatastoreArgs struct {
		WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
		DatastoreName string `json:"datastore_name" jsonschema:"name for the new datastore"`
		JndiReference string `json:"jndi_reference" jsonschema:"JNDI resource name"`
		PgSchema      string `json:"pg_schema,omitempty" jsonschema:"schema name (default public)"`
		Description   string `json:"description,omitempty" jsonschema:"optional description"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_jndi_datastore",
		Description: "Create a PostGIS datastore from a JNDI resource.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args jndiDatastoreArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateJNDIDatastore(ctx, args.WorkspaceName, args.DatastoreName,
			args.JndiReference, args.PgSchema, args.Description)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	type pmtilesDatastoreArgs struct {
		WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
		DatastoreName string `json:"datastore_name" jsonschema:"name for the new datastore"`
		PmtilesURL    string `json:"pmtiles_url" jsonschema:"URL or path of the PMTiles file"`
		Description   string `json:"description,omitempty" jsonschema:"optional description"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_pmtiles_datastore",
		Description: "Create a PMTiles datastore.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args pmtilesDatastoreArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreatePMTilesDatastore(ctx, args.WorkspaceName, args.DatastoreName,
			args.PmtilesURL, args.Description)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	s.mcpServer.AddTool(createDatastoreTool(), s.createDatastoreHandler)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_datastore",
		Description: "Delete a datastore and all the layers it serves.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args datastoreArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteDatastore(ctx, args.WorkspaceName, args.DatastoreName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})
}

// createDatastoreTool takes free-form connection parameters, so its input
// schema is spelled out instead of being derived from a struct.
func createDatastoreTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_datastore",
		Description: "Create a generic datastore with custom connection parameters.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"workspace_name": {
					Type:        "string",
					Description: "Name of the workspace",
				},
				"datastore_name": {
					Type:        "string",
					Description: "Name for the new datastore",
				},
				"datastore_type": {
					Type:        "string",
					Description: "Datastore type, e.g. PostGIS or Shapefile",
				},
				"connection_parameters": {
					Type:        "object",
					Description: "Connection parameters as key/value pairs",
				},
				"description": {
					Type:        "string",
					Description: "Optional description",
				},
				"enabled": {
					Type:        "boolean",
					Description: "Enable the datastore (default true)",
					Default:     json.RawMessage("true"),
				},
			},
			Required: []string{"workspace_name", "datastore_name", "datastore_type", "connection_parameters"},
		},
	}
}

func (s *Server) createDatastoreHandler(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		WorkspaceName        string         `json:"workspace_name"`
		DatastoreName        string         `json:"datastore_name"`
		DatastoreType        string         `json:"datastore_type"`
		ConnectionParameters map[string]any `json:"connection_parameters"`
		Description          string         `json:"description"`
		Enabled              *bool          `json:"enabled"`
	}
	if err := unmarshalArguments(req, &params); err != nil {
		return nil, err
	}

	enabled := true
	if params.Enabled != nil {
		enabled = *params.Enabled
	}

	content, code, err := s.geoserver.CreateDatastore(ctx, params.WorkspaceName, params.DatastoreName,
		params.DatastoreType, params.ConnectionParameters, params.Description, enabled)
	if err != nil {
		return nil, err
	}
	return textResult(message(content, code))
}

// unmarshalArguments decodes the raw tool arguments into a typed struct.
func unmarshalArguments(req *mcp.CallToolRequest, v any) error {
	if req.Params.Arguments == nil {
		return fmt.Errorf("missing arguments")
	}
	buf, err := json.Marshal(req.Params.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}
	if err := json.Unmarshal(buf, v); err != nil {
		return fmt.Errorf("failed to parse arguments: %w", err)
	}
	return nil
}

// textResult serializes a result struct for tools registered with an
// explicit schema, which bypass the SDK's output marshaling.
func textResult(v any) (*mcp.CallToolResult, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(buf)},
		},
	}, nil
}
