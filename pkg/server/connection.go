package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type connectionInfoResult struct {
	URL      string `json:"url"`
	User     string `json:"user"`
	Password string `json:"password"`
	Status   string `json:"status"`
}

type versionResult struct {
	Content    any `json:"content"`
	StatusCode int `json:"status_code"`
}

func (s *Server) registerConnectionTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_geoserver_connection_info",
		Description: "Get the configured GeoServer connection information. The password is hidden.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, connectionInfoResult, error) {
		return nil, connectionInfoResult{
			URL:      s.conf.URL,
			User:     s.conf.User,
			Password: "***hidden***",
			Status:   "configured",
		}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_version",
		Description: "Get version information about the connected GeoServer instance.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, versionResult, error) {
		content, code, err := s.geoserver.GetVersion(ctx)
		if err != nil {
			return nil, versionResult{}, err
		}
		return nil, versionResult{Content: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_system_status",
		Description: "Get runtime metrics of the connected GeoServer instance (memory, CPU, JVM details).",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, versionResult, error) {
		content, code, err := s.geoserver.GetSystemStatus(ctx)
		if err != nil {
			return nil, versionResult{}, err
		}
		return nil, versionResult{Content: jsonValue(content), StatusCode: code}, nil
	})
}
