package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type coverageStoreArgs struct {
	WorkspaceName     string `json:"workspace_name" jsonschema:"name of the workspace"`
	CoverageStoreName string `json:"coveragestore_name" jsonschema:"name of the coverage store"`
}

type coverageArgs struct {
	WorkspaceName     string `json:"workspace_name" jsonschema:"name of the workspace"`
	CoverageStoreName string `json:"coveragestore_name" jsonschema:"name of the coverage store"`
	CoverageName      string `json:"coverage_name" jsonschema:"name of the coverage"`
}

type coverageStoresResult struct {
	CoverageStores any `json:"coverage_stores"`
	StatusCode     int `json:"status_code"`
}

type coverageStoreResult struct {
	CoverageStore any `json:"coverage_store"`
	StatusCode    int `json:"status_code"`
}

type coveragesResult struct {
	Coverages  any `json:"coverages"`
	StatusCode int `json:"status_code"`
}

type coverageResult struct {
	Coverage   any `json:"coverage"`
	StatusCode int `json:"status_code"`
}

func (s *Server) registerCoverageTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_coverage_stores",
		Description: "List the coverage (raster) stores of a workspace.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args workspaceArgs) (*mcp.CallToolResult, coverageStoresResult, error) {
		content, code, err := s.geoserver.GetCoverageStores(ctx, args.WorkspaceName)
		if err != nil {
			return nil, coverageStoresResult{}, err
		}
		return nil, coverageStoresResult{CoverageStores: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_coverage_store",
		Description: "Get details of a coverage store.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args coverageStoreArgs) (*mcp.CallToolResult, coverageStoreResult, error) {
		content, code, err := s.geoserver.GetCoverageStore(ctx, args.WorkspaceName, args.CoverageStoreName)
		if err != nil {
			return nil, coverageStoreResult{}, err
		}
		return nil, coverageStoreResult{CoverageStore: jsonValue(content), StatusCode: code}, nil
	})

	type createCoverageStoreArgs struct {
		WorkspaceName     string `json:"workspace_name" jsonschema:"name of the workspace"`
		CoverageStoreName string `json:"coveragestore_name" jsonschema:"name for the new coverage store"`
		URL               string `json:"url" jsonschema:"URL or file path of the raster data"`
		StoreType         string `json:"store_type,omitempty" jsonschema:"coverage store type, e.g. ImageMosaic or GeoTIFF (default ImageMosaic)"`
		Enabled           *bool  `json:"enabled,omitempty" jsonschema:"whether the store is enabled (default true)"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_coverage_store",
		Description: "Create a coverage store pointing at raster data.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createCoverageStoreArgs) (*mcp.CallToolResult, messageResult, error) {
		storeType := args.StoreType
		if storeType == "" {
			storeType = "ImageMosaic"
		}
		enabled := true
		if args.Enabled != nil {
			enabled = *args.Enabled
		}
		content, code, err := s.geoserver.CreateCoverageStore(ctx, args.WorkspaceName, args.CoverageStoreName,
			args.URL, storeType, enabled)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_coverage_store",
		Description: "Delete a coverage store and all its coverages.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args coverageStoreArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteCoverageStore(ctx, args.WorkspaceName, args.CoverageStoreName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_coverages",
		Description: "List the coverages of a coverage store.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args coverageStoreArgs) (*mcp.CallToolResult, coveragesResult, error) {
		content, code, err := s.geoserver.GetCoverages(ctx, args.WorkspaceName, args.CoverageStoreName)
		if err != nil {
			return nil, coveragesResult{}, err
		}
		return nil, coveragesResult{Coverages: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_coverage",
		Description: "Get details of a coverage.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args coverageArgs) (*mcp.CallToolResult, coverageResult, error) {
		content, code, err := s.geoserver.GetCoverage(ctx, args.WorkspaceName, args.CoverageStoreName, args.CoverageName)
		if err != nil {
			return nil, coverageResult{}, err
		}
		return nil, coverageResult{Coverage: jsonValue(content), StatusCode: code}, nil
	})

	type createCoverageArgs struct {
		WorkspaceName     string `json:"workspace_name" jsonschema:"name of the workspace"`
		CoverageStoreName string `json:"coveragestore_name" jsonschema:"name of the coverage store"`
		CoverageName      string `json:"coverage_name" jsonschema:"name for the new coverage"`
		Title             string `json:"title,omitempty" jsonschema:"coverage title (default: coverage name)"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_coverage",
		Description: "Publish a raster layer (coverage) from a coverage store.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createCoverageArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateCoverage(ctx, args.WorkspaceName, args.CoverageStoreName,
			args.CoverageName, args.Title)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_coverage",
		Description: "Delete a coverage and its layer.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args coverageArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteCoverage(ctx, args.WorkspaceName, args.CoverageStoreName, args.CoverageName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	type mosaicArgs struct {
		WorkspaceName     string `json:"workspace_name" jsonschema:"name of the workspace"`
		CoverageStoreName string `json:"coveragestore_name" jsonschema:"name of the image mosaic coverage store"`
		DirectoryPath     string `json:"directory_path" jsonschema:"server-side directory containing the granules"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_imagemosaic_store_from_directory",
		Description: "Create an image mosaic coverage store from a server-side directory of granules.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args mosaicArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateImageMosaicStoreFromDirectory(ctx, args.WorkspaceName,
			args.CoverageStoreName, args.DirectoryPath)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "harvest_granules_to_coverage_store",
		Description: "Harvest new granules from a server-side directory into an image mosaic store.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args mosaicArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.HarvestGranulesToCoverageStore(ctx, args.WorkspaceName,
			args.CoverageStoreName, args.DirectoryPath)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})
}
