package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type wmsStoreArgs struct {
	WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
	WmsStoreName  string `json:"wms_store_name" jsonschema:"name of the WMS store"`
}

type wmsLayerArgs struct {
	WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
	WmsStoreName  string `json:"wms_store_name" jsonschema:"name of the WMS store"`
	WmsLayerName  string `json:"wms_layer_name" jsonschema:"name of the WMS layer"`
}

type wmtsStoreArgs struct {
	WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
	WmtsStoreName string `json:"wmts_store_name" jsonschema:"name of the WMTS store"`
}

type wmsStoresResult struct {
	WmsStores  any `json:"wms_stores"`
	StatusCode int `json:"status_code"`
}

type wmsStoreResult struct {
	WmsStore   any `json:"wms_store"`
	StatusCode int `json:"status_code"`
}

type wmsLayerResult struct {
	WmsLayer   any `json:"wms_layer"`
	StatusCode int `json:"status_code"`
}

type wmtsStoreResult struct {
	WmtsStore  any `json:"wmts_store"`
	StatusCode int `json:"status_code"`
}

func (s *Server) registerStoreTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_wms_stores",
		Description: "List the cascaded WMS stores of a workspace.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args workspaceArgs) (*mcp.CallToolResult, wmsStoresResult, error) {
		content, code, err := s.geoserver.GetWmsStores(ctx, args.WorkspaceName)
		if err != nil {
			return nil, wmsStoresResult{}, err
		}
		return nil, wmsStoresResult{WmsStores: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_wms_store",
		Description: "Get details of a cascaded WMS store.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args wmsStoreArgs) (*mcp.CallToolResult, wmsStoreResult, error) {
		content, code, err := s.geoserver.GetWmsStore(ctx, args.WorkspaceName, args.WmsStoreName)
		if err != nil {
			return nil, wmsStoreResult{}, err
		}
		return nil, wmsStoreResult{WmsStore: jsonValue(content), StatusCode: code}, nil
	})

	type createWmsStoreArgs struct {
		WorkspaceName   string `json:"workspace_name" jsonschema:"name of the workspace"`
		WmsStoreName    string `json:"wms_store_name" jsonschema:"name for the new WMS store"`
		CapabilitiesURL string `json:"capabilities_url" jsonschema:"URL of the external WMS GetCapabilities"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_wms_store",
		Description: "Create a cascaded WMS store to proxy an external WMS service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createWmsStoreArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateWmsStore(ctx, args.WorkspaceName, args.WmsStoreName, args.CapabilitiesURL)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_wms_store",
		Description: "Delete a cascaded WMS store and all its layers.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args wmsStoreArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteWmsStore(ctx, args.WorkspaceName, args.WmsStoreName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_wms_layer",
		Description: "Get details of a cascaded WMS layer.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args wmsLayerArgs) (*mcp.CallToolResult, wmsLayerResult, error) {
		content, code, err := s.geoserver.GetWmsLayer(ctx, args.WorkspaceName, args.WmsStoreName, args.WmsLayerName)
		if err != nil {
			return nil, wmsLayerResult{}, err
		}
		return nil, wmsLayerResult{WmsLayer: jsonValue(content), StatusCode: code}, nil
	})

	type createWmsLayerArgs struct {
		WorkspaceName      string `json:"workspace_name" jsonschema:"name of the workspace"`
		WmsStoreName       string `json:"wms_store_name" jsonschema:"name of the WMS store"`
		NativeLayerName    string `json:"native_layer_name" jsonschema:"layer name in the remote WMS"`
		PublishedLayerName string `json:"published_layer_name,omitempty" jsonschema:"published name (default: same as native)"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_wms_layer",
		Description: "Publish a layer from a cascaded WMS store.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createWmsLayerArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateWmsLayer(ctx, args.WorkspaceName, args.WmsStoreName,
			args.NativeLayerName, args.PublishedLayerName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_wms_layer",
		Description: "Delete a cascaded WMS layer.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args wmsLayerArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteWmsLayer(ctx, args.WorkspaceName, args.WmsStoreName, args.WmsLayerName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_wmts_store",
		Description: "Get details of a cascaded WMTS store.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args wmtsStoreArgs) (*mcp.CallToolResult, wmtsStoreResult, error) {
		content, code, err := s.geoserver.GetWmtsStore(ctx, args.WorkspaceName, args.WmtsStoreName)
		if err != nil {
			return nil, wmtsStoreResult{}, err
		}
		return nil, wmtsStoreResult{WmtsStore: jsonValue(content), StatusCode: code}, nil
	})

	type createWmtsStoreArgs struct {
		WorkspaceName   string `json:"workspace_name" jsonschema:"name of the workspace"`
		WmtsStoreName   string `json:"wmts_store_name" jsonschema:"name for the new WMTS store"`
		CapabilitiesURL string `json:"capabilities_url" jsonschema:"URL of the external WMTS GetCapabilities"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_wmts_store",
		Description: "Create a cascaded WMTS store to proxy an external WMTS service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createWmtsStoreArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateWmtsStore(ctx, args.WorkspaceName, args.WmtsStoreName, args.CapabilitiesURL)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_wmts_store",
		Description: "Delete a cascaded WMTS store and all its layers.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args wmtsStoreArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteWmtsStore(ctx, args.WorkspaceName, args.WmtsStoreName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	type createWmtsLayerArgs struct {
		WorkspaceName      string `json:"workspace_name" jsonschema:"name of the workspace"`
		WmtsStoreName      string `json:"wmts_store_name" jsonschema:"name of the WMTS store"`
		NativeLayerName    string `json:"native_layer_name" jsonschema:"layer name in the remote WMTS"`
		PublishedLayerName string `json:"published_layer_name,omitempty" jsonschema:"published name (default: same as native)"`
		Epsg               *int   `json:"epsg,omitempty" jsonschema:"EPSG code of the layer (default 4326)"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_wmts_layer",
		Description: "Publish a layer from a cascaded WMTS store.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createWmtsLayerArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateWmtsLayer(ctx, args.WorkspaceName, args.WmtsStoreName,
			args.NativeLayerName, args.PublishedLayerName, epsgOrDefault(args.Epsg))
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	type wmtsLayerArgs struct {
		WorkspaceName string `json:"workspace_name" jsonschema:"name of the workspace"`
		WmtsStoreName string `json:"wmts_store_name" jsonschema:"name of the WMTS store"`
		WmtsLayerName string `json:"wmts_layer_name" jsonschema:"name of the WMTS layer"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_wmts_layer",
		Description: "Delete a cascaded WMTS layer.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args wmtsLayerArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteWmtsLayer(ctx, args.WorkspaceName, args.WmtsStoreName, args.WmtsLayerName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})
}
