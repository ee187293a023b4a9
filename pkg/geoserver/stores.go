package geoserver

// Cascaded WMS and WMTS stores proxy layers served by an external OGC
// service.

import (
	"context"
	"fmt"
	"net/url"
)

func wmsStoresPath(workspace string) string {
	return "/rest/workspaces/" + url.PathEscape(workspace) + "/wmsstores"
}

func wmtsStoresPath(workspace string) string {
	return "/rest/workspaces/" + url.PathEscape(workspace) + "/wmtsstores"
}

// GetWmsStores lists the cascaded WMS stores of a workspace.
func (c *Client) GetWmsStores(ctx context.Context, workspace string) (string, int, error) {
	return c.get(ctx, wmsStoresPath(workspace)+".json", nil)
}

// GetWmsStore returns the configuration of a cascaded WMS store.
func (c *Client) GetWmsStore(ctx context.Context, workspace, name string) (string, int, error) {
	return c.get(ctx, wmsStoresPath(workspace)+"/"+url.PathEscape(name)+".json", nil)
}

// CreateWmsStore creates a cascaded WMS store pointing at an external WMS
// GetCapabilities URL.
func (c *Client) CreateWmsStore(ctx context.Context, workspace, name, capabilitiesURL string) (string, int, error) {
	payload := map[string]any{
		"wmsStore": map[string]any{
			"name":            name,
			"type":            "WMS",
			"enabled":         true,
			"capabilitiesURL": capabilitiesURL,
			"workspace": map[string]any{
				"name": workspace,
			},
		},
	}
	body, code, err := c.postJSON(ctx, wmsStoresPath(workspace)+".json", nil, payload)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("WMS store %q created in workspace %q", name, workspace)), code, nil
	}
	return body, code, nil
}

// DeleteWmsStore deletes a cascaded WMS store and all its layers.
func (c *Client) DeleteWmsStore(ctx context.Context, workspace, name string) (string, int, error) {
	query := url.Values{"recurse": {"true"}}
	body, code, err := c.delete(ctx, wmsStoresPath(workspace)+"/"+url.PathEscape(name), query)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("WMS store %q deleted from workspace %q", name, workspace)), code, nil
	}
	return body, code, nil
}

// GetWmsLayer returns the configuration of a cascaded WMS layer.
func (c *Client) GetWmsLayer(ctx context.Context, workspace, store, layer string) (string, int, error) {
	return c.get(ctx, wmsStoresPath(workspace)+"/"+url.PathEscape(store)+"/wmslayers/"+url.PathEscape(layer)+".json", nil)
}

// CreateWmsLayer publishes a layer from a cascaded WMS store. When
// publishedName is empty the native layer name is used.
func (c *Client) CreateWmsLayer(ctx context.Context, workspace, store, nativeName, publishedName string) (string, int, error) {
	if publishedName == "" {
		publishedName = nativeName
	}
	payload := map[string]any{
		"wmsLayer": map[string]any{
			"name":       publishedName,
			"nativeName": nativeName,
			"enabled":    true,
		},
	}
	body, code, err := c.postJSON(ctx, wmsStoresPath(workspace)+"/"+url.PathEscape(store)+"/wmslayers.json", nil, payload)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("WMS layer %q published from store %q", publishedName, store)), code, nil
	}
	return body, code, nil
}

// DeleteWmsLayer deletes a cascaded WMS layer.
func (c *Client) DeleteWmsLayer(ctx context.Context, workspace, store, layer string) (string, int, error) {
	query := url.Values{"recurse": {"true"}}
	body, code, err := c.delete(ctx, wmsStoresPath(workspace)+"/"+url.PathEscape(store)+"/wmslayers/"+url.PathEscape(layer), query)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("WMS layer %q deleted from store %q", layer, store)), code, nil
	}
	return body, code, nil
}

// GetWmtsStore returns the configuration of a cascaded WMTS store.
func (c *Client) GetWmtsStore(ctx context.Context, workspace, name string) (string, int, error) {
	return c.get(ctx, wmtsStoresPath(workspace)+"/"+url.PathEscape(name)+".json", nil)
}

// CreateWmtsStore creates a cascaded WMTS store pointing at an external WMTS
// GetCapabilities URL.
func (c *Client) CreateWmtsStore(ctx context.Context, workspace, name, capabilitiesURL string) (string, int, error) {
	payload := map[string]any{
		"wmtsStore": map[string]any{
			"name":            name,
			"type":            "WMTS",
			"enabled":         true,
			"capabilitiesURL": capabilitiesURL,
			"workspace": map[string]any{
				"name": workspace,
			},
		},
	}
	body, code, err := c.postJSON(ctx, wmtsStoresPath(workspace)+".json", nil, payload)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("WMTS store %q created in workspace %q", name, workspace)), code, nil
	}
	return body, code, nil
}

// DeleteWmtsStore deletes a cascaded WMTS store and all its layers.
func (c *Client) DeleteWmtsStore(ctx context.Context, workspace, name string) (string, int, error) {
	query := url.Values{"recurse": {"true"}}
	body, code, err := c.delete(ctx, wmtsStoresPath(workspace)+"/"+url.PathEscape(name), query)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("WMTS store %q deleted from workspace %q", name, workspace)), code, nil
	}
	return body, code, nil
}

// CreateWmtsLayer publishes a layer from a cascaded WMTS store.
func (c *Client) CreateWmtsLayer(ctx context.Context, workspace, store, nativeName, publishedName string, epsg int) (string, int, error) {
	if publishedName == "" {
		publishedName = nativeName
	}
	payload := map[string]any{
		"wmtsLayer": map[string]any{
			"name":       publishedName,
			"nativeName": nativeName,
			"enabled":    true,
			"srs":        fmt.Sprintf("EPSG:%d", epsg),
		},
	}
	body, code, err := c.postJSON(ctx, wmtsStoresPath(workspace)+"/"+url.PathEscape(store)+"/layers.json", nil, payload)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("WMTS layer %q published from store %q", publishedName, store)), code, nil
	}
	return body, code, nil
}

// DeleteWmtsLayer deletes a cascaded WMTS layer.
func (c *Client) DeleteWmtsLayer(ctx context.Context, workspace, store, layer string) (string, int, error) {
	query := url.Values{"recurse": {"true"}}
	body, code, err := c.delete(ctx, wmtsStoresPath(workspace)+"/"+url.PathEscape(store)+"/layers/"+url.PathEscape(layer), query)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("WMTS layer %q deleted from store %q", layer, store)), code, nil
	}
	return body, code, nil
}
