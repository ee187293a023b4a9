package geoserver

import (
	"context"
	"fmt"
	"net/url"
)

// GetLayers lists the published layers of a workspace.
func (c *Client) GetLayers(ctx context.Context, workspace string) (string, int, error) {
	return c.get(ctx, "/rest/workspaces/"+url.PathEscape(workspace)+"/layers.json", nil)
}

// GetLayer returns the configuration of a published layer.
func (c *Client) GetLayer(ctx context.Context, workspace, name string) (string, int, error) {
	return c.get(ctx, "/rest/workspaces/"+url.PathEscape(workspace)+"/layers/"+url.PathEscape(name)+".json", nil)
}

// DeleteLayer removes a layer from the catalog. The underlying resource
// (feature type or coverage) is kept.
func (c *Client) DeleteLayer(ctx context.Context, workspace, name string) (string, int, error) {
	body, code, err := c.delete(ctx, "/rest/workspaces/"+url.PathEscape(workspace)+"/layers/"+url.PathEscape(name), nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Layer %q deleted from workspace %q", name, workspace)), code, nil
	}
	return body, code, nil
}

// SetDefaultLayerStyle sets the default style of a published layer.
func (c *Client) SetDefaultLayerStyle(ctx context.Context, workspace, layer, style string) (string, int, error) {
	payload := map[string]any{
		"layer": map[string]any{
			"defaultStyle": map[string]any{
				"name": style,
			},
		},
	}
	body, code, err := c.putJSON(ctx, "/rest/workspaces/"+url.PathEscape(workspace)+"/layers/"+url.PathEscape(layer)+".json", nil, payload)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Default style of layer %q set to %q", layer, style)), code, nil
	}
	return body, code, nil
}
