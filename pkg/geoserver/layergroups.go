package geoserver

import (
	"context"
	"fmt"
	"net/url"
)

func layerGroupsPath(workspace string) string {
	return "/rest/workspaces/" + url.PathEscape(workspace) + "/layergroups"
}

// GetLayerGroups lists the layer groups of a workspace.
func (c *Client) GetLayerGroups(ctx context.Context, workspace string) (string, int, error) {
	return c.get(ctx, layerGroupsPath(workspace)+".json", nil)
}

// GetLayerGroup returns the configuration of a layer group.
func (c *Client) GetLayerGroup(ctx context.Context, workspace, name string) (string, int, error) {
	return c.get(ctx, layerGroupsPath(workspace)+"/"+url.PathEscape(name)+".json", nil)
}

// CreateLayerGroup creates a layer group combining several layers. styles may
// be empty (the layers' default styles apply) or hold one style per layer.
// mode is one of SINGLE, OPAQUE_CONTAINER, NAMED, CONTAINER or EO.
func (c *Client) CreateLayerGroup(ctx context.Context, name, workspace string, layers, styles []string, title, abstract string, epsg int, mode string) (string, int, error) {
	if mode == "" {
		mode = "SINGLE"
	}

	published := make([]map[string]any, 0, len(layers))
	for _, layer := range layers {
		published = append(published, map[string]any{
			"@type": "layer",
			"name":  workspace + ":" + layer,
		})
	}

	layerGroup := map[string]any{
		"name": name,
		"mode": mode,
		"workspace": map[string]any{
			"name": workspace,
		},
		"publishables": map[string]any{
			"published": published,
		},
	}
	if title != "" {
		layerGroup["title"] = title
	}
	if abstract != "" {
		layerGroup["abstractTxt"] = abstract
	}
	if len(styles) > 0 {
		styleRefs := make([]map[string]any, 0, len(styles))
		for _, style := range styles {
			styleRefs = append(styleRefs, map[string]any{"name": style})
		}
		layerGroup["styles"] = map[string]any{"style": styleRefs}
	}
	if bounds := boundsPayload(epsg); bounds != nil {
		layerGroup["bounds"] = bounds
	}

	body, code, err := c.postJSON(ctx, layerGroupsPath(workspace)+".json", nil, map[string]any{"layerGroup": layerGroup})
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Layer group %q created in workspace %q", name, workspace)), code, nil
	}
	return body, code, nil
}

// DeleteLayerGroup deletes a layer group. The grouped layers are untouched.
func (c *Client) DeleteLayerGroup(ctx context.Context, workspace, name string) (string, int, error) {
	body, code, err := c.delete(ctx, layerGroupsPath(workspace)+"/"+url.PathEscape(name), nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Layer group %q deleted from workspace %q", name, workspace)), code, nil
	}
	return body, code, nil
}
