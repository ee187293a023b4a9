package geoserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetWorkspaces lists all workspaces.
func (c *Client) GetWorkspaces(ctx context.Context) (string, int, error) {
	return c.get(ctx, "/rest/workspaces.json", nil)
}

// GetWorkspace returns the configuration of a single workspace.
func (c *Client) GetWorkspace(ctx context.Context, name string) (string, int, error) {
	return c.get(ctx, "/rest/workspaces/"+url.PathEscape(name)+".json", nil)
}

// CreateWorkspace creates a workspace, or updates it if it already exists.
func (c *Client) CreateWorkspace(ctx context.Context, name string, isolated bool) (string, int, error) {
	payload := map[string]any{
		"workspace": map[string]any{
			"name":     name,
			"isolated": isolated,
		},
	}

	body, code, err := c.postJSON(ctx, "/rest/workspaces.json", nil, payload)
	if err != nil {
		return "", 0, err
	}
	if code == http.StatusConflict {
		body, code, err = c.putJSON(ctx, "/rest/workspaces/"+url.PathEscape(name)+".json", nil, payload)
		if err != nil {
			return "", 0, err
		}
		if isSuccess(code) {
			return messageOr(body, fmt.Sprintf("Workspace %q updated", name)), code, nil
		}
		return body, code, nil
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Workspace %q created", name)), code, nil
	}
	return body, code, nil
}

// DeleteWorkspace deletes a workspace and all its contents.
func (c *Client) DeleteWorkspace(ctx context.Context, name string) (string, int, error) {
	query := url.Values{"recurse": {"true"}}
	body, code, err := c.delete(ctx, "/rest/workspaces/"+url.PathEscape(name), query)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Workspace %q deleted", name)), code, nil
	}
	return body, code, nil
}

// RecreateWorkspace deletes the workspace if present, then creates it fresh.
func (c *Client) RecreateWorkspace(ctx context.Context, name string, isolated bool) (string, int, error) {
	body, code, err := c.DeleteWorkspace(ctx, name)
	if err != nil {
		return "", 0, err
	}
	// A missing workspace is fine, anything else is a real failure.
	if !isSuccess(code) && code != http.StatusNotFound {
		return body, code, nil
	}
	return c.CreateWorkspace(ctx, name, isolated)
}

// GetWorkspaceWmsSettings returns the WMS service settings of a workspace.
func (c *Client) GetWorkspaceWmsSettings(ctx context.Context, name string) (string, int, error) {
	return c.get(ctx, "/rest/services/wms/workspaces/"+url.PathEscape(name)+"/settings.json", nil)
}

// PublishWorkspace enables the WMS service for a workspace with default
// settings.
func (c *Client) PublishWorkspace(ctx context.Context, name string) (string, int, error) {
	payload := map[string]any{
		"wms": map[string]any{
			"name":    "WMS",
			"enabled": true,
			"workspace": map[string]any{
				"name": name,
			},
		},
	}
	body, code, err := c.putJSON(ctx, "/rest/services/wms/workspaces/"+url.PathEscape(name)+"/settings.json", nil, payload)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("WMS service published for workspace %q", name)), code, nil
	}
	return body, code, nil
}

// SetDefaultLocaleForService sets the default language for localized WMS
// requests on a workspace.
func (c *Client) SetDefaultLocaleForService(ctx context.Context, name, locale string) (string, int, error) {
	payload := map[string]any{
		"wms": map[string]any{
			"defaultLocale": locale,
		},
	}
	body, code, err := c.putJSON(ctx, "/rest/services/wms/workspaces/"+url.PathEscape(name)+"/settings.json", nil, payload)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Default locale for workspace %q set to %q", name, locale)), code, nil
	}
	return body, code, nil
}
