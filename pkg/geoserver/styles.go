package geoserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// stylesPath returns the style collection path, global or workspace-scoped.
func stylesPath(workspace string) string {
	if workspace == "" {
		return "/rest/styles"
	}
	return "/rest/workspaces/" + url.PathEscape(workspace) + "/styles"
}

// GetStyles lists styles. With an empty workspace the global styles are
// listed, otherwise the styles of that workspace.
func (c *Client) GetStyles(ctx context.Context, workspace string) (string, int, error) {
	return c.get(ctx, stylesPath(workspace)+".json", nil)
}

// GetStyleDefinition returns the SLD body of a style.
func (c *Client) GetStyleDefinition(ctx context.Context, name, workspace string) (string, int, error) {
	return c.get(ctx, stylesPath(workspace)+"/"+url.PathEscape(name)+".sld", nil)
}

// CreateStyleFromString uploads an SLD document as a named style. An existing
// style of the same name is overwritten.
func (c *Client) CreateStyleFromString(ctx context.Context, name, sld, workspace string) (string, int, error) {
	query := url.Values{"name": {name}}
	body, code, err := c.do(ctx, http.MethodPost, stylesPath(workspace), query, contentTypeSLD, strings.NewReader(sld))
	if err != nil {
		return "", 0, err
	}
	// POST rejects duplicates, PUT replaces the definition in place.
	if code == http.StatusConflict || code == http.StatusForbidden {
		body, code, err = c.do(ctx, http.MethodPut, stylesPath(workspace)+"/"+url.PathEscape(name), nil, contentTypeSLD, strings.NewReader(sld))
		if err != nil {
			return "", 0, err
		}
		if isSuccess(code) {
			return messageOr(body, fmt.Sprintf("Style %q updated", name)), code, nil
		}
		return body, code, nil
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Style %q created", name)), code, nil
	}
	return body, code, nil
}

// DeleteStyle deletes a style and purges the underlying SLD file.
func (c *Client) DeleteStyle(ctx context.Context, name, workspace string) (string, int, error) {
	query := url.Values{"purge": {"true"}}
	body, code, err := c.delete(ctx, stylesPath(workspace)+"/"+url.PathEscape(name), query)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Style %q deleted", name)), code, nil
	}
	return body, code, nil
}
