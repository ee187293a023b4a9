package geoserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

func coverageStoresPath(workspace string) string {
	return "/rest/workspaces/" + url.PathEscape(workspace) + "/coveragestores"
}

// GetCoverageStores lists the coverage stores of a workspace.
func (c *Client) GetCoverageStores(ctx context.Context, workspace string) (string, int, error) {
	return c.get(ctx, coverageStoresPath(workspace)+".json", nil)
}

// GetCoverageStore returns the configuration of a coverage store.
func (c *Client) GetCoverageStore(ctx context.Context, workspace, name string) (string, int, error) {
	return c.get(ctx, coverageStoresPath(workspace)+"/"+url.PathEscape(name)+".json", nil)
}

// CreateCoverageStore creates a coverage store for raster data. storeType is
// a GeoServer coverage format name such as ImageMosaic or GeoTIFF.
func (c *Client) CreateCoverageStore(ctx context.Context, workspace, name, dataURL, storeType string, enabled bool) (string, int, error) {
	payload := map[string]any{
		"coverageStore": map[string]any{
			"name":    name,
			"type":    storeType,
			"url":     dataURL,
			"enabled": enabled,
			"workspace": map[string]any{
				"name": workspace,
			},
		},
	}
	body, code, err := c.postJSON(ctx, coverageStoresPath(workspace)+".json", nil, payload)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Coverage store %q created in workspace %q", name, workspace)), code, nil
	}
	return body, code, nil
}

// DeleteCoverageStore deletes a coverage store and all its coverages.
func (c *Client) DeleteCoverageStore(ctx context.Context, workspace, name string) (string, int, error) {
	query := url.Values{"recurse": {"true"}}
	body, code, err := c.delete(ctx, coverageStoresPath(workspace)+"/"+url.PathEscape(name), query)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Coverage store %q deleted from workspace %q", name, workspace)), code, nil
	}
	return body, code, nil
}

// GetCoverages lists the coverages (raster layers) of a coverage store.
func (c *Client) GetCoverages(ctx context.Context, workspace, store string) (string, int, error) {
	return c.get(ctx, coverageStoresPath(workspace)+"/"+url.PathEscape(store)+"/coverages.json", nil)
}

// GetCoverage returns the configuration of a single coverage.
func (c *Client) GetCoverage(ctx context.Context, workspace, store, name string) (string, int, error) {
	return c.get(ctx, coverageStoresPath(workspace)+"/"+url.PathEscape(store)+"/coverages/"+url.PathEscape(name)+".json", nil)
}

// CreateCoverage publishes a coverage layer from a coverage store.
func (c *Client) CreateCoverage(ctx context.Context, workspace, store, name, title string) (string, int, error) {
	coverage := map[string]any{
		"name":       name,
		"nativeName": name,
		"enabled":    true,
	}
	if title != "" {
		coverage["title"] = title
	}

	body, code, err := c.postJSON(ctx, coverageStoresPath(workspace)+"/"+url.PathEscape(store)+"/coverages.json", nil, map[string]any{"coverage": coverage})
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Coverage %q published from store %q", name, store)), code, nil
	}
	return body, code, nil
}

// DeleteCoverage deletes a coverage and its associated layer.
func (c *Client) DeleteCoverage(ctx context.Context, workspace, store, name string) (string, int, error) {
	query := url.Values{"recurse": {"true"}}
	body, code, err := c.delete(ctx, coverageStoresPath(workspace)+"/"+url.PathEscape(store)+"/coverages/"+url.PathEscape(name), query)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Coverage %q deleted from store %q", name, store)), code, nil
	}
	return body, code, nil
}

// CreateImageMosaicStoreFromDirectory creates an ImageMosaic coverage store
// by pointing GeoServer at a directory of raster files.
func (c *Client) CreateImageMosaicStoreFromDirectory(ctx context.Context, workspace, store, directory string) (string, int, error) {
	path := coverageStoresPath(workspace) + "/" + url.PathEscape(store) + "/external.imagemosaic"
	body, code, err := c.do(ctx, http.MethodPut, path, nil, "text/plain", strings.NewReader(fileURL(directory)))
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("ImageMosaic store %q created from %s", store, directory)), code, nil
	}
	return body, code, nil
}

// HarvestGranulesToCoverageStore adds the raster files of a directory as new
// granules of an existing ImageMosaic store.
func (c *Client) HarvestGranulesToCoverageStore(ctx context.Context, workspace, store, directory string) (string, int, error) {
	path := coverageStoresPath(workspace) + "/" + url.PathEscape(store) + "/external.imagemosaic"
	body, code, err := c.do(ctx, http.MethodPost, path, nil, "text/plain", strings.NewReader(fileURL(directory)))
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Granules from %s harvested into store %q", directory, store)), code, nil
	}
	return body, code, nil
}

func fileURL(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	return "file://" + path
}
