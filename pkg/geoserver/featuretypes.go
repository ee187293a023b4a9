package geoserver

import (
	"context"
	"fmt"
	"net/url"
)

func featureTypesPath(workspace, datastore string) string {
	return datastoresPath(workspace) + "/" + url.PathEscape(datastore) + "/featuretypes"
}

// GetFeatureTypes lists the feature types (vector layers) of a datastore.
func (c *Client) GetFeatureTypes(ctx context.Context, workspace, datastore string) (string, int, error) {
	return c.get(ctx, featureTypesPath(workspace, datastore)+".json", nil)
}

// GetFeatureType returns the configuration of a single feature type.
func (c *Client) GetFeatureType(ctx context.Context, workspace, datastore, name string) (string, int, error) {
	return c.get(ctx, featureTypesPath(workspace, datastore)+"/"+url.PathEscape(name)+".json", nil)
}

// CreateFeatureType publishes a vector layer from a table in a datastore.
// The layer name must match the native table name.
func (c *Client) CreateFeatureType(ctx context.Context, layerName, workspace, datastore, title, abstract string, epsg int, keywords []string) (string, int, error) {
	featureType := map[string]any{
		"name":       layerName,
		"nativeName": layerName,
		"enabled":    true,
		"srs":        fmt.Sprintf("EPSG:%d", epsg),
	}
	if title != "" {
		featureType["title"] = title
	}
	if abstract != "" {
		featureType["abstract"] = abstract
	}
	if len(keywords) > 0 {
		featureType["keywords"] = map[string]any{"string": keywords}
	}

	body, code, err := c.postJSON(ctx, featureTypesPath(workspace, datastore)+".json", nil, map[string]any{"featureType": featureType})
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Feature type %q created in datastore %q", layerName, datastore)), code, nil
	}
	return body, code, nil
}

// DeleteFeatureType deletes a feature type and its associated layer.
func (c *Client) DeleteFeatureType(ctx context.Context, workspace, datastore, name string) (string, int, error) {
	query := url.Values{"recurse": {"true"}}
	body, code, err := c.delete(ctx, featureTypesPath(workspace, datastore)+"/"+url.PathEscape(name), query)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Feature type %q deleted from datastore %q", name, datastore)), code, nil
	}
	return body, code, nil
}
