package geoserver

// OGC service requests (WMS/WFS) against the workspace virtual services.

import (
	"context"
	"net/url"
	"strconv"
)

func owsPath(workspace, service string) string {
	if workspace == "" {
		return "/" + service
	}
	return "/" + url.PathEscape(workspace) + "/" + service
}

// GetWmsLayers issues a WMS GetCapabilities request for a workspace and
// returns the capabilities document. acceptLanguages may be empty.
func (c *Client) GetWmsLayers(ctx context.Context, workspace, acceptLanguages string) (string, int, error) {
	query := url.Values{
		"service": {"WMS"},
		"version": {"1.3.0"},
		"request": {"GetCapabilities"},
	}
	if acceptLanguages != "" {
		query.Set("AcceptLanguages", acceptLanguages)
	}
	return c.get(ctx, owsPath(workspace, "wms"), query)
}

// GetWfsLayers issues a WFS GetCapabilities request for a workspace and
// returns the capabilities document.
func (c *Client) GetWfsLayers(ctx context.Context, workspace string) (string, int, error) {
	query := url.Values{
		"service": {"WFS"},
		"version": {"2.0.0"},
		"request": {"GetCapabilities"},
	}
	return c.get(ctx, owsPath(workspace, "wfs"), query)
}

// GetFeature issues a WFS GetFeature request and returns the features as
// GeoJSON. featureID and maxFeatures are ignored when <= 0 / empty.
func (c *Client) GetFeature(ctx context.Context, workspace, typeName, featureID string, maxFeatures int) (string, int, error) {
	query := url.Values{
		"service":      {"WFS"},
		"version":      {"2.0.0"},
		"request":      {"GetFeature"},
		"typeNames":    {typeName},
		"outputFormat": {"application/json"},
	}
	if featureID != "" {
		query.Set("featureID", featureID)
	}
	if maxFeatures > 0 {
		query.Set("count", strconv.Itoa(maxFeatures))
	}
	return c.get(ctx, owsPath(workspace, "wfs"), query)
}

// DescribeFeatureType issues a WFS DescribeFeatureType request. With an empty
// typeName the schemas of all feature types are returned.
func (c *Client) DescribeFeatureType(ctx context.Context, workspace, typeName string) (string, int, error) {
	query := url.Values{
		"service": {"WFS"},
		"version": {"2.0.0"},
		"request": {"DescribeFeatureType"},
	}
	if typeName != "" {
		query.Set("typeNames", typeName)
	}
	return c.get(ctx, owsPath(workspace, "wfs"), query)
}

// GetPropertyValue issues a WFS GetPropertyValue request for one property of
// a feature type.
func (c *Client) GetPropertyValue(ctx context.Context, workspace, typeName, property string) (string, int, error) {
	query := url.Values{
		"service":        {"WFS"},
		"version":        {"2.0.0"},
		"request":        {"GetPropertyValue"},
		"typeNames":      {typeName},
		"valueReference": {property},
	}
	return c.get(ctx, owsPath(workspace, "wfs"), query)
}
