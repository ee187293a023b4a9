package geoserver

import "context"

// GetVersion returns version information about the GeoServer instance and
// its core components.
func (c *Client) GetVersion(ctx context.Context) (string, int, error) {
	return c.get(ctx, "/rest/about/version.json", nil)
}

// GetSystemStatus returns runtime metrics of the GeoServer instance (memory,
// CPU, JVM details).
func (c *Client) GetSystemStatus(ctx context.Context) (string, int, error) {
	return c.get(ctx, "/rest/about/system-status.json", nil)
}
