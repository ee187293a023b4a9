package geoserver

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

func datastoresPath(workspace string) string {
	return "/rest/workspaces/" + url.PathEscape(workspace) + "/datastores"
}

// GetDatastores lists all datastores in a workspace.
func (c *Client) GetDatastores(ctx context.Context, workspace string) (string, int, error) {
	return c.get(ctx, datastoresPath(workspace)+".json", nil)
}

// GetDatastore returns the configuration of a single datastore.
func (c *Client) GetDatastore(ctx context.Context, workspace, name string) (string, int, error) {
	return c.get(ctx, datastoresPath(workspace)+"/"+url.PathEscape(name)+".json", nil)
}

// CreateDatastore creates a datastore of any type from raw connection
// parameters.
func (c *Client) CreateDatastore(ctx context.Context, workspace, name, storeType string, connectionParameters map[string]any, description string, enabled bool) (string, int, error) {
	datastore := map[string]any{
		"name":    name,
		"type":    storeType,
		"enabled": enabled,
		"connectionParameters": map[string]any{
			"entry": connectionEntries(connectionParameters),
		},
		"workspace": map[string]any{
			"name": workspace,
		},
	}
	if description != "" {
		datastore["description"] = description
	}

	body, code, err := c.postJSON(ctx, datastoresPath(workspace)+".json", nil, map[string]any{"dataStore": datastore})
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Datastore %q created in workspace %q", name, workspace)), code, nil
	}
	return body, code, nil
}

// CreatePostGISDatastore creates a PostGIS datastore connection.
func (c *Client) CreatePostGISDatastore(ctx context.Context, workspace, name, host string, port int, database, user, password, schema, description string) (string, int, error) {
	if schema == "" {
		schema = "public"
	}
	params := map[string]any{
		"dbtype":              "postgis",
		"host":                host,
		"port":                strconv.Itoa(port),
		"database":            database,
		"user":                user,
		"passwd":              password,
		"schema":              schema,
		"Expose primary keys": "true",
	}
	return c.CreateDatastore(ctx, workspace, name, "PostGIS", params, description, true)
}

// CreateJNDIDatastore creates a PostGIS datastore backed by a JNDI resource.
func (c *Client) CreateJNDIDatastore(ctx context.Context, workspace, name, jndiReference, schema, description string) (string, int, error) {
	if schema == "" {
		schema = "public"
	}
	params := map[string]any{
		"dbtype":              "postgis",
		"jndiReferenceName":   jndiReference,
		"schema":              schema,
		"Expose primary keys": "true",
	}
	return c.CreateDatastore(ctx, workspace, name, "PostGIS (JNDI)", params, description, true)
}

// CreatePMTilesDatastore creates a datastore reading a PMTiles archive.
func (c *Client) CreatePMTilesDatastore(ctx context.Context, workspace, name, pmtilesURL, description string) (string, int, error) {
	params := map[string]any{
		"dbtype": "pmtiles",
		"url":    pmtilesURL,
	}
	return c.CreateDatastore(ctx, workspace, name, "PMTiles", params, description, true)
}

// DeleteDatastore deletes a datastore and all the layers it serves.
func (c *Client) DeleteDatastore(ctx context.Context, workspace, name string) (string, int, error) {
	query := url.Values{"recurse": {"true"}}
	body, code, err := c.delete(ctx, datastoresPath(workspace)+"/"+url.PathEscape(name), query)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Datastore %q deleted from workspace %q", name, workspace)), code, nil
	}
	return body, code, nil
}

// connectionEntries converts connection parameters to the entry list shape
// the REST API expects. Keys are sorted so payloads are deterministic.
func connectionEntries(params map[string]any) []map[string]any {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]map[string]any, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, map[string]any{
			"@key": k,
			"$":    fmt.Sprint(params[k]),
		})
	}
	return entries
}
