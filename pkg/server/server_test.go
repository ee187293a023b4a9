package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camptocamp/geoserver-mcp/pkg/config"
	"github.com/camptocamp/geoserver-mcp/pkg/geoserver"
)

const toolCount = 84

// newTestSession connects an MCP client to a server backed by a fake
// GeoServer, over an in-memory transport.
func newTestSession(t *testing.T, handler http.HandlerFunc) *mcp.ClientSession {
	t.Helper()

	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)

	conf := config.Config{URL: backend.URL, User: "admin", Password: "geoserver"}
	gsClient, err := geoserver.NewClient(conf)
	require.NoError(t, err)

	s := New(Options{Transport: "stdio", Version: "test"}, conf, gsClient)
	mcpServer := s.buildMCPServer()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := mcpServer.Connect(t.Context(), serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(t.Context(), clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

// resultPayload decodes the JSON text content of a tool result.
func resultPayload(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()

	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return payload
}

func TestToolCatalog(t *testing.T) {
	session := newTestSession(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	listed, err := session.ListTools(t.Context(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	names := make(map[string]bool, len(listed.Tools))
	for _, tool := range listed.Tools {
		assert.False(t, names[tool.Name], "duplicate tool name %q", tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has no description", tool.Name)
		names[tool.Name] = true
	}
	assert.Len(t, names, toolCount)

	for _, name := range []string{
		"get_geoserver_connection_info",
		"create_workspace",
		"create_pg_datastore",
		"create_datastore",
		"create_feature_type",
		"create_layer_group",
		"create_style_from_string",
		"publish_gwc_layer",
		"get_feature",
		"create_acl_rule",
	} {
		assert.True(t, names[name], "missing tool %q", name)
	}
}

func TestCallToolGetWorkspaces(t *testing.T) {
	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/workspaces.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"workspaces":{"workspace":[{"name":"topo"}]}}`))
	})

	res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "get_workspaces",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	payload := resultPayload(t, res)
	assert.Equal(t, float64(200), payload["status_code"])

	workspaces, err := json.Marshal(payload["workspaces"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"workspaces":{"workspace":[{"name":"topo"}]}}`, string(workspaces))
}

func TestCallToolStatusPassThrough(t *testing.T) {
	session := newTestSession(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "No such workspace: missing", http.StatusNotFound)
	})

	res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "get_workspace",
		Arguments: map[string]any{"workspace_name": "missing"},
	})
	require.NoError(t, err)

	// A GeoServer error status is data, not a tool failure.
	require.False(t, res.IsError)
	payload := resultPayload(t, res)
	assert.Equal(t, float64(404), payload["status_code"])
}

func TestCallToolTransportError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	conf := config.Config{URL: backend.URL, User: "admin", Password: "geoserver"}
	gsClient, err := geoserver.NewClient(conf)
	require.NoError(t, err)

	// An unreachable GeoServer must surface as a tool error.
	backend.Close()

	s := New(Options{Transport: "stdio", Version: "test"}, conf, gsClient)
	mcpServer := s.buildMCPServer()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := mcpServer.Connect(t.Context(), serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(t.Context(), clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_workspaces",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestCallToolCreateDatastore(t *testing.T) {
	var body map[string]any
	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/workspaces/topo/datastores.json", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	})

	res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name: "create_datastore",
		Arguments: map[string]any{
			"workspace_name": "topo",
			"datastore_name": "roads",
			"datastore_type": "PostGIS",
			"connection_parameters": map[string]any{
				"host":   "db",
				"port":   "5432",
				"dbtype": "postgis",
			},
		},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	payload := resultPayload(t, res)
	assert.Equal(t, float64(201), payload["status_code"])

	dataStore, ok := body["dataStore"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "roads", dataStore["name"])
	assert.Equal(t, "PostGIS", dataStore["type"])
}

func TestCallToolConnectionInfoHidesPassword(t *testing.T) {
	session := newTestSession(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "get_geoserver_connection_info",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	payload := resultPayload(t, res)
	assert.Equal(t, "admin", payload["user"])
	assert.Equal(t, "***hidden***", payload["password"])
}

func TestCallToolDefaultEpsg(t *testing.T) {
	var body map[string]any
	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		}
		w.WriteHeader(http.StatusCreated)
	})

	res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name: "create_feature_type",
		Arguments: map[string]any{
			"layer_name":     "roads",
			"workspace_name": "topo",
			"datastore_name": "pg",
		},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	featureType, ok := body["featureType"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "EPSG:4326", featureType["srs"])
}

func TestCallToolExplicitEpsg(t *testing.T) {
	var body map[string]any
	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		}
		w.WriteHeader(http.StatusCreated)
	})

	// An explicit epsg value is passed through as-is, zero included.
	res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name: "create_feature_type",
		Arguments: map[string]any{
			"layer_name":     "roads",
			"workspace_name": "topo",
			"datastore_name": "pg",
			"epsg":           0,
		},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	featureType, ok := body["featureType"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "EPSG:0", featureType["srs"])
}

func TestCallToolDescribeFeatureTypeWithoutWorkspace(t *testing.T) {
	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wfs", r.URL.Path)
		assert.Equal(t, "DescribeFeatureType", r.URL.Query().Get("request"))
		_, _ = w.Write([]byte(`<xsd:schema/>`))
	})

	res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "describe_feature_type",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	payload := resultPayload(t, res)
	assert.Equal(t, float64(200), payload["status_code"])
	assert.Equal(t, "<xsd:schema/>", payload["schema"])
}
