package geoserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLayerGroup(t *testing.T) {
	rec := &recorder{status: http.StatusCreated}
	client := newTestClient(t, rec)

	msg, code, err := client.CreateLayerGroup(t.Context(), "basemap", "demo",
		[]string{"roads", "rivers"}, []string{"roads_style", "rivers_style"},
		"Base map", "Roads and rivers", 4326, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, code)
	assert.Contains(t, msg, "created")

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/rest/workspaces/demo/layergroups.json", req.Path)

	payload := jsonBody(t, req.Body)
	group := payload["layerGroup"].(map[string]any)
	assert.Equal(t, "basemap", group["name"])
	assert.Equal(t, "SINGLE", group["mode"])
	assert.Equal(t, "Base map", group["title"])
	assert.Equal(t, "Roads and rivers", group["abstractTxt"])

	workspace := group["workspace"].(map[string]any)
	assert.Equal(t, "demo", workspace["name"])

	// Layer references are qualified with the workspace.
	published := group["publishables"].(map[string]any)["published"].([]any)
	require.Len(t, published, 2)
	assert.Equal(t, "layer", published[0].(map[string]any)["@type"])
	assert.Equal(t, "demo:roads", published[0].(map[string]any)["name"])
	assert.Equal(t, "demo:rivers", published[1].(map[string]any)["name"])

	styles := group["styles"].(map[string]any)["style"].([]any)
	require.Len(t, styles, 2)
	assert.Equal(t, "roads_style", styles[0].(map[string]any)["name"])
	assert.Equal(t, "rivers_style", styles[1].(map[string]any)["name"])

	bounds := group["bounds"].(map[string]any)
	assert.Equal(t, "EPSG:4326", bounds["crs"])
	assert.Equal(t, float64(-180), bounds["minx"])
	assert.Equal(t, float64(180), bounds["maxx"])
	assert.Equal(t, float64(-90), bounds["miny"])
	assert.Equal(t, float64(90), bounds["maxy"])
}

func TestCreateLayerGroupWithoutStylesOrKnownExtent(t *testing.T) {
	rec := &recorder{status: http.StatusCreated}
	client := newTestClient(t, rec)

	_, _, err := client.CreateLayerGroup(t.Context(), "basemap", "demo",
		[]string{"roads"}, nil, "", "", 27700, "NAMED")
	require.NoError(t, err)

	group := jsonBody(t, rec.last(t).Body)["layerGroup"].(map[string]any)
	assert.Equal(t, "NAMED", group["mode"])

	// Without styles the layers' defaults apply; without a known extent
	// GeoServer computes the bounds itself.
	assert.NotContains(t, group, "styles")
	assert.NotContains(t, group, "bounds")
	assert.NotContains(t, group, "title")
	assert.NotContains(t, group, "abstractTxt")
}

func TestCreateLayerGroupSwissBounds(t *testing.T) {
	rec := &recorder{status: http.StatusCreated}
	client := newTestClient(t, rec)

	_, _, err := client.CreateLayerGroup(t.Context(), "basemap", "demo",
		[]string{"roads"}, nil, "", "", 2056, "")
	require.NoError(t, err)

	group := jsonBody(t, rec.last(t).Body)["layerGroup"].(map[string]any)
	bounds := group["bounds"].(map[string]any)
	assert.Equal(t, "EPSG:2056", bounds["crs"])
	assert.Equal(t, float64(2420000), bounds["minx"])
	assert.Equal(t, float64(1030000), bounds["miny"])
}

func TestDeleteLayerGroup(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec)

	_, _, err := client.DeleteLayerGroup(t.Context(), "demo", "basemap")
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/rest/workspaces/demo/layergroups/basemap", req.Path)
}
