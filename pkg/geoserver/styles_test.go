package geoserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSLD = `<StyledLayerDescriptor version="1.0.0"><NamedLayer/></StyledLayerDescriptor>`

func TestGetStylesGlobalAndWorkspace(t *testing.T) {
	rec := &recorder{response: `{"styles":{}}`}
	client := newTestClient(t, rec)

	_, _, err := client.GetStyles(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, "/rest/styles.json", rec.last(t).Path)

	_, _, err = client.GetStyles(t.Context(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "/rest/workspaces/demo/styles.json", rec.last(t).Path)
}

func TestCreateStyleFromString(t *testing.T) {
	rec := &recorder{status: http.StatusCreated}
	client := newTestClient(t, rec)

	msg, _, err := client.CreateStyleFromString(t.Context(), "rivers", testSLD, "demo")
	require.NoError(t, err)
	assert.Contains(t, msg, "created")

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/rest/workspaces/demo/styles", req.Path)
	assert.Equal(t, "rivers", req.Query["name"])
	assert.Equal(t, "application/vnd.ogc.sld+xml", req.ContentType)
	assert.Equal(t, testSLD, req.Body)
}

func TestCreateStyleOverwritesExisting(t *testing.T) {
	var requests []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	client := newTestClient(t, handler)

	msg, _, err := client.CreateStyleFromString(t.Context(), "rivers", testSLD, "")
	require.NoError(t, err)
	assert.Contains(t, msg, "updated")

	require.Equal(t, []string{
		"POST /rest/styles",
		"PUT /rest/styles/rivers",
	}, requests)
}

func TestGetStyleDefinition(t *testing.T) {
	rec := &recorder{response: testSLD}
	client := newTestClient(t, rec)

	body, _, err := client.GetStyleDefinition(t.Context(), "rivers", "demo")
	require.NoError(t, err)
	assert.Equal(t, testSLD, body)
	assert.Equal(t, "/rest/workspaces/demo/styles/rivers.sld", rec.last(t).Path)
}

func TestDeleteStylePurges(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec)

	_, _, err := client.DeleteStyle(t.Context(), "rivers", "")
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "/rest/styles/rivers", req.Path)
	assert.Equal(t, "true", req.Query["purge"])
}
