package geoserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCoverageStore(t *testing.T) {
	rec := &recorder{status: http.StatusCreated}
	client := newTestClient(t, rec)

	msg, code, err := client.CreateCoverageStore(t.Context(), "demo", "dem", "file:data/dem.tif", "GeoTIFF", true)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, code)
	assert.Contains(t, msg, "created")

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/rest/workspaces/demo/coveragestores.json", req.Path)

	store := jsonBody(t, req.Body)["coverageStore"].(map[string]any)
	assert.Equal(t, "dem", store["name"])
	assert.Equal(t, "GeoTIFF", store["type"])
	assert.Equal(t, "file:data/dem.tif", store["url"])
	assert.Equal(t, true, store["enabled"])
	assert.Equal(t, "demo", store["workspace"].(map[string]any)["name"])
}

func TestDeleteCoverageStoreIsRecursive(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec)

	_, _, err := client.DeleteCoverageStore(t.Context(), "demo", "dem")
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/rest/workspaces/demo/coveragestores/dem", req.Path)
	assert.Equal(t, "true", req.Query["recurse"])
}

func TestCreateCoverage(t *testing.T) {
	rec := &recorder{status: http.StatusCreated}
	client := newTestClient(t, rec)

	_, _, err := client.CreateCoverage(t.Context(), "demo", "dem", "elevation", "Swiss elevation model")
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "/rest/workspaces/demo/coveragestores/dem/coverages.json", req.Path)

	coverage := jsonBody(t, req.Body)["coverage"].(map[string]any)
	assert.Equal(t, "elevation", coverage["name"])
	assert.Equal(t, "elevation", coverage["nativeName"])
	assert.Equal(t, "Swiss elevation model", coverage["title"])
}

func TestCreateCoverageWithoutTitle(t *testing.T) {
	rec := &recorder{status: http.StatusCreated}
	client := newTestClient(t, rec)

	_, _, err := client.CreateCoverage(t.Context(), "demo", "dem", "elevation", "")
	require.NoError(t, err)

	assert.NotContains(t, rec.last(t).Body, "title")
}

func TestCreateImageMosaicStoreFromDirectory(t *testing.T) {
	rec := &recorder{status: http.StatusCreated}
	client := newTestClient(t, rec)

	_, _, err := client.CreateImageMosaicStoreFromDirectory(t.Context(), "demo", "mosaic", "/data/mosaic")
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/rest/workspaces/demo/coveragestores/mosaic/external.imagemosaic", req.Path)
	assert.Equal(t, "text/plain", req.ContentType)
	assert.Equal(t, "file:///data/mosaic", req.Body)
}

func TestHarvestGranulesToCoverageStore(t *testing.T) {
	rec := &recorder{status: http.StatusAccepted}
	client := newTestClient(t, rec)

	_, _, err := client.HarvestGranulesToCoverageStore(t.Context(), "demo", "mosaic", "/data/mosaic/2026")
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/rest/workspaces/demo/coveragestores/mosaic/external.imagemosaic", req.Path)
	assert.Equal(t, "file:///data/mosaic/2026", req.Body)
}

func TestHarvestGranulesKeepsQualifiedURL(t *testing.T) {
	rec := &recorder{status: http.StatusAccepted}
	client := newTestClient(t, rec)

	_, _, err := client.HarvestGranulesToCoverageStore(t.Context(), "demo", "mosaic", "s3://rasters/granules")
	require.NoError(t, err)

	assert.Equal(t, "s3://rasters/granules", rec.last(t).Body)
}
