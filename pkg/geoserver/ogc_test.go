package geoserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWmsLayers(t *testing.T) {
	rec := &recorder{response: "<WMS_Capabilities/>"}
	client := newTestClient(t, rec)

	body, _, err := client.GetWmsLayers(t.Context(), "demo", "fr")
	require.NoError(t, err)
	assert.Equal(t, "<WMS_Capabilities/>", body)

	req := rec.last(t)
	assert.Equal(t, "/demo/wms", req.Path)
	assert.Equal(t, "WMS", req.Query["service"])
	assert.Equal(t, "GetCapabilities", req.Query["request"])
	assert.Equal(t, "fr", req.Query["AcceptLanguages"])
}

func TestGetFeature(t *testing.T) {
	rec := &recorder{response: `{"type":"FeatureCollection","features":[]}`}
	client := newTestClient(t, rec)

	_, _, err := client.GetFeature(t.Context(), "demo", "rivers", "rivers.42", 10)
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "/demo/wfs", req.Path)
	assert.Equal(t, "GetFeature", req.Query["request"])
	assert.Equal(t, "rivers", req.Query["typeNames"])
	assert.Equal(t, "application/json", req.Query["outputFormat"])
	assert.Equal(t, "rivers.42", req.Query["featureID"])
	assert.Equal(t, "10", req.Query["count"])
}

func TestGetFeatureOptionalParamsOmitted(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec)

	_, _, err := client.GetFeature(t.Context(), "demo", "rivers", "", 0)
	require.NoError(t, err)

	req := rec.last(t)
	_, hasID := req.Query["featureID"]
	_, hasCount := req.Query["count"]
	assert.False(t, hasID)
	assert.False(t, hasCount)
}

func TestDescribeFeatureTypeWithoutWorkspace(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec)

	_, _, err := client.DescribeFeatureType(t.Context(), "", "")
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "/wfs", req.Path)
	assert.Equal(t, "DescribeFeatureType", req.Query["request"])
	_, hasTypeNames := req.Query["typeNames"]
	assert.False(t, hasTypeNames)
}

func TestGetPropertyValue(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec)

	_, _, err := client.GetPropertyValue(t.Context(), "demo", "rivers", "name")
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "GetPropertyValue", req.Query["request"])
	assert.Equal(t, "name", req.Query["valueReference"])
}
