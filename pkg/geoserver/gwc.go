package geoserver

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"text/template"
)

// The GeoWebCache REST API is XML only.

func gwcLayerPath(workspace, layer string) string {
	return "/gwc/rest/layers/" + url.PathEscape(workspace+":"+layer) + ".xml"
}

// GetGwcLayer returns the tile caching configuration of a layer.
func (c *Client) GetGwcLayer(ctx context.Context, workspace, layer string) (string, int, error) {
	return c.get(ctx, gwcLayerPath(workspace, layer), nil)
}

// PublishGwcLayer enables tile caching for a layer on the gridset of the
// given EPSG code.
func (c *Client) PublishGwcLayer(ctx context.Context, workspace, layer string, epsg int) (string, int, error) {
	var buf bytes.Buffer
	err := gwcLayerTemplate.Execute(&buf, map[string]any{
		"Name":    workspace + ":" + layer,
		"GridSet": crsCode(epsg),
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to render GWC layer payload: %w", err)
	}

	body, code, err := c.do(ctx, http.MethodPut, gwcLayerPath(workspace, layer), nil, contentTypeXML, &buf)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Tile caching enabled for layer %q on gridset %s", layer, crsCode(epsg))), code, nil
	}
	return body, code, nil
}

// DeleteGwcLayer removes the tile caching configuration of a layer.
func (c *Client) DeleteGwcLayer(ctx context.Context, workspace, layer string) (string, int, error) {
	body, code, err := c.delete(ctx, gwcLayerPath(workspace, layer), nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Tile caching disabled for layer %q", layer)), code, nil
	}
	return body, code, nil
}

// CreateGridset creates a tile gridset for an EPSG code. Supported codes are
// 2056, 21781 and 3857.
func (c *Client) CreateGridset(ctx context.Context, epsg int) (string, int, error) {
	resolutions, ok := gridsetResolutions[epsg]
	if !ok {
		return "", 0, fmt.Errorf("unsupported EPSG code %d: supported gridsets are 2056, 21781 and 3857", epsg)
	}
	ext := crsExtents[epsg]

	var buf bytes.Buffer
	err := gridsetTemplate.Execute(&buf, map[string]any{
		"Name":        crsCode(epsg),
		"SRID":        epsg,
		"Extent":      ext,
		"Resolutions": resolutions,
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to render gridset payload: %w", err)
	}

	body, code, err := c.do(ctx, http.MethodPut, "/gwc/rest/gridsets/"+url.PathEscape(crsCode(epsg))+".xml", nil, contentTypeXML, &buf)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Gridset %s created", crsCode(epsg))), code, nil
	}
	return body, code, nil
}

// DeleteGridset deletes the gridset of an EPSG code.
func (c *Client) DeleteGridset(ctx context.Context, epsg int) (string, int, error) {
	body, code, err := c.delete(ctx, "/gwc/rest/gridsets/"+url.PathEscape(crsCode(epsg))+".xml", nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Gridset %s deleted", crsCode(epsg))), code, nil
	}
	return body, code, nil
}

// Standard swisstopo WMTS resolutions, used for both LV95 and LV03.
var swissResolutions = []float64{
	4000, 3750, 3500, 3250, 3000, 2750, 2500, 2250, 2000, 1750, 1500, 1250,
	1000, 750, 650, 500, 250, 100, 50, 20, 10, 5, 2.5, 2, 1.5, 1, 0.5, 0.25, 0.1,
}

var gridsetResolutions = map[int][]float64{
	2056:  swissResolutions,
	21781: swissResolutions,
	3857:  webMercatorResolutions(22),
}

// webMercatorResolutions returns the usual quad-tree pyramid for EPSG:3857,
// halving from the single tile covering the full extent.
func webMercatorResolutions(levels int) []float64 {
	resolutions := make([]float64, levels)
	r := 156543.03392804097
	for i := range resolutions {
		resolutions[i] = r
		r /= 2
	}
	return resolutions
}

var templateFuncs = template.FuncMap{
	"f": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
}

var gridsetTemplate = template.Must(template.New("gridset").Funcs(templateFuncs).Parse(strings.TrimSpace(`
<gridSet>
  <name>{{.Name}}</name>
  <srs><number>{{.SRID}}</number></srs>
  <extent>
    <coords>
      <double>{{f .Extent.MinX}}</double>
      <double>{{f .Extent.MinY}}</double>
      <double>{{f .Extent.MaxX}}</double>
      <double>{{f .Extent.MaxY}}</double>
    </coords>
  </extent>
  <alignTopLeft>true</alignTopLeft>
  <resolutions>
{{- range .Resolutions}}
    <double>{{f .}}</double>
{{- end}}
  </resolutions>
  <metersPerUnit>1</metersPerUnit>
  <pixelSize>0.00028</pixelSize>
  <tileHeight>256</tileHeight>
  <tileWidth>256</tileWidth>
  <yCoordinateFirst>false</yCoordinateFirst>
</gridSet>
`)))

var gwcLayerTemplate = template.Must(template.New("gwclayer").Parse(strings.TrimSpace(`
<GeoServerLayer>
  <enabled>true</enabled>
  <name>{{.Name}}</name>
  <mimeFormats>
    <string>image/png</string>
  </mimeFormats>
  <gridSubsets>
    <gridSubset>
      <gridSetName>{{.GridSet}}</gridSetName>
    </gridSubset>
  </gridSubsets>
  <metaWidthHeight>
    <int>4</int>
    <int>4</int>
  </metaWidthHeight>
</GeoServerLayer>
`)))
