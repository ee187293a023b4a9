package geoserver

import "fmt"

// extent is a bounding box in the units of its CRS.
type extent struct {
	MinX, MaxX, MinY, MaxY float64
}

// Known extents for the coordinate reference systems this client can build
// bounds and tile gridsets for: WGS84, Web Mercator and the two Swiss
// national systems (LV95 and LV03).
var crsExtents = map[int]extent{
	4326:  {MinX: -180, MaxX: 180, MinY: -90, MaxY: 90},
	3857:  {MinX: -20037508.34, MaxX: 20037508.34, MinY: -20037508.34, MaxY: 20037508.34},
	2056:  {MinX: 2420000, MaxX: 2900000, MinY: 1030000, MaxY: 1350000},
	21781: {MinX: 420000, MaxX: 900000, MinY: 30000, MaxY: 350000},
}

func crsCode(epsg int) string {
	return fmt.Sprintf("EPSG:%d", epsg)
}

// boundsPayload builds a REST API bounds object for an EPSG code, or nil when
// the extent is not known and GeoServer should compute bounds itself.
func boundsPayload(epsg int) map[string]any {
	ext, ok := crsExtents[epsg]
	if !ok {
		return nil
	}
	return map[string]any{
		"minx": ext.MinX,
		"maxx": ext.MaxX,
		"miny": ext.MinY,
		"maxy": ext.MaxY,
		"crs":  crsCode(epsg),
	}
}
