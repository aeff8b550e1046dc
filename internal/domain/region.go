package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// Region - район с границей в WGS84 lon/lat. Boundary - orb.Polygon или
// orb.MultiPolygon ровно в том виде, в каком прочитан из файла.
type Region struct {
	Name       string
	Boundary   orb.Geometry
	Properties geojson.Properties
}

// Centroid - планарный центроид границы, взвешенный по площади
func (r Region) Centroid() Point {
	c, _ := planar.CentroidArea(r.Boundary)
	return Point{Lat: c.Lat(), Lon: c.Lon()}
}

// Feature строит GeoJSON feature с копией исходных свойств
func (r Region) Feature() *geojson.Feature {
	f := geojson.NewFeature(r.Boundary)
	for k, v := range r.Properties {
		f.Properties[k] = v
	}
	f.Properties["name"] = r.Name
	return f
}
