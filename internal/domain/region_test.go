package domain

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
)

func TestRegion_CentroidAndFeature(t *testing.T) {
	r := Region{
		Name: "Square",
		Boundary: orb.Polygon{
			{{103.0, 1.0}, {104.0, 1.0}, {104.0, 2.0}, {103.0, 2.0}, {103.0, 1.0}},
		},
		Properties: geojson.Properties{"name": "Square", "code": "SQ"},
	}

	c := r.Centroid()
	assert.InDelta(t, 103.5, c.Lon, 1e-9)
	assert.InDelta(t, 1.5, c.Lat, 1e-9)

	f := r.Feature()
	assert.Equal(t, "Square", f.Properties["name"])
	assert.Equal(t, "SQ", f.Properties["code"])
	assert.Equal(t, r.Boundary, f.Geometry)

	f.Properties["code"] = "XX"
	assert.Equal(t, "SQ", r.Properties["code"])
}
