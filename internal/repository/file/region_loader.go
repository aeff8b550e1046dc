package file

import (
	"fmt"
	"os"
	"strings"

	"github.com/cities-in-motion/internal/domain"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// LoadRegions читает FeatureCollection регионов из файла
func LoadRegions(path string, logger *zap.Logger) (*RegionTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewDataLoadError(path, 0, err)
	}

	table, err := ParseRegions(data, path)
	if err != nil {
		return nil, err
	}

	logger.Info("Region geometry loaded",
		zap.String("path", path),
		zap.Int("regions", table.Len()),
	)
	return table, nil
}

// ParseRegions разбирает GeoJSON FeatureCollection, где у каждого feature есть
// полигональная геометрия и непустое строковое свойство "name". Геометрия
// сохраняется как есть, без упрощения и перепроецирования.
func ParseRegions(data []byte, path string) (*RegionTable, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, domain.NewDataLoadError(path, 0, fmt.Errorf("%w: %v", domain.ErrInvalidGeometry, err))
	}
	if len(fc.Features) == 0 {
		return nil, domain.NewDataLoadError(path, 0, domain.ErrEmptyGeometrySet)
	}

	regions := make([]domain.Region, 0, len(fc.Features))
	for i, f := range fc.Features {
		region, err := regionFromFeature(f)
		if err != nil {
			return nil, domain.NewDataLoadError(path, 0, fmt.Errorf("feature %d: %w", i, err))
		}
		regions = append(regions, region)
	}

	table, err := NewRegionTable(regions)
	if err != nil {
		return nil, domain.NewDataLoadError(path, 0, err)
	}
	return table, nil
}

func regionFromFeature(f *geojson.Feature) (domain.Region, error) {
	if f == nil {
		return domain.Region{}, fmt.Errorf("%w: null feature", domain.ErrInvalidGeometry)
	}

	raw, ok := f.Properties["name"]
	if !ok {
		return domain.Region{}, domain.ErrMissingRegionName
	}
	name, ok := raw.(string)
	if !ok || strings.TrimSpace(name) == "" {
		return domain.Region{}, fmt.Errorf("%w: %v", domain.ErrMissingRegionName, raw)
	}

	if err := validateBoundary(f.Geometry); err != nil {
		return domain.Region{}, fmt.Errorf("region %q: %w", name, err)
	}

	props := make(geojson.Properties, len(f.Properties))
	for k, v := range f.Properties {
		props[k] = v
	}

	return domain.Region{
		Name:       name,
		Boundary:   f.Geometry,
		Properties: props,
	}, nil
}

func validateBoundary(g orb.Geometry) error {
	switch geom := g.(type) {
	case nil:
		return fmt.Errorf("%w: missing geometry", domain.ErrInvalidGeometry)
	case orb.Polygon:
		return validatePolygon(geom)
	case orb.MultiPolygon:
		if len(geom) == 0 {
			return fmt.Errorf("%w: empty multipolygon", domain.ErrInvalidGeometry)
		}
		for _, p := range geom {
			if err := validatePolygon(p); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %s", domain.ErrInvalidGeometry, g.GeoJSONType())
	}
}

// В кольце минимум четыре точки, первая повторяется последней
func validatePolygon(p orb.Polygon) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty polygon", domain.ErrInvalidGeometry)
	}
	for _, ring := range p {
		if len(ring) < 4 {
			return fmt.Errorf("%w: ring has %d positions", domain.ErrInvalidGeometry, len(ring))
		}
	}
	return nil
}
