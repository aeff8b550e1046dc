package file

import (
	"fmt"

	"github.com/cities-in-motion/internal/domain"
	"github.com/cities-in-motion/internal/domain/repository"
	"github.com/paulmach/orb/geojson"
)

// RegionTable - геометрия регионов в порядке исходного файла
type RegionTable struct {
	regions []domain.Region
	byName  map[string]int
}

var _ repository.RegionRepository = (*RegionTable)(nil)

// NewRegionTable индексирует регионы по имени; имена должны быть уникальны
func NewRegionTable(regions []domain.Region) (*RegionTable, error) {
	byName := make(map[string]int, len(regions))
	for i, r := range regions {
		if _, dup := byName[r.Name]; dup {
			return nil, fmt.Errorf("%w %q", domain.ErrDuplicateRegion, r.Name)
		}
		byName[r.Name] = i
	}
	return &RegionTable{regions: regions, byName: byName}, nil
}

func (t *RegionTable) All() []domain.Region {
	out := make([]domain.Region, len(t.regions))
	copy(out, t.regions)
	return out
}

func (t *RegionTable) ByName(name string) (domain.Region, bool) {
	i, ok := t.byName[name]
	if !ok {
		return domain.Region{}, false
	}
	return t.regions[i], true
}

func (t *RegionTable) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range t.regions {
		fc.Append(r.Feature())
	}
	return fc
}

func (t *RegionTable) Len() int {
	return len(t.regions)
}
