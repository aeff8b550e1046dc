package repository

import (
	"github.com/cities-in-motion/internal/domain"
	"github.com/paulmach/orb/geojson"
)

// RegionRepository определяет операции над геометрией регионов
type RegionRepository interface {
	// All возвращает все регионы в порядке исходного файла
	All() []domain.Region

	// ByName находит регион по точному имени
	ByName(name string) (domain.Region, bool)

	// FeatureCollection возвращает регионы как GeoJSON FeatureCollection
	FeatureCollection() *geojson.FeatureCollection

	// Len возвращает количество регионов
	Len() int
}
