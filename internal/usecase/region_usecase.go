package usecase

import (
	"github.com/cities-in-motion/internal/domain/repository"
	"github.com/cities-in-motion/internal/pkg/errors"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// RegionUseCase отдает геометрию регионов независимо от временного ряда
type RegionUseCase struct {
	regionRepo repository.RegionRepository
	logger     *zap.Logger
}

func NewRegionUseCase(regionRepo repository.RegionRepository, logger *zap.Logger) *RegionUseCase {
	return &RegionUseCase{
		regionRepo: regionRepo,
		logger:     logger,
	}
}

// List возвращает все регионы как FeatureCollection
func (uc *RegionUseCase) List() *geojson.FeatureCollection {
	return uc.regionRepo.FeatureCollection()
}

// GetByName возвращает регион по точному имени
func (uc *RegionUseCase) GetByName(name string) (*geojson.Feature, error) {
	region, ok := uc.regionRepo.ByName(name)
	if !ok {
		uc.logger.Debug("Region not found", zap.String("name", name))
		return nil, errors.ErrRegionNotFound.WithDetails(map[string]interface{}{"name": name})
	}
	return region.Feature(), nil
}
