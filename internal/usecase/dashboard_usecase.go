package usecase

import (
	"math"
	"strings"
	"time"

	"github.com/cities-in-motion/internal/config"
	"github.com/cities-in-motion/internal/domain"
	"github.com/cities-in-motion/internal/domain/repository"
	"github.com/cities-in-motion/internal/pkg/utils"
	"github.com/cities-in-motion/internal/usecase/dto"
	"go.uber.org/zap"
)

// Центр карты Сингапура
var MapCenter = domain.Point{Lat: 1.352083, Lon: 103.819836}

const (
	defaultTimeOfDay = "13:00"
	defaultDuration  = 10
)

// Границы выбора дат, если временной ряд пуст
var (
	fallbackDataStart = time.Date(2016, 9, 16, 13, 0, 0, 0, time.UTC)
	fallbackDataEnd   = time.Date(2021, 10, 16, 13, 0, 0, 0, time.UTC)
)

type districtOption struct {
	name   string
	center domain.Point
}

// Районы селектора "District" и их ориентировочные центры
var districtOptions = []districtOption{
	{name: "Changi Airport", center: domain.Point{Lat: 1.3480297, Lon: 103.9793892}},
	{name: "Choa Chu Kang", center: domain.Point{Lat: 1.3840, Lon: 103.7470}},
	{name: "CBD", center: domain.Point{Lat: 1.2840, Lon: 103.8510}},
	{name: "Toa Payoh", center: domain.Point{Lat: 1.3343, Lon: 103.8563}},
}

// Источник центра района
const (
	DistrictSourceRegion     = "region"
	DistrictSourceConfigured = "configured"
)

// DatasetSummarizer отдает сводку по загруженным данным (реализуется dataset.Dataset)
type DatasetSummarizer interface {
	Summary() domain.DatasetSummary
}

// DashboardUseCase отдает значения по умолчанию для элементов управления и сводку данных
type DashboardUseCase struct {
	countsRepo repository.TaxiCountRepository
	regionRepo repository.RegionRepository
	dataset    DatasetSummarizer
	cfg        *config.DashboardConfig
	logger     *zap.Logger
}

func NewDashboardUseCase(
	countsRepo repository.TaxiCountRepository,
	regionRepo repository.RegionRepository,
	dataset DatasetSummarizer,
	cfg *config.DashboardConfig,
	logger *zap.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		countsRepo: countsRepo,
		regionRepo: regionRepo,
		dataset:    dataset,
		cfg:        cfg,
		logger:     logger,
	}
}

// Defaults возвращает начальные значения формы поиска
func (uc *DashboardUseCase) Defaults() *dto.DashboardDefaultsResponse {
	resp := &dto.DashboardDefaultsResponse{
		BaselineDate: uc.cfg.DefaultBaselineDate,
		AnalysisDate: uc.cfg.DefaultAnalysisDate,
		TimeOfDay:    defaultTimeOfDay,
		Duration:     defaultDuration,
		Unit:         string(domain.UnitHour),
		MapCenter:    MapCenter,
		TimeUnits:    make([]string, 0, len(domain.TimeUnits)),
		Districts:    uc.districts(),
	}

	first, last, ok := uc.countsRepo.Span()
	if !ok {
		first, last = fallbackDataStart, fallbackDataEnd
	}
	resp.DataStart = &first
	resp.DataEnd = &last
	for _, u := range domain.TimeUnits {
		resp.TimeUnits = append(resp.TimeUnits, string(u))
	}

	return resp
}

// Summary возвращает сводку по загруженным данным, включая время загрузки
func (uc *DashboardUseCase) Summary() domain.DatasetSummary {
	return uc.dataset.Summary()
}

// districts сопоставляет районы с геометрией: при совпадении имени берется центроид
// региона, иначе остается заданный центр и указывается ближайший регион.
func (uc *DashboardUseCase) districts() []dto.District {
	regions := uc.regionRepo.All()
	result := make([]dto.District, 0, len(districtOptions))

	for _, opt := range districtOptions {
		d := dto.District{Name: opt.name, Center: opt.center, Source: DistrictSourceConfigured}

		if region, ok := findRegion(regions, opt.name); ok {
			d.Center = region.Centroid()
			d.Region = region.Name
			d.Source = DistrictSourceRegion
		} else if nearest, ok := nearestRegion(regions, opt.center); ok {
			d.Region = nearest.Name
		}

		result = append(result, d)
	}

	return result
}

func findRegion(regions []domain.Region, name string) (domain.Region, bool) {
	for _, r := range regions {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return domain.Region{}, false
}

func nearestRegion(regions []domain.Region, p domain.Point) (domain.Region, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, r := range regions {
		c := r.Centroid()
		if !utils.ValidateCoordinates(c) {
			continue
		}
		if dist := utils.HaversineDistance(p, c); dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return domain.Region{}, false
	}
	return regions[best], true
}
