package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/cities-in-motion/internal/domain"
	"github.com/cities-in-motion/internal/domain/repository"
	"github.com/cities-in-motion/internal/metrics"
	"github.com/cities-in-motion/internal/pkg/errors"
	"github.com/cities-in-motion/internal/usecase/dto"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// ComparisonUseCase строит две хороплеты (базовая дата и дата анализа)
type ComparisonUseCase struct {
	countsRepo repository.TaxiCountRepository
	regionRepo repository.RegionRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// NewComparisonUseCase создает новый экземпляр ComparisonUseCase
func NewComparisonUseCase(
	countsRepo repository.TaxiCountRepository,
	regionRepo repository.RegionRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ComparisonUseCase {
	return &ComparisonUseCase{
		countsRepo: countsRepo,
		regionRepo: regionRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// Compare строит сравнение. Дата без данных дает пустую сторону и не ломает другую.
func (uc *ComparisonUseCase) Compare(ctx context.Context, req dto.ComparisonRequest) (*dto.ComparisonResponse, error) {
	baseline, err := domain.ParseCalendarDate(req.Baseline)
	if err != nil {
		return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{"baseline": req.Baseline})
	}
	analysis, err := domain.ParseCalendarDate(req.Analysis)
	if err != nil {
		return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{"analysis": req.Analysis})
	}

	cacheKey := fmt.Sprintf("comparison:%s:%s", baseline, analysis)

	// 1. Проверяем кеш
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	// 2. Строим из загруженных данных
	resp := &dto.ComparisonResponse{
		Baseline: uc.buildSide(baseline),
		Analysis: uc.buildSide(analysis),
	}
	resp.Change = summaryChange(resp.Baseline, resp.Analysis)

	// 3. Кешируем; ошибка кеша не ломает запрос
	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("Failed to marshal comparison", zap.Error(err))
		return resp, nil
	}
	if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache comparison", zap.String("key", cacheKey), zap.Error(err))
	}

	return resp, nil
}

func (uc *ComparisonUseCase) fromCache(ctx context.Context, key string) *dto.ComparisonResponse {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to get comparison from cache", zap.String("key", key), zap.Error(err))
		metrics.CacheMissesTotal.Inc()
		return nil
	}
	if data == nil {
		metrics.CacheMissesTotal.Inc()
		return nil
	}

	var resp dto.ComparisonResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		uc.logger.Warn("Failed to unmarshal cached comparison", zap.String("key", key), zap.Error(err))
		metrics.CacheMissesTotal.Inc()
		return nil
	}

	metrics.CacheHitsTotal.Inc()
	uc.logger.Debug("Comparison fetched from cache", zap.String("key", key))
	return &resp
}

// buildSide соединяет значения по регионам с геометрией по точному имени.
// Регион из счетчиков без геометрии пропускается и попадает в UnmatchedRegions;
// геометрия без счетчиков остается на карте с taxi_count = null.
func (uc *ComparisonUseCase) buildSide(date domain.CalendarDate) dto.ComparisonSide {
	records := uc.countsRepo.LookupByDate(date)
	metrics.LookupsTotal.WithLabelValues("comparison").Inc()

	values := domain.AggregateByRegion(records)
	side := dto.ComparisonSide{
		Date:             date.String(),
		Empty:            len(values) == 0,
		Regions:          values,
		UnmatchedRegions: []string{},
		Summary: dto.IslandwideSummary{
			RegionsWithData: len(values),
			Snapshots:       domain.DistinctSnapshots(records),
		},
	}

	if side.Empty {
		metrics.EmptyResultsTotal.WithLabelValues("comparison").Inc()
		uc.logger.Debug("No taxi counts for comparison date", zap.String("date", side.Date))
	}

	byRegion := make(map[string]domain.RegionDailyValue, len(values))
	for _, v := range values {
		byRegion[v.Region] = v
		side.Summary.TotalTaxiCount += v.TaxiCount
	}

	fc := geojson.NewFeatureCollection()
	matched := make(map[string]struct{}, len(values))
	missingCounts := 0
	for _, region := range uc.regionRepo.All() {
		f := region.Feature()
		if v, ok := byRegion[region.Name]; ok {
			matched[region.Name] = struct{}{}
			f.Properties["taxi_count"] = v.TaxiCount
			f.Properties["taxi_count_mean"] = v.Mean
			f.Properties["snapshots"] = v.Snapshots
		} else {
			f.Properties["taxi_count"] = nil
			missingCounts++
		}
		fc.Append(f)
	}
	side.Map = fc

	if !side.Empty && missingCounts > 0 {
		metrics.JoinMismatchesTotal.WithLabelValues(metrics.MismatchMissingCounts).Add(float64(missingCounts))
		uc.logger.Debug("Regions without taxi counts",
			zap.String("date", side.Date),
			zap.Int("regions", missingCounts),
		)
	}

	for _, v := range values {
		if _, ok := matched[v.Region]; ok {
			continue
		}
		side.UnmatchedRegions = append(side.UnmatchedRegions, v.Region)
		metrics.JoinMismatchesTotal.WithLabelValues(metrics.MismatchMissingGeometry).Inc()
		uc.logger.Warn("Taxi count region has no geometry, skipping",
			zap.String("date", side.Date),
			zap.String("region", v.Region),
		)
	}
	sort.Strings(side.UnmatchedRegions)

	return side
}

func summaryChange(baseline, analysis dto.ComparisonSide) dto.SummaryChange {
	if baseline.Empty || analysis.Empty {
		return dto.SummaryChange{}
	}

	abs := analysis.Summary.TotalTaxiCount - baseline.Summary.TotalTaxiCount
	change := dto.SummaryChange{Absolute: &abs}
	if baseline.Summary.TotalTaxiCount != 0 {
		pct := float64(abs) / float64(baseline.Summary.TotalTaxiCount) * 100
		change.Percent = &pct
	}
	return change
}
