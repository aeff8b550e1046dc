// Package dataset собирает неизменяемый контекст данных приложения: временной
// ряд количества такси и геометрию регионов. Оба загружаются один раз при старте
// и читаются всеми запросами без блокировок.
package dataset

import (
	"fmt"
	"time"

	"github.com/cities-in-motion/internal/config"
	"github.com/cities-in-motion/internal/domain"
	"github.com/cities-in-motion/internal/metrics"
	"github.com/cities-in-motion/internal/repository/file"
	"go.uber.org/zap"
)

type Dataset struct {
	TaxiCounts *file.TaxiCountTable
	Regions    *file.RegionTable
	LoadedAt   time.Time
}

// Load запускает оба загрузчика. Любая ошибка - *domain.DataLoadError и
// должна прерывать запуск.
func Load(cfg *config.DataConfig, logger *zap.Logger) (*Dataset, error) {
	start := time.Now()

	counts, err := file.LoadTaxiCounts(cfg.TaxiCountPaths(), logger)
	if err != nil {
		return nil, fmt.Errorf("load taxi counts: %w", err)
	}

	regions, err := file.LoadRegions(cfg.RegionGeoJSONPath(), logger)
	if err != nil {
		return nil, fmt.Errorf("load regions: %w", err)
	}

	ds := New(counts, regions)

	stats := counts.Stats()
	metrics.TaxiCountRows.Set(float64(stats.Rows))
	metrics.TaxiCountRowsExcluded.Set(float64(stats.RowsExcluded))
	metrics.Regions.Set(float64(regions.Len()))

	logger.Info("Dataset loaded",
		zap.Int("taxi_count_rows", stats.Rows),
		zap.Int("regions", regions.Len()),
		zap.Duration("took", time.Since(start)),
	)

	return ds, nil
}

func New(counts *file.TaxiCountTable, regions *file.RegionTable) *Dataset {
	return &Dataset{
		TaxiCounts: counts,
		Regions:    regions,
		LoadedAt:   time.Now().UTC(),
	}
}

func (d *Dataset) Summary() domain.DatasetSummary {
	return domain.DatasetSummary{
		TaxiCounts: d.TaxiCounts.Stats(),
		Regions:    domain.RegionStats{Total: d.Regions.Len()},
		LoadedAt:   d.LoadedAt,
	}
}
