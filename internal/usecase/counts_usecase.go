package usecase

import (
	"context"
	"time"

	"github.com/cities-in-motion/internal/domain"
	"github.com/cities-in-motion/internal/domain/repository"
	"github.com/cities-in-motion/internal/metrics"
	"github.com/cities-in-motion/internal/pkg/errors"
	"github.com/cities-in-motion/internal/usecase/dto"
	"go.uber.org/zap"
)

// CountsUseCase обрабатывает выборки временного ряда по дате и периоду
type CountsUseCase struct {
	countsRepo repository.TaxiCountRepository
	logger     *zap.Logger
}

// NewCountsUseCase создает новый экземпляр CountsUseCase
func NewCountsUseCase(countsRepo repository.TaxiCountRepository, logger *zap.Logger) *CountsUseCase {
	return &CountsUseCase{
		countsRepo: countsRepo,
		logger:     logger,
	}
}

// LookupByDate возвращает все записи за календарный день независимо от времени суток.
// Отсутствие данных - пустой результат, а не ошибка.
func (uc *CountsUseCase) LookupByDate(ctx context.Context, req dto.DateRequest) (*dto.CountsResponse, error) {
	date, err := domain.ParseCalendarDate(req.Date)
	if err != nil {
		return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{"date": req.Date})
	}

	records := uc.countsRepo.LookupByDate(date)
	metrics.LookupsTotal.WithLabelValues("date").Inc()
	if len(records) == 0 {
		metrics.EmptyResultsTotal.WithLabelValues("date").Inc()
		uc.logger.Debug("No taxi counts for date", zap.String("date", date.String()))
	}

	return &dto.CountsResponse{
		Date:      date.String(),
		Empty:     len(records) == 0,
		Snapshots: domain.DistinctSnapshots(records),
		Records:   records,
		Regions:   domain.AggregateByRegion(records),
	}, nil
}

// LookupWindow возвращает записи за период "For the next N <unit>"
func (uc *CountsUseCase) LookupWindow(ctx context.Context, req dto.WindowRequest) (*dto.WindowResponse, error) {
	date, err := domain.ParseCalendarDate(req.Date)
	if err != nil {
		return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{"date": req.Date})
	}

	timeOfDay, err := parseTimeOfDay(req.Time)
	if err != nil {
		return nil, errors.ErrInvalidWindow.WithDetails(map[string]interface{}{"time": req.Time})
	}

	unit, err := domain.ParseTimeUnit(req.Unit)
	if err != nil {
		return nil, errors.ErrInvalidWindow.WithDetails(map[string]interface{}{"unit": req.Unit})
	}

	ranges, err := domain.WindowRanges(date, timeOfDay, req.Duration, unit)
	if err != nil {
		return nil, errors.ErrInvalidWindow.WithMessage(err.Error())
	}

	records := []domain.TaxiCountRecord{}
	for _, r := range ranges {
		records = append(records, uc.countsRepo.LookupRange(r.From, r.To)...)
	}

	metrics.LookupsTotal.WithLabelValues("window").Inc()
	if len(records) == 0 {
		metrics.EmptyResultsTotal.WithLabelValues("window").Inc()
		uc.logger.Debug("No taxi counts for window",
			zap.String("date", date.String()),
			zap.String("unit", string(unit)),
			zap.Int("duration", req.Duration),
		)
	}

	return &dto.WindowResponse{
		Unit:      string(unit),
		Duration:  req.Duration,
		Ranges:    ranges,
		Empty:     len(records) == 0,
		Snapshots: domain.DistinctSnapshots(records),
		Records:   records,
		Regions:   domain.AggregateByRegion(records),
	}, nil
}

func parseTimeOfDay(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
