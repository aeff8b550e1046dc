package handler

import (
	"time"

	"github.com/cities-in-motion/internal/pkg/utils"
	"github.com/cities-in-motion/internal/pkg/validator"
	"github.com/cities-in-motion/internal/usecase"
	"github.com/cities-in-motion/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ComparisonHandler - обработчик сравнения двух дат
type ComparisonHandler struct {
	comparisonUC *usecase.ComparisonUseCase
	logger       *zap.Logger
}

// NewComparisonHandler - создание нового ComparisonHandler
func NewComparisonHandler(comparisonUC *usecase.ComparisonUseCase, logger *zap.Logger) *ComparisonHandler {
	return &ComparisonHandler{
		comparisonUC: comparisonUC,
		logger:       logger,
	}
}

// Compare godoc
// @Summary Сравнение базовой даты и даты анализа
// @Description Две хороплеты (FeatureCollection с свойством taxi_count) и сводка по острову. Дата без данных дает сторону с empty=true и taxi_count=null у всех регионов, другая сторона не затрагивается. Регионы из счетчиков без геометрии перечислены в unmatched_regions.
// @Tags Comparison
// @Produce json
// @Param baseline query string true "Базовая дата (YYYY-MM-DD)" example(2016-09-16)
// @Param analysis query string true "Дата анализа (YYYY-MM-DD)" example(2020-04-01)
// @Success 200 {object} utils.SuccessResponse{data=dto.ComparisonResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/comparison [get]
func (h *ComparisonHandler) Compare(c *fiber.Ctx) error {
	req := dto.ComparisonRequest{
		Baseline: c.Query("baseline"),
		Analysis: c.Query("analysis"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	result, err := h.comparisonUC.Compare(c.Context(), req)
	if err != nil {
		h.logger.Debug("Comparison failed", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}
