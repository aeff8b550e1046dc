package handler

import (
	"github.com/cities-in-motion/internal/pkg/utils"
	"github.com/cities-in-motion/internal/pkg/validator"
	"github.com/cities-in-motion/internal/usecase"
	"github.com/cities-in-motion/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CountsHandler - обработчик выборок временного ряда
type CountsHandler struct {
	countsUC *usecase.CountsUseCase
	logger   *zap.Logger
}

// NewCountsHandler - создание нового CountsHandler
func NewCountsHandler(countsUC *usecase.CountsUseCase, logger *zap.Logger) *CountsHandler {
	return &CountsHandler{
		countsUC: countsUC,
		logger:   logger,
	}
}

// GetByDate godoc
// @Summary Количество такси за календарный день
// @Description Возвращает все снимки за день [date, date+1) независимо от времени суток и значение по каждому региону (последний снимок дня и среднее). День без данных - пустой результат, а не ошибка.
// @Tags Counts
// @Produce json
// @Param date query string true "Дата в формате YYYY-MM-DD" example(2020-04-01)
// @Success 200 {object} utils.SuccessResponse{data=dto.CountsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/counts [get]
func (h *CountsHandler) GetByDate(c *fiber.Ctx) error {
	req := dto.DateRequest{Date: c.Query("date")}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.countsUC.LookupByDate(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Records),
		Empty: result.Empty,
	})
}

// GetWindow godoc
// @Summary Количество такси за период
// @Description Период "начиная с даты и времени, на следующие N единиц". Для Hour, Days, Weeks, Months, Years - интервал [date+time, +N*unit); для Mondays..Sundays - N ближайших дней с этим днем недели начиная с date, целиком.
// @Tags Counts
// @Produce json
// @Param date query string true "Дата начала (YYYY-MM-DD)" example(2016-09-16)
// @Param time query string false "Время суток (HH:MM)" default(00:00)
// @Param duration query int false "Количество единиц" default(10)
// @Param unit query string false "Единица периода (Hour, Days, Weeks, Months, Years, Mondays..Sundays)" default(Hour)
// @Success 200 {object} utils.SuccessResponse{data=dto.WindowResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/counts/window [get]
func (h *CountsHandler) GetWindow(c *fiber.Ctx) error {
	req := dto.WindowRequest{
		Date:     c.Query("date"),
		Time:     c.Query("time"),
		Duration: c.QueryInt("duration", 10),
		Unit:     c.Query("unit", "Hour"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.countsUC.LookupWindow(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Records),
		Empty: result.Empty,
	})
}
