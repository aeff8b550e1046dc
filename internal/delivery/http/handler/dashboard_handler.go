package handler

import (
	"time"

	"github.com/cities-in-motion/internal/pkg/utils"
	"github.com/cities-in-motion/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler обрабатывает запросы состояния и значений по умолчанию
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewDashboardHandler создает новый экземпляр DashboardHandler
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// GetDefaults godoc
// @Summary Значения по умолчанию для дашборда
// @Description Базовая дата и дата анализа, время суток, длительность и единица периода, диапазон загруженных данных, центр карты и варианты районов
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DashboardDefaultsResponse}
// @Router /api/v1/dashboard/defaults [get]
func (h *DashboardHandler) GetDefaults(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.dashboardUC.Defaults(), nil)
}

// Health godoc
// @Summary Health check
// @Description Состояние сервиса и сводка по загруженным данным
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *DashboardHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"time":    time.Now(),
		"dataset": h.dashboardUC.Summary(),
	})
}
