package handler

import (
	"encoding/json"

	"github.com/cities-in-motion/internal/pkg/utils"
	"github.com/cities-in-motion/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const contentTypeGeoJSON = "application/geo+json"

// RegionHandler отдает геометрию регионов в GeoJSON
type RegionHandler struct {
	regionUC *usecase.RegionUseCase
	logger   *zap.Logger
}

func NewRegionHandler(regionUC *usecase.RegionUseCase, logger *zap.Logger) *RegionHandler {
	return &RegionHandler{
		regionUC: regionUC,
		logger:   logger,
	}
}

// List godoc
// @Summary Все регионы
// @Description Таблица геометрии регионов как GeoJSON FeatureCollection в исходном порядке, без упрощения и перепроецирования
// @Tags Regions
// @Produce application/geo+json
// @Success 200 {object} map[string]interface{} "FeatureCollection"
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/regions [get]
func (h *RegionHandler) List(c *fiber.Ctx) error {
	return sendGeoJSON(c, h.regionUC.List())
}

// GetByName godoc
// @Summary Регион по имени
// @Description Возвращает Feature региона по точному имени
// @Tags Regions
// @Produce application/geo+json
// @Param name path string true "Имя региона" example(Bedok)
// @Success 200 {object} map[string]interface{} "Feature"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/regions/{name} [get]
func (h *RegionHandler) GetByName(c *fiber.Ctx) error {
	feature, err := h.regionUC.GetByName(c.Params("name"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendGeoJSON(c, feature)
}

func sendGeoJSON(c *fiber.Ctx, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return utils.SendError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentTypeGeoJSON)
	return c.Send(data)
}
