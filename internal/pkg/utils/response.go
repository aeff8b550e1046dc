package utils

import (
	stderrors "errors"

	"github.com/cities-in-motion/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	Empty    bool    `json:"empty,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: errors.ErrInvalidRequest.WithDetails(ValidationDetails(validationErrs)),
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

// ValidationDetails превращает ошибки валидатора в map поле -> правило
func ValidationDetails(errs validator.ValidationErrors) map[string]interface{} {
	details := make(map[string]interface{}, len(errs))
	for _, fe := range errs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
