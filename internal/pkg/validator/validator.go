package validator

import (
	"time"

	"github.com/cities-in-motion/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("calendar_date", validateCalendarDate)
	_ = validate.RegisterValidation("hhmm", validateHHMM)
	_ = validate.RegisterValidation("time_unit", validateTimeUnit)
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := domain.ParseCalendarDate(fl.Field().String())
	return err == nil
}

func validateHHMM(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

func validateTimeUnit(fl validator.FieldLevel) bool {
	_, err := domain.ParseTimeUnit(fl.Field().String())
	return err == nil
}
