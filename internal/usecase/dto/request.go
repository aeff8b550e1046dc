package dto

// DateRequest - запрос данных за календарный день
type DateRequest struct {
	Date string `json:"date" validate:"required,calendar_date"`
}

// WindowRequest - запрос "начиная с даты и времени, на следующие N единиц"
type WindowRequest struct {
	Date     string `json:"date" validate:"required,calendar_date"`
	Time     string `json:"time" validate:"omitempty,hhmm"`
	Duration int    `json:"duration" validate:"required,min=1,max=1000"`
	Unit     string `json:"unit" validate:"required,time_unit"`
}

// ComparisonRequest - сравнение базовой даты и даты анализа
type ComparisonRequest struct {
	Baseline string `json:"baseline" validate:"required,calendar_date"`
	Analysis string `json:"analysis" validate:"required,calendar_date"`
}
