package repository

import (
	"time"

	"github.com/cities-in-motion/internal/domain"
)

// TaxiCountRepository определяет операции чтения над загруженным временным рядом.
// Реализации неизменяемы после загрузки и безопасны для конкурентного чтения.
type TaxiCountRepository interface {
	// LookupByDate возвращает все записи за календарный день, упорядоченные по времени
	LookupByDate(date domain.CalendarDate) []domain.TaxiCountRecord

	// LookupRange возвращает записи в полуинтервале [from, to)
	LookupRange(from, to time.Time) []domain.TaxiCountRecord

	// Span возвращает первый и последний загруженный снимок
	Span() (first, last time.Time, ok bool)

	// Stats возвращает статистику загрузки
	Stats() domain.TaxiCountStats
}
