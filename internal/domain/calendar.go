package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const CalendarDateLayout = "2006-01-02"

var ErrInvalidCalendarDate = errors.New("invalid calendar date")

// CalendarDate - день без времени суток. Метки времени в данных - локальное
// "настенное" время без зоны, поэтому даты привязаны к UTC.
type CalendarDate struct {
	t time.Time
}

func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(CalendarDateLayout, strings.TrimSpace(s))
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidCalendarDate, s)
	}
	return CalendarDate{t: t}, nil
}

// Start - полночь в начале дня
func (d CalendarDate) Start() time.Time { return d.t }

// End - полночь следующего дня (граница не включается)
func (d CalendarDate) End() time.Time { return d.t.AddDate(0, 0, 1) }

func (d CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDate{t: d.t.AddDate(0, 0, n)}
}

func (d CalendarDate) Weekday() time.Weekday { return d.t.Weekday() }

func (d CalendarDate) IsZero() bool { return d.t.IsZero() }

func (d CalendarDate) String() string { return d.t.Format(CalendarDateLayout) }

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}
