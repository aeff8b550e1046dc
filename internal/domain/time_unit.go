package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWindow = errors.New("invalid time window")

// TimeUnit - единица периода "For the next N <unit>" на дашборде
type TimeUnit string

const (
	UnitHour       TimeUnit = "Hour"
	UnitDays       TimeUnit = "Days"
	UnitWeeks      TimeUnit = "Weeks"
	UnitMonths     TimeUnit = "Months"
	UnitYears      TimeUnit = "Years"
	UnitMondays    TimeUnit = "Mondays"
	UnitTuesdays   TimeUnit = "Tuesdays"
	UnitWednesdays TimeUnit = "Wednesdays"
	UnitThursdays  TimeUnit = "Thursdays"
	UnitFridays    TimeUnit = "Fridays"
	UnitSaturdays  TimeUnit = "Saturdays"
	UnitSundays    TimeUnit = "Sundays"
)

// TimeUnits - порядок вариантов в селекторе
var TimeUnits = []TimeUnit{
	UnitHour, UnitDays, UnitWeeks, UnitMonths, UnitYears,
	UnitMondays, UnitTuesdays, UnitWednesdays, UnitThursdays,
	UnitFridays, UnitSaturdays, UnitSundays,
}

var unitWeekdays = map[TimeUnit]time.Weekday{
	UnitMondays:    time.Monday,
	UnitTuesdays:   time.Tuesday,
	UnitWednesdays: time.Wednesday,
	UnitThursdays:  time.Thursday,
	UnitFridays:    time.Friday,
	UnitSaturdays:  time.Saturday,
	UnitSundays:    time.Sunday,
}

func ParseTimeUnit(s string) (TimeUnit, error) {
	for _, u := range TimeUnits {
		if string(u) == s {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: unknown unit %q", ErrInvalidWindow, s)
}

// TimeRange - полуинтервал [From, To)
type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// WindowRanges раскрывает элементы управления периодом в интервалы времени.
// Календарные единицы дают один интервал от date+timeOfDay. Дни недели дают
// целые дни: n ближайших дней с этим днем недели начиная с date.
func WindowRanges(date CalendarDate, timeOfDay time.Duration, n int, unit TimeUnit) ([]TimeRange, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: duration must be at least 1, got %d", ErrInvalidWindow, n)
	}
	if timeOfDay < 0 || timeOfDay >= 24*time.Hour {
		return nil, fmt.Errorf("%w: time of day %s out of range", ErrInvalidWindow, timeOfDay)
	}

	if wd, ok := unitWeekdays[unit]; ok {
		first := date.AddDays((int(wd) - int(date.Weekday()) + 7) % 7)
		ranges := make([]TimeRange, 0, n)
		for i := 0; i < n; i++ {
			day := first.AddDays(7 * i)
			ranges = append(ranges, TimeRange{From: day.Start(), To: day.End()})
		}
		return ranges, nil
	}

	start := date.Start().Add(timeOfDay)
	var end time.Time
	switch unit {
	case UnitHour:
		end = start.Add(time.Duration(n) * time.Hour)
	case UnitDays:
		end = start.AddDate(0, 0, n)
	case UnitWeeks:
		end = start.AddDate(0, 0, 7*n)
	case UnitMonths:
		end = start.AddDate(0, n, 0)
	case UnitYears:
		end = start.AddDate(n, 0, 0)
	default:
		return nil, fmt.Errorf("%w: unknown unit %q", ErrInvalidWindow, unit)
	}

	return []TimeRange{{From: start, To: end}}, nil
}
