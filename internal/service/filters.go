package service

import (
	"fmt"
	"strings"

	"sport_events/internal/models"
)

// DateFilter is the closed set of date buckets the API accepts.
type DateFilter string

const (
	FilterToday         DateFilter = "today"
	FilterTomorrow      DateFilter = "tomorrow"
	FilterThisWeek      DateFilter = "thisweek"
	FilterAfterThisWeek DateFilter = "afterthisweek"
)

// ParseDateFilter validates a raw filter value, case-insensitively.
func ParseDateFilter(raw string) (DateFilter, error) {
	switch f := DateFilter(strings.ToLower(raw)); f {
	case FilterToday, FilterTomorrow, FilterThisWeek, FilterAfterThisWeek:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFilter, raw)
	}
}

// PartOfDay is the closed set of time-of-day buckets.
type PartOfDay string

const (
	Morning   PartOfDay = "morning"
	Afternoon PartOfDay = "afternoon"
	Evening   PartOfDay = "evening"
	Night     PartOfDay = "night"
)

// ParsePartOfDay validates a raw part-of-day value, case-insensitively.
func ParsePartOfDay(raw string) (PartOfDay, error) {
	switch p := PartOfDay(strings.ToLower(raw)); p {
	case Morning, Afternoon, Evening, Night:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPartOfDay, raw)
	}
}

// clockRange is an inclusive time-of-day interval.
type clockRange struct {
	start models.TimeOfDay
	end   models.TimeOfDay
}

// partOfDayRanges maps each bucket to its clock ranges. Night wraps midnight
// and is therefore two ranges.
var partOfDayRanges = map[PartOfDay][]clockRange{
	Morning:   {{models.NewTimeOfDay(5, 0), models.NewTimeOfDay(11, 59)}},
	Afternoon: {{models.NewTimeOfDay(12, 0), models.NewTimeOfDay(16, 59)}},
	Evening:   {{models.NewTimeOfDay(17, 0), models.NewTimeOfDay(20, 59)}},
	Night: {
		{models.NewTimeOfDay(21, 0), models.NewTimeOfDay(23, 59)},
		{models.NewTimeOfDay(0, 0), models.NewTimeOfDay(4, 59)},
	},
}
