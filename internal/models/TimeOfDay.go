package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const timeOfDayLayout = "15:04"

// TimeOfDay is a clock time without a date, stored in a TIME column and
// rendered as "HH:MM" in JSON.
type TimeOfDay struct {
	time.Time
}

// NewTimeOfDay builds a TimeOfDay from an hour and minute.
func NewTimeOfDay(hour, min int) TimeOfDay {
	return TimeOfDay{Time: time.Date(0, 1, 1, hour, min, 0, 0, time.UTC)}
}

// ParseTimeOfDay parses an "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{Time: t}, nil
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid time of day %q", string(b))
	}
	parsed, err := ParseTimeOfDay(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(timeOfDayLayout) + `"`), nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.Format("15:04:05"), nil
}

func (t *TimeOfDay) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		t.Time = time.Date(0, 1, 1, v.Hour(), v.Minute(), v.Second(), 0, time.UTC)
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan type %T into TimeOfDay", value)
	}
	return nil
}

func (t *TimeOfDay) scanString(s string) error {
	for _, layout := range []string{"15:04:05", timeOfDayLayout} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into TimeOfDay", s)
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes() < other.minutes()
}

// After reports whether t is strictly later in the day than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes() > other.minutes()
}

func (t TimeOfDay) minutes() int {
	return t.Hour()*60 + t.Minute()
}
