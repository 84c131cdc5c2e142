package model

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time without a date, matching the postgres
// `time` column of notes.reminder_time.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// TimeOfDayOf drops the date part of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// Strict two-digit HH:MM, HH 00-23 and MM 00-59. time.Parse is too lax
// here: its "15" layout token also accepts single-digit hours.
var timeOfDayPattern = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)

// ParseTimeOfDay parses a strict zero-padded HH:MM string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !timeOfDayPattern.MatchString(s) {
		return TimeOfDay{}, fmt.Errorf("failed to parse time of day '%s': want zero-padded HH:MM", s)
	}

	hour, _ := strconv.Atoi(s[:2])
	minute, _ := strconv.Atoi(s[3:])
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String formats as HH:MM, the format used in replies and notifications.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) SecondOfDay() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.SecondOfDay() < other.SecondOfDay()
}

// Scan implements sql.Scanner for postgres `time` values, which lib/pq
// returns as time.Time on the zero date.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = TimeOfDayOf(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	// Postgres may render fractional seconds in text mode.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}

	parsed, err := time.Parse("15:04:05", s)
	if err != nil {
		return fmt.Errorf("failed to scan time of day '%s': %w", s, err)
	}
	*t = TimeOfDayOf(parsed)
	return nil
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second), nil
}
