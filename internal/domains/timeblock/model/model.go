package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"salas/shared/model"
	"strings"
	"time"
)

const (
	TableName  = "time_blocks"
	EntityName = "time block"

	FieldID        = "id"
	FieldName      = "name"
	FieldDayOfWeek = "day_of_week"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldIsActive  = "is_active"
)

const minutesPerHour = 60

var errInvalidTimeOfDay = errors.New("invalid time of day")

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

var weekdays = map[time.Weekday]DayOfWeek{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// DayOfWeekFor returns the weekday a calendar date falls on.
func DayOfWeekFor(date time.Time) DayOfWeek {
	return weekdays[date.Weekday()]
}

// ParseDayOfWeek accepts any casing of the seven day names.
func ParseDayOfWeek(value string) (DayOfWeek, bool) {
	day := DayOfWeek(strings.ToLower(strings.TrimSpace(value)))

	for _, known := range weekdays {
		if known == day {
			return day, true
		}
	}

	return "", false
}

// TimeOfDay is a wall clock time stored in minutes since midnight. It maps to a Postgres TIME column.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from hour and minute.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*minutesPerHour + minute)
}

// ParseTimeOfDay parses "15:04" or "15:04:05".
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return NewTimeOfDay(parsed.Hour(), parsed.Minute()), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errInvalidTimeOfDay, value)
}

func (t TimeOfDay) Hour() int {
	return int(t) / minutesPerHour
}

func (t TimeOfDay) Minute() int {
	return int(t) % minutesPerHour
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Scan implements sql.Scanner. lib/pq hands TIME columns over as time.Time.
func (t *TimeOfDay) Scan(src any) error {
	switch value := src.(type) {
	case time.Time:
		*t = NewTimeOfDay(value.Hour(), value.Minute())

		return nil
	case []byte:
		return t.scanString(string(value))
	case string:
		return t.scanString(value)
	default:
		return fmt.Errorf("%w: unsupported type %T", errInvalidTimeOfDay, src)
	}
}

func (t *TimeOfDay) scanString(value string) error {
	parsed, err := ParseTimeOfDay(value)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String() + ":00", nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %w", errInvalidTimeOfDay, err)
	}

	return t.scanString(value)
}

type TimeBlock struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	DayOfWeek DayOfWeek `db:"day_of_week"`
	StartTime TimeOfDay `db:"start_time"`
	EndTime   TimeOfDay `db:"end_time"`
	IsActive  bool      `db:"is_active"`
	model.Metadata
}

// DurationMinutes is end minus start. Storage guarantees start < end.
func (t TimeBlock) DurationMinutes() int {
	return int(t.EndTime - t.StartTime)
}

func (t TimeBlock) DurationHours() float64 {
	return float64(t.DurationMinutes()) / minutesPerHour
}
