package timezone

import (
	"salas/config"
	"time"

	"github.com/rs/zerolog/log"
)

var location = loadLocation(config.Get().App.Timezone)

func loadLocation(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, using UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone loaded")

	return loc
}

// Location returns the configured application timezone.
func Location() *time.Location {
	return location
}

func Now() time.Time {
	return time.Now().In(location)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(location)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// DateOf drops the clock part of t, keeping the calendar day t falls on in its own location.
// The result is midnight UTC so dates coming from Postgres DATE columns compare with ==.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, value) //nolint:wrapcheck
}

func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Clock is the source of "now" for rules that depend on today's date.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return Now()
}

func NewClock() Clock {
	return systemClock{}
}

// Today is the calendar date of clock's now, seen from the application timezone.
func Today(clock Clock) time.Time {
	return DateOf(ToAppTime(clock.Now()))
}
