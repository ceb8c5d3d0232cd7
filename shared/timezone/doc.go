// Package timezone anchors every calendar computation to the timezone set in APP_TIMEZONE
// (an IANA name such as "America/Santiago"; UTC when unset or unknown).
//
// Reservation dates are plain calendar days. They travel as YYYY-MM-DD strings and are
// held as midnight-UTC time.Time values, so two dates compare with ==:
//
//	date, err := timezone.ParseDate("2026-10-19")
//	today := timezone.Today(clock)        // the campus's today, not the server's
//	if date.Before(today) { ... }
//
// Services take a Clock instead of calling Now so tests can freeze or advance time.
package timezone
