package czml

import (
	"strings"
	"time"
)

const iso8601Layout = "2006-01-02T15:04:05.999999999Z07:00"

// FormatISO8601 formats t in UTC with the shortest fractional seconds that
// represent it exactly.
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(iso8601Layout)
}

// FormatInterval formats the interval [start, stop] as "<start>/<stop>".
func FormatInterval(start, stop time.Time) string {
	return FormatISO8601(start) + "/" + FormatISO8601(stop)
}

// TimeInterval is a closed time range.
type TimeInterval struct {
	Start time.Time
	Stop  time.Time
}

// String returns the interval in ISO 8601 "<start>/<stop>" form.
func (iv TimeInterval) String() string {
	return FormatInterval(iv.Start, iv.Stop)
}

// Contains reports whether t lies within the interval, inclusive.
func (iv TimeInterval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && !t.After(iv.Stop)
}

// ParseInterval parses the "<start>/<stop>" form written by FormatInterval.
func ParseInterval(s string) (TimeInterval, error) {
	start, stop, ok := strings.Cut(s, "/")
	if !ok {
		return TimeInterval{}, &time.ParseError{Layout: "<start>/<stop>", Value: s, Message: ": missing '/'"}
	}
	t0, err := time.Parse(time.RFC3339Nano, start)
	if err != nil {
		return TimeInterval{}, err
	}
	t1, err := time.Parse(time.RFC3339Nano, stop)
	if err != nil {
		return TimeInterval{}, err
	}
	return TimeInterval{Start: t0, Stop: t1}, nil
}
