package domain

import (
	"strings"
	"time"
)

// NormalizeDate returns t as a UTC instant truncated to millisecond precision,
// which is the resolution of a BSON datetime. Normalizing on the way in keeps
// a stored log equal to the one that was written.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return t.UTC().Truncate(time.Millisecond)
}

// ParseDate parses an RFC 3339 timestamp (fractional seconds optional) and
// normalizes it. An empty string is reported as a missing date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, NewValidationError("date", "required")
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, NewValidationError("date", "must be an RFC 3339 timestamp")
	}

	return NormalizeDate(t), nil
}

// NormalizeObservation trims surrounding whitespace from every text field.
func NormalizeObservation(o Observation) Observation {
	return Observation{
		ObjectName:     strings.TrimSpace(o.ObjectName),
		ObjectLocation: strings.TrimSpace(o.ObjectLocation),
		Equipment:      strings.TrimSpace(o.Equipment),
		Eyepiece:       strings.TrimSpace(o.Eyepiece),
		Notes:          strings.TrimSpace(o.Notes),
	}
}

