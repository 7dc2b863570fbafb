package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Field length limits for observation logs.
const (
	MaxUserIDLength = 128
	MaxTextLength   = 200
	MaxNotesLength  = 5000
)

// Observation describes what was observed and with which equipment.
// It has no identity outside the Log that embeds it.
type Observation struct {
	ObjectName     string `json:"object_name"`
	ObjectLocation string `json:"object_location"`
	Equipment      string `json:"equipment"`
	Eyepiece       string `json:"eyepiece"`
	Notes          string `json:"notes"`
}

// Log is one observation session owned by a user.
// ID is empty until the log has been persisted.
type Log struct {
	ID          string      `json:"id,omitempty"`
	UserID      string      `json:"user_id"`
	Date        time.Time   `json:"date"`
	Observation Observation `json:"observation"`
}

// IsPersisted reports whether the store has assigned an ID.
func (l *Log) IsPersisted() bool {
	return l.ID != ""
}

// Validate checks the invariants required before a log is written.
func (l *Log) Validate() error {
	var errs []FieldError

	userID := strings.TrimSpace(l.UserID)
	if userID == "" {
		errs = append(errs, FieldError{Field: "user_id", Message: "required"})
	}
	if utf8.RuneCountInString(userID) > MaxUserIDLength {
		errs = append(errs, FieldError{Field: "user_id", Message: "max 128 characters"})
	}

	errs = append(errs, l.validateMutable()...)

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// ValidateMutable checks only the fields an update is allowed to replace.
func (l *Log) ValidateMutable() error {
	if errs := l.validateMutable(); len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func (l *Log) validateMutable() []FieldError {
	var errs []FieldError

	if l.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "required"})
	}

	return append(errs, l.Observation.validate()...)
}

func (o Observation) validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(o.ObjectName) == "" {
		errs = append(errs, FieldError{Field: "observation.object_name", Message: "required"})
	}

	limits := []struct {
		field string
		value string
		max   int
		msg   string
	}{
		{"observation.object_name", o.ObjectName, MaxTextLength, "max 200 characters"},
		{"observation.object_location", o.ObjectLocation, MaxTextLength, "max 200 characters"},
		{"observation.equipment", o.Equipment, MaxTextLength, "max 200 characters"},
		{"observation.eyepiece", o.Eyepiece, MaxTextLength, "max 200 characters"},
		{"observation.notes", o.Notes, MaxNotesLength, "max 5000 characters"},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			errs = append(errs, FieldError{Field: l.field, Message: l.msg})
		}
	}

	return errs
}
