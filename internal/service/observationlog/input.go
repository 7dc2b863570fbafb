package observationlog

import (
	"errors"
	"strings"
	"time"

	"github.com/TGiulio/nightlog/internal/domain"
)

// CreateLogInput holds the parameters for creating a log.
// UserID defaults to RequesterID when empty.
type CreateLogInput struct {
	RequesterID string
	UserID      string
	Date        time.Time
	Observation domain.Observation
}

// Validate checks all fields and collects all errors.
func (i CreateLogInput) Validate() error {
	var errs []domain.FieldError

	if fe, ok := checkRequester(i.RequesterID, i.UserID); !ok {
		errs = append(errs, fe)
	}

	l := i.toLog()
	if err := l.Validate(); err != nil {
		errs = append(errs, fieldErrors(err)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateLogInput) toLog() *domain.Log {
	return &domain.Log{
		UserID:      resolveUserID(i.RequesterID, i.UserID),
		Date:        domain.NormalizeDate(i.Date),
		Observation: domain.NormalizeObservation(i.Observation),
	}
}

// GetLogInput holds the parameters for reading a single log.
// The owner is UserID, falling back to RequesterID; when both are empty the
// lookup is not scoped to a user.
type GetLogInput struct {
	RequesterID string
	UserID      string
	LogID       string
}

// Validate checks all fields and collects all errors.
func (i GetLogInput) Validate() error {
	return validateLogRef(i.RequesterID, i.UserID, i.LogID)
}

// UpdateLogInput holds the parameters for replacing the date and observation
// of a log.
type UpdateLogInput struct {
	RequesterID string
	UserID      string
	LogID       string
	Date        time.Time
	Observation domain.Observation
}

// Validate checks all fields and collects all errors.
func (i UpdateLogInput) Validate() error {
	var errs []domain.FieldError

	if fe, ok := checkRequester(i.RequesterID, i.UserID); !ok {
		errs = append(errs, fe)
	}
	if strings.TrimSpace(i.LogID) == "" {
		errs = append(errs, domain.FieldError{Field: "log_id", Message: "required"})
	}

	if err := i.toLog().ValidateMutable(); err != nil {
		errs = append(errs, fieldErrors(err)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateLogInput) toLog() *domain.Log {
	return &domain.Log{
		Date:        domain.NormalizeDate(i.Date),
		Observation: domain.NormalizeObservation(i.Observation),
	}
}

// DeleteLogInput holds the parameters for deleting a log.
type DeleteLogInput struct {
	RequesterID string
	UserID      string
	LogID       string
}

// Validate checks all fields and collects all errors.
func (i DeleteLogInput) Validate() error {
	return validateLogRef(i.RequesterID, i.UserID, i.LogID)
}

// ListLogsInput holds the parameters for listing the logs of a user.
// UserID defaults to RequesterID when empty.
type ListLogsInput struct {
	RequesterID string
	UserID      string
}

// Validate checks all fields and collects all errors.
func (i ListLogsInput) Validate() error {
	if fe, ok := checkRequester(i.RequesterID, i.UserID); !ok {
		return domain.NewValidationError(fe.Field, fe.Message)
	}
	if resolveUserID(i.RequesterID, i.UserID) == "" {
		return domain.NewValidationError("user_id", "required")
	}
	return nil
}

func validateLogRef(requesterID, userID, logID string) error {
	var errs []domain.FieldError

	if fe, ok := checkRequester(requesterID, userID); !ok {
		errs = append(errs, fe)
	}
	if strings.TrimSpace(logID) == "" {
		errs = append(errs, domain.FieldError{Field: "log_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// resolveUserID returns the explicit user ID, falling back to the requester.
func resolveUserID(requesterID, userID string) string {
	if u := strings.TrimSpace(userID); u != "" {
		return u
	}
	return strings.TrimSpace(requesterID)
}

// checkRequester rejects a user ID that names someone other than the requester.
func checkRequester(requesterID, userID string) (domain.FieldError, bool) {
	r, u := strings.TrimSpace(requesterID), strings.TrimSpace(userID)
	if r != "" && u != "" && r != u {
		return domain.FieldError{Field: "user_id", Message: "does not match requester"}, false
	}
	return domain.FieldError{}, true
}

func fieldErrors(err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return []domain.FieldError{{Field: "log", Message: err.Error()}}
}
