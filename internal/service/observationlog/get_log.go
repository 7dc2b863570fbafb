package observationlog

import (
	"context"
	"fmt"
	"strings"

	"github.com/TGiulio/nightlog/internal/domain"
)

// GetLog returns a single log. When an owner is known, logs owned by other
// users are reported as domain.ErrNotFound.
func (s *Service) GetLog(ctx context.Context, input GetLogInput) (*domain.Log, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.logs.GetByID(ctx, strings.TrimSpace(input.LogID), resolveUserID(input.RequesterID, input.UserID))
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}

	return l, nil
}
