package observationlog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/TGiulio/nightlog/internal/domain"
)

// UpdateLog replaces the date and observation of an existing log. The owner
// and ID are never changed.
func (s *Service) UpdateLog(ctx context.Context, input UpdateLogInput) (*domain.Log, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logID := strings.TrimSpace(input.LogID)

	updated, err := s.logs.Update(ctx, logID, resolveUserID(input.RequesterID, input.UserID), input.toLog())
	if err != nil {
		return nil, fmt.Errorf("update log: %w", err)
	}

	s.log.InfoContext(ctx, "log updated",
		slog.String("user_id", updated.UserID),
		slog.String("log_id", logID),
	)

	return updated, nil
}
