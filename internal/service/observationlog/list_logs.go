package observationlog

import (
	"context"
	"fmt"

	"github.com/TGiulio/nightlog/internal/domain"
)

// ListLogs returns every log of a user ordered by date ascending.
func (s *Service) ListLogs(ctx context.Context, input ListLogsInput) ([]*domain.Log, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logs, err := s.logs.ListByUser(ctx, resolveUserID(input.RequesterID, input.UserID))
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	return logs, nil
}
