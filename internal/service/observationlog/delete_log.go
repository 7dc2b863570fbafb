package observationlog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// DeleteLog permanently removes a log.
func (s *Service) DeleteLog(ctx context.Context, input DeleteLogInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	logID := strings.TrimSpace(input.LogID)

	if err := s.logs.Delete(ctx, logID, resolveUserID(input.RequesterID, input.UserID)); err != nil {
		return fmt.Errorf("delete log: %w", err)
	}

	s.log.InfoContext(ctx, "log deleted",
		slog.String("user_id", resolveUserID(input.RequesterID, input.UserID)),
		slog.String("log_id", logID),
	)

	return nil
}
