package observationlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TGiulio/nightlog/internal/domain"
)

// CreateLog stores a new observation log and returns it with its assigned ID.
func (s *Service) CreateLog(ctx context.Context, input CreateLogInput) (*domain.Log, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.logs.Create(ctx, input.toLog())
	if err != nil {
		return nil, fmt.Errorf("create log: %w", err)
	}

	s.log.InfoContext(ctx, "log created",
		slog.String("user_id", created.UserID),
		slog.String("log_id", created.ID),
		slog.String("object", created.Observation.ObjectName),
	)

	return created, nil
}
