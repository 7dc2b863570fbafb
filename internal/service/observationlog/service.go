package observationlog

import (
	"context"
	"log/slog"

	"github.com/TGiulio/nightlog/internal/domain"
)

type logRepo interface {
	Create(ctx context.Context, l *domain.Log) (*domain.Log, error)
	GetByID(ctx context.Context, id, ownerID string) (*domain.Log, error)
	Update(ctx context.Context, id, ownerID string, l *domain.Log) (*domain.Log, error)
	Delete(ctx context.Context, id, ownerID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Log, error)
}

// Service provides observation log operations.
type Service struct {
	logs logRepo
	log  *slog.Logger
}

// NewService creates a new observation log service.
func NewService(
	log *slog.Logger,
	logs logRepo,
) *Service {
	return &Service{
		logs: logs,
		log:  log.With("service", "observationlog"),
	}
}
