package grpc

import (
	"context"
	"time"

	"github.com/godilite/ticket-scoring/internal/scoring"
	"github.com/godilite/ticket-scoring/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

type ScoringService interface {
	GetCategoryScores(ctx context.Context, w scoring.Window) ([]service.CategoryScores, error)
	GetScoresByTicket(ctx context.Context, w scoring.Window) ([]service.TicketScores, error)
	GetOverallScore(ctx context.Context, w scoring.Window) (int, error)
	GetOverallScoreChange(ctx context.Context, first, second scoring.Window) (service.ScoreChange, error)
}
