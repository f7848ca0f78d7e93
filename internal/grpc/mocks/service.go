package mocks

import (
	"context"
	"errors"

	"github.com/godilite/ticket-scoring/internal/scoring"
	"github.com/godilite/ticket-scoring/internal/service"
)

// MockScoringService is a function-field mock of the handler's ScoringService.
type MockScoringService struct {
	GetCategoryScoresFunc     func(ctx context.Context, w scoring.Window) ([]service.CategoryScores, error)
	GetScoresByTicketFunc     func(ctx context.Context, w scoring.Window) ([]service.TicketScores, error)
	GetOverallScoreFunc       func(ctx context.Context, w scoring.Window) (int, error)
	GetOverallScoreChangeFunc func(ctx context.Context, first, second scoring.Window) (service.ScoreChange, error)
}

func (m *MockScoringService) GetCategoryScores(ctx context.Context, w scoring.Window) ([]service.CategoryScores, error) {
	if m.GetCategoryScoresFunc != nil {
		return m.GetCategoryScoresFunc(ctx, w)
	}
	return nil, errors.New("GetCategoryScoresFunc not implemented")
}

func (m *MockScoringService) GetScoresByTicket(ctx context.Context, w scoring.Window) ([]service.TicketScores, error) {
	if m.GetScoresByTicketFunc != nil {
		return m.GetScoresByTicketFunc(ctx, w)
	}
	return nil, errors.New("GetScoresByTicketFunc not implemented")
}

func (m *MockScoringService) GetOverallScore(ctx context.Context, w scoring.Window) (int, error) {
	if m.GetOverallScoreFunc != nil {
		return m.GetOverallScoreFunc(ctx, w)
	}
	return 0, errors.New("GetOverallScoreFunc not implemented")
}

func (m *MockScoringService) GetOverallScoreChange(ctx context.Context, first, second scoring.Window) (service.ScoreChange, error) {
	if m.GetOverallScoreChangeFunc != nil {
		return m.GetOverallScoreChangeFunc(ctx, first, second)
	}
	return service.ScoreChange{}, errors.New("GetOverallScoreChangeFunc not implemented")
}
