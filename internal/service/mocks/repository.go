package mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/godilite/ticket-scoring/internal/repository/models"
)

// MockRatingRepository is a mock implementation of the RatingRepository interface
// for testing the service layer.
type MockRatingRepository struct {
	FetchRatingsFunc func(ctx context.Context, start, end time.Time) ([]models.Rating, error)

	mu    sync.Mutex
	calls int
}

// FetchRatings implements the RatingRepository interface
func (m *MockRatingRepository) FetchRatings(ctx context.Context, start, end time.Time) ([]models.Rating, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.FetchRatingsFunc != nil {
		return m.FetchRatingsFunc(ctx, start, end)
	}
	return nil, errors.New("FetchRatingsFunc not implemented")
}

// Calls reports how many times FetchRatings was invoked.
func (m *MockRatingRepository) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
