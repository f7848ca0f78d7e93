package service

import (
	"context"
	"time"

	"github.com/godilite/ticket-scoring/internal/repository/models"
)

// RatingRepository is the storage capability the scoring service reads from.
type RatingRepository interface {
	FetchRatings(ctx context.Context, start, end time.Time) ([]models.Rating, error)
}
