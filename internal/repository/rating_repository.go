package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/godilite/ticket-scoring/internal/repository/models"
)

const (
	dateLayout          = "2006-01-02"
	defaultQueryTimeout = 1 * time.Second
)

type RatingRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

type Option func(*RatingRepository)

// WithQueryTimeout bounds every query. Zero or negative disables the bound.
func WithQueryTimeout(d time.Duration) Option {
	return func(r *RatingRepository) { r.queryTimeout = d }
}

func NewRatingRepository(db *sql.DB, opts ...Option) *RatingRepository {
	r := &RatingRepository{db: db, queryTimeout: defaultQueryTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FetchRatings returns every weighted, non-null rating created between start
// and end (inclusive, compared by calendar date), oldest first. A ticket has at
// most one rating per category and day: when several were recorded the latest
// row wins.
func (s *RatingRepository) FetchRatings(ctx context.Context, start, end time.Time) ([]models.Rating, error) {
	const query = `
		SELECT
			r.ticket_id,
			rc.name AS category,
			rc.weight,
			r.rating,
			substr(r.created_at, 1, 10) AS created_on
		FROM ratings AS r
		JOIN rating_categories AS rc ON r.rating_category_id = rc.id
		WHERE r.id IN (
			SELECT MAX(d.id)
			FROM ratings AS d
			JOIN rating_categories AS dc ON d.rating_category_id = dc.id
			WHERE substr(d.created_at, 1, 10) BETWEEN ? AND ?
				AND dc.weight > 0
				AND d.rating IS NOT NULL
			GROUP BY d.ticket_id, dc.name, substr(d.created_at, 1, 10)
		)
		ORDER BY created_on, r.id
	`

	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	rows, err := s.db.QueryContext(ctx, query, start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("query FetchRatings: %w", err)
	}
	defer rows.Close()

	var results []models.Rating
	for rows.Next() {
		var (
			r         models.Rating
			createdOn string
		)
		if err := rows.Scan(&r.TicketID, &r.Category, &r.Weight, &r.Rating, &createdOn); err != nil {
			return nil, fmt.Errorf("scan FetchRatings row: %w", err)
		}
		r.CreatedAt, err = time.Parse(dateLayout, createdOn)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdOn, err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate FetchRatings: %w", err)
	}
	return results, nil
}
