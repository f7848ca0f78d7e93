package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ratingColumns = []string{"ticket_id", "category", "weight", "rating", "created_on"}

func TestFetchRatings_Mocked(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("maps rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM ratings").
			WithArgs("2024-01-01", "2024-01-31").
			WillReturnRows(sqlmock.NewRows(ratingColumns).
				AddRow(int64(7), "Tone", 1.5, int64(4), "2024-01-05"))

		results, err := NewRatingRepository(db).FetchRatings(ctx, start, end)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, int64(7), results[0].TicketID)
		assert.Equal(t, "Tone", results[0].Category)
		assert.Equal(t, 1.5, results[0].Weight)
		assert.Equal(t, 4, results[0].Rating)
		assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), results[0].CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM ratings").WillReturnError(errors.New("disk I/O error"))

		results, err := NewRatingRepository(db).FetchRatings(ctx, start, end)

		assert.Nil(t, results)
		assert.ErrorContains(t, err, "query FetchRatings")
		assert.ErrorContains(t, err, "disk I/O error")
	})

	t.Run("malformed date", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM ratings").
			WillReturnRows(sqlmock.NewRows(ratingColumns).
				AddRow(int64(7), "Tone", 1.0, int64(4), "05/01/2024"))

		_, err = NewRatingRepository(db).FetchRatings(ctx, start, end)

		assert.ErrorContains(t, err, "parse created_at")
	})

	t.Run("row iteration error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM ratings").
			WillReturnRows(sqlmock.NewRows(ratingColumns).
				AddRow(int64(7), "Tone", 1.0, int64(4), "2024-01-05").
				RowError(0, errors.New("connection reset")))

		_, err = NewRatingRepository(db).FetchRatings(ctx, start, end)

		assert.ErrorContains(t, err, "iterate FetchRatings")
	})

	t.Run("query timeout applies", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM ratings").
			WillDelayFor(200 * time.Millisecond).
			WillReturnRows(sqlmock.NewRows(ratingColumns))

		_, err = NewRatingRepository(db, WithQueryTimeout(20*time.Millisecond)).FetchRatings(ctx, start, end)

		// sqlmock reports a canceled context with its own sentinel.
		assert.ErrorIs(t, err, sqlmock.ErrCancelled)
	})
}

func TestNewRatingRepository_Options(t *testing.T) {
	repo := NewRatingRepository(nil)
	assert.Equal(t, defaultQueryTimeout, repo.queryTimeout)

	repo = NewRatingRepository(nil, WithQueryTimeout(0))
	assert.Zero(t, repo.queryTimeout)
}
