package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	pb "github.com/godilite/ticket-scoring/api/v1"
	"github.com/godilite/ticket-scoring/internal/grpc/mocks"
	"github.com/godilite/ticket-scoring/internal/scoring"
	"github.com/godilite/ticket-scoring/internal/service"
	"github.com/godilite/ticket-scoring/pkg/cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

func january() *pb.PeriodRequest {
	return &pb.PeriodRequest{StartDate: "2025-01-01", EndDate: "2025-01-31"}
}

func mustWindow(t *testing.T, start, end string) scoring.Window {
	t.Helper()
	w, err := scoring.ParseWindow(start, end)
	require.NoError(t, err)
	return w
}

// TestNewGRPCHandlers tests the constructor
func TestNewGRPCHandlers(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		mockScoring := &mocks.MockScoringService{}
		mockCache := &mocks.MockCacher{}
		ttl := 5 * time.Minute

		handlers := NewGRPCHandlers(mockScoring, mockCache, zap.NewNop(), ttl)

		assert.NotNil(t, handlers)
		assert.Equal(t, mockScoring, handlers.scoring)
		assert.Equal(t, mockCache, handlers.cache.cache)
		assert.Equal(t, ttl, handlers.cache.ttl)
		assert.Equal(t, defaultGRPCTimeout, handlers.timeout)
		assert.NotNil(t, handlers.logger)
	})

	t.Run("nil scoring service panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewGRPCHandlers(nil, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		})
	})

	t.Run("nil logger is allowed", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockScoringService{}, nil, nil, time.Minute)
		assert.NotNil(t, handlers.logger)
	})

	t.Run("non-positive TTL uses default", func(t *testing.T) {
		for _, ttl := range []time.Duration{0, -time.Minute} {
			handlers := NewGRPCHandlers(&mocks.MockScoringService{}, &mocks.MockCacher{}, zap.NewNop(), ttl)
			assert.Equal(t, defaultCacheDuration, handlers.cache.ttl)
		}
	})

	t.Run("options", func(t *testing.T) {
		metrics := NewCacheMetrics(nil)
		handlers := NewGRPCHandlers(&mocks.MockScoringService{}, nil, zap.NewNop(), time.Minute,
			WithRequestTimeout(time.Second),
			WithCacheMetrics(metrics),
		)
		assert.Equal(t, time.Second, handlers.timeout)
		assert.Same(t, metrics, handlers.cache.metrics)

		handlers = NewGRPCHandlers(&mocks.MockScoringService{}, nil, zap.NewNop(), time.Minute, WithRequestTimeout(0))
		assert.Equal(t, defaultGRPCTimeout, handlers.timeout)
	})
}

// TestRequestValidation tests request validation through the actual handler methods
func TestRequestValidation(t *testing.T) {
	var calls int
	mockScoring := &mocks.MockScoringService{
		GetOverallScoreFunc: func(ctx context.Context, w scoring.Window) (int, error) {
			calls++
			return 85, nil
		},
	}
	handlers := NewGRPCHandlers(mockScoring, nil, zap.NewNop(), time.Minute)

	t.Run("valid request", func(t *testing.T) {
		resp, err := handlers.GetOverallScore(context.Background(), january())

		require.NoError(t, err)
		assert.Equal(t, int32(85), resp.GetScore())
	})

	t.Run("same start and end dates are allowed", func(t *testing.T) {
		resp, err := handlers.GetOverallScore(context.Background(), &pb.PeriodRequest{StartDate: "2025-01-01", EndDate: "2025-01-01"})

		require.NoError(t, err)
		assert.Equal(t, int32(85), resp.GetScore())
	})

	tests := []struct {
		name     string
		req      *pb.PeriodRequest
		contains string
	}{
		{"end before start", &pb.PeriodRequest{StartDate: "2025-01-31", EndDate: "2025-01-01"}, "invalid window"},
		{"missing dates", &pb.PeriodRequest{}, "invalid date format"},
		{"nil request", nil, "invalid date format"},
		{"bad month", &pb.PeriodRequest{StartDate: "2025-13-01", EndDate: "2025-12-31"}, `"2025-13-01"`},
		{"timestamp instead of date", &pb.PeriodRequest{StartDate: "2025-01-01T00:00:00Z", EndDate: "2025-01-31"}, "invalid date format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := calls

			resp, err := handlers.GetOverallScore(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Contains(t, err.Error(), tt.contains)
			assert.Equal(t, before, calls, "service must not be called")
		})
	}
}

// TestNormalizeKey tests cache key generation
func TestNormalizeKey(t *testing.T) {
	jan := mustWindow(t, "2025-01-01", "2025-01-31")
	dec := mustWindow(t, "2024-12-01", "2024-12-31")

	tests := []struct {
		prefix   CacheKeyType
		windows  []scoring.Window
		expected string
	}{
		{cacheKeyOverallScore, []scoring.Window{jan}, "grpc:overall_score:2025-01-01:2025-01-31"},
		{cacheKeyTicketScores, []scoring.Window{jan}, "grpc:scores_by_ticket:2025-01-01:2025-01-31"},
		{cacheKeyCategoryScores, []scoring.Window{jan}, "grpc:category_scores:2025-01-01:2025-01-31"},
		{cacheKeyScoreChange, []scoring.Window{jan, dec}, "grpc:overall_score_change:2025-01-01:2025-01-31:2024-12-01:2024-12-31"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeKey(tt.prefix, tt.windows...))
	}

	assert.NotEqual(t,
		normalizeKey(cacheKeyScoreChange, jan, dec),
		normalizeKey(cacheKeyScoreChange, dec, jan),
		"period order is part of the key")
}

// TestHandleError tests error handling and status code mapping
func TestHandleError(t *testing.T) {
	handlers := &GRPCHandlers{logger: zap.NewNop()}

	t.Run("context canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := handlers.handleError(ctx, "test_operation", errors.New("some error"))

		assert.Equal(t, codes.Canceled, status.Code(err))
		assert.Contains(t, err.Error(), "request canceled")
	})

	t.Run("context deadline exceeded", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		time.Sleep(time.Millisecond)

		err := handlers.handleError(ctx, "test_operation", errors.New("some error"))

		assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
		assert.Contains(t, err.Error(), "request timed out")
	})

	tests := []struct {
		name     string
		err      error
		code     codes.Code
		contains string
	}{
		{"invalid date", fmt.Errorf("%w: %q", scoring.ErrInvalidDateFormat, "x"), codes.InvalidArgument, "invalid date format"},
		{"invalid window", fmt.Errorf("first period: %w", scoring.ErrInvalidWindow), codes.InvalidArgument, "first period"},
		{"division by zero", fmt.Errorf("score change: %w", scoring.ErrDivisionByZero), codes.FailedPrecondition, "change is undefined"},
		{"upstream failure", fmt.Errorf("fetch ratings: %w: %w", scoring.ErrUpstreamFetch, errors.New("disk I/O error")), codes.Unavailable, "ratings storage unavailable"},
		{"unknown error", errors.New("database connection lost"), codes.Internal, "test_operation failed: database connection lost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := handlers.handleError(context.Background(), "test_operation", tt.err)

			assert.Equal(t, tt.code, status.Code(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	t.Run("upstream cause is not leaked", func(t *testing.T) {
		cause := fmt.Errorf("%w: %w", scoring.ErrUpstreamFetch, errors.New("password=secret"))

		err := handlers.handleError(context.Background(), "test_operation", cause)

		assert.NotContains(t, err.Error(), "secret")
	})
}

func TestToProtoCategoryScores(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		result := toProtoCategoryScores([]service.CategoryScores{})

		assert.NotNil(t, result)
		assert.Len(t, result, 0)
	})

	t.Run("daily series", func(t *testing.T) {
		result := toProtoCategoryScores([]service.CategoryScores{{
			Category:   "Tone",
			Score:      90,
			RatingsSum: 9,
			Dates: []service.DailyScore{
				{Date: "2024-01-01", Score: 80},
				{Date: "2024-01-02", Score: 100},
			},
		}})

		require.Len(t, result, 1)
		cat := result[0]
		assert.Equal(t, "Tone", cat.Category)
		assert.Equal(t, int32(90), cat.Score)
		assert.Equal(t, int32(9), cat.Ratings)
		assert.Empty(t, cat.Weeks)
		assert.Equal(t, []*pb.DateScore{
			{Date: "2024-01-01", Score: 80},
			{Date: "2024-01-02", Score: 100},
		}, cat.Dates)
	})

	t.Run("weekly series", func(t *testing.T) {
		result := toProtoCategoryScores([]service.CategoryScores{{
			Category: "Tone",
			Score:    70,
			Weeks: []service.WeeklyScore{
				{Year: 2023, Week: 52, Score: 50},
				{Year: 2024, Week: 1, Score: 90},
			},
		}})

		require.Len(t, result, 1)
		assert.Empty(t, result[0].Dates)
		assert.Equal(t, []*pb.WeekScore{
			{Year: 2023, Week: 52, Score: 50},
			{Year: 2024, Week: 1, Score: 90},
		}, result[0].Weeks)
	})
}

func TestGetCategoryScores(t *testing.T) {
	var got scoring.Window
	mockScoring := &mocks.MockScoringService{
		GetCategoryScoresFunc: func(ctx context.Context, w scoring.Window) ([]service.CategoryScores, error) {
			got = w
			return []service.CategoryScores{{Category: "GDPR", Score: 100, RatingsSum: 5}}, nil
		},
	}
	handlers := NewGRPCHandlers(mockScoring, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

	resp, err := handlers.GetCategoryScores(context.Background(), january())

	require.NoError(t, err)
	require.Len(t, resp.GetCategoryScores(), 1)
	assert.Equal(t, "GDPR", resp.CategoryScores[0].Category)
	assert.Equal(t, int32(5), resp.CategoryScores[0].Ratings)
	assert.Equal(t, mustWindow(t, "2025-01-01", "2025-01-31"), got)
}

func TestGetScoresByTicket(t *testing.T) {
	mockScoring := &mocks.MockScoringService{
		GetScoresByTicketFunc: func(ctx context.Context, w scoring.Window) ([]service.TicketScores, error) {
			return []service.TicketScores{
				{TicketID: 456, Categories: []service.CategoryScore{{Category: "Tone", Score: 75}}},
				{TicketID: 123, Categories: []service.CategoryScore{
					{Category: "Tone", Score: 85},
					{Category: "Tone", Score: 40},
				}},
			}, nil
		},
	}
	handlers := NewGRPCHandlers(mockScoring, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

	resp, err := handlers.GetScoresByTicket(context.Background(), january())

	require.NoError(t, err)
	require.Len(t, resp.GetTicketScores(), 2)
	assert.Equal(t, int64(456), resp.TicketScores[0].TicketId)
	assert.Equal(t, int64(123), resp.TicketScores[1].TicketId)
	assert.Equal(t, []*pb.TicketCategoryScore{
		{Category: "Tone", Score: 85},
		{Category: "Tone", Score: 40},
	}, resp.TicketScores[1].GetCategories(), "one entry per rating, duplicates kept")
}

func TestGetOverallScoreChange(t *testing.T) {
	req := &pb.PeriodRangeRequest{
		StartDate:       "2025-02-01",
		EndDate:         "2025-02-28",
		SecondStartDate: "2025-01-01",
		SecondEndDate:   "2025-01-31",
	}

	t.Run("success", func(t *testing.T) {
		var first, second scoring.Window
		mockScoring := &mocks.MockScoringService{
			GetOverallScoreChangeFunc: func(ctx context.Context, f, s scoring.Window) (service.ScoreChange, error) {
				first, second = f, s
				return service.ScoreChange{FirstPeriodScore: 50, SecondPeriodScore: 25, ChangePercentage: 100}, nil
			},
		}
		handlers := NewGRPCHandlers(mockScoring, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		resp, err := handlers.GetOverallScoreChange(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, int32(100), resp.GetScoreChange())
		assert.Equal(t, int32(50), resp.FirstPeriodScore)
		assert.Equal(t, int32(25), resp.SecondPeriodScore)
		assert.Equal(t, mustWindow(t, "2025-02-01", "2025-02-28"), first)
		assert.Equal(t, mustWindow(t, "2025-01-01", "2025-01-31"), second)
	})

	t.Run("zero baseline", func(t *testing.T) {
		mockScoring := &mocks.MockScoringService{
			GetOverallScoreChangeFunc: func(ctx context.Context, f, s scoring.Window) (service.ScoreChange, error) {
				return service.ScoreChange{}, fmt.Errorf("score change against %s: %w", s, scoring.ErrDivisionByZero)
			},
		}
		handlers := NewGRPCHandlers(mockScoring, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		resp, err := handlers.GetOverallScoreChange(context.Background(), req)

		assert.Nil(t, resp)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})

	t.Run("invalid second period", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockScoringService{}, nil, zap.NewNop(), time.Minute)
		bad := proto.CloneOf(req)
		bad.SecondEndDate = "2024-12-31"

		resp, err := handlers.GetOverallScoreChange(context.Background(), bad)

		assert.Nil(t, resp)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, err.Error(), "second period")
	})

	t.Run("invalid first period", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockScoringService{}, nil, zap.NewNop(), time.Minute)
		bad := proto.CloneOf(req)
		bad.StartDate = "02/01/2025"

		_, err := handlers.GetOverallScoreChange(context.Background(), bad)

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, err.Error(), "first period")
	})
}

// TestErrorHandling_ServiceErrors tests error propagation from service layer
func TestErrorHandling_ServiceErrors(t *testing.T) {
	upstream := fmt.Errorf("fetch ratings: %w: %w", scoring.ErrUpstreamFetch, errors.New("no such table: ratings"))

	mockScoring := &mocks.MockScoringService{
		GetOverallScoreFunc: func(ctx context.Context, w scoring.Window) (int, error) {
			return 0, upstream
		},
		GetCategoryScoresFunc: func(ctx context.Context, w scoring.Window) ([]service.CategoryScores, error) {
			return nil, upstream
		},
		GetScoresByTicketFunc: func(ctx context.Context, w scoring.Window) ([]service.TicketScores, error) {
			return nil, upstream
		},
	}
	handlers := NewGRPCHandlers(mockScoring, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

	_, err := handlers.GetOverallScore(context.Background(), january())
	assert.Equal(t, codes.Unavailable, status.Code(err))

	_, err = handlers.GetCategoryScores(context.Background(), january())
	assert.Equal(t, codes.Unavailable, status.Code(err))

	_, err = handlers.GetScoresByTicket(context.Background(), january())
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestRequestTimeout(t *testing.T) {
	mockScoring := &mocks.MockScoringService{
		GetOverallScoreFunc: func(ctx context.Context, w scoring.Window) (int, error) {
			<-ctx.Done()
			return 0, fmt.Errorf("fetch ratings: %w: %w", scoring.ErrUpstreamFetch, ctx.Err())
		},
	}
	handlers := NewGRPCHandlers(mockScoring, nil, zap.NewNop(), time.Minute, WithRequestTimeout(10*time.Millisecond))

	_, err := handlers.GetOverallScore(context.Background(), january())

	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
}

func TestFindAndCache(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the fetch on the request path", func(t *testing.T) {
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				*(dest.(*int)) = 77
				return nil
			},
		}
		rt := &readThrough{cache: mockCache, ttl: time.Minute, logger: zap.NewNop()}

		v, err := FindAndCache(ctx, rt, "k", func(context.Context) (int, error) { return 1, nil })

		require.NoError(t, err)
		assert.Equal(t, 77, v)
	})

	t.Run("miss populates the cache", func(t *testing.T) {
		stored := make(chan any, 1)
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				return cache.ErrCacheMiss
			},
			SetFunc: func(ctx context.Context, key string, value any, expiration time.Duration) error {
				assert.Equal(t, "k", key)
				assert.Greater(t, expiration, time.Duration(0))
				stored <- value
				return nil
			},
		}
		reg := prometheus.NewRegistry()
		rt := &readThrough{cache: mockCache, ttl: time.Minute, logger: zap.NewNop(), metrics: NewCacheMetrics(reg)}

		v, err := FindAndCache(ctx, rt, "k", func(context.Context) (int, error) { return 5, nil })

		require.NoError(t, err)
		assert.Equal(t, 5, v)
		select {
		case got := <-stored:
			assert.Equal(t, 5, got)
		case <-time.After(time.Second):
			t.Fatal("value was not cached")
		}
		assert.Equal(t, 1.0, testutil.ToFloat64(rt.metrics.lookups.WithLabelValues(cacheMiss)))
	})

	t.Run("errors are not cached", func(t *testing.T) {
		mockCache := &mocks.MockCacher{
			SetFunc: func(ctx context.Context, key string, value any, expiration time.Duration) error {
				t.Error("Set must not be called")
				return nil
			},
		}
		rt := &readThrough{cache: mockCache, ttl: time.Minute, logger: zap.NewNop()}
		boom := errors.New("boom")

		_, err := FindAndCache(ctx, rt, "k", func(context.Context) (int, error) { return 0, boom })

		assert.ErrorIs(t, err, boom)
	})

	t.Run("a canceled caller does not fail a shared fetch", func(t *testing.T) {
		gets := make(chan string, 2)
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				gets <- key
				return cache.ErrCacheMiss
			},
		}
		rt := &readThrough{cache: mockCache, ttl: time.Minute, logger: zap.NewNop(), fetchTimeout: time.Second}

		started := make(chan struct{})
		release := make(chan struct{})
		fetch := func(fetchCtx context.Context) (int, error) {
			close(started)
			select {
			case <-release:
				return 42, nil
			case <-fetchCtx.Done():
				return 0, fmt.Errorf("fetch ratings: %w: %w", scoring.ErrUpstreamFetch, fetchCtx.Err())
			}
		}

		firstCtx, cancelFirst := context.WithCancel(ctx)
		firstErr := make(chan error, 1)
		go func() {
			_, err := FindAndCache(firstCtx, rt, "shared", fetch)
			firstErr <- err
		}()
		<-gets
		<-started

		type result struct {
			value int
			err   error
		}
		second := make(chan result, 1)
		go func() {
			v, err := FindAndCache(ctx, rt, "shared", func(context.Context) (int, error) { return 42, nil })
			second <- result{v, err}
		}()
		<-gets
		time.Sleep(20 * time.Millisecond)

		cancelFirst()
		assert.ErrorIs(t, <-firstErr, context.Canceled)

		close(release)
		select {
		case got := <-second:
			require.NoError(t, got.err)
			assert.Equal(t, 42, got.value)
		case <-time.After(2 * time.Second):
			t.Fatal("second caller did not return")
		}
	})

	t.Run("fetch is bounded by the fetch timeout", func(t *testing.T) {
		rt := &readThrough{cache: &mocks.MockCacher{}, ttl: time.Minute, logger: zap.NewNop(), fetchTimeout: 10 * time.Millisecond}

		_, err := FindAndCache(ctx, rt, "slow", func(fetchCtx context.Context) (int, error) {
			<-fetchCtx.Done()
			return 0, fetchCtx.Err()
		})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("no cache", func(t *testing.T) {
		v, err := FindAndCache(ctx, &readThrough{}, "k", func(context.Context) (string, error) { return "direct", nil })

		require.NoError(t, err)
		assert.Equal(t, "direct", v)
	})
}

func TestAddTTLJitter(t *testing.T) {
	assert.Equal(t, time.Duration(0), addTTLJitter(0))
	for i := 0; i < 50; i++ {
		got := addTTLJitter(time.Minute)
		assert.GreaterOrEqual(t, got, 45*time.Second)
		assert.LessOrEqual(t, got, 75*time.Second)
	}
	assert.Greater(t, addTTLJitter(time.Second), time.Duration(0))
}
