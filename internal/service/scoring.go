package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/godilite/ticket-scoring/internal/repository/models"
	"github.com/godilite/ticket-scoring/internal/scoring"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("github.com/godilite/ticket-scoring/internal/service")

// ScoringService turns the ratings of a window into category, ticket and
// overall scores.
type ScoringService struct {
	storage     RatingRepository
	logger      *zap.Logger
	scaleFactor float64
}

type Option func(*ScoringService)

// WithScaleFactor overrides scoring.ScaleFactor. Non-positive values are ignored.
func WithScaleFactor(factor float64) Option {
	return func(s *ScoringService) {
		if factor > 0 {
			s.scaleFactor = factor
		}
	}
}

// NewScoringService creates a new ScoringService instance.
func NewScoringService(storage RatingRepository, logger *zap.Logger, opts ...Option) *ScoringService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	s := &ScoringService{
		storage:     storage,
		logger:      logger,
		scaleFactor: scoring.ScaleFactor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ScoringService) fetch(ctx context.Context, w scoring.Window) ([]models.Rating, error) {
	ratings, err := s.storage.FetchRatings(ctx, w.Start, w.End)
	if err != nil {
		s.logger.Error("failed to fetch ratings",
			zap.Stringer("window", w),
			zap.Error(err))
		return nil, fmt.Errorf("fetch ratings %s: %w: %w", w, scoring.ErrUpstreamFetch, err)
	}
	return ratings, nil
}

func startSpan(ctx context.Context, name string, windows ...scoring.Window) (context.Context, trace.Span) {
	attrs := make([]attribute.KeyValue, 0, len(windows))
	for i, w := range windows {
		attrs = append(attrs, attribute.String(fmt.Sprintf("scoring.window.%d", i), w.String()))
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// GetCategoryScores returns one aggregate per category, sorted by category
// name. The series granularity is decided once for the whole window.
func (s *ScoringService) GetCategoryScores(ctx context.Context, w scoring.Window) (_ []CategoryScores, err error) {
	ctx, span := startSpan(ctx, "ScoringService.GetCategoryScores", w)
	defer func() { endSpan(span, err) }()

	if err := w.Validate(); err != nil {
		return nil, err
	}

	ratings, err := s.fetch(ctx, w)
	if err != nil {
		return nil, err
	}

	granularity := scoring.GranularityFor(w.Start, w.End)
	categories, groups := scoring.GroupBy(ratings, func(r models.Rating) string { return r.Category })
	sort.Strings(categories)

	results := make([]CategoryScores, 0, len(categories))
	for _, category := range categories {
		results = append(results, s.categoryScores(category, groups[category], granularity))
	}

	s.logger.Info("computed category scores",
		zap.Stringer("window", w),
		zap.Stringer("granularity", granularity),
		zap.Int("ratings", len(ratings)),
		zap.Int("categories", len(results)))

	return results, nil
}

func (s *ScoringService) categoryScores(category string, ratings []models.Rating, granularity scoring.Granularity) CategoryScores {
	points := scoring.Points(ratings, s.scaleFactor)
	series := scoring.ScoreSeries(points, granularity)

	result := CategoryScores{
		Category:   category,
		Score:      scoring.OverallScore(points),
		RatingsSum: scoring.RatingsSum(ratings),
	}

	switch granularity {
	case scoring.Weekly:
		result.Weeks = make([]WeeklyScore, len(series))
		for i, b := range series {
			result.Weeks[i] = WeeklyScore{Year: b.Key.Year, Week: b.Key.Week, Score: b.Score}
		}
	default:
		result.Dates = make([]DailyScore, len(series))
		for i, b := range series {
			result.Dates[i] = DailyScore{Date: b.Key.String(), Score: b.Score}
		}
	}
	return result
}

// GetScoresByTicket returns the per-rating category scores of every ticket.
// Tickets appear in the order they were first fetched.
func (s *ScoringService) GetScoresByTicket(ctx context.Context, w scoring.Window) (_ []TicketScores, err error) {
	ctx, span := startSpan(ctx, "ScoringService.GetScoresByTicket", w)
	defer func() { endSpan(span, err) }()

	if err := w.Validate(); err != nil {
		return nil, err
	}

	ratings, err := s.fetch(ctx, w)
	if err != nil {
		return nil, err
	}

	tickets, groups := scoring.GroupBy(ratings, func(r models.Rating) int64 { return r.TicketID })

	out := make([]TicketScores, 0, len(tickets))
	for _, id := range tickets {
		group := groups[id]
		categories := make([]CategoryScore, len(group))
		for i, r := range group {
			categories[i] = CategoryScore{
				Category: r.Category,
				Score:    scoring.ScoreWithFactor(r.Weight, r.Rating, s.scaleFactor),
			}
		}
		out = append(out, TicketScores{TicketID: id, Categories: categories})
	}

	s.logger.Info("computed scores by ticket",
		zap.Stringer("window", w),
		zap.Int("ratings", len(ratings)),
		zap.Int("tickets", len(out)))

	return out, nil
}

// GetOverallScore returns the mean score of every rating in the window, 0
// when there are none.
func (s *ScoringService) GetOverallScore(ctx context.Context, w scoring.Window) (_ int, err error) {
	ctx, span := startSpan(ctx, "ScoringService.GetOverallScore", w)
	defer func() { endSpan(span, err) }()

	if err := w.Validate(); err != nil {
		return 0, err
	}

	score, count, err := s.overallScore(ctx, w)
	if err != nil {
		return 0, err
	}

	s.logger.Info("computed overall score",
		zap.Stringer("window", w),
		zap.Int("score", score),
		zap.Int("ratings", count))

	return score, nil
}

func (s *ScoringService) overallScore(ctx context.Context, w scoring.Window) (score, count int, err error) {
	ratings, err := s.fetch(ctx, w)
	if err != nil {
		return 0, 0, err
	}
	return scoring.OverallScore(scoring.Points(ratings, s.scaleFactor)), len(ratings), nil
}

// GetOverallScoreChange compares the overall score of first against second
// (the baseline): 100 * (first - second) / second, truncated. A baseline of 0
// fails with scoring.ErrDivisionByZero.
func (s *ScoringService) GetOverallScoreChange(ctx context.Context, first, second scoring.Window) (_ ScoreChange, err error) {
	ctx, span := startSpan(ctx, "ScoringService.GetOverallScoreChange", first, second)
	defer func() { endSpan(span, err) }()

	if err := first.Validate(); err != nil {
		return ScoreChange{}, fmt.Errorf("first period: %w", err)
	}
	if err := second.Validate(); err != nil {
		return ScoreChange{}, fmt.Errorf("second period: %w", err)
	}

	var firstScore, secondScore int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		score, _, err := s.overallScore(gctx, first)
		if err != nil {
			return fmt.Errorf("first period: %w", err)
		}
		firstScore = score
		return nil
	})
	g.Go(func() error {
		score, _, err := s.overallScore(gctx, second)
		if err != nil {
			return fmt.Errorf("second period: %w", err)
		}
		secondScore = score
		return nil
	})
	if err := g.Wait(); err != nil {
		return ScoreChange{}, err
	}

	if secondScore == 0 {
		s.logger.Warn("baseline period has a zero score",
			zap.Stringer("first", first),
			zap.Stringer("second", second),
			zap.Int("first_score", firstScore))
		return ScoreChange{}, fmt.Errorf("score change against %s: %w", second, scoring.ErrDivisionByZero)
	}

	change := ScoreChange{
		FirstPeriodScore:  firstScore,
		SecondPeriodScore: secondScore,
		ChangePercentage:  100 * (firstScore - secondScore) / secondScore,
	}

	s.logger.Info("computed overall score change",
		zap.Stringer("first", first),
		zap.Stringer("second", second),
		zap.Int("first_score", firstScore),
		zap.Int("second_score", secondScore),
		zap.Int("change", change.ChangePercentage))

	return change, nil
}
