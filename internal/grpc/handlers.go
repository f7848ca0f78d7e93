package grpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pb "github.com/godilite/ticket-scoring/api/v1"
	"github.com/godilite/ticket-scoring/internal/scoring"
	"github.com/godilite/ticket-scoring/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
)

type CacheKeyType string

const (
	cacheKeyCategoryScores CacheKeyType = "grpc:category_scores"
	cacheKeyTicketScores   CacheKeyType = "grpc:scores_by_ticket"
	cacheKeyOverallScore   CacheKeyType = "grpc:overall_score"
	cacheKeyScoreChange    CacheKeyType = "grpc:overall_score_change"
)

type GRPCHandlers struct {
	pb.UnimplementedTicketScoringServer
	scoring ScoringService
	cache   *readThrough
	logger  *zap.Logger
	timeout time.Duration
}

type HandlerOption func(*GRPCHandlers)

// WithCacheMetrics counts cache hits, misses and errors.
func WithCacheMetrics(m *CacheMetrics) HandlerOption {
	return func(h *GRPCHandlers) { h.cache.metrics = m }
}

// WithRequestTimeout bounds every RPC. Non-positive values are ignored.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *GRPCHandlers) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewGRPCHandlers initializes the gRPC handlers. A nil cache disables caching.
func NewGRPCHandlers(scoring ScoringService, cache Cacher, logger *zap.Logger, ttl time.Duration, opts ...HandlerOption) *GRPCHandlers {
	if scoring == nil {
		panic("nil ScoringService provided to NewGRPCHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	logger = logger.Named("grpc-handler")
	h := &GRPCHandlers{
		scoring: scoring,
		cache: &readThrough{
			cache:  cache,
			ttl:    ttl,
			logger: logger,
		},
		logger:  logger,
		timeout: defaultGRPCTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.cache.fetchTimeout = h.timeout
	return h
}

func normalizeKey(prefix CacheKeyType, windows ...scoring.Window) string {
	parts := make([]string, 0, 1+2*len(windows))
	parts = append(parts, string(prefix))
	for _, w := range windows {
		parts = append(parts, w.Start.Format(scoring.DateLayout), w.End.Format(scoring.DateLayout))
	}
	return strings.Join(parts, ":")
}

func invalidArgument(err error) error {
	return status.Error(codes.InvalidArgument, err.Error())
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, scoring.ErrInvalidDateFormat), errors.Is(err, scoring.ErrInvalidWindow):
		s.logger.Info("invalid request", zap.String("op", op), zap.Error(err))
		return invalidArgument(err)
	case errors.Is(err, scoring.ErrDivisionByZero):
		s.logger.Info("score change undefined", zap.String("op", op), zap.Error(err))
		return status.Error(codes.FailedPrecondition, "second period has an overall score of 0, change is undefined")
	case errors.Is(err, scoring.ErrUpstreamFetch):
		s.logger.Error("upstream fetch failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Unavailable, "ratings storage unavailable")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) GetCategoryScores(ctx context.Context, req *pb.PeriodRequest) (*pb.CategoryScoresResponse, error) {
	w, err := scoring.ParseWindow(req.GetStartDate(), req.GetEndDate())
	if err != nil {
		return nil, invalidArgument(err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results, err := FindAndCache(ctx, s.cache, normalizeKey(cacheKeyCategoryScores, w), func(fetchCtx context.Context) ([]service.CategoryScores, error) {
		return s.scoring.GetCategoryScores(fetchCtx, w)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetCategoryScores", err)
	}

	return &pb.CategoryScoresResponse{CategoryScores: toProtoCategoryScores(results)}, nil
}

func (s *GRPCHandlers) GetScoresByTicket(ctx context.Context, req *pb.PeriodRequest) (*pb.ScoresByTicketResponse, error) {
	w, err := scoring.ParseWindow(req.GetStartDate(), req.GetEndDate())
	if err != nil {
		return nil, invalidArgument(err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	scores, err := FindAndCache(ctx, s.cache, normalizeKey(cacheKeyTicketScores, w), func(fetchCtx context.Context) ([]service.TicketScores, error) {
		return s.scoring.GetScoresByTicket(fetchCtx, w)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetScoresByTicket", err)
	}

	pbScores := make([]*pb.TicketScore, len(scores))
	for i, ticket := range scores {
		categories := make([]*pb.TicketCategoryScore, len(ticket.Categories))
		for j, c := range ticket.Categories {
			categories[j] = &pb.TicketCategoryScore{Category: c.Category, Score: int32(c.Score)}
		}
		pbScores[i] = &pb.TicketScore{
			TicketId:   ticket.TicketID,
			Categories: categories,
		}
	}

	return &pb.ScoresByTicketResponse{TicketScores: pbScores}, nil
}

func (s *GRPCHandlers) GetOverallScore(ctx context.Context, req *pb.PeriodRequest) (*pb.OverallScoreResponse, error) {
	w, err := scoring.ParseWindow(req.GetStartDate(), req.GetEndDate())
	if err != nil {
		return nil, invalidArgument(err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	score, err := FindAndCache(ctx, s.cache, normalizeKey(cacheKeyOverallScore, w), func(fetchCtx context.Context) (int, error) {
		return s.scoring.GetOverallScore(fetchCtx, w)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetOverallScore", err)
	}

	return &pb.OverallScoreResponse{Score: int32(score)}, nil
}

func (s *GRPCHandlers) GetOverallScoreChange(ctx context.Context, req *pb.PeriodRangeRequest) (*pb.OverallScoreChangeResponse, error) {
	first, err := scoring.ParseWindow(req.GetStartDate(), req.GetEndDate())
	if err != nil {
		return nil, invalidArgument(fmt.Errorf("first period: %w", err))
	}
	second, err := scoring.ParseWindow(req.GetSecondStartDate(), req.GetSecondEndDate())
	if err != nil {
		return nil, invalidArgument(fmt.Errorf("second period: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	change, err := FindAndCache(ctx, s.cache, normalizeKey(cacheKeyScoreChange, first, second), func(fetchCtx context.Context) (service.ScoreChange, error) {
		return s.scoring.GetOverallScoreChange(fetchCtx, first, second)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetOverallScoreChange", err)
	}

	return &pb.OverallScoreChangeResponse{
		ScoreChange:       int32(change.ChangePercentage),
		FirstPeriodScore:  int32(change.FirstPeriodScore),
		SecondPeriodScore: int32(change.SecondPeriodScore),
	}, nil
}

func toProtoCategoryScores(scores []service.CategoryScores) []*pb.CategoryScore {
	out := make([]*pb.CategoryScore, len(scores))
	for i, cat := range scores {
		pc := &pb.CategoryScore{
			Category: cat.Category,
			Score:    int32(cat.Score),
			Ratings:  int32(cat.RatingsSum),
		}
		for _, d := range cat.Dates {
			pc.Dates = append(pc.Dates, &pb.DateScore{Date: d.Date, Score: int32(d.Score)})
		}
		for _, w := range cat.Weeks {
			pc.Weeks = append(pc.Weeks, &pb.WeekScore{Year: int32(w.Year), Week: int32(w.Week), Score: int32(w.Score)})
		}
		out[i] = pc
	}
	return out
}
