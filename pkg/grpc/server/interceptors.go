package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the metadata key read from, and echoed back to, clients.
const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

// RequestIDFromContext returns the request ID assigned by LoggingInterceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func ensureRequestID(ctx context.Context) (context.Context, string) {
	var requestID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDHeader); len(values) > 0 {
			requestID = strings.TrimSpace(values[0])
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))
	return context.WithValue(ctx, requestIDKey{}, requestID), requestID
}

func clientAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return "unknown"
}

// levelFor logs server-side failures as errors and caller mistakes as warnings.
func levelFor(code codes.Code) zapcore.Level {
	switch code {
	case codes.OK:
		return zap.InfoLevel
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss, codes.DeadlineExceeded:
		return zap.ErrorLevel
	default:
		return zap.WarnLevel
	}
}

// LoggingInterceptor creates a gRPC unary interceptor for request/response logging.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		ctx, requestID := ensureRequestID(ctx)

		log := logger.With(
			zap.String("method", info.FullMethod),
			zap.String("request_id", requestID))
		log.Debug("gRPC request started", zap.String("client_addr", clientAddr(ctx)))

		resp, err := handler(ctx, req)
		st, _ := status.FromError(err)

		fields := []zap.Field{
			zap.Duration("duration", time.Since(start)),
			zap.String("status_code", st.Code().String()),
		}
		if err != nil {
			fields = append(fields, zap.String("status_message", st.Message()))
			log.Log(levelFor(st.Code()), "gRPC request failed", fields...)
		} else {
			log.Info("gRPC request completed", fields...)
		}

		return resp, err
	}
}

// RecoveryInterceptor turns a handler panic into codes.Internal.
func RecoveryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("gRPC handler panicked",
					zap.String("method", info.FullMethod),
					zap.String("request_id", RequestIDFromContext(ctx)),
					zap.Any("panic", r),
					zap.Stack("stack"))
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}
