package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDHeader = "x-request-id"

type requestIDKey struct{}

// Logging tags every call with a request id (taken from the incoming
// x-request-id header when present) and logs its outcome.
func Logging(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		id := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(requestIDHeader); len(v) > 0 {
				id = v[0]
			}
		}
		if id == "" {
			id = uuid.NewString()
		}
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeader, id))
		ctx = context.WithValue(ctx, requestIDKey{}, id)

		start := time.Now()
		resp, err := next(ctx, req)
		code := status.Code(err)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("request_id", id),
			zap.String("code", code.String()),
			zap.Duration("took", time.Since(start)),
		}
		switch code {
		case codes.OK:
			log.Info("rpc", fields...)
		case codes.Internal, codes.Unavailable, codes.Unknown, codes.DeadlineExceeded:
			log.Error("rpc failed", append(fields, zap.Error(err))...)
		default:
			log.Info("rpc rejected", append(fields, zap.String("reason", status.Convert(err).Message()))...)
		}
		return resp, err
	}
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
