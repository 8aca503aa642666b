package interceptors

import (
	"context"
	"path"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/ValoreSposi/crm-backend/platform/logger"
)

func UnaryLogging() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		method := path.Base(info.FullMethod)
		start := time.Now()

		resp, err := handler(ctx, req)

		d := time.Since(start)
		if err != nil {
			st, _ := status.FromError(err)
			logger.Warn(ctx, "grpc",
				logger.String("method", method),
				logger.String("code", st.Code().String()),
				logger.Duration("dur", d),
				logger.ErrorF(err),
			)
			return resp, err
		}

		logger.Debug(ctx, "grpc",
			logger.String("method", method),
			logger.String("code", "OK"),
			logger.Duration("dur", d),
		)
		return resp, nil
	}
}
