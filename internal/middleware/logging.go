package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, protocol, request ID and duration. Client errors are
// logged at warn level with their code; internal failures at error level.
// The request ID is the one HTTPLogging put in the context, if any.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			attrs := []any{
				"procedure", req.Spec().Procedure,
				"protocol", req.Peer().Protocol,
				"request_id", chimw.GetReqID(ctx),
				"peer", req.Peer().Addr,
			}

			resp, err := next(ctx, req)
			attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())

			var connectErr *connect.Error
			switch {
			case err == nil:
				slog.Info("RPC ok", attrs...)
			case errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal:
				slog.Warn("RPC rejected",
					append(attrs, "code", connectErr.Code().String(), "error", connectErr.Message())...)
			default:
				slog.Error("RPC failed",
					append(attrs, "code", connect.CodeOf(err).String(), "error", err)...)
			}
			return resp, err
		}
	}
}
