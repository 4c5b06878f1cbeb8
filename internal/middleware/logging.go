package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	apperrors "github.com/nebaware/temariware/internal/errors"
)

// LoggingInterceptor logs every RPC with its procedure, caller, outcome and
// duration. Rejections carrying a domain code log at WARN; anything else
// that fails logs at ERROR.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			userID := GetUserID(ctx) // empty when installed before RequireAuth
			duration := time.Since(start).Milliseconds()

			if err == nil {
				slog.Info("RPC ok",
					"procedure", procedure,
					"user_id", userID,
					"duration_ms", duration,
				)
				return resp, nil
			}

			var connectErr *connect.Error
			if !errors.As(err, &connectErr) {
				slog.Error("RPC error",
					"procedure", procedure,
					"error", err,
					"user_id", userID,
					"duration_ms", duration,
				)
				return resp, err
			}

			attrs := []any{
				"procedure", procedure,
				"code", connectErr.Code(),
				"error", connectErr.Message(),
				"user_id", userID,
				"duration_ms", duration,
			}
			if reason := apperrors.CodeFromConnectError(connectErr); reason != apperrors.CodeUnknown {
				attrs = append(attrs, "reason", reason)
			}
			if connectErr.Code() == connect.CodeInternal || connectErr.Code() == connect.CodeUnknown {
				slog.Error("RPC error", attrs...)
			} else {
				slog.Warn("RPC error", attrs...)
			}
			return resp, err
		}
	}
}
