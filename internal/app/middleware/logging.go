package middleware

import (
	"context"
	"log/slog"
	"time"

	"stayboard/internal/app/queries"
)

// Logging records every query with its duration and outcome.
func Logging(logger *slog.Logger) QueryMiddleware {
	return func(next queries.Bus) queries.Bus {
		return queryFunc(func(ctx context.Context, q queries.Query) (any, error) {
			start := time.Now()
			result, err := next.Ask(ctx, q)
			if logger != nil {
				if err != nil {
					logger.Warn("query failed", "key", q.Key(), "duration", time.Since(start), "error", err)
				} else {
					logger.Debug("query served", "key", q.Key(), "duration", time.Since(start))
				}
			}
			return result, err
		})
	}
}

// Timeout bounds each query. A non-positive limit disables the bound.
func Timeout(limit time.Duration) QueryMiddleware {
	return func(next queries.Bus) queries.Bus {
		return queryFunc(func(ctx context.Context, q queries.Query) (any, error) {
			if limit <= 0 {
				return next.Ask(ctx, q)
			}
			ctx, cancel := context.WithTimeout(ctx, limit)
			defer cancel()
			return next.Ask(ctx, q)
		})
	}
}
