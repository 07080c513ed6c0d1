package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/timebank-lab/backend/internal/common"
	"github.com/timebank-lab/backend/pkg/errorx"
	"github.com/timebank-lab/backend/pkg/router"
	"github.com/timebank-lab/backend/pkg/xcontext"
)

func WithStartTime() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		return xcontext.WithStartTime(ctx, time.Now()), nil
	}
}

func Prometheus() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		code := 0
		if err := xcontext.Error(ctx); err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) {
				code = int(errx.Code)
			} else {
				code = -1
			}
		}

		labels := []string{req.Method, req.URL.Path, fmt.Sprint(code)}
		common.PromCounters[common.HTTPRequestTotal].WithLabelValues(labels...).Inc()

		if startTime := xcontext.StartTime(ctx); !startTime.IsZero() {
			common.PromHistograms[common.HTTPRequestDurationSeconds].
				WithLabelValues(labels...).
				Observe(time.Since(startTime).Seconds())
		}
	}
}
