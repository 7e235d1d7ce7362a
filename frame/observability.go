package frame

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/dframe/logger"
	"github.com/kbukum/dframe/obs"
	"github.com/kbukum/dframe/qerr"
)

// observeRun opens a span and logs the start of a run; the returned
// finish function records the outcome on the span, the logger and the
// metrics (when configured).
func (df *DataFrame) observeRun(ctx context.Context, rows, workers int) (context.Context, func(error)) {
	runID := uuid.NewString()
	start := time.Now()
	log := df.opts.log

	log.Info("run started", logger.Fields(
		logger.FieldRunID, runID,
		logger.FieldRows, rows,
		logger.FieldWorkers, workers,
	))

	ctx, span := obs.StartSpan(ctx, obs.SpanRun)
	obs.SetSpanAttribute(ctx, obs.AttrRunID, runID)
	obs.SetSpanAttribute(ctx, obs.AttrRows, int64(rows))
	obs.SetSpanAttribute(ctx, obs.AttrWorkers, workers)

	return ctx, func(err error) {
		duration := time.Since(start)
		status := "completed"
		if err != nil {
			status = "failed"
			obs.SetSpanError(ctx, err)
			log.Error("run failed", logger.Fields(
				logger.FieldRunID, runID,
				logger.FieldError, err.Error(),
				logger.FieldDuration, duration.Milliseconds(),
			))
		} else {
			log.Info("run completed", logger.Fields(
				logger.FieldRunID, runID,
				logger.FieldRows, rows,
				logger.FieldWorkers, workers,
				logger.FieldDuration, duration.Milliseconds(),
			))
		}
		obs.SetSpanAttribute(ctx, obs.AttrStatus, status)
		obs.SetSpanAttribute(ctx, obs.AttrDuration, duration.Milliseconds())
		span.End()

		if m := df.opts.metrics; m != nil {
			m.RecordRun(ctx, status, int64(rows), workers, duration)
			if err != nil {
				m.RecordError(ctx, string(qerr.CodeOf(err)))
			}
		}
	}
}
