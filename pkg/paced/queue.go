// Package paced provides a rate-limited sequential task queue. Tasks run
// strictly one after another with a fixed minimum interval between starts,
// which keeps a signing backend from being flooded with pending
// transactions.
package paced

import (
	"context"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Result summarizes one queue run. Partial success is a normal terminal
// state: Succeeded+Failed may be less than the requested count when the
// run stopped early.
type Result struct {
	Succeeded int
	Failed    int
	Stopped   bool
	StopCause error
}

// Queue runs tasks sequentially, pacing task starts with a limiter.
type Queue struct {
	rl     ratelimit.Limiter
	logger *zap.Logger
}

// New constructs a Queue with the given minimum interval between task starts.
func New(interval time.Duration, logger *zap.Logger) *Queue {
	if interval <= 0 {
		interval = time.Second
	}
	return &Queue{
		rl:     ratelimit.New(1, ratelimit.Per(interval), ratelimit.WithoutSlack),
		logger: logger,
	}
}

// Run executes count tasks in order. A task error is recorded and the run
// continues, unless stop classifies the error as fatal, in which case no
// further task starts and the cause is reported in the Result. Cancellation
// is honored at task boundaries only; a task that already started is never
// abandoned mid-flight.
func (q *Queue) Run(
	ctx context.Context,
	count int,
	task func(context.Context, int) error,
	stop func(error) bool,
) (Result, error) {
	var res Result
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		q.rl.Take()

		if err := task(ctx, i); err != nil {
			res.Failed++
			if stop != nil && stop(err) {
				res.Stopped = true
				res.StopCause = err
				q.logger.Warn("paced run stopped",
					zap.Int("task", i),
					zap.Int("succeeded", res.Succeeded),
					zap.Error(err),
				)
				return res, nil
			}
			q.logger.Warn("paced task failed, continuing", zap.Int("task", i), zap.Error(err))
			continue
		}
		res.Succeeded++
	}
	return res, nil
}
