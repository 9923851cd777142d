package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"earnhub.backend/pkg/logger"
)

// DailyStatsResetter resets day-scoped counters for users whose stored
// date lags behind today.
type DailyStatsResetter interface {
	ResetLaggingUsers(ctx context.Context, batch int) (int, error)
}

// DailyResetJob proactively rolls user daily stats over at midnight UTC.
// Task completion performs the same rollover lazily, so a missed run only
// delays dashboard freshness, never correctness.
type DailyResetJob struct {
	resetter DailyStatsResetter
	batch    int
	cron     *cron.Cron
}

func NewDailyResetJob(resetter DailyStatsResetter, batch int) *DailyResetJob {
	return &DailyResetJob{
		resetter: resetter,
		batch:    batch,
		cron:     cron.New(cron.WithLocation(time.UTC)),
	}
}

// Start runs one catch-up sweep immediately, then schedules the midnight
// sweep. It returns after scheduling; the cron runs in the background
// until Stop.
func (j *DailyResetJob) Start(ctx context.Context) error {
	j.run(ctx)

	if _, err := j.cron.AddFunc("0 0 * * *", func() { j.run(ctx) }); err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

// Stop halts the schedule, letting a sweep in flight finish
func (j *DailyResetJob) Stop() {
	<-j.cron.Stop().Done()
}

func (j *DailyResetJob) run(ctx context.Context) {
	start := time.Now()
	reset, err := j.resetter.ResetLaggingUsers(ctx, j.batch)
	if err != nil {
		logger.Error(ctx, "daily stats sweep failed", zap.Error(err))
		return
	}
	if reset > 0 {
		logger.Info(ctx, "daily stats sweep finished",
			zap.Int("users_reset", reset),
			zap.Duration("took", time.Since(start)),
		)
	}
}
