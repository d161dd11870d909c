package cron

import (
	"context"
	"fmt"
	"time"

	"homestay/config"
	"homestay/services/rating"
	"homestay/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeRatingSweep = "rating:sweep"

// InitRatingSweepWorker starts the background worker and scheduler that
// periodically reconcile every listing's cached rating against its active
// reviews. Reviews hidden or deleted out-of-band are picked up here.
func InitRatingSweepWorker(agg rating.Aggregator) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRatingSweep, handleRatingSweep(agg))

	go func() {
		logger.Info("rating sweep worker starting")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("rating sweep worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("rating sweep worker gave up")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runSweepScheduler(redisOpts)
}

func handleRatingSweep(agg rating.Aggregator) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		start := time.Now()
		if err := agg.RecomputeAll(ctx); err != nil {
			utils.GetLogger().Error("rating sweep failed", zap.Error(err))
			return err
		}
		utils.GetLogger().Info("rating sweep finished", zap.Duration("took", time.Since(start)))
		return nil
	}
}

// runSweepScheduler enqueues the periodic sweep task.
func runSweepScheduler(redisOpts asynq.RedisClientOpt) {
	interval := config.AppConfig.RatingSweepInterval
	if interval <= 0 {
		interval = 60
	}

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	spec := fmt.Sprintf("@every %dm", interval)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeRatingSweep, nil)); err != nil {
		utils.GetLogger().Error("failed to register rating sweep schedule", zap.Error(err))
		return
	}
	if err := scheduler.Run(); err != nil {
		utils.GetLogger().Error("rating sweep scheduler stopped", zap.Error(err))
	}
}
