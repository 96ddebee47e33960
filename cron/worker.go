package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"homeserve/config"
	"homeserve/services/booking"
)

const TypeBookingReconcile = "booking:reconcile"

// InitReconcileWorker runs the reconciliation sweep in the background: a
// periodic task that cancels bookings stuck in pending past the TTL and
// returns their slots to the open pool. Without it, a charge that never
// came back from the gateway strands inventory forever.
func InitReconcileWorker(wf booking.Workflow, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReconcile, func(ctx context.Context, _ *asynq.Task) error {
		released, err := wf.ReleaseStalePending(ctx)
		if err != nil {
			logger.Error("reconcile sweep failed", zap.Error(err))
			return err
		}
		logger.Debug("reconcile sweep done", zap.Int("released", released))
		return nil
	})

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register("@every 5m", asynq.NewTask(TypeBookingReconcile, nil)); err != nil {
		log.Fatalf("[ReconcileWorker] failed to register periodic task: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ReconcileWorker] scheduler stopped: %v", err)
		}
	}()

	go func() {
		log.Println("[ReconcileWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReconcileWorker] worker stopped: %v", err)
		}
	}()
}
