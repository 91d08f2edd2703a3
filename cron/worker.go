package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"anndann/config"
	"anndann/models"
	"anndann/services/notification"
	"anndann/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the asynq connection for the notification queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// redisMonitorInterval is how often the worker's Redis connection is pinged.
const redisMonitorInterval = 10 * time.Second

// InitNotificationWorker runs the async worker in background and returns
// the server so the caller can shut it down. The Redis monitor stops when
// ctx is cancelled.
func InitNotificationWorker(ctx context.Context, notifSvc notification.NotificationService, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeVolunteerRegistered, handleVolunteerRegisteredTask(notifSvc, logger))

	monitorClient := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	go monitorRedisConnection(ctx, monitorClient, redisMonitorInterval, logger)

	// Start async worker with retry logic
	go func() {
		logger.Info("[NotificationWorker] starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				break
			}
			logger.Error("[NotificationWorker] failed to start worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("[NotificationWorker] max retry attempts reached; notifications disabled")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleVolunteerRegisteredTask(notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.VolunteerRegisteredPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("[NotificationHandler] invalid payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		if err := notifSvc.NotifyVolunteerRegistered(ctx, p); err != nil {
			logger.Warn("[NotificationHandler] failed to send notification",
				zap.String("volunteerId", p.VolunteerID), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at
// runtime. It closes client when ctx is done.
func monitorRedisConnection(ctx context.Context, client *redis.Client, interval time.Duration, logger *zap.Logger) {
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("[NotificationWorker] failed to close Redis monitor client", zap.Error(err))
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := client.Ping(ctx).Err(); err != nil && ctx.Err() == nil {
			logger.Warn("[NotificationWorker] Redis connection lost", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
