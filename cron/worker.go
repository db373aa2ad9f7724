package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"fieldbook/config"
	"fieldbook/services/availability"

	"github.com/hibiken/asynq"
)

// InitInvalidationWorker runs the async cache-invalidation worker in background.
func InitInvalidationWorker(availSvc availability.AvailabilityService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(availability.TypeInvalidateCache, handleInvalidateTask(availSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[InvalidationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[InvalidationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[InvalidationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleInvalidateTask(availSvc availability.AvailabilityService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p availability.InvalidatePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[InvalidationWorker] Invalid payload: %v", err)
			return err
		}
		if p.WorkerID == "" {
			log.Printf("[InvalidationWorker] Missing worker id, skipping task")
			return nil
		}

		if err := availSvc.InvalidateWorker(ctx, p.WorkerID); err != nil {
			log.Printf("[InvalidationWorker] Failed to invalidate cache for worker %s: %v", p.WorkerID, err)
			return err
		}
		return nil
	}
}
