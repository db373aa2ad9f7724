package availability

import (
	"context"
	"encoding/json"

	"fieldbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeInvalidateCache = "availability:invalidate"

// InvalidatePayload identifies the worker whose cached responses are stale.
type InvalidatePayload struct {
	WorkerID string `json:"workerId"`
}

// NewInvalidateTask builds the queue task for dropping a worker's cached
// availability responses.
func NewInvalidateTask(workerID string) (*asynq.Task, error) {
	b, err := json.Marshal(InvalidatePayload{WorkerID: workerID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeInvalidateCache, b), nil
}

// EnqueueInvalidation schedules a cache drop for the worker. Without a
// queue client the drop happens inline; cached responses also expire by
// TTL, so a lost task only delays freshness.
func (s *DefaultAvailabilityService) EnqueueInvalidation(ctx context.Context, workerID string) error {
	if s.QueueClient == nil {
		return s.InvalidateWorker(ctx, workerID)
	}

	task, err := NewInvalidateTask(workerID)
	if err != nil {
		return err
	}
	if _, err := s.QueueClient.EnqueueContext(ctx, task); err != nil {
		logger := utils.GetLogger()
		logger.Warn("failed to enqueue cache invalidation, dropping inline",
			zap.String("workerId", workerID), zap.Error(err))
		return s.InvalidateWorker(ctx, workerID)
	}
	return nil
}
