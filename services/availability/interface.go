package availability

import (
	"context"

	bookingRepo "fieldbook/database/repository/booking"
	ruleRepo "fieldbook/database/repository/rule"
	serviceRepo "fieldbook/database/repository/service"
	unavailabilityRepo "fieldbook/database/repository/unavailability"
	workerRepo "fieldbook/database/repository/worker"
	"fieldbook/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// AvailabilityService is the boundary around the slot engine: it resolves
// the records the engine consumes, validates the requested window, and
// caches computed responses.
type AvailabilityService interface {
	GetWorkerAvailability(ctx context.Context, workerID, serviceID, fromStr, toStr string) (*models.AvailabilityResponse, error)
	// EnqueueInvalidation schedules an asynchronous drop of the worker's
	// cached responses; mutating handlers call it after writes.
	EnqueueInvalidation(ctx context.Context, workerID string) error
	// InvalidateWorker drops the worker's cached responses immediately;
	// the queue worker calls it when processing invalidation tasks.
	InvalidateWorker(ctx context.Context, workerID string) error
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Engine       *Engine
	WorkerRepo   workerRepo.WorkerRepository
	ServiceRepo  serviceRepo.ServiceRepository
	RuleRepo     ruleRepo.RuleRepository
	BlockRepo    unavailabilityRepo.UnavailabilityRepository
	BookingRepo  bookingRepo.BookingRepository
	CacheClient  *redis.Client
	QueueClient  *asynq.Client
	MaxRangeDays int
	CacheTTLSecs int
}
