package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"fieldbook/models"
	"fieldbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

const defaultMaxRangeDays = 90

// GetWorkerAvailability resolves the worker, service, and schedule records,
// runs the engine, and returns the bookable slots for [fromStr, toStr]
// (inclusive calendar dates). Responses are cached per
// (worker, service, from, to) with a short TTL.
func (s *DefaultAvailabilityService) GetWorkerAvailability(ctx context.Context, workerID, serviceID, fromStr, toStr string) (*models.AvailabilityResponse, error) {
	logger := utils.GetLogger()

	from, err := time.ParseInLocation(dateLayout, fromStr, time.UTC)
	if err != nil {
		return nil, NewValidationError("invalid from date %q, expected YYYY-MM-DD", fromStr)
	}
	to, err := time.ParseInLocation(dateLayout, toStr, time.UTC)
	if err != nil {
		return nil, NewValidationError("invalid to date %q, expected YYYY-MM-DD", toStr)
	}
	if to.Before(from) {
		return nil, NewValidationError("to date %s precedes from date %s", toStr, fromStr)
	}

	maxDays := s.MaxRangeDays
	if maxDays <= 0 {
		maxDays = defaultMaxRangeDays
	}
	if spanDays := int(to.Sub(from).Hours()/24) + 1; spanDays > maxDays {
		return nil, NewValidationError("date range spans %d days, maximum is %d", spanDays, maxDays)
	}

	worker, err := s.WorkerRepo.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "worker", ID: workerID}
		}
		return nil, fmt.Errorf("failed to resolve worker: %w", err)
	}
	if !worker.Active {
		return nil, &NotFoundError{Resource: "worker", ID: workerID}
	}

	svc, err := s.ServiceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "service", ID: serviceID}
		}
		return nil, fmt.Errorf("failed to resolve service: %w", err)
	}

	durationHours, err := ServiceDurationHours(*svc)
	if err != nil {
		return nil, err
	}

	key := cacheKey(workerID, serviceID, fromStr, toStr)
	if s.CacheClient != nil {
		if data, err := s.CacheClient.Get(ctx, key).Result(); err == nil {
			var cached models.AvailabilityResponse
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				logger.Debug("availability cache hit", zap.String("key", key))
				return &cached, nil
			}
		}
	}

	rules, err := s.RuleRepo.ListValidInRange(ctx, workerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}

	// Conflict fetches use instants; the inclusive to date ends at the
	// following midnight.
	windowEnd := to.AddDate(0, 0, 1)
	blocks, err := s.BlockRepo.ListOverlapping(ctx, workerID, from, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unavailabilities: %w", err)
	}
	bookings, err := s.BookingRepo.ListOverlapping(ctx, workerID, from, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	slots := s.Engine.GenerateAvailableSlots(rules, blocks, bookings, from, to, durationHours)

	resp := &models.AvailabilityResponse{
		WorkerID:      workerID,
		ServiceID:     serviceID,
		DurationHours: durationHours,
		From:          fromStr,
		To:            toStr,
		Slots:         make([]models.AvailableSlotResponse, 0, len(slots)),
	}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, models.AvailableSlotResponse{
			Date:          slot.Date.Format(dateLayout),
			StartHour:     slot.StartHour,
			EndHour:       slot.EndHour,
			DurationHours: slot.DurationHours,
			Available:     slot.Available,
		})
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(resp); err == nil {
			ttl := time.Duration(s.CacheTTLSecs) * time.Second
			if ttl <= 0 {
				ttl = time.Minute
			}
			if err := s.CacheClient.Set(ctx, key, data, ttl).Err(); err != nil {
				logger.Warn("failed to cache availability response", zap.String("key", key), zap.Error(err))
			}
		}
	}

	logger.Debug("availability computed",
		zap.String("workerId", workerID),
		zap.String("serviceId", serviceID),
		zap.Int("durationHours", durationHours),
		zap.Int("slots", len(resp.Slots)))

	return resp, nil
}

// ServiceDurationHours derives the whole-hour appointment length from the
// service billing unit: an hourly unit of magnitude M rounds up to whole
// hours with a floor of one; a daily unit of magnitude M yields M x 24.
func ServiceDurationHours(svc models.Service) (int, error) {
	switch svc.BillingUnit {
	case models.BillingUnitHour:
		hours := int(math.Ceil(svc.UnitMagnitude))
		if hours < 1 {
			hours = 1
		}
		return hours, nil
	case models.BillingUnitDay:
		hours := int(math.Ceil(svc.UnitMagnitude * 24))
		if hours < 1 {
			hours = 1
		}
		return hours, nil
	default:
		return 0, NewValidationError("service %s has unknown billing unit %q", svc.ID, svc.BillingUnit)
	}
}

func cacheKey(workerID, serviceID, fromStr, toStr string) string {
	return fmt.Sprintf("availability:%s:%s:%s:%s", workerID, serviceID, fromStr, toStr)
}

// InvalidateWorker drops every cached availability response for the worker.
func (s *DefaultAvailabilityService) InvalidateWorker(ctx context.Context, workerID string) error {
	if s.CacheClient == nil {
		return nil
	}

	pattern := fmt.Sprintf("availability:%s:*", workerID)
	iter := s.CacheClient.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := s.CacheClient.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached response %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}
