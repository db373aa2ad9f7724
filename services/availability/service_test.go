package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeWorkerRepo struct {
	workers map[string]*models.Worker
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, workerID string) (*models.Worker, error) {
	w, ok := f.workers[workerID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return w, nil
}

func (f *fakeWorkerRepo) ListActive(ctx context.Context) ([]models.Worker, error) {
	return nil, nil
}

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	s, ok := f.services[serviceID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}

func (f *fakeServiceRepo) ListActive(ctx context.Context) ([]models.Service, error) {
	return nil, nil
}

type fakeRuleRepo struct {
	rules []models.AvailabilityRule
}

func (f *fakeRuleRepo) Create(ctx context.Context, rule models.AvailabilityRule) (string, error) {
	f.rules = append(f.rules, rule)
	return rule.ID, nil
}

func (f *fakeRuleRepo) DeleteByID(ctx context.Context, workerID, ruleID string) error { return nil }

func (f *fakeRuleRepo) ListByWorker(ctx context.Context, workerID string) ([]models.AvailabilityRule, error) {
	return f.rules, nil
}

func (f *fakeRuleRepo) ListValidInRange(ctx context.Context, workerID string, from, to time.Time) ([]models.AvailabilityRule, error) {
	return f.rules, nil
}

func (f *fakeRuleRepo) EnsureIndexes() error { return nil }

type fakeUnavailabilityRepo struct {
	blocks []models.Unavailability
}

func (f *fakeUnavailabilityRepo) Create(ctx context.Context, block models.Unavailability) (string, error) {
	f.blocks = append(f.blocks, block)
	return block.ID, nil
}

func (f *fakeUnavailabilityRepo) DeleteByID(ctx context.Context, workerID, blockID string) error {
	return nil
}

func (f *fakeUnavailabilityRepo) ListByWorker(ctx context.Context, workerID string) ([]models.Unavailability, error) {
	return f.blocks, nil
}

func (f *fakeUnavailabilityRepo) ListOverlapping(ctx context.Context, workerID string, from, to time.Time) ([]models.Unavailability, error) {
	return f.blocks, nil
}

func (f *fakeUnavailabilityRepo) EnsureIndexes() error { return nil }

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) ListOverlapping(ctx context.Context, workerID string, from, to time.Time) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

func newTestService() *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Engine: NewEngine(),
		WorkerRepo: &fakeWorkerRepo{workers: map[string]*models.Worker{
			"w1":       {ID: "w1", Name: "Ada", Trade: "plumbing", Active: true},
			"inactive": {ID: "inactive", Name: "Bob", Trade: "plumbing", Active: false},
		}},
		ServiceRepo: &fakeServiceRepo{services: map[string]*models.Service{
			"svc-1h": {ID: "svc-1h", Name: "Tap fix", BillingUnit: models.BillingUnitHour, UnitMagnitude: 1, Active: true},
			"svc-2h": {ID: "svc-2h", Name: "Boiler check", BillingUnit: models.BillingUnitHour, UnitMagnitude: 2, Active: true},
			"svc-bad": {ID: "svc-bad", Name: "Broken", BillingUnit: "fortnight", UnitMagnitude: 1, Active: true},
		}},
		RuleRepo: &fakeRuleRepo{rules: []models.AvailabilityRule{
			{ID: "r1", WorkerID: "w1", Weekday: time.Monday, StartHour: 9, EndHour: 13, ValidFrom: day(2026, time.January, 1)},
		}},
		BlockRepo:   &fakeUnavailabilityRepo{},
		BookingRepo: &fakeBookingRepo{},
	}
}

func TestGetWorkerAvailabilityValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name      string
		workerID  string
		serviceID string
		from, to  string
		wantVal   bool
		wantNF    bool
	}{
		{name: "malformed from date", workerID: "w1", serviceID: "svc-1h", from: "02-03-2026", to: "2026-03-08", wantVal: true},
		{name: "malformed to date", workerID: "w1", serviceID: "svc-1h", from: "2026-03-02", to: "next week", wantVal: true},
		{name: "inverted range", workerID: "w1", serviceID: "svc-1h", from: "2026-03-08", to: "2026-03-02", wantVal: true},
		{name: "range beyond cap", workerID: "w1", serviceID: "svc-1h", from: "2026-01-01", to: "2026-12-31", wantVal: true},
		{name: "unknown worker", workerID: "ghost", serviceID: "svc-1h", from: "2026-03-02", to: "2026-03-08", wantNF: true},
		{name: "inactive worker", workerID: "inactive", serviceID: "svc-1h", from: "2026-03-02", to: "2026-03-08", wantNF: true},
		{name: "unknown service", workerID: "w1", serviceID: "ghost", from: "2026-03-02", to: "2026-03-08", wantNF: true},
		{name: "unknown billing unit", workerID: "w1", serviceID: "svc-bad", from: "2026-03-02", to: "2026-03-08", wantVal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetWorkerAvailability(ctx, tt.workerID, tt.serviceID, tt.from, tt.to)
			if err == nil {
				t.Fatal("expected an error")
			}
			var valErr *ValidationError
			var nfErr *NotFoundError
			switch {
			case tt.wantVal && !errors.As(err, &valErr):
				t.Errorf("expected validation error, got %T: %v", err, err)
			case tt.wantNF && !errors.As(err, &nfErr):
				t.Errorf("expected not-found error, got %T: %v", err, err)
			}
		})
	}
}

func TestGetWorkerAvailabilityHappyPath(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GetWorkerAvailability(context.Background(), "w1", "svc-2h", "2026-03-02", "2026-03-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.WorkerID != "w1" || resp.ServiceID != "svc-2h" {
		t.Errorf("response identity mismatch: %+v", resp)
	}
	if resp.DurationHours != 2 {
		t.Errorf("duration = %d, want 2", resp.DurationHours)
	}
	if resp.From != "2026-03-02" || resp.To != "2026-03-08" {
		t.Errorf("range echo mismatch: from=%s to=%s", resp.From, resp.To)
	}

	// Monday 09-13 with a 2-hour service: 9-11, 10-12, 11-13.
	if len(resp.Slots) != 3 {
		t.Fatalf("got %d slots, want 3: %+v", len(resp.Slots), resp.Slots)
	}
	first := resp.Slots[0]
	if first.Date != "2026-03-02" || first.StartHour != 9 || first.EndHour != 11 {
		t.Errorf("first slot = %+v, want 2026-03-02 9-11", first)
	}
}

func TestGetWorkerAvailabilityAppliesConflicts(t *testing.T) {
	svc := newTestService()
	svc.BookingRepo = &fakeBookingRepo{bookings: []models.Booking{{
		ID: "b1", WorkerID: "w1",
		StartAt: at(2026, time.March, 2, 9), EndAt: at(2026, time.March, 2, 10),
		Status: models.BookingStatusConfirmed,
	}}}

	resp, err := svc.GetWorkerAvailability(context.Background(), "w1", "svc-1h", "2026-03-02", "2026-03-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range resp.Slots {
		if s.Date == "2026-03-02" && s.StartHour == 9 {
			t.Errorf("booked hour leaked into response: %+v", s)
		}
	}
	if len(resp.Slots) != 3 {
		t.Errorf("got %d slots, want 3", len(resp.Slots))
	}
}

func TestServiceDurationHours(t *testing.T) {
	tests := []struct {
		name    string
		svc     models.Service
		want    int
		wantErr bool
	}{
		{name: "one hour", svc: models.Service{BillingUnit: models.BillingUnitHour, UnitMagnitude: 1}, want: 1},
		{name: "fractional hours round up", svc: models.Service{BillingUnit: models.BillingUnitHour, UnitMagnitude: 2.5}, want: 3},
		{name: "sub hour floors at one", svc: models.Service{BillingUnit: models.BillingUnitHour, UnitMagnitude: 0.25}, want: 1},
		{name: "one day", svc: models.Service{BillingUnit: models.BillingUnitDay, UnitMagnitude: 1}, want: 24},
		{name: "half day", svc: models.Service{BillingUnit: models.BillingUnitDay, UnitMagnitude: 0.5}, want: 12},
		{name: "unknown unit", svc: models.Service{BillingUnit: "week", UnitMagnitude: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ServiceDurationHours(tt.svc)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d hours, want %d", got, tt.want)
			}
		})
	}
}

func TestEnqueueInvalidationWithoutQueueFallsBack(t *testing.T) {
	svc := newTestService()
	// No queue client and no cache client: the inline fallback is a no-op
	// and must not error.
	if err := svc.EnqueueInvalidation(context.Background(), "w1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
