package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldbook/models"
	"fieldbook/services/availability"

	"github.com/gin-gonic/gin"
)

type stubAvailabilityService struct {
	resp *models.AvailabilityResponse
	err  error
}

func (s *stubAvailabilityService) GetWorkerAvailability(ctx context.Context, workerID, serviceID, fromStr, toStr string) (*models.AvailabilityResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubAvailabilityService) EnqueueInvalidation(ctx context.Context, workerID string) error {
	return nil
}

func (s *stubAvailabilityService) InvalidateWorker(ctx context.Context, workerID string) error {
	return nil
}

func newAvailabilityRouter(svc availability.AvailabilityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(svc)
	r.GET("/api/workers/:workerID/availability", h.GetWorkerAvailabilityHandler)
	return r
}

func TestGetWorkerAvailabilityHandler(t *testing.T) {
	okResp := &models.AvailabilityResponse{
		WorkerID:      "w1",
		ServiceID:     "svc-1",
		DurationHours: 2,
		From:          "2026-03-02",
		To:            "2026-03-08",
		Slots: []models.AvailableSlotResponse{
			{Date: "2026-03-02", StartHour: 9, EndHour: 11, DurationHours: 2, Available: true},
		},
	}

	tests := []struct {
		name       string
		url        string
		svc        *stubAvailabilityService
		wantStatus int
	}{
		{
			name:       "happy path",
			url:        "/api/workers/w1/availability?serviceID=svc-1&from=2026-03-02&to=2026-03-08",
			svc:        &stubAvailabilityService{resp: okResp},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing service id",
			url:        "/api/workers/w1/availability?from=2026-03-02&to=2026-03-08",
			svc:        &stubAvailabilityService{resp: okResp},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing date range",
			url:        "/api/workers/w1/availability?serviceID=svc-1",
			svc:        &stubAvailabilityService{resp: okResp},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation error maps to 400",
			url:        "/api/workers/w1/availability?serviceID=svc-1&from=bad&to=2026-03-08",
			svc:        &stubAvailabilityService{err: availability.NewValidationError("invalid from date")},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown worker maps to 404",
			url:        "/api/workers/ghost/availability?serviceID=svc-1&from=2026-03-02&to=2026-03-08",
			svc:        &stubAvailabilityService{err: &availability.NotFoundError{Resource: "worker", ID: "ghost"}},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unexpected error maps to 500",
			url:        "/api/workers/w1/availability?serviceID=svc-1&from=2026-03-02&to=2026-03-08",
			svc:        &stubAvailabilityService{err: errors.New("mongo is down")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAvailabilityRouter(tt.svc)
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var got models.AvailabilityResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
					t.Fatalf("invalid response body: %v", err)
				}
				if got.WorkerID != "w1" || len(got.Slots) != 1 {
					t.Errorf("unexpected response: %+v", got)
				}
			}
		})
	}
}
