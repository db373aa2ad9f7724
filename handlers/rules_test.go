package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fieldbook/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRuleRepo struct {
	created   []models.AvailabilityRule
	deleteErr error
}

func (f *fakeRuleRepo) Create(ctx context.Context, rule models.AvailabilityRule) (string, error) {
	f.created = append(f.created, rule)
	return "rule-1", nil
}

func (f *fakeRuleRepo) DeleteByID(ctx context.Context, workerID, ruleID string) error {
	return f.deleteErr
}

func (f *fakeRuleRepo) ListByWorker(ctx context.Context, workerID string) ([]models.AvailabilityRule, error) {
	return f.created, nil
}

func (f *fakeRuleRepo) ListValidInRange(ctx context.Context, workerID string, from, to time.Time) ([]models.AvailabilityRule, error) {
	return f.created, nil
}

func (f *fakeRuleRepo) EnsureIndexes() error { return nil }

func newRuleRouter(repo *fakeRuleRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRuleHandler(repo, &stubAvailabilityService{})
	r.POST("/api/workers/:workerID/rules", h.CreateRuleHandler)
	r.DELETE("/api/workers/:workerID/rules/:ruleID", h.DeleteRuleHandler)
	return r
}

func TestCreateRuleHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid rule",
			body:       `{"weekday":1,"start_hour":9,"end_hour":13,"valid_from":"2026-01-01"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "bounded validity window",
			body:       `{"weekday":1,"start_hour":9,"end_hour":13,"valid_from":"2026-01-01","valid_to":"2026-06-30"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "end hour not after start hour",
			body:       `{"weekday":1,"start_hour":13,"end_hour":9,"valid_from":"2026-01-01"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed valid_from",
			body:       `{"weekday":1,"start_hour":9,"end_hour":13,"valid_from":"January 1st"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "valid_to precedes valid_from",
			body:       `{"weekday":1,"start_hour":9,"end_hour":13,"valid_from":"2026-06-01","valid_to":"2026-01-01"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "weekday out of range",
			body:       `{"weekday":7,"start_hour":9,"end_hour":13,"valid_from":"2026-01-01"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not json",
			body:       `nine to five on mondays`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRuleRepo{}
			router := newRuleRouter(repo)
			req := httptest.NewRequest(http.MethodPost, "/api/workers/w1/rules", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus == http.StatusCreated {
				if len(repo.created) != 1 {
					t.Fatalf("expected one persisted rule, got %d", len(repo.created))
				}
				if repo.created[0].WorkerID != "w1" {
					t.Errorf("rule owner = %q, want w1", repo.created[0].WorkerID)
				}
			} else if len(repo.created) != 0 {
				t.Errorf("rejected request must not persist, got %d rules", len(repo.created))
			}
		})
	}
}

func TestDeleteRuleHandler(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{name: "deleted", deleteErr: nil, wantStatus: http.StatusOK},
		{name: "missing rule", deleteErr: mongo.ErrNoDocuments, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRuleRouter(&fakeRuleRepo{deleteErr: tt.deleteErr})
			req := httptest.NewRequest(http.MethodDelete, "/api/workers/w1/rules/rule-1", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
