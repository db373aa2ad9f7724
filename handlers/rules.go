package handlers

import (
	"errors"
	"net/http"
	"time"

	ruleRepo "fieldbook/database/repository/rule"
	"fieldbook/models"
	"fieldbook/services/availability"
	"fieldbook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// RuleHandler manages workers' recurring availability rules.
type RuleHandler struct {
	Rules        ruleRepo.RuleRepository
	Availability availability.AvailabilityService
}

// NewRuleHandler constructs a RuleHandler.
func NewRuleHandler(rules ruleRepo.RuleRepository, availSvc availability.AvailabilityService) *RuleHandler {
	return &RuleHandler{Rules: rules, Availability: availSvc}
}

// CreateRuleHandler adds a recurring weekly window for the worker.
func (h *RuleHandler) CreateRuleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	workerID := c.Param("workerID")

	var req models.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid rule payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	validFrom, err := time.ParseInLocation(dateLayout, req.ValidFrom, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid valid_from date, expected YYYY-MM-DD"})
		return
	}
	var validTo *time.Time
	if req.ValidTo != nil {
		t, err := time.ParseInLocation(dateLayout, *req.ValidTo, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid valid_to date, expected YYYY-MM-DD"})
			return
		}
		if t.Before(validFrom) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid_to precedes valid_from"})
			return
		}
		validTo = &t
	}

	rule := models.AvailabilityRule{
		WorkerID:  workerID,
		Weekday:   time.Weekday(req.Weekday),
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
		ValidFrom: validFrom,
		ValidTo:   validTo,
	}
	if !rule.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_hour must exceed start_hour within 0-24"})
		return
	}

	id, err := h.Rules.Create(c.Request.Context(), rule)
	if err != nil {
		logger.Error("Failed to create rule", zap.String("workerId", workerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rule"})
		return
	}
	rule.ID = id

	if err := h.Availability.EnqueueInvalidation(c.Request.Context(), workerID); err != nil {
		logger.Warn("Failed to invalidate availability cache", zap.String("workerId", workerID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"rule": rule})
}

// ListRulesHandler returns every rule owned by the worker.
func (h *RuleHandler) ListRulesHandler(c *gin.Context) {
	workerID := c.Param("workerID")

	rules, err := h.Rules.ListByWorker(c.Request.Context(), workerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rules", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// DeleteRuleHandler removes one rule owned by the worker.
func (h *RuleHandler) DeleteRuleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	workerID := c.Param("workerID")
	ruleID := c.Param("ruleID")

	if err := h.Rules.DeleteByID(c.Request.Context(), workerID, ruleID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
			return
		}
		logger.Error("Failed to delete rule", zap.String("ruleId", ruleID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rule"})
		return
	}

	if err := h.Availability.EnqueueInvalidation(c.Request.Context(), workerID); err != nil {
		logger.Warn("Failed to invalidate availability cache", zap.String("workerId", workerID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rule deleted successfully"})
}
