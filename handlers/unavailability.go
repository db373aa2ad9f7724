package handlers

import (
	"errors"
	"net/http"

	unavailabilityRepo "fieldbook/database/repository/unavailability"
	"fieldbook/models"
	"fieldbook/services/availability"
	"fieldbook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UnavailabilityHandler manages workers' ad-hoc blocked periods.
type UnavailabilityHandler struct {
	Blocks       unavailabilityRepo.UnavailabilityRepository
	Availability availability.AvailabilityService
}

// NewUnavailabilityHandler constructs an UnavailabilityHandler.
func NewUnavailabilityHandler(blocks unavailabilityRepo.UnavailabilityRepository, availSvc availability.AvailabilityService) *UnavailabilityHandler {
	return &UnavailabilityHandler{Blocks: blocks, Availability: availSvc}
}

// CreateUnavailabilityHandler blocks a period for the worker.
func (h *UnavailabilityHandler) CreateUnavailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	workerID := c.Param("workerID")

	var req models.CreateUnavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid unavailability payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if !req.EndAt.After(req.StartAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_at must be after start_at"})
		return
	}

	block := models.Unavailability{
		WorkerID: workerID,
		StartAt:  req.StartAt.UTC(),
		EndAt:    req.EndAt.UTC(),
		Reason:   req.Reason,
	}

	id, err := h.Blocks.Create(c.Request.Context(), block)
	if err != nil {
		logger.Error("Failed to create unavailability", zap.String("workerId", workerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create unavailability"})
		return
	}
	block.ID = id

	if err := h.Availability.EnqueueInvalidation(c.Request.Context(), workerID); err != nil {
		logger.Warn("Failed to invalidate availability cache", zap.String("workerId", workerID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"unavailability": block})
}

// ListUnavailabilityHandler returns every blocked period for the worker.
func (h *UnavailabilityHandler) ListUnavailabilityHandler(c *gin.Context) {
	workerID := c.Param("workerID")

	blocks, err := h.Blocks.ListByWorker(c.Request.Context(), workerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch unavailabilities", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unavailabilities": blocks})
}

// DeleteUnavailabilityHandler removes one blocked period.
func (h *UnavailabilityHandler) DeleteUnavailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	workerID := c.Param("workerID")
	blockID := c.Param("blockID")

	if err := h.Blocks.DeleteByID(c.Request.Context(), workerID, blockID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unavailability not found"})
			return
		}
		logger.Error("Failed to delete unavailability", zap.String("blockId", blockID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete unavailability"})
		return
	}

	if err := h.Availability.EnqueueInvalidation(c.Request.Context(), workerID); err != nil {
		logger.Warn("Failed to invalidate availability cache", zap.String("workerId", workerID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unavailability deleted successfully"})
}
