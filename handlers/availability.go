package handlers

import (
	"errors"
	"net/http"

	"fieldbook/services/availability"
	"fieldbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the slot engine over HTTP.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetWorkerAvailabilityHandler returns the bookable slots for a worker,
// service, and inclusive date range.
func (h *AvailabilityHandler) GetWorkerAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	workerID := c.Param("workerID")
	serviceID := c.Query("serviceID")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	if workerID == "" || serviceID == "" || fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workerID, serviceID, from and to are required"})
		return
	}

	resp, err := h.Service.GetWorkerAvailability(c.Request.Context(), workerID, serviceID, fromStr, toStr)
	if err != nil {
		var validationErr *availability.ValidationError
		var notFoundErr *availability.NotFoundError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		case errors.As(err, &notFoundErr):
			c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
		default:
			logger.Error("Failed to compute availability",
				zap.String("workerId", workerID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
