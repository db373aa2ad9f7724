package handlers

import (
	"errors"
	"net/http"

	workerRepo "fieldbook/database/repository/worker"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// WorkerHandler exposes worker lookups.
type WorkerHandler struct {
	Workers workerRepo.WorkerRepository
}

// NewWorkerHandler constructs a WorkerHandler.
func NewWorkerHandler(workers workerRepo.WorkerRepository) *WorkerHandler {
	return &WorkerHandler{Workers: workers}
}

// GetWorkerByIDHandler returns one worker.
func (h *WorkerHandler) GetWorkerByIDHandler(c *gin.Context) {
	workerID := c.Param("workerID")

	worker, err := h.Workers.GetByID(c.Request.Context(), workerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch worker", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"worker": worker})
}

// ListWorkersHandler returns all active workers.
func (h *WorkerHandler) ListWorkersHandler(c *gin.Context) {
	workers, err := h.Workers.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workers", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workers": workers})
}
