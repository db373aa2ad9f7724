package handlers

import (
	"net/http"

	serviceRepo "fieldbook/database/repository/service"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes the service catalogue.
type ServiceHandler struct {
	Services serviceRepo.ServiceRepository
}

// NewServiceHandler constructs a ServiceHandler.
func NewServiceHandler(services serviceRepo.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Services: services}
}

// ListServicesHandler returns the active service catalogue.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Services.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}
