package routes

import (
	"net/http"
	"time"

	"fieldbook/handlers"
	"fieldbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Availability   *handlers.AvailabilityHandler
	Rules          *handlers.RuleHandler
	Unavailability *handlers.UnavailabilityHandler
	Bookings       *handlers.BookingHandler
	Services       *handlers.ServiceHandler
	Workers        *handlers.WorkerHandler
}

// RegisterWorkerRoutes registers the per-worker schedule endpoints.
func RegisterWorkerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/workers")
	{
		api.GET("", hb.Workers.ListWorkersHandler)
		api.GET("/:workerID", hb.Workers.GetWorkerByIDHandler)

		// The availability boundary.
		api.GET("/:workerID/availability", hb.Availability.GetWorkerAvailabilityHandler)

		// Recurring weekly rules.
		api.POST("/:workerID/rules", hb.Rules.CreateRuleHandler)
		api.GET("/:workerID/rules", hb.Rules.ListRulesHandler)
		api.DELETE("/:workerID/rules/:ruleID", hb.Rules.DeleteRuleHandler)

		// Ad-hoc blocked periods.
		api.POST("/:workerID/unavailability", hb.Unavailability.CreateUnavailabilityHandler)
		api.GET("/:workerID/unavailability", hb.Unavailability.ListUnavailabilityHandler)
		api.DELETE("/:workerID/unavailability/:blockID", hb.Unavailability.DeleteUnavailabilityHandler)

		// Read-only booking projection.
		api.GET("/:workerID/bookings", hb.Bookings.ListWorkerBookingsHandler)
	}
}

// RegisterServiceRoutes registers the service catalogue endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Services.ListServicesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWorkerRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterHealthRoute(r)
}
