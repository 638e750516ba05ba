// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"bookeasy/internal/appointments"
	"bookeasy/internal/bookings"
	"bookeasy/internal/buses"
	"bookeasy/internal/notifications"
	"bookeasy/internal/shared/config"
	"bookeasy/pkg/cache"
	"bookeasy/pkg/clock"
	"bookeasy/pkg/logger"
	"bookeasy/pkg/random"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	sessions     cache.Service
	notifier     notifications.Service
	bookingStore bookings.Store
	clk          clock.Clock
	src          random.Source
	log          *logger.Logger
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, sessions cache.Service, notifier notifications.Service, bookingStore bookings.Store, clk clock.Clock, src random.Source, log *logger.Logger) *Router {
	return &Router{
		config:       cfg,
		sessions:     sessions,
		notifier:     notifier,
		bookingStore: bookingStore,
		clk:          clk,
		src:          src,
		log:          log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Custom binding rules must exist before any handler binds a form
	buses.RegisterValidations()

	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAppointmentRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// The session store is the only hard dependency
		if err := r.sessions.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "bookeasy-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "bookeasy-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAppointmentRoutes configures the appointment wizard routes
func (r *Router) setupAppointmentRoutes(rg *gin.RouterGroup) {
	repo := appointments.NewRepository(r.sessions, r.config.Redis.SessionTTL)
	wizard := appointments.NewWizard(repo, r.notifier, r.clk, r.src, r.config.Simulate.SubmitDelay, r.log)
	controller := appointments.NewController(wizard, r.notifier)

	appointments.SetupAppointmentRoutes(rg, controller)
}

// setupBookingRoutes configures the bus wizard routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	repo := bookings.NewRepository(r.sessions, r.config.Redis.SessionTTL)
	service := bookings.NewService(repo, r.bookingStore, r.notifier, r.clk, r.src,
		r.config.Simulate.SearchDelay, r.config.Simulate.PaymentDelay, r.log)
	controller := bookings.NewController(service, r.notifier)

	bookings.SetupBookingRoutes(rg, controller)
}
