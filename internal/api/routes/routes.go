package routes

import (
	"location-production-backend/internal/api/handlers"
	"location-production-backend/internal/api/middleware"
	"location-production-backend/internal/config"
	"location-production-backend/internal/metrics"
	"location-production-backend/internal/repository"
	"location-production-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Handlers groups the API handlers mounted under /api/v1
type Handlers struct {
	Stage    *handlers.StageHandler
	Rental   *handlers.RentalHandler
	Calendar *handlers.CalendarHandler
}

// SetupRoutes configures all the routes for the application. A nil registry
// disables the /metrics endpoint and metric recording.
func SetupRoutes(db *gorm.DB, cfg *config.Config, registry *prometheus.Registry) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Actor())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	repos := repository.NewRepositories(db)
	transactor := repository.NewTransactor(db)

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if registry != nil {
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	// Initialize services
	stageService := service.NewStageService(repos, transactor, validator).
		WithTransitionPolicy(service.NewTransitionPolicy(cfg.StrictStageTransitions)).
		WithRecorder(recorder)
	calendarService := service.NewCalendarSyncService(repos, transactor, validator).
		WithRecorder(recorder)
	rentalService := service.NewRentalService(repos, transactor, stageService, calendarService, validator)

	// Health check routes
	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if registry != nil {
		router.GET("/metrics", gin.WrapH(metrics.HTTPHandler(registry)))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterAPIRoutes(router.Group("/api/v1"), &Handlers{
		Stage:    handlers.NewStageHandler(stageService),
		Rental:   handlers.NewRentalHandler(rentalService, stageService, calendarService),
		Calendar: handlers.NewCalendarHandler(calendarService),
	})

	return router
}

// RegisterAPIRoutes mounts the rental, stage and calendar endpoints on the group
func RegisterAPIRoutes(v1 *gin.RouterGroup, h *Handlers) {
	rentals := v1.Group("/rentals")
	{
		rentals.POST("", h.Rental.CreateRental)
		rentals.GET("/:id", h.Rental.GetRental)
		rentals.DELETE("/:id", h.Rental.DeleteRental)
		rentals.PATCH("/:id/dates", h.Rental.UpdateProductionDates)
		rentals.GET("/:id/progress", h.Rental.GetProgress)
		rentals.POST("/:id/progress/recompute", h.Rental.RecomputeProgress)
		rentals.GET("/:id/stages", h.Rental.ListStages)
		rentals.POST("/:id/stages/defaults", h.Rental.CreateDefaultStages)
		rentals.GET("/:id/history", h.Rental.GetHistory)
		rentals.GET("/:id/events", h.Rental.ListEvents)
		rentals.POST("/:id/events/regenerate", h.Rental.RegenerateEvents)
		rentals.DELETE("/:id/events", h.Rental.DeleteEvents)
	}

	stages := v1.Group("/stages")
	{
		stages.POST("", h.Stage.CreateStage)
		stages.GET("/:id", h.Stage.GetStage)
		stages.PATCH("/:id", h.Stage.UpdateStage)
		stages.DELETE("/:id", h.Stage.DeleteStage)
		stages.PUT("/:id/status", middleware.RequireActor(), h.Stage.UpdateStageStatus)
		stages.GET("/:id/history", h.Stage.GetStageHistory)
	}

	calendar := v1.Group("/calendar")
	{
		calendar.GET("/events", h.Calendar.ListEvents)
		calendar.PATCH("/events/:id", h.Calendar.MoveEvent)
	}
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
