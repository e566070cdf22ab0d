package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	equipmentUC "labtrace/internal/application/equipment/usecases"
	testrequestUC "labtrace/internal/application/testrequest/usecases"
	uutUC "labtrace/internal/application/uut/usecases"
	"labtrace/internal/domain/uut"
	"labtrace/internal/infrastructure/config"
	"labtrace/internal/infrastructure/ratelimit"
	"labtrace/internal/infrastructure/repository"
	"labtrace/internal/interfaces/http/handlers"
	"labtrace/internal/interfaces/http/middleware"
	"labtrace/internal/shared/db"
	"labtrace/internal/shared/logger"
)

type Router struct {
	engine             *gin.Engine
	uutHandler         *handlers.UUTHandler
	equipmentHandler   *handlers.EquipmentHandler
	testRequestHandler *handlers.TestRequestHandler
	rateLimiter        ratelimit.RateLimiter
	logger             logger.Interface
}

// NewRouter wires repositories, use cases and handlers over the given
// database and Redis connections. A nil Redis client disables rate limiting.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Router {
	log := logger.NewLogger()

	unitRepo := repository.NewUUTRepository(database)
	equipmentRepo := repository.NewEquipmentRepository(database)
	requestRepo := repository.NewTestRequestRepository(database)

	tx := db.NewTransactionManager(database)
	clock := uut.NewLabClock()

	uutHandler := handlers.NewUUTHandler(
		uutUC.NewPreviewRegistrationUseCase(unitRepo, clock, log),
		uutUC.NewConfirmRegistrationUseCase(unitRepo, tx, clock, cfg.Allocator.MaxAttempts, log),
		uutUC.NewGetUnitUseCase(unitRepo, log),
		uutUC.NewListUnitsUseCase(unitRepo, log),
		uutUC.NewCheckoutUnitUseCase(unitRepo, clock, log),
	)

	equipmentHandler := handlers.NewEquipmentHandler(
		equipmentUC.NewCreateEquipmentUseCase(equipmentRepo, log),
		equipmentUC.NewUpdateEquipmentUseCase(equipmentRepo, log),
		equipmentUC.NewGetEquipmentUseCase(equipmentRepo, log),
		equipmentUC.NewListEquipmentUseCase(equipmentRepo, log),
		equipmentUC.NewRecordCalibrationUseCase(equipmentRepo, log),
		equipmentUC.NewDeleteEquipmentUseCase(equipmentRepo, log),
	)

	testRequestHandler := handlers.NewTestRequestHandler(
		testrequestUC.NewCreateTestRequestUseCase(requestRepo, log),
		testrequestUC.NewChangeStatusUseCase(requestRepo, log),
		testrequestUC.NewGetTestRequestUseCase(requestRepo, log),
		testrequestUC.NewListTestRequestsUseCase(requestRepo, log),
		testrequestUC.NewUpdateTestRequestUseCase(requestRepo, log),
		testrequestUC.NewDeleteTestRequestUseCase(requestRepo, log),
	)

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	return &Router{
		engine:             gin.New(),
		uutHandler:         uutHandler,
		equipmentHandler:   equipmentHandler,
		testRequestHandler: testRequestHandler,
		rateLimiter:        limiter,
		logger:             log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	r.setupUUTRoutes(api)
	r.setupEquipmentRoutes(api)
	r.setupTestRequestRoutes(api)
}

func (r *Router) setupUUTRoutes(api *gin.RouterGroup) {
	uuts := api.Group("/uuts")
	{
		uuts.POST("/preview", r.registrationLimit(), r.uutHandler.PreviewRegistration)
		uuts.POST("", r.registrationLimit(), r.uutHandler.ConfirmRegistration)
		uuts.GET("", r.uutHandler.ListUnits)
		uuts.GET("/lookup", r.uutHandler.LookupUnit)
		uuts.GET("/:id", r.uutHandler.GetUnit)
		uuts.POST("/:id/checkout", r.uutHandler.CheckoutUnit)
	}
}

func (r *Router) setupEquipmentRoutes(api *gin.RouterGroup) {
	equipment := api.Group("/equipment")
	{
		equipment.POST("", r.equipmentHandler.CreateEquipment)
		equipment.GET("", r.equipmentHandler.ListEquipment)
		equipment.GET("/:id", r.equipmentHandler.GetEquipment)
		equipment.PUT("/:id", r.equipmentHandler.UpdateEquipment)
		equipment.POST("/:id/calibration", r.equipmentHandler.RecordCalibration)
		equipment.DELETE("/:id", r.equipmentHandler.DeleteEquipment)
	}
}

func (r *Router) setupTestRequestRoutes(api *gin.RouterGroup) {
	requests := api.Group("/test-requests")
	{
		requests.POST("", r.testRequestHandler.CreateTestRequest)
		requests.GET("", r.testRequestHandler.ListTestRequests)
		requests.GET("/:id", r.testRequestHandler.GetTestRequest)
		requests.PUT("/:id", r.testRequestHandler.UpdateTestRequest)
		requests.PUT("/:id/status", r.testRequestHandler.ChangeStatus)
		requests.DELETE("/:id", r.testRequestHandler.DeleteTestRequest)
	}
}

func (r *Router) registrationLimit() gin.HandlerFunc {
	if r.rateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(r.rateLimiter, ratelimit.RegistrationLimits, r.logger)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
