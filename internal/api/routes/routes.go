package routes

import (
	"aircraft-production-backend/internal/api/handlers"
	"aircraft-production-backend/internal/api/middleware"
	"aircraft-production-backend/internal/auth"
	"aircraft-production-backend/internal/config"
	"aircraft-production-backend/internal/database"
	"aircraft-production-backend/internal/metrics"
	"aircraft-production-backend/internal/registry"
	"aircraft-production-backend/internal/repository"
	"aircraft-production-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, m *metrics.Registry) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(m))
	router.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)))

	validator := service.NewValidator()
	txRunner := database.NewTxRunner(db)

	// Initialize repositories
	partTypeRepo := repository.NewPartTypeRepository(db)
	aircraftModelRepo := repository.NewAircraftModelRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	partRepo := repository.NewPartRepository(db)
	aircraftRepo := repository.NewAssembledAircraftRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Reference data shared by every service
	reg := registry.New(
		registry.NewRepositoryLoader(partTypeRepo, aircraftModelRepo, teamRepo),
		cfg.RegistryCacheTTL(),
		m,
	)

	// Initialize services
	catalogService := service.NewCatalogService(partTypeRepo, aircraftModelRepo, reg, validator)
	teamService := service.NewTeamService(teamRepo, partTypeRepo, partRepo, aircraftRepo, userRepo, txRunner, reg, validator)
	partService := service.NewPartService(partRepo, aircraftRepo, txRunner, reg, m, validator)
	assemblyService := service.NewAssemblyService(aircraftRepo, partRepo, partService, txRunner, reg, m, validator)
	stockService := service.NewStockService(partRepo, reg)
	userService := service.NewUserService(userRepo, txRunner, reg, validator)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())
	authMiddleware := auth.NewAuthMiddleware(tokens, userService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, reg, Version)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	teamHandler := handlers.NewTeamHandler(teamService)
	partHandler := handlers.NewPartHandler(partService)
	aircraftHandler := handlers.NewAircraftHandler(assemblyService, stockService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/me", userHandler.GetCurrentUser)

		partTypes := v1.Group("/part-types")
		{
			partTypes.GET("", catalogHandler.ListPartTypes)
			partTypes.POST("", catalogHandler.CreatePartType)
			partTypes.GET("/:id", catalogHandler.GetPartType)
			partTypes.PUT("/:id", catalogHandler.UpdatePartType)
			partTypes.DELETE("/:id", catalogHandler.DeletePartType)
		}

		aircraftModels := v1.Group("/aircraft-models")
		{
			aircraftModels.GET("", catalogHandler.ListAircraftModels)
			aircraftModels.POST("", catalogHandler.CreateAircraftModel)
			aircraftModels.GET("/:id", catalogHandler.GetAircraftModel)
			aircraftModels.PUT("/:id", catalogHandler.UpdateAircraftModel)
			aircraftModels.DELETE("/:id", catalogHandler.DeleteAircraftModel)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		parts := v1.Group("/parts")
		{
			parts.GET("", partHandler.ListParts)
			parts.POST("", partHandler.ProducePart)
			parts.GET("/:id", partHandler.GetPart)
			parts.DELETE("/:id", partHandler.DeletePart)
			parts.POST("/:id/recycle", partHandler.RecyclePart)
		}

		aircraft := v1.Group("/aircraft")
		{
			aircraft.GET("", aircraftHandler.ListAircraft)
			aircraft.POST("", aircraftHandler.AssembleAircraft)
			aircraft.GET("/availability/:model", aircraftHandler.CheckAvailability)
			aircraft.GET("/:id", aircraftHandler.GetAircraft)
			aircraft.PUT("/:id", aircraftHandler.UpdateAircraft)
			aircraft.DELETE("/:id", aircraftHandler.DisassembleAircraft)
			aircraft.PUT("/:id/slots/:slot", aircraftHandler.ReassignSlot)
		}

		users := v1.Group("/users")
		users.Use(authMiddleware.RequireAdmin())
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.RegisterUser)
			users.PUT("/:id/team", userHandler.AssignTeam)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Endpoint not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, nil, Version)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
