// routes/routes.go
package routes

import (
	"time"

	"carelink/config"
	"carelink/controllers"
	"carelink/middleware"
	"carelink/repositories"
	"carelink/services"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

var startTime = time.Now()

// SetupRoutes initializes all application routes
func SetupRoutes(db *mongo.Database, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Initialize repositories
	repos := initializeRepositories(db)

	// Initialize services
	svcs := initializeServices(repos, cfg)

	// Initialize controllers
	ctrls := initializeControllers(svcs)

	// Auth middleware is shared between route groups
	jwtService := utils.NewJWTService(cfg.JWTSecret)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, repos.User)

	// Global middleware
	setupGlobalMiddleware(router, redisClient, cfg)

	// Setup route groups
	setupPublicRoutes(router, db, redisClient, ctrls)
	setupAuthenticatedRoutes(router, ctrls, authMiddleware, redisClient)

	return router
}

// Repositories initialization
type Repositories struct {
	User      *repositories.UserRepository
	Patient   *repositories.PatientRepository
	Hospital  *repositories.HospitalRepository
	Emergency *repositories.EmergencyRepository
}

func initializeRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		User:      repositories.NewUserRepository(db),
		Patient:   repositories.NewPatientRepository(db),
		Hospital:  repositories.NewHospitalRepository(db),
		Emergency: repositories.NewEmergencyRepository(db),
	}
}

// Services initialization
type Services struct {
	Auth      *services.AuthService
	Patient   *services.PatientService
	Hospital  *services.HospitalService
	Emergency *services.EmergencyService
	SMS       *services.SMSService
}

func initializeServices(repos *Repositories, cfg *config.Config) *Services {
	jwtService := utils.NewJWTService(cfg.JWTSecret)
	smsService := services.NewSMSService(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)

	return &Services{
		Auth:      services.NewAuthService(repos.User, repos.Patient, jwtService),
		Patient:   services.NewPatientService(repos.Patient, repos.User),
		Hospital:  services.NewHospitalService(repos.Hospital),
		Emergency: services.NewEmergencyService(repos.Emergency, repos.Patient, repos.User, repos.Hospital, smsService),
		SMS:       smsService,
	}
}

// Controllers initialization
type Controllers struct {
	Auth      *controllers.AuthController
	Patient   *controllers.PatientController
	Hospital  *controllers.HospitalController
	Emergency *controllers.EmergencyController
}

func initializeControllers(svcs *Services) *Controllers {
	validator := utils.NewValidationService()

	return &Controllers{
		Auth:      controllers.NewAuthController(svcs.Auth, validator),
		Patient:   controllers.NewPatientController(svcs.Patient, validator),
		Hospital:  controllers.NewHospitalController(svcs.Hospital, validator),
		Emergency: controllers.NewEmergencyController(svcs.Emergency, validator),
	}
}

// Global middleware setup
func setupGlobalMiddleware(router *gin.Engine, redisClient *redis.Client, cfg *config.Config) {
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ResponseTimeMiddleware())

	// Panic recovery and error mapping wrap everything downstream
	errorHandler := middleware.NewErrorHandler(cfg.Environment, logrus.StandardLogger())
	router.Use(errorHandler.Handle())

	switch cfg.Environment {
	case "production":
		router.Use(middleware.ProductionLoggerMiddleware())
	case "development":
		router.Use(middleware.DevelopmentLoggerMiddleware())
	default:
		router.Use(middleware.DefaultLoggerMiddleware())
	}

	router.Use(middleware.CORSMiddleware(cfg.Environment))

	rateLimitWindow := time.Duration(cfg.RateLimitWindow) * time.Minute
	router.Use(middleware.RateLimitMiddleware(redisClient, cfg.Environment, cfg.RateLimitRequest, rateLimitWindow))
}

// Public routes (no authentication required)
func setupPublicRoutes(router *gin.Engine, db *mongo.Database, redisClient *redis.Client, ctrls *Controllers) {
	// Health check
	router.GET("/health", healthCheckHandler(db, redisClient))

	public := router.Group("/api/v1")
	{
		// Authentication routes
		auth := public.Group("/auth")
		auth.Use(middleware.AuthRateLimit(redisClient))
		SetupAuthRoutes(auth, ctrls.Auth)

		// Hospital directory is readable without authentication
		SetupHospitalRoutes(public, ctrls.Hospital)
	}
}

// Authenticated routes (requires valid JWT token)
func setupAuthenticatedRoutes(router *gin.Engine, ctrls *Controllers, authMiddleware *middleware.AuthMiddleware, redisClient *redis.Client) {
	api := router.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())

	SetupEmergencyRoutes(api, ctrls.Emergency, authMiddleware, redisClient)
	SetupPatientRoutes(api, ctrls.Patient)
}

// healthCheckHandler reports service health for load balancer probes
func healthCheckHandler(db *mongo.Database, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		statuses := map[string]string{
			"mongodb": "healthy",
			"redis":   "healthy",
		}

		ctx := c.Request.Context()
		if err := db.Client().Ping(ctx, nil); err != nil {
			statuses["mongodb"] = "unhealthy"
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			statuses["redis"] = "unhealthy"
		}

		uptime := time.Since(startTime).Round(time.Second).String()
		c.JSON(200, utils.HealthCheckResponse(statuses, "1.0.0", uptime))
	}
}
