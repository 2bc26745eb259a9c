package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/scalableservices/restaurant-service/docs" // Import generated docs
	"github.com/scalableservices/restaurant-service/internal/config"
	"github.com/scalableservices/restaurant-service/internal/controllers"
	"github.com/scalableservices/restaurant-service/internal/database"
	"github.com/scalableservices/restaurant-service/internal/metrics"
	"github.com/scalableservices/restaurant-service/internal/middleware"
	"github.com/scalableservices/restaurant-service/internal/models"
	"github.com/scalableservices/restaurant-service/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                   *gorm.DB
	restaurantService    services.RestaurantService
	restaurantController controllers.RestaurantController
	configuration        *config.Config
)

// @title Restaurant Service API
// @version 1.0
// @description Restaurant management backend: owners, restaurants and menus
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey UserTypeHeader
// @in header
// @name X-UserType
// @description Role marker gating owner-only mutations.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	restaurantService = services.NewRestaurantService(db)
	restaurantController = controllers.NewRestaurantController(restaurantService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupDatabase initializes the database connection and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromConfig(conf))
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(&models.Owner{}, &models.Restaurant{}, &models.MenuItem{})
	checkPanicErr(err)

	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	router.Use(middleware.RequestID())

	httpMetrics := metrics.NewHTTPMetrics("restaurant-service")
	router.Use(httpMetrics.Middleware())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(metrics.GetPrometheusHandler()))

	restaurant := router.Group("/restaurant")
	{
		// Public routes
		restaurant.POST("/owner/register", restaurantController.RegisterOwner)
		restaurant.GET("/menu/search", restaurantController.SearchMenus)
		restaurant.GET("/all", restaurantController.GetAllRestaurants)
		restaurant.GET("/:restaurantId", restaurantController.GetRestaurantByID)

		// Owner-only mutations, gated by the X-UserType role marker
		gated := restaurant.Group("")
		gated.Use(middleware.RequireUserType(middleware.RoleRestaurantOwner))
		{
			gated.POST("/register", restaurantController.RegisterRestaurant)
			gated.POST("/:restaurantId/menu", restaurantController.AddMenuItems)
			gated.PUT("/:restaurantId/update-restaurant", restaurantController.UpdateRestaurant)
			gated.PUT("/menu/:itemId", restaurantController.UpdateMenuItem)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "restaurant-service",
	})
}
