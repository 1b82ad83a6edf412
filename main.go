package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club"
	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/middleware"
	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/config"
	_ "github.com/Damouche-Billel/4FSC0WE004-Live-Api/docs" // Swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title           Football Club Records API
// @version         1.0
// @description     CRUD backend for a football club: players, teams and tournaments with reference expansion.

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Database connection failed: ", err)
	}

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	clubModule := club.NewModule(db)
	clubModule.SetupRoutes(r)

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", healthHandler(db))

	// Anything outside /api falls through to the static entry page.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
			return
		}
		c.File("./public/index.html")
	})

	if err := clubModule.StartScheduler(); err != nil {
		log.Printf("Scheduler failed to start: %v", err)
	}
	defer clubModule.StopScheduler()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed: ", err)
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 500 {object} HealthResponse
// @Router /health [get]
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, HealthResponse{
				Message:  "Server is running",
				Database: "unreachable",
			})
			return
		}

		c.JSON(http.StatusOK, HealthResponse{
			Message:  "Server is running",
			Database: "connected",
		})
	}
}
