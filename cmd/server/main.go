package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"educonnect/backend/internal/config"
	"educonnect/backend/internal/database"
	"educonnect/backend/internal/handler"
	"educonnect/backend/internal/hub"
	"educonnect/backend/internal/middleware"
	"educonnect/backend/internal/registry"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "educonnect/backend/docs" // Registers the generated OpenAPI document with swag

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           EduConnect API
// @version         1.0
// @description     Profiles, friendships and events for the EduConnect network.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to the database
	database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)

	var sinks []hub.Sink
	if cfg.RedisURL != "" {
		redisSink, err := hub.NewRedisSink(context.Background(), cfg.RedisURL, cfg.RedisChannel)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisSink.Close()
		sinks = append(sinks, redisSink)
		log.Printf("[HUB] Publishing notifications to Redis channel %q", cfg.RedisChannel)
	}

	notifications := hub.NewHub(sinks...)
	defer notifications.Close()
	reg := registry.New(database.DB, notifications)
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	router := gin.Default()
	router.Use(middleware.RequestID())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	handler.New(reg, notifications).RegisterRoutes(router, limiter)

	fmt.Printf("Server is running on %s\n", cfg.Port)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", cfg.Port)
	log.Fatal(router.Run(cfg.Port))
}
