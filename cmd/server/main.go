package main

import (
	"context" // Context for the Redis ping
	"log"     // Startup logging

	"rental_listing/internal/api"    // API handlers and router
	"rental_listing/internal/config" // Configuration
	"rental_listing/internal/db"     // Database helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Block until the database accepts connections, then keep the handle
	database := db.Await(cfg.DSN())

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(database, redisClient, cfg.JWTSecret)

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort)
	r.Run(":" + cfg.AppPort)
}
