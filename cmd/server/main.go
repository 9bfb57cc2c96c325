package main

import (
	"context"                     // context package is needed for Redis operations
	"crypto/rand"                 // Ephemeral session secret
	"errors"                      // Server shutdown check
	"net/http"                    // HTTP server
	"os"                          // Standard streams
	"os/signal"                   // Graceful shutdown
	"recipe_hub/internal/api"     // Custom package for API handlers
	"recipe_hub/internal/config"  // Custom package for configuration
	"recipe_hub/internal/db"      // Custom package for database access
	"recipe_hub/internal/logging" // Custom package for logger setup
	"recipe_hub/internal/session" // Custom package for sessions
	"syscall"                     // Termination signals
	"time"                        // Timeouts

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	if err := logging.Setup(os.Stdout, cfg.LogLevel, cfg.IsProd); err != nil {
		logrus.Fatalf("failed to set up logger: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect to the database
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		// Sessions will not survive a restart
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			logrus.Fatalf("failed to generate session secret: %v", err)
		}
		logrus.Warn("SESSION_SECRET not set, using a random key")
	}
	sessions := session.NewManager(session.NewRedisStore(redisClient, cfg.SessionTTL), secret, session.Options{
		CookieName: cfg.SessionCookie, // Cookie name
		TTL:        cfg.SessionTTL,    // Session lifetime
		Secure:     cfg.CookieSecure,  // HTTPS-only cookie
	})

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Deps{DB: gdb, Redis: redisClient, Sessions: sessions})
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort, // Listen address
		Handler:           r,                 // Gin engine
		ReadHeaderTimeout: 10 * time.Second,  // Slow client guard
	}

	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for a termination signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logrus.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
	_ = redisClient.Close()
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
