package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/softmindsol/stone-identifier-be/internal/app"
	"github.com/softmindsol/stone-identifier-be/internal/config"
	"github.com/softmindsol/stone-identifier-be/internal/database"
	"github.com/softmindsol/stone-identifier-be/internal/server"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

// @title Stone Identifier API
// @version 1.0
// @description Backend for gemstone identification and collection tracking.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// fetch cfg
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// load global logger
	logger := Logger.New(cfg.Debug)
	logger.Info("Logger initialized")

	// database connections
	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	rc, err := database.NewRedis(cfg.Redis)
	if err != nil {
		logger.Warnf("Redis unavailable, gem detail cache disabled: %v", err)
		rc = nil
	}

	// wire application
	application, err := app.NewApp(cfg, logger, db, rc)
	if err != nil {
		logger.Fatalf("Failed to initialize application: %v", err)
	}
	if err := application.StartScheduler(); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}

	// compose router
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	server.InitializeRoutes(cfg, router, application.GetServerDependencies())

	port := cfg.Port
	if port == 0 {
		port = 8080
	}

	// listen with graceful exit
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router.Handler(),
	}
	go func() {
		logger.Infof("Server listening on :%d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server exiting: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	application.StopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown err %v", err)
	}
	logger.Info("Shutdown system")
}
