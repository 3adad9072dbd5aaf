package main

import (
	"github.com/campushq/teambuilder/internal/config"
	"github.com/campushq/teambuilder/internal/handlers"
	"github.com/campushq/teambuilder/internal/models"
	"github.com/campushq/teambuilder/internal/services"
	"github.com/campushq/teambuilder/internal/utils"
	"github.com/campushq/teambuilder/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	cfg         *config.Config
	taskQueue   services.TaskQueue
	worker      *services.Worker
	scheduler   *services.Scheduler
	authHandler *handlers.AuthHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize activity logger
	services.InitActivityLogger(models.GetDB())

	// Start maintenance scheduler (log retention, refresh token purge)
	scheduler := services.StartCleanupScheduler(models.GetDB())

	// Initialize notification queue (uses Redis if enabled, otherwise sync mode)
	taskQueue := services.InitTaskQueue(cfg)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(services.DeliverNotification)
	}

	// Start async worker if Redis is enabled
	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(services.DeliverNotification)
			worker.Start()
		}
	}

	// Create default admin user
	authService := services.NewAuthService(models.GetDB(), &cfg.JWT, &cfg.LDAP)
	if err := authService.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		cfg:         cfg,
		taskQueue:   taskQueue,
		worker:      worker,
		scheduler:   scheduler,
		authHandler: handlers.NewAuthHandler(models.GetDB(), cfg),
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
	logger.Info().Msg("All background services stopped")
}
