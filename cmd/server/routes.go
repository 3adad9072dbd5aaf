package main

import (
	"github.com/campushq/teambuilder/internal/handlers"
	"github.com/campushq/teambuilder/internal/middleware"
	"github.com/campushq/teambuilder/internal/models"
	"github.com/campushq/teambuilder/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS(), middleware.Trace())

	// Rate limiter for credential endpoints
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	healthHandler := handlers.NewHealthHandler()
	r.GET("/health", healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api/v1")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/register", svc.authHandler.Register)
			auth.POST("/login", svc.authHandler.Login)
			auth.POST("/refresh", svc.authHandler.Refresh)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.Me)
			protected.POST("/auth/logout", svc.authHandler.Logout)
			protected.POST("/auth/change-password", svc.authHandler.ChangePassword)

			// Accounts
			accountHandler := handlers.NewAccountHandler(models.GetDB())
			protected.GET("/accounts", accountHandler.List)
			protected.GET("/accounts/:id", accountHandler.GetByID)
			protected.PATCH("/accounts/:id", accountHandler.Update)

			// Projects
			projectHandler := handlers.NewProjectHandler(models.GetDB())
			protected.GET("/projects", projectHandler.List)
			protected.GET("/projects/:id", projectHandler.GetByID)
			protected.POST("/projects", projectHandler.Create)
			protected.PUT("/projects/:id", projectHandler.Update)
			protected.DELETE("/projects/:id", projectHandler.Delete)

			// Project messages
			messageHandler := handlers.NewMessageHandler(models.GetDB())
			protected.GET("/projects/:id/private-messages", messageHandler.ListPrivate)
			protected.GET("/projects/:id/private-messages/:mid", messageHandler.GetPrivate)
			protected.POST("/projects/:id/private-messages", messageHandler.CreatePrivate)
			protected.GET("/projects/:id/public-messages", messageHandler.ListPublic)
			protected.GET("/projects/:id/public-messages/:mid", messageHandler.GetPublic)
			protected.POST("/projects/:id/public-messages", messageHandler.CreatePublic)

			// Follows
			followHandler := handlers.NewFollowHandler(models.GetDB())
			protected.GET("/follows", followHandler.List)
			protected.POST("/follows", followHandler.Create)
			protected.GET("/follows/:id", followHandler.GetByID)
			protected.DELETE("/follows/:id", followHandler.Delete)

			// Memberships
			membershipHandler := handlers.NewMembershipHandler(models.GetDB())
			protected.GET("/memberships", membershipHandler.List)
			protected.GET("/memberships/:id", membershipHandler.GetByID)
			protected.PUT("/memberships/:id", membershipHandler.Update)
			protected.DELETE("/memberships/:id", membershipHandler.Delete)

			// Requests
			requestHandler := handlers.NewRequestHandler(models.GetDB())
			protected.GET("/requests", requestHandler.List)
			protected.GET("/requests/:id", requestHandler.GetByID)
			protected.POST("/requests", requestHandler.Create)
			protected.PUT("/requests/:id", requestHandler.Update)
		}

		// Admin only routes
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.AuditLog())
		{
			// Direct membership creation, bypassing the request flow
			membershipHandler := handlers.NewMembershipHandler(models.GetDB())
			admin.POST("/memberships", membershipHandler.Create)

			// Activity logs
			activityLogHandler := handlers.NewActivityLogHandler(models.GetDB())
			admin.GET("/activity-logs", activityLogHandler.List)
			admin.GET("/activity-logs/modules", activityLogHandler.Modules)
			admin.POST("/activity-logs/cleanup", activityLogHandler.Cleanup)
		}
	}
}
