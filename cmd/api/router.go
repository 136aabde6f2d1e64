package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"circuithub-backend/internal/shared/middleware"
	"circuithub-backend/internal/shared/response"
	"circuithub-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(middleware.ClientIPMiddleware())

	r.GET("/health", healthCheck(c))

	api := r.Group("/api/v1")

	// ========================================
	// PUBLIC ROUTES
	// ========================================

	api.POST("/auth/login", c.AuthHandler.Login)

	api.GET("/categories", c.CategoryHandler.List)
	api.GET("/categories/:slug", c.CategoryHandler.GetBySlug)

	api.GET("/tutorials", c.TutorialHandler.List)
	api.GET("/tutorials/:slug", c.TutorialHandler.GetBySlug)
	api.GET("/tutorials/:slug/comments", c.CommentHandler.ListForTutorial)
	api.POST("/tutorials/:slug/comments", c.CommentHandler.Create)

	api.POST("/track", c.AnalyticsHandler.Track)

	// ========================================
	// ADMIN ROUTES
	// ========================================

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/categories", c.CategoryHandler.List)
		admin.POST("/categories", c.CategoryHandler.Create)
		admin.PUT("/categories/:id", c.CategoryHandler.Update)
		admin.DELETE("/categories/:id", c.CategoryHandler.Delete)

		admin.GET("/tutorials", c.TutorialHandler.AdminList)
		admin.POST("/tutorials", c.TutorialHandler.Create)
		admin.GET("/tutorials/:id", c.TutorialHandler.AdminGet)
		admin.PUT("/tutorials/:id", c.TutorialHandler.Update)
		admin.DELETE("/tutorials/:id", c.TutorialHandler.Delete)
		admin.POST("/tutorials/:id/comments", c.CommentHandler.AdminCreate)

		admin.GET("/comments", c.CommentHandler.List)
		admin.PUT("/comments/:id/approve", c.CommentHandler.Approve)
		admin.DELETE("/comments/:id", c.CommentHandler.Delete)
		admin.GET("/moderation/pending-count", c.CommentHandler.PendingCount)

		admin.GET("/analytics", c.AnalyticsHandler.Summary)
		admin.GET("/analytics/export", c.AnalyticsHandler.Export)

		admin.POST("/uploads", c.UploadHandler.Upload)
	}

	return r
}

func healthCheck(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "SYS_002", "database unavailable")
			return
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "SYS_003", "cache unavailable")
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	}
}
