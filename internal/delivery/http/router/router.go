// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fixly/internal/delivery/http/middleware"
	"fixly/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	WorkerHandler   *handler.WorkerHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	categoryHandler *handler.CategoryHandler
	workerHandler   *handler.WorkerHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		categoryHandler: params.CategoryHandler,
		workerHandler:   params.WorkerHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)

		meGroup := authGroup.Group("/me")
		meGroup.Use(r.authMiddleware.Authenticate)
		meGroup.GET("", r.authHandler.Me)
		meGroup.PUT("", r.authHandler.UpdateMe)
	}

	// Public catalog routes
	e.GET("/category", r.categoryHandler.ListCategories)

	workerGroup := e.Group("/workers")
	{
		workerGroup.GET("", r.workerHandler.ListWorkers)
		workerGroup.GET("/:id", r.workerHandler.GetWorker)
		workerGroup.GET("/:id/qrcode", r.workerHandler.GetWorkerQRCode)
		workerGroup.GET("/:id/feedback", r.workerHandler.ListFeedback)
		workerGroup.POST("/:id/feedback", r.workerHandler.AddFeedback, r.authMiddleware.Authenticate)
	}

	// Admin routes require authentication and the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/stats", r.adminHandler.GetStats)

		adminGroup.GET("/clients", r.adminHandler.ListClients)
		adminGroup.DELETE("/clients/:id", r.adminHandler.RemoveClient)

		adminGroup.GET("/workers", r.adminHandler.ListWorkers)
		adminGroup.PATCH("/workers/:id/toggle-active", r.adminHandler.ToggleWorkerActive)
		adminGroup.DELETE("/workers/:id", r.adminHandler.RemoveWorker)

		adminGroup.GET("/services", r.adminHandler.ListServices)
		adminGroup.POST("/services", r.adminHandler.CreateService)
		adminGroup.PATCH("/services/:id", r.adminHandler.RenameService)
		adminGroup.DELETE("/services/:id", r.adminHandler.DeleteService)

		adminGroup.GET("/feedbacks", r.adminHandler.ListFeedbacks)
		adminGroup.DELETE("/feedbacks/:id", r.adminHandler.RemoveFeedback)
	}
}
