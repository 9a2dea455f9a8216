// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storely/internal/delivery/http/middleware"
	"storely/internal/delivery/http/router/handler"
	"storely/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	StoreHandler   *handler.StoreHandler
	OwnerHandler   *handler.OwnerHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	storeHandler   *handler.StoreHandler
	ownerHandler   *handler.OwnerHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		storeHandler:   params.StoreHandler,
		ownerHandler:   params.OwnerHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
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
		authGroup.POST("/login", r.authHandler.Login)

		profileGroup := authGroup.Group("/profile")
		profileGroup.Use(r.authMiddleware.Authenticate)
		profileGroup.PUT("/password", r.authHandler.ChangePassword)
	}

	// Store browsing and rating, any authenticated user
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/stores", r.storeHandler.ListStores)
		userGroup.POST("/stores/:storeId/ratings", r.storeHandler.SubmitRating)
	}

	// Store owner routes: authentication first, then the role check
	ownerGroup := e.Group("/store-owner")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	ownerGroup.Use(r.authMiddleware.RequireRole(entity.RoleStoreOwner))
	{
		ownerGroup.GET("/dashboard", r.ownerHandler.Dashboard)
	}

	// Administrator routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleSystemAdmin))
	{
		adminGroup.GET("/dashboard-stats", r.adminHandler.Stats)
		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/stores", r.adminHandler.CreateStore)
		adminGroup.GET("/stores", r.adminHandler.ListStores)
	}
}
