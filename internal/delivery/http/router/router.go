// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pulse/internal/delivery/http/middleware"
	"pulse/internal/delivery/http/router/handler"
	"pulse/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ResolverHandler    *handler.ResolverHandler
	AccrualHandler     *handler.AccrualHandler
	LeaderboardHandler *handler.LeaderboardHandler
	AdminHandler       *handler.AdminHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	resolverHandler    *handler.ResolverHandler
	accrualHandler     *handler.AccrualHandler
	leaderboardHandler *handler.LeaderboardHandler
	adminHandler       *handler.AdminHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		resolverHandler:    params.ResolverHandler,
		accrualHandler:     params.AccrualHandler,
		leaderboardHandler: params.LeaderboardHandler,
		adminHandler:       params.AdminHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Read API routes that require authentication
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/creators/:creatorId/handles", r.resolverHandler.GetCreatorHandles)
		apiGroup.GET("/creators/:creatorId/accrual", r.accrualHandler.GetCreatorAccrual)

		apiGroup.GET("/campaigns/:campaignId/handles", r.resolverHandler.GetCampaignHandles)
		apiGroup.GET("/campaigns/:campaignId/collisions", r.resolverHandler.GetCampaignCollisions)
		apiGroup.GET("/campaigns/:campaignId/accrual", r.accrualHandler.GetCampaignAccrual)
		apiGroup.GET("/campaigns/:campaignId/leaderboard", r.leaderboardHandler.GetCampaignLeaderboard)

		apiGroup.POST("/accruals/handles", r.accrualHandler.AccrueHandles)
	}

	// Maintenance routes that require authentication and the operator role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleOperator))
	{
		adminGroup.POST("/campaigns/:campaignId/reconcile", r.adminHandler.ReconcileCampaign)
		adminGroup.POST("/campaigns/:campaignId/refresh", r.adminHandler.RequestRefresh)
	}
}
