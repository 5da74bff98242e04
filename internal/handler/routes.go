package handler

import (
	"educonnect/backend/internal/auth"
	"educonnect/backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api/v1. Mutating routes are limited per
// caller identity by limiter.
func (h *Handler) RegisterRoutes(router gin.IRouter, limiter *middleware.RateLimiter) {
	limit := limiter.Middleware(auth.Identity)
	requireProfile := auth.RequireProfile(h.reg)

	apiV1 := router.Group("/api/v1")
	{
		profileRoutes := apiV1.Group("/profiles")
		{
			profileRoutes.POST("", auth.AuthMiddleware(), limit, h.CreateProfile)
			profileRoutes.GET("/me", auth.AuthMiddleware(), h.GetMe) // Must be before /:identity
			profileRoutes.GET("/:identity", auth.OptionalAuthMiddleware(), h.GetProfile)
			profileRoutes.GET("/:identity/friends/count", h.GetFriendCount)
			profileRoutes.GET("/:identity/relations", h.GetRelations)
			profileRoutes.GET("/:identity/friendship/:other", h.CheckFriendship)

			// Friendship routes
			profileRoutes.POST("/:identity/request", auth.AuthMiddleware(), limit, requireProfile, h.SendRequest)
			profileRoutes.POST("/:identity/accept", auth.AuthMiddleware(), limit, h.AcceptRequest)
		}

		eventRoutes := apiV1.Group("/events")
		{
			eventRoutes.POST("", auth.AuthMiddleware(), limit, requireProfile, h.CreateEvent)
			eventRoutes.GET("", h.GetEvents)
			eventRoutes.GET("/count", h.GetEventCount)
			eventRoutes.GET("/:index", h.GetEventByIndex)
		}

		notificationRoutes := apiV1.Group("/notifications")
		{
			notificationRoutes.GET("", h.GetNotifications)
			notificationRoutes.GET("/stream", h.StreamNotifications)
		}

		apiV1.GET("/state", h.GetState)
	}
}
