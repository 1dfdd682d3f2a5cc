// Package router wires the API handlers onto echo routes.
package router

import (
	"net/http"

	"agrinet/internal/delivery/api/middleware"
	"agrinet/internal/delivery/api/router/handler"
	"agrinet/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler      *handler.ProfileHandler
	FollowHandler       *handler.FollowHandler
	ConversationHandler *handler.ConversationHandler
	NotificationHandler *handler.NotificationHandler
	SubmissionHandler   *handler.SubmissionHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
	MetricsHandler      http.Handler `name:"metrics" optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler      *handler.ProfileHandler
	followHandler       *handler.FollowHandler
	conversationHandler *handler.ConversationHandler
	notificationHandler *handler.NotificationHandler
	submissionHandler   *handler.SubmissionHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
	metricsHandler      http.Handler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:      params.ProfileHandler,
		followHandler:       params.FollowHandler,
		conversationHandler: params.ConversationHandler,
		notificationHandler: params.NotificationHandler,
		submissionHandler:   params.SubmissionHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
		metricsHandler:      params.MetricsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(r.metricsHandler))
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	profiles := apiV1.Group("/profiles")
	{
		profiles.POST("/me", r.profileHandler.EnsureProfile)
		profiles.GET("/:id", r.profileHandler.GetProfile)
		profiles.GET("/:id/followers", r.profileHandler.ListFollowers)
		profiles.GET("/:id/following", r.profileHandler.ListFollowing)
		profiles.GET("/:id/qr", r.profileHandler.FollowQR)
	}
	apiV1.GET("/experts", r.profileHandler.ListExperts)

	follows := apiV1.Group("/follows")
	{
		follows.POST("/qr", r.followHandler.FollowByQR)
		follows.PUT("/:targetId", r.followHandler.Follow)
		follows.DELETE("/:targetId", r.followHandler.Unfollow)
	}

	conversations := apiV1.Group("/conversations")
	{
		conversations.POST("", r.conversationHandler.StartConversation)
		conversations.GET("", r.conversationHandler.ListConversations)
		conversations.GET("/unread-count", r.conversationHandler.UnreadCount)
		conversations.GET("/:id/messages", r.conversationHandler.ListMessages)
		conversations.POST("/:id/messages", r.conversationHandler.SendMessage)
		conversations.POST("/:id/read", r.conversationHandler.MarkRead)
	}

	notifications := apiV1.Group("/notifications")
	{
		notifications.GET("", r.notificationHandler.ListNotifications)
		notifications.GET("/unread-count", r.notificationHandler.UnreadCount)
		notifications.POST("/read-all", r.notificationHandler.MarkAllRead)
		notifications.POST("/:id/read", r.notificationHandler.MarkRead)
		notifications.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}

	submissions := apiV1.Group("/submissions")
	{
		submissions.POST("", r.submissionHandler.Submit)
		submissions.GET("", r.submissionHandler.ListSubmissions)
		submissions.GET("/:id", r.submissionHandler.GetSubmission)
		submissions.POST("/:id/review", r.submissionHandler.Review, r.authMiddleware.RequireRole(entity.RoleExpert))
		submissions.POST("/:id/messages", r.submissionHandler.SendMessage)
		submissions.GET("/:id/messages", r.submissionHandler.ListMessages)
	}

	devices := apiV1.Group("/devices")
	{
		devices.POST("", r.deviceHandler.RegisterDevice)
		devices.GET("", r.deviceHandler.GetUserDevices)
		devices.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devices.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
