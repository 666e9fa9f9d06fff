package http

import (
	"github.com/gin-gonic/gin"

	"taskclaim/internal/adapter/http/handlers"
	"taskclaim/internal/adapter/http/middleware"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Task         *handlers.TaskHandler
	User         *handlers.UserHandler
	Stats        *handlers.StatsHandler
	Notification *handlers.NotificationHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Task.ListTasks)
		api.POST("/tasks", h.Task.CreateTask)
		api.PUT("/tasks/:id", h.Task.UpdateTask)
		api.DELETE("/tasks/:id", h.Task.DeleteTask)
		api.POST("/tasks/:id/claim", h.Task.ClaimTask)
		api.POST("/tasks/:id/unclaim", h.Task.UnclaimTask)

		api.POST("/register", h.User.Register)
		api.POST("/login", h.User.Login)
		api.GET("/users", h.User.ListUsers)
		api.DELETE("/users/:id", h.User.DeleteUser)
		api.GET("/users/:id/settings", h.User.GetSettings)
		api.PUT("/users/:id/settings", h.User.UpdateSettings)
		api.PUT("/users/:id/profile", h.User.UpdateProfile)
		api.PUT("/users/:id/password", h.User.ChangePassword)
		api.GET("/users/:id/export", h.User.ExportUserData)

		api.GET("/dashboard/stats", h.Stats.DashboardStats)
		api.GET("/dashboard/user-stats/:id", h.Stats.UserStats)
		api.GET("/analytics/overview", h.Stats.AnalyticsOverview)
		api.GET("/team/overview", h.Stats.TeamOverview)

		api.GET("/notifications/:userId", h.Notification.ListNotifications)
	}
}
