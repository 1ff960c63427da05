package http

import (
	"completion-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every mutating route goes through the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	profiles := rg.Group("/profiles")
	{
		profiles.POST("", mw.RateLimit(), h.CreateProfile)
		profiles.GET("/:id", h.GetProfile)
		profiles.PUT("/:id/active", mw.RateLimit(), h.SetActiveGame)
		profiles.POST("/:id/import", mw.RateLimit(), h.Import)
	}

	games := profiles.Group("/:id/games/:game")
	{
		games.GET("", h.Checklist)
		games.GET("/violations", h.Violations)
		games.GET("/export", h.Export)
		games.POST("/toggle", mw.RateLimit(), h.Toggle)
		games.POST("/check-all", mw.RateLimit(), h.CheckAll)
		games.POST("/reset", mw.RateLimit(), h.Reset)
	}
}
