package routes

import (
	"net/http"
	"time"

	"interntrack_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the HTTP API under /api. The auth guard is passed
// down so each handler decides which of its routes are protected.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authGuard gin.HandlerFunc,
) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authGuard)
		appHandlers.InternshipHandler.RegisterRoutes(api, authGuard)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "running",
				"message":   "Internship Tracker API",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}

	ginRouter.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})
}
