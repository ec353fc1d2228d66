package router

import (
	"net/http"

	"github.com/Gabriel-Pasternak/ReqWise/internal/handler"
	"github.com/Gabriel-Pasternak/ReqWise/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	RequirementHandler *handler.RequirementHandler
	FieldHandler       *handler.FieldHandler
	DashboardHandler   *handler.DashboardHandler
	EventsHandler      *handler.EventsHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		// Requirements
		requirements := api.Group("/requirements")
		{
			requirements.POST("", deps.RequirementHandler.Create)
			requirements.GET("", deps.RequirementHandler.List)
			requirements.GET("/:id", deps.RequirementHandler.GetDetail)
			requirements.PUT("/:id", deps.RequirementHandler.Update)
			requirements.DELETE("/:id", deps.RequirementHandler.Delete)
			requirements.GET("/:id/versions", deps.RequirementHandler.ListVersions)
		}

		// Tag suggestion
		api.POST("/tags/suggest", deps.RequirementHandler.SuggestTags)

		// Custom field definitions
		api.GET("/custom-fields", deps.FieldHandler.ListDefinitions)

		// Dashboard
		api.GET("/dashboard/stats", deps.DashboardHandler.GetStats)

		// Lifecycle event stream
		api.GET("/events/stream", deps.EventsHandler.Stream)
	}
}
