package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArRuslan/mpj-lb2/internal/handlers"
)

// RegisterAPIRoutes builds the explicit route table for the three
// resources. Collection routes keep their trailing slash; Gin redirects
// the slashless form.
func RegisterAPIRoutes(r *gin.Engine, groupHandler *handlers.GroupHandler, subjectHandler *handlers.SubjectHandler, scheduleItemHandler *handlers.ScheduleItemHandler) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	groups := r.Group("/groups")
	{
		groups.GET("/", groupHandler.List)
		groups.POST("/", groupHandler.Create)
		groups.GET("/:id", groupHandler.Get)
		groups.PATCH("/:id", groupHandler.Update)
		groups.DELETE("/:id", groupHandler.Delete)
		groups.GET("/:id/scheduleItems", groupHandler.ListScheduleItems)
		groups.GET("/:id/scheduleItems/export", groupHandler.ExportScheduleItems)
	}

	subjects := r.Group("/subjects")
	{
		subjects.GET("/", subjectHandler.List)
		subjects.POST("/", subjectHandler.Create)
		subjects.GET("/:id", subjectHandler.Get)
		subjects.PATCH("/:id", subjectHandler.Update)
		subjects.DELETE("/:id", subjectHandler.Delete)
	}

	scheduleItems := r.Group("/scheduleItems")
	{
		scheduleItems.GET("/", scheduleItemHandler.List)
		scheduleItems.POST("/", scheduleItemHandler.Create)
		scheduleItems.GET("/:id", scheduleItemHandler.Get)
		scheduleItems.PATCH("/:id", scheduleItemHandler.Update)
		scheduleItems.DELETE("/:id", scheduleItemHandler.Delete)
	}
}
