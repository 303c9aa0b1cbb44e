package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ArRuslan/mpj-lb2/internal/handlers"
	"github.com/ArRuslan/mpj-lb2/internal/middleware"
	"github.com/ArRuslan/mpj-lb2/internal/services"
)

// SetupRouter wires services and handlers over the given store connection
// and returns the ready-to-serve engine. All dependencies are passed
// explicitly; nothing reaches for package-level state.
func SetupRouter(db *gorm.DB) *gin.Engine {
	groupService := services.NewGroupService(db)
	subjectService := services.NewSubjectService(db)
	scheduleItemService := services.NewScheduleItemService(db)

	groupHandler := handlers.NewGroupHandler(groupService, scheduleItemService)
	subjectHandler := handlers.NewSubjectHandler(subjectService)
	scheduleItemHandler := handlers.NewScheduleItemHandler(groupService, subjectService, scheduleItemService)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	RegisterAPIRoutes(r, groupHandler, subjectHandler, scheduleItemHandler)
	return r
}
