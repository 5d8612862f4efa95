package router

import (
	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/handler"
)

func TaskRouter(rg *gin.RouterGroup, h *handler.TaskHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.POST("/bulk-update", h.BulkUpdate)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func GoalRouter(rg *gin.RouterGroup, h *handler.GoalHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
