package router

import (
	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/handler"
)

func SocialRouter(rg *gin.RouterGroup, h *handler.SocialHandler) {
	rg.GET("/connections", h.Connections)
	rg.DELETE("/connections/:platform", h.Disconnect)
	rg.GET("/posts", h.Posts)
	rg.POST("/posts", h.SchedulePost)
	rg.DELETE("/posts/:id", h.CancelPost)
	rg.GET("/:platform/connect", h.Connect)
	rg.POST("/:platform/callback", h.Callback)
}

func AdminRouter(rg *gin.RouterGroup, h *handler.ProcessorHandler) {
	processor := rg.Group("/social-processor")
	processor.GET("", h.Status)
	processor.POST("/start", h.Start)
	processor.POST("/stop", h.Stop)
	processor.POST("/process-now", h.ProcessNow)
}
