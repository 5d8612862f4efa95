package router

import (
	"slices"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/handler"
)

// ChatRouter registers the chat routes. limit guards the model-backed endpoint.
func ChatRouter(rg *gin.RouterGroup, h *handler.ChatHandler, limit ...gin.HandlerFunc) {
	rg.GET("/agents", h.Agents)
	rg.POST("", withLimit(limit, h.Send)...)
	rg.GET("/conversations", h.Conversations)
	rg.GET("/conversations/:id/messages", h.Messages)
	rg.DELETE("/conversations/:id", h.DeleteConversation)
}

func BrandRouter(rg *gin.RouterGroup, h *handler.BrandHandler, limit ...gin.HandlerFunc) {
	rg.POST("/generate", withLimit(limit, h.Generate)...)
	rg.GET("/profiles", h.List)
	rg.GET("/profiles/:id", h.Get)
	rg.DELETE("/profiles/:id", h.Delete)
}

func withLimit(limit []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	return append(slices.Clone(limit), h)
}
