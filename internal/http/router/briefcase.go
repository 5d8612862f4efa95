package router

import (
	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/handler"
)

func BriefcaseRouter(rg *gin.RouterGroup, h *handler.BriefcaseHandler) {
	briefcases := rg.Group("/briefcases")
	briefcases.GET("", h.List)
	briefcases.POST("", h.Create)
	briefcases.DELETE("/:id", h.Delete)
	briefcases.GET("/:id/documents", h.ListDocuments)
	briefcases.POST("/:id/documents", h.Upload)

	documents := rg.Group("/documents")
	documents.GET("/search", h.Search)
	documents.GET("/:id", h.GetDocument)
	documents.DELETE("/:id", h.DeleteDocument)
}
