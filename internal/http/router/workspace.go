package router

import (
	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/handler"
)

func OnboardingRouter(rg *gin.RouterGroup, h *handler.OnboardingHandler) {
	rg.GET("", h.State)
	rg.POST("", h.Complete)
}

func TemplateRouter(rg *gin.RouterGroup, h *handler.TemplateHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.GET("/:id/export", h.Export)
}

func SubscriptionRouter(rg *gin.RouterGroup, h *handler.SubscriptionHandler) {
	rg.GET("", h.Summary)
}

func WebhookRouter(rg *gin.RouterGroup, h *handler.SubscriptionHandler) {
	rg.POST("/billing", h.BillingWebhook)
}

func DashboardRouter(rg *gin.RouterGroup, h *handler.DashboardHandler) {
	rg.GET("", h.Get)
}
