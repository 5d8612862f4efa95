package router

import (
	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.GET("/url", h.GetAuthURL)
	rg.POST("/exchange", h.Exchange)
	rg.GET("/me", h.Me)
	rg.POST("/logout", h.Logout)
}

func ProfileRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.GET("/me", h.Me)
	rg.PATCH("/me", h.UpdateMe)
}
