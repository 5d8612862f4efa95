package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/dto"
	"solosuccess.app/api/internal/service"
)

type SocialHandler struct {
	socialService service.SocialService
}

func NewSocialHandler(socialService service.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

func (h *SocialHandler) Connections(c *gin.Context) {
	conns, err := h.socialService.Connections(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err, "list connections")
		return
	}
	c.JSON(http.StatusOK, conns)
}

func (h *SocialHandler) Connect(c *gin.Context) {
	authURL, state, err := h.socialService.Connect(c.Request.Context(), userID(c), c.Param("platform"))
	if err != nil {
		respondError(c, err, "start connection")
		return
	}
	c.JSON(http.StatusOK, dto.ConnectResponse{AuthorizationURL: authURL, State: state})
}

func (h *SocialHandler) Callback(c *gin.Context) {
	var req dto.CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	conn, err := h.socialService.Callback(c.Request.Context(), userID(c), c.Param("platform"), req.Code, req.State)
	if err != nil {
		respondError(c, err, "complete connection")
		return
	}
	c.JSON(http.StatusOK, conn)
}

func (h *SocialHandler) Disconnect(c *gin.Context) {
	if err := h.socialService.Disconnect(c.Request.Context(), userID(c), c.Param("platform")); err != nil {
		respondError(c, err, "disconnect account")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SocialHandler) Posts(c *gin.Context) {
	posts, err := h.socialService.Posts(c.Request.Context(), userID(c), c.Query("status"))
	if err != nil {
		respondError(c, err, "list posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *SocialHandler) SchedulePost(c *gin.Context) {
	var req dto.SchedulePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	post, err := h.socialService.SchedulePost(c.Request.Context(), userID(c), req.Params())
	if err != nil {
		respondError(c, err, "schedule post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *SocialHandler) CancelPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.socialService.CancelPost(c.Request.Context(), userID(c), postID)
	if err != nil {
		respondError(c, err, "cancel post")
		return
	}
	c.JSON(http.StatusOK, post)
}
