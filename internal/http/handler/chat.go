package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/dto"
	"solosuccess.app/api/internal/service"
)

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Agents(c *gin.Context) {
	c.JSON(http.StatusOK, h.chatService.Agents())
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	reply, err := h.chatService.Send(c.Request.Context(), userID(c), req.Params())
	if err != nil {
		respondError(c, err, "send message")
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *ChatHandler) Conversations(c *gin.Context) {
	conversations, err := h.chatService.Conversations(c.Request.Context(), userID(c), c.Query("agent_id"))
	if err != nil {
		respondError(c, err, "list conversations")
		return
	}
	c.JSON(http.StatusOK, conversations)
}

func (h *ChatHandler) Messages(c *gin.Context) {
	conversationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	messages, err := h.chatService.Messages(c.Request.Context(), userID(c), conversationID)
	if err != nil {
		respondError(c, err, "list messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) DeleteConversation(c *gin.Context) {
	conversationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.chatService.DeleteConversation(c.Request.Context(), userID(c), conversationID); err != nil {
		respondError(c, err, "delete conversation")
		return
	}
	c.Status(http.StatusNoContent)
}
