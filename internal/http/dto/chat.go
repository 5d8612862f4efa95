package dto

import "solosuccess.app/api/internal/service"

type SendMessageRequest struct {
	ConversationID *int64 `json:"conversation_id,string"`
	AgentID        string `json:"agent_id" binding:"required"`
	Message        string `json:"message" binding:"required"`
}

func (r SendMessageRequest) Params() service.SendMessageParams {
	return service.SendMessageParams{
		ConversationID: r.ConversationID,
		AgentID:        r.AgentID,
		Message:        r.Message,
	}
}
