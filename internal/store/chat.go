package store

import (
	"context"
	"slices"

	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/model"
)

type conversationStore struct {
	queries *sqlc.Queries
}

func newConversationStore(queries *sqlc.Queries) ConversationStore {
	return &conversationStore{queries: queries}
}

func (s *conversationStore) Create(ctx context.Context, c *model.Conversation) error {
	row, err := s.queries.CreateConversation(ctx, sqlc.CreateConversationParams{
		ID:      c.ID,
		UserID:  c.UserID,
		AgentID: c.AgentID,
		Title:   c.Title,
	})
	if err != nil {
		return err
	}
	*c = *toConversationModel(row)
	return nil
}

func (s *conversationStore) GetByID(ctx context.Context, userID, id int64) (*model.Conversation, error) {
	row, err := s.queries.GetConversation(ctx, sqlc.GetConversationParams{ID: id, UserID: userID})
	if err != nil {
		return nil, notFound(err)
	}
	return toConversationModel(row), nil
}

func (s *conversationStore) List(ctx context.Context, userID int64, agentID *string) ([]model.Conversation, error) {
	rows, err := s.queries.ListConversations(ctx, sqlc.ListConversationsParams{UserID: userID, AgentID: agentID})
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toConversationModel), nil
}

func (s *conversationStore) Touch(ctx context.Context, id int64) error {
	return s.queries.TouchConversation(ctx, id)
}

func (s *conversationStore) Delete(ctx context.Context, userID, id int64) error {
	return affected(s.queries.DeleteConversation(ctx, sqlc.DeleteConversationParams{ID: id, UserID: userID}))
}

func toConversationModel(row sqlc.Conversation) *model.Conversation {
	return &model.Conversation{
		ID:            row.ID,
		UserID:        row.UserID,
		AgentID:       row.AgentID,
		Title:         row.Title,
		LastMessageAt: row.LastMessageAt.Time,
		CreatedAt:     row.CreatedAt.Time,
	}
}

type chatMessageStore struct {
	queries *sqlc.Queries
}

func newChatMessageStore(queries *sqlc.Queries) ChatMessageStore {
	return &chatMessageStore{queries: queries}
}

func (s *chatMessageStore) Create(ctx context.Context, msg *model.ChatMessage) error {
	row, err := s.queries.CreateChatMessage(ctx, sqlc.CreateChatMessageParams{
		ID:               msg.ID,
		ConversationID:   msg.ConversationID,
		Role:             string(msg.Role),
		Content:          msg.Content,
		PromptTokens:     int32(msg.PromptTokens),
		CompletionTokens: int32(msg.CompletionTokens),
	})
	if err != nil {
		return err
	}
	*msg = *toChatMessageModel(row)
	return nil
}

func (s *chatMessageStore) List(ctx context.Context, conversationID int64) ([]model.ChatMessage, error) {
	rows, err := s.queries.ListChatMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, toChatMessageModel), nil
}

func (s *chatMessageStore) ListRecent(ctx context.Context, conversationID int64, limit int32) ([]model.ChatMessage, error) {
	rows, err := s.queries.ListRecentChatMessages(ctx, sqlc.ListRecentChatMessagesParams{
		ConversationID: conversationID,
		MaxResults:     limit,
	})
	if err != nil {
		return nil, err
	}
	// Query returns newest first.
	slices.Reverse(rows)
	return mapRows(rows, toChatMessageModel), nil
}

func toChatMessageModel(row sqlc.ChatMessage) *model.ChatMessage {
	return &model.ChatMessage{
		ID:               row.ID,
		ConversationID:   row.ConversationID,
		Role:             model.ChatRole(row.Role),
		Content:          row.Content,
		PromptTokens:     int(row.PromptTokens),
		CompletionTokens: int(row.CompletionTokens),
		CreatedAt:        row.CreatedAt.Time,
	}
}
