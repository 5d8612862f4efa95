package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/common/llm"
	"solosuccess.app/api/common/logger"
	"solosuccess.app/api/common/metrics"
	"solosuccess.app/api/internal/domain"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

const (
	// chatHistoryLimit is how many stored messages are replayed to the model.
	chatHistoryLimit  = 20
	maxChatMessageLen = 4000
	maxToolRounds     = 3
	chatMaxTokens     = 1024
	upcomingTaskDays  = 14
)

type ChatService interface {
	Agents() []model.Agent
	Send(ctx context.Context, userID int64, params SendMessageParams) (*ChatReply, error)
	Conversations(ctx context.Context, userID int64, agentID string) ([]model.Conversation, error)
	Messages(ctx context.Context, userID, conversationID int64) ([]model.ChatMessage, error)
	DeleteConversation(ctx context.Context, userID, conversationID int64) error
}

type SendMessageParams struct {
	ConversationID *int64
	AgentID        string
	Message        string
}

type ChatReply struct {
	Conversation model.Conversation `json:"conversation"`
	Message      model.ChatMessage  `json:"message"`
	Reply        model.ChatMessage  `json:"reply"`
}

type listTasksArgs struct {
	Limit int `json:"limit"`
}

type createTaskArgs struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
	DueDate  string `json:"due_date"`
}

type chatService struct {
	conversations store.ConversationStore
	messages      store.ChatMessageStore
	tasks         store.TaskStore
	taskService   TaskService
	client        llm.ChatClient
	now           func() time.Time
}

// NewChatService wires the agents. client may be nil when no chat model is configured.
func NewChatService(conversations store.ConversationStore, messages store.ChatMessageStore, tasks store.TaskStore, taskService TaskService, client llm.ChatClient) ChatService {
	return &chatService{
		conversations: conversations,
		messages:      messages,
		tasks:         tasks,
		taskService:   taskService,
		client:        client,
		now:           time.Now,
	}
}

func (s *chatService) Agents() []model.Agent {
	return domain.Agents
}

func (s *chatService) Send(ctx context.Context, userID int64, params SendMessageParams) (*ChatReply, error) {
	text := strings.TrimSpace(params.Message)
	agent, known := domain.AgentByID(params.AgentID)

	var v validator
	v.check(known, "agent_id", "unknown agent")
	v.check(text != "", "message", "must not be empty")
	v.check(utf8.RuneCountInString(text) <= maxChatMessageLen, "message", fmt.Sprintf("must be at most %d characters", maxChatMessageLen))
	if err := v.err(); err != nil {
		return nil, err
	}

	if s.client == nil {
		return nil, ErrFeatureUnavailable
	}

	conv, err := s.resolveConversation(ctx, userID, params.ConversationID, agent, text)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &userID, Component: "solosuccess.chat"})

	userMsg := &model.ChatMessage{
		ID:             id.New(),
		ConversationID: conv.ID,
		Role:           model.ChatRoleUser,
		Content:        text,
	}
	if err := s.messages.Create(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("storing message: %w", err)
	}

	history, err := s.messages.ListRecent(ctx, conv.ID, chatHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	content, prompt, completion, err := s.complete(ctx, userID, agent, history)
	if err != nil {
		slog.ErrorContext(ctx, "chat completion failed", "error", err, "agent_id", agent.ID, "conversation_id", conv.ID)
		return nil, fmt.Errorf("%w: %v", ErrAssistantFailed, err)
	}
	metrics.RecordTokens("chat", prompt, completion)

	reply := &model.ChatMessage{
		ID:               id.New(),
		ConversationID:   conv.ID,
		Role:             model.ChatRoleAssistant,
		Content:          content,
		PromptTokens:     prompt,
		CompletionTokens: completion,
	}
	if err := s.messages.Create(ctx, reply); err != nil {
		return nil, fmt.Errorf("storing reply: %w", err)
	}
	if err := s.conversations.Touch(ctx, conv.ID); err != nil {
		slog.WarnContext(ctx, "failed to touch conversation", "error", err, "conversation_id", conv.ID)
	}

	slog.InfoContext(ctx, "chat reply sent",
		"agent_id", agent.ID,
		"conversation_id", conv.ID,
		"prompt_tokens", prompt,
		"completion_tokens", completion)

	return &ChatReply{Conversation: *conv, Message: *userMsg, Reply: *reply}, nil
}

func (s *chatService) resolveConversation(ctx context.Context, userID int64, conversationID *int64, agent model.Agent, firstMessage string) (*model.Conversation, error) {
	if conversationID != nil {
		conv, err := s.conversations.GetByID(ctx, userID, *conversationID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrConversationNotFound
			}
			return nil, fmt.Errorf("getting conversation: %w", err)
		}
		if conv.AgentID != agent.ID {
			return nil, invalid("agent_id", "does not match the conversation's agent")
		}
		return conv, nil
	}

	conv := &model.Conversation{
		ID:      id.New(),
		UserID:  userID,
		AgentID: agent.ID,
		Title:   conversationTitle(firstMessage),
	}
	if err := s.conversations.Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("creating conversation: %w", err)
	}
	return conv, nil
}

// complete runs the model, executing tool calls for up to maxToolRounds rounds.
func (s *chatService) complete(ctx context.Context, userID int64, agent model.Agent, history []model.ChatMessage) (string, int, int, error) {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{
		Role: llm.RoleSystem,
		Content: agent.SystemPrompt + "\n\nToday is " + s.now().Format("Monday, 2 January 2006") +
			". You can look up the user's upcoming tasks and add tasks to their list when they ask.",
	})
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == model.ChatRoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}

	var prompt, completion int
	for round := 0; ; round++ {
		req := llm.ChatRequest{
			Messages:    messages,
			MaxTokens:   chatMaxTokens,
			Temperature: llm.Temp(0.7),
		}
		if round < maxToolRounds {
			req.Tools = chatTools()
		}

		resp, err := s.client.Complete(ctx, req)
		if err != nil {
			return "", prompt, completion, fmt.Errorf("chat round %d: %w", round+1, err)
		}
		prompt += resp.PromptTokens
		completion += resp.CompletionTokens

		if len(resp.ToolCalls) == 0 || round >= maxToolRounds {
			content := strings.TrimSpace(resp.Content)
			if content == "" {
				return "", prompt, completion, errors.New("empty reply")
			}
			return content, prompt, completion, nil
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})
		for _, tc := range resp.ToolCalls {
			slog.DebugContext(ctx, "chat tool call", "tool", tc.Name, "arguments", logger.Truncate(tc.Arguments, 500))
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				Content:    s.runTool(ctx, userID, tc),
				ToolCallID: tc.ID,
			})
		}
	}
}

func chatTools() []llm.Tool {
	return []llm.Tool{
		{
			Name:        "list_upcoming_tasks",
			Description: fmt.Sprintf("List the user's open tasks due within the next %d days, soonest first.", upcomingTaskDays),
			Parameters:  llm.GenerateSchema[listTasksArgs](),
		},
		{
			Name:        "create_task",
			Description: "Add a task to the user's task list. priority is one of low, medium, high, urgent. due_date is YYYY-MM-DD or empty.",
			Parameters:  llm.GenerateSchema[createTaskArgs](),
		},
	}
}

// runTool returns the tool result as text; failures are reported to the model, not the caller.
func (s *chatService) runTool(ctx context.Context, userID int64, tc llm.ToolCall) string {
	switch tc.Name {
	case "list_upcoming_tasks":
		args, err := llm.ParseToolArguments[listTasksArgs](tc.Arguments)
		if err != nil {
			return "error: " + err.Error()
		}
		limit := args.Limit
		if limit <= 0 || limit > 20 {
			limit = 10
		}
		tasks, err := s.tasks.ListOpenDueBefore(ctx, userID, s.now().AddDate(0, 0, upcomingTaskDays), int32(limit))
		if err != nil {
			slog.WarnContext(ctx, "chat tool failed", "tool", tc.Name, "error", err)
			return "error: could not load tasks"
		}
		type item struct {
			Title    string `json:"title"`
			Status   string `json:"status"`
			Priority string `json:"priority"`
			DueDate  string `json:"due_date,omitempty"`
		}
		items := make([]item, len(tasks))
		for i, t := range tasks {
			items[i] = item{Title: t.Title, Status: string(t.Status), Priority: string(t.Priority)}
			if t.DueDate != nil {
				items[i].DueDate = t.DueDate.Format(time.DateOnly)
			}
		}
		out, _ := json.Marshal(items)
		return string(out)

	case "create_task":
		args, err := llm.ParseToolArguments[createTaskArgs](tc.Arguments)
		if err != nil {
			return "error: " + err.Error()
		}
		params := CreateTaskParams{Title: args.Title, Priority: args.Priority, Tags: []string{"assistant"}}
		if args.DueDate != "" {
			due, err := time.Parse(time.DateOnly, args.DueDate)
			if err != nil {
				return "error: due_date must be YYYY-MM-DD"
			}
			params.DueDate = &due
		}
		task, err := s.taskService.Create(ctx, userID, params)
		if err != nil {
			return "error: " + err.Error()
		}
		return fmt.Sprintf(`created task %q with priority %s`, task.Title, task.Priority)
	}
	return "error: unknown tool " + tc.Name
}

func (s *chatService) Conversations(ctx context.Context, userID int64, agentID string) ([]model.Conversation, error) {
	var filter *string
	if agentID != "" {
		if _, ok := domain.AgentByID(agentID); !ok {
			return nil, invalid("agent_id", "unknown agent")
		}
		filter = &agentID
	}
	convs, err := s.conversations.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	return convs, nil
}

func (s *chatService) Messages(ctx context.Context, userID, conversationID int64) ([]model.ChatMessage, error) {
	if _, err := s.conversations.GetByID(ctx, userID, conversationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("getting conversation: %w", err)
	}
	msgs, err := s.messages.List(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return msgs, nil
}

func (s *chatService) DeleteConversation(ctx context.Context, userID, conversationID int64) error {
	if err := s.conversations.Delete(ctx, userID, conversationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrConversationNotFound
		}
		return fmt.Errorf("deleting conversation: %w", err)
	}
	return nil
}

func conversationTitle(message string) string {
	title := strings.Join(strings.Fields(message), " ")
	if utf8.RuneCountInString(title) <= 60 {
		return title
	}
	runes := []rune(title)
	return strings.TrimSpace(string(runes[:57])) + "..."
}
