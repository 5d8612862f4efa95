package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/invopop/jsonschema"
)

var nameInvalidChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ErrAPIKeyRequired is returned by constructors when no credentials were configured.
var ErrAPIKeyRequired = errors.New("API key is required")

// ReasoningEffort controls the amount of reasoning for models that support it.
type ReasoningEffort string

const (
	ReasoningEffortLow    ReasoningEffort = "low"
	ReasoningEffortMedium ReasoningEffort = "medium"
	ReasoningEffortHigh   ReasoningEffort = "high"
)

type Config struct {
	Provider        string // "openai" or "anthropic"
	APIKey          string
	BaseURL         string // Optional: OpenAI-compatible gateway
	Model           string
	ReasoningEffort ReasoningEffort
}

// ChatClient runs one conversational turn, optionally offering tools to the model.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Model() string
}

type ChatRequest struct {
	Messages    []Message
	Tools       []Tool
	MaxTokens   int
	Temperature *float64
}

type Message struct {
	Role       string
	Name       string // user messages only
	Content    string
	ToolCalls  []ToolCall // assistant turns that requested tools
	ToolCallID string     // tool result messages
}

type Tool struct {
	Name        string
	Description string
	Parameters  any // JSON Schema object
}

type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON
}

type ChatResponse struct {
	Content          string
	ToolCalls        []ToolCall
	FinishReason     string // "stop", "tool_calls", "length"
	PromptTokens     int
	CompletionTokens int
}

// NewChatClient picks the provider named in cfg. Anthropic is the default.
func NewChatClient(cfg Config) (ChatClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	switch cfg.Provider {
	case ProviderAnthropic, "":
		return newAnthropicClient(cfg)
	case ProviderOpenAI:
		return newOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// ParseToolArguments unmarshals tool arguments into T.
func ParseToolArguments[T any](arguments string) (T, error) {
	var result T
	if arguments == "" {
		arguments = "{}"
	}
	if err := json.Unmarshal([]byte(arguments), &result); err != nil {
		return result, fmt.Errorf("parse tool arguments: %w", err)
	}
	return result, nil
}

// GenerateSchema reflects T into an inline JSON schema with no additional properties.
func GenerateSchema[T any]() any {
	var v T
	return GenerateSchemaFrom(v)
}

func GenerateSchemaFrom(v any) any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(v)
}

// SanitizeName converts a display name to a valid OpenAI name parameter
// (^[a-zA-Z0-9_-]{1,64}$).
func SanitizeName(name string) string {
	sanitized := nameInvalidChars.ReplaceAllString(name, "_")
	if len(sanitized) > 64 {
		sanitized = sanitized[:64]
	}
	return sanitized
}

func Temp(t float64) *float64 {
	return &t
}

// schemaObject normalizes any schema value into a plain map.
func schemaObject(schema any) map[string]any {
	if schema == nil {
		return nil
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
