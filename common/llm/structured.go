package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
)

// StructuredClient asks the model for a JSON document matching a schema and decodes it.
type StructuredClient interface {
	Generate(ctx context.Context, req StructuredRequest, result any) (*Usage, error)
	Model() string
}

type StructuredRequest struct {
	SystemPrompt string
	UserPrompt   string
	SchemaName   string
	Schema       any
	MaxTokens    int
	Temperature  *float64 // nil = model default
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

type structuredClient struct {
	openai openai.Client
	model  string
}

// NewStructuredClient always targets the OpenAI API, which enforces strict JSON schemas.
func NewStructuredClient(cfg Config) (StructuredClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &structuredClient{
		openai: openai.NewClient(openAIOptions(cfg)...),
		model:  model,
	}, nil
}

func (c *structuredClient) Generate(ctx context.Context, req StructuredRequest, result any) (*Usage, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		MaxTokens: openai.Int(int64(maxTokens)),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   req.SchemaName,
					Schema: req.Schema,
					Strict: openai.Bool(true),
				},
			},
		},
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	start := time.Now()
	resp, err := c.openai.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai structured chat: %w", err)
	}

	slog.DebugContext(ctx, "structured completion finished",
		"model", c.model,
		"schema", req.SchemaName,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &Usage{
		PromptTokens:     int(resp.Usage.PromptTokens),
		CompletionTokens: int(resp.Usage.CompletionTokens),
	}, nil
}

func (c *structuredClient) Model() string {
	return c.model
}

// IsRetryable reports whether a provider error is worth retrying: rate limits,
// 5xx responses and transport failures are; caller errors and cancellation are not.
func IsRetryable(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		retry := apiErr.StatusCode == 429 || apiErr.StatusCode >= 500
		slog.WarnContext(ctx, "llm api error",
			"status_code", apiErr.StatusCode,
			"retryable", retry)
		return retry
	}

	return true
}
