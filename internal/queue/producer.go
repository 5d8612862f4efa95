package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// ErrQueueDisabled is returned by the no-op producer when Redis is not configured.
var ErrQueueDisabled = errors.New("job queue is not configured")

type Producer interface {
	Enqueue(ctx context.Context, task Task) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, task Task) error {
	attempt := task.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	fields := taskValues(task, attempt)
	if task.TraceID != nil && *task.TraceID != "" {
		fields["trace_id"] = *task.TraceID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue %s: %w", task.TaskType, err)
	}

	p.logger.InfoContext(ctx, "enqueued task", "task_type", task.TaskType, "attempt", attempt)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

type noopProducer struct {
	logger *slog.Logger
}

// NewNoopProducer drops every task. Used by the API when Redis is not configured.
func NewNoopProducer(logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &noopProducer{logger: logger}
}

func (p *noopProducer) Enqueue(ctx context.Context, task Task) error {
	p.logger.WarnContext(ctx, "queue disabled, dropping task", "task_type", task.TaskType)
	return ErrQueueDisabled
}

func (p *noopProducer) Close() error {
	return nil
}

func taskValues(task Task, attempt int) map[string]any {
	values := map[string]any{
		"task_type": string(task.TaskType),
		"attempt":   attempt,
	}
	if task.JobID != nil {
		values["job_id"] = *task.JobID
	}
	if task.UserID != nil {
		values["user_id"] = *task.UserID
	}
	if task.AlertID != nil {
		values["alert_id"] = *task.AlertID
	}
	if task.EmailKind != "" {
		values["email_kind"] = string(task.EmailKind)
	}
	return values
}
