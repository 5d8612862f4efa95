package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"solosuccess.app/api/common/logger"
	"solosuccess.app/api/common/metrics"
	"solosuccess.app/api/internal/queue"
)

type Config struct {
	MaxAttempts int
}

type Worker struct {
	consumer Consumer
	handlers map[queue.TaskType]TaskHandler
	cfg      Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(consumer Consumer, handlers map[queue.TaskType]TaskHandler, cfg Config) *Worker {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &Worker{
		consumer:  consumer,
		handlers:  handlers,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				time.Sleep(time.Second)
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		_ = w.HandleMessage(ctx, msg)
	}

	return nil
}

// HandleMessage processes msg and, on failure, requeues it or dead-letters it
// once MaxAttempts is reached. The reclaimer uses it for stale messages.
func (w *Worker) HandleMessage(ctx context.Context, msg queue.Message) error {
	if err := w.processMessageSafe(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "message processing failed",
			"error", err,
			"message_id", msg.ID,
			"task_type", msg.TaskType)
		w.handleFailedMessage(ctx, msg, err)
	}
	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in message processing",
				"panic", r,
				"message_id", msg.ID,
				"task_type", msg.TaskType)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

// ProcessMessage runs the handler for msg and acknowledges it on success.
func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	taskType := string(msg.TaskType)
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		MessageID: &msg.ID,
		TaskType:  &taskType,
		JobID:     msg.JobID,
		UserID:    msg.UserID,
		Component: "solosuccess.worker",
	})

	sc := logger.StartSpanFromTraceID(ctx, msg.TraceID, "worker."+taskType,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.message.id", msg.ID),
			attribute.String("messaging.operation", "process"),
			attribute.Int("solosuccess.attempt", msg.Attempt),
		))
	defer sc.End()
	ctx = sc.Context()

	slog.InfoContext(ctx, "processing message", "attempt", msg.Attempt)

	handler, ok := w.handlers[msg.TaskType]
	if !ok {
		slog.ErrorContext(ctx, "no handler for task type, acknowledging")
		return w.consumer.Ack(ctx, msg)
	}

	start := time.Now()
	err := handler.Handle(ctx, msg)
	metrics.JobDuration.WithLabelValues(taskType).Observe(time.Since(start).Seconds())
	if err != nil {
		sc.RecordError(err)
		return err
	}

	metrics.JobsCompleted.WithLabelValues(taskType).Inc()

	if err := w.consumer.Ack(ctx, msg); err != nil {
		// The reclaimer will pick it up again; handlers are idempotent.
		slog.WarnContext(ctx, "failed to ACK message", "error", err)
	}

	slog.InfoContext(ctx, "message processed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	deadLetter := msg.Attempt >= w.cfg.MaxAttempts
	metrics.JobsFailed.WithLabelValues(string(msg.TaskType), strconv.FormatBool(deadLetter)).Inc()

	if deadLetter {
		slog.ErrorContext(ctx, "max attempts reached, sending to DLQ",
			"message_id", msg.ID,
			"task_type", msg.TaskType,
			"attempts", msg.Attempt)
		if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}
		return
	}

	slog.WarnContext(ctx, "requeuing failed message",
		"message_id", msg.ID,
		"task_type", msg.TaskType,
		"attempt", msg.Attempt)
	if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
	}
}
