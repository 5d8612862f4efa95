package worker

import (
	"context"

	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/store"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// TaskHandler runs one task type. Returning an error schedules a retry.
type TaskHandler interface {
	Handle(ctx context.Context, msg queue.Message) error
}

type TaskHandlerFunc func(ctx context.Context, msg queue.Message) error

func (f TaskHandlerFunc) Handle(ctx context.Context, msg queue.Message) error {
	return f(ctx, msg)
}

// Mirrors the subset of store.Stores the worker needs. Defined here to avoid import cycles.
type StoreProvider interface {
	Users() store.UserStore
	Competitors() store.CompetitorStore
	ScrapingJobs() store.ScrapingJobStore
	ScrapingResults() store.ScrapingResultStore
	Alerts() store.AlertStore
}

type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}
