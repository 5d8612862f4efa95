package service

import (
	"context"

	"solosuccess.app/api/core/db"
	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/store"
)

// StoreProvider exposes only the stores needed by a transactional operation.
type StoreProvider interface {
	Users() store.UserStore
	Sessions() store.SessionStore
	Subscriptions() store.SubscriptionStore
	Goals() store.GoalStore
	Tasks() store.TaskStore
	Briefcases() store.BriefcaseStore
	Documents() store.DocumentStore
	Alerts() store.AlertStore
	Opportunities() store.OpportunityStore
	Conversations() store.ConversationStore
	ChatMessages() store.ChatMessageStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}
