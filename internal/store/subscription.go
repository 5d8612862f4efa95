package store

import (
	"context"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/model"
)

type subscriptionStore struct {
	queries *sqlc.Queries
}

func newSubscriptionStore(queries *sqlc.Queries) SubscriptionStore {
	return &subscriptionStore{queries: queries}
}

func (s *subscriptionStore) GetByUser(ctx context.Context, userID int64) (*model.Subscription, error) {
	row, err := s.queries.GetSubscriptionByUser(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	return toSubscriptionModel(row), nil
}

// EnsureDefault gives the user a free plan unless they already have one.
func (s *subscriptionStore) EnsureDefault(ctx context.Context, userID int64) error {
	return s.queries.CreateDefaultSubscription(ctx, sqlc.CreateDefaultSubscriptionParams{
		ID:     id.New(),
		UserID: userID,
	})
}

func (s *subscriptionStore) Upsert(ctx context.Context, sub *model.Subscription) error {
	row, err := s.queries.UpsertSubscription(ctx, sqlc.UpsertSubscriptionParams{
		ID:                 sub.ID,
		UserID:             sub.UserID,
		Tier:               string(sub.Tier),
		Status:             string(sub.Status),
		ExternalCustomerID: sub.ExternalCustomerID,
		CurrentPeriodEnd:   toTimestamptz(sub.CurrentPeriodEnd),
	})
	if err != nil {
		return err
	}
	*sub = *toSubscriptionModel(row)
	return nil
}

func toSubscriptionModel(row sqlc.Subscription) *model.Subscription {
	return &model.Subscription{
		ID:                 row.ID,
		UserID:             row.UserID,
		Tier:               model.SubscriptionTier(row.Tier),
		Status:             model.SubscriptionStatus(row.Status),
		ExternalCustomerID: row.ExternalCustomerID,
		CurrentPeriodEnd:   timePtr(row.CurrentPeriodEnd),
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}
