package store

import (
	"context"

	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) UpsertByEmail(ctx context.Context, user *model.User) (bool, error) {
	row, err := s.queries.UpsertUserByEmail(ctx, sqlc.UpsertUserByEmailParams{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarUrl: user.AvatarURL,
		WorkosID:  user.WorkOSID,
	})
	if err != nil {
		return false, err
	}
	// On conflict the existing id is returned, not the one we proposed.
	created := row.ID == user.ID
	*user = *toUserModel(row)
	return created, nil
}

func (s *userStore) UpdateProfile(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpdateUserProfile(ctx, sqlc.UpdateUserProfileParams{
		ID:                 user.ID,
		Name:               user.Name,
		BusinessName:       user.BusinessName,
		Industry:           user.Industry,
		EmailNotifications: user.EmailNotifications,
	})
	if err != nil {
		return notFound(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) CompleteOnboarding(ctx context.Context, userID int64, businessName, industry *string) (*model.User, error) {
	row, err := s.queries.CompleteOnboarding(ctx, sqlc.CompleteOnboardingParams{
		ID:           userID,
		BusinessName: businessName,
		Industry:     industry,
	})
	if err != nil {
		return nil, notFound(err)
	}
	return toUserModel(row), nil
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:                    row.ID,
		Name:                  row.Name,
		Email:                 row.Email,
		AvatarURL:             row.AvatarUrl,
		WorkOSID:              row.WorkosID,
		BusinessName:          row.BusinessName,
		Industry:              row.Industry,
		EmailNotifications:    row.EmailNotifications,
		OnboardingCompletedAt: timePtr(row.OnboardingCompletedAt),
		CreatedAt:             row.CreatedAt.Time,
		UpdatedAt:             row.UpdatedAt.Time,
	}
}
