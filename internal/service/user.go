package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

type UserService interface {
	Get(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, params UpdateProfileParams) (*model.User, error)
}

// UpdateProfileParams holds optional profile changes; nil fields are left as they are.
type UpdateProfileParams struct {
	Name               *string
	BusinessName       *string
	Industry           *string
	EmailNotifications *bool
}

type userService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) UserService {
	return &userService{users: users}
}

func (s *userService) Get(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, params UpdateProfileParams) (*model.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	var v validator
	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		v.check(name != "" && len(name) <= 100, "name", "must be 1 to 100 characters")
		user.Name = name
	}
	if params.BusinessName != nil {
		user.BusinessName = trimmedOrNil(*params.BusinessName)
	}
	if params.Industry != nil {
		user.Industry = trimmedOrNil(*params.Industry)
	}
	if params.EmailNotifications != nil {
		user.EmailNotifications = *params.EmailNotifications
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to update profile", "error", err, "user_id", userID)
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return user, nil
}

func trimmedOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
