package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/domain"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

type OnboardingService interface {
	// Complete sets up the workspace in one transaction. Running it again with the
	// same goals creates nothing new.
	Complete(ctx context.Context, userID int64, params OnboardingParams) (*OnboardingResult, error)
	State(ctx context.Context, userID int64) (*OnboardingState, error)
}

type OnboardingGoal struct {
	Title    string
	Category string
}

type OnboardingParams struct {
	BusinessName string
	Industry     string
	Goals        []OnboardingGoal
}

type OnboardingResult struct {
	User         *model.User      `json:"user"`
	Briefcase    *model.Briefcase `json:"briefcase"`
	Goals        []model.Goal     `json:"goals"`
	TasksCreated int              `json:"tasks_created"`
}

type OnboardingState struct {
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	BusinessName *string    `json:"business_name,omitempty"`
	Industry     *string    `json:"industry,omitempty"`
}

type onboardingService struct {
	tx    TxRunner
	users store.UserStore
}

func NewOnboardingService(tx TxRunner, users store.UserStore) OnboardingService {
	return &onboardingService{tx: tx, users: users}
}

func (s *onboardingService) Complete(ctx context.Context, userID int64, params OnboardingParams) (*OnboardingResult, error) {
	goals := dedupeGoals(params.Goals)

	var v validator
	v.check(len(strings.TrimSpace(params.BusinessName)) <= 200, "business_name", "must be at most 200 characters")
	v.check(len(goals) >= 1 && len(goals) <= domain.MaxOnboardingGoals, "goals", fmt.Sprintf("must contain 1 to %d goals", domain.MaxOnboardingGoals))
	for i, g := range goals {
		v.check(len(g.Title) <= 200, fmt.Sprintf("goals[%d].title", i), "must be at most 200 characters")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	result := &OnboardingResult{}
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		user, err := stores.Users().CompleteOnboarding(ctx, userID, trimmedOrNil(params.BusinessName), trimmedOrNil(params.Industry))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("updating profile: %w", err)
		}
		result.User = user

		result.Briefcase, err = ensureDefaultBriefcase(ctx, stores, userID)
		if err != nil {
			return err
		}

		for _, g := range goals {
			goal, created, err := ensureGoal(ctx, stores, userID, g)
			if err != nil {
				return err
			}

			counts, err := stores.Goals().CountTasks(ctx, goal.ID)
			if err != nil {
				return fmt.Errorf("counting goal tasks: %w", err)
			}
			if counts.Total == 0 {
				for _, st := range domain.StarterTasks(goal.Category) {
					task := &model.Task{
						ID:       id.New(),
						UserID:   userID,
						GoalID:   &goal.ID,
						Title:    st.Title,
						Status:   model.TaskStatusTodo,
						Priority: st.Priority,
						Tags:     []string{"onboarding"},
					}
					if err := stores.Tasks().Create(ctx, task); err != nil {
						return fmt.Errorf("creating starter task: %w", err)
					}
					result.TasksCreated++
				}
				if err := recomputeProgress(ctx, stores, &goal.ID); err != nil {
					return err
				}
			}

			if created {
				slog.DebugContext(ctx, "onboarding goal created", "goal_id", goal.ID, "category", goal.Category)
			}
			result.Goals = append(result.Goals, *goal)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "onboarding completed",
		"user_id", userID,
		"goals", len(result.Goals),
		"tasks_created", result.TasksCreated)
	return result, nil
}

func (s *onboardingService) State(ctx context.Context, userID int64) (*OnboardingState, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &OnboardingState{
		Completed:    user.OnboardingCompleted(),
		CompletedAt:  user.OnboardingCompletedAt,
		BusinessName: user.BusinessName,
		Industry:     user.Industry,
	}, nil
}

func ensureDefaultBriefcase(ctx context.Context, stores StoreProvider, userID int64) (*model.Briefcase, error) {
	b, err := stores.Briefcases().GetDefault(ctx, userID)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting default briefcase: %w", err)
	}

	b = &model.Briefcase{
		ID:        id.New(),
		UserID:    userID,
		Name:      model.DefaultBriefcaseName,
		IsDefault: true,
	}
	if err := stores.Briefcases().Create(ctx, b); err != nil {
		return nil, fmt.Errorf("creating default briefcase: %w", err)
	}
	return b, nil
}

func ensureGoal(ctx context.Context, stores StoreProvider, userID int64, g OnboardingGoal) (*model.Goal, bool, error) {
	goal, err := stores.Goals().GetByTitle(ctx, userID, g.Title)
	if err == nil {
		return goal, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, fmt.Errorf("looking up goal: %w", err)
	}

	goal = &model.Goal{
		ID:       id.New(),
		UserID:   userID,
		Title:    g.Title,
		Category: normalizeCategory(g.Category),
		Status:   model.GoalStatusActive,
	}
	if err := stores.Goals().Create(ctx, goal); err != nil {
		return nil, false, fmt.Errorf("creating goal: %w", err)
	}
	return goal, true, nil
}

// dedupeGoals trims titles and drops blanks and case-insensitive repeats.
func dedupeGoals(goals []OnboardingGoal) []OnboardingGoal {
	seen := make(map[string]bool, len(goals))
	out := make([]OnboardingGoal, 0, len(goals))
	for _, g := range goals {
		g.Title = strings.TrimSpace(g.Title)
		key := strings.ToLower(g.Title)
		if g.Title == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, g)
	}
	return out
}
