package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

const dashboardTopOpportunities = 5

type DashboardService interface {
	Get(ctx context.Context, userID int64) (*model.Dashboard, error)
}

type dashboardService struct {
	users         store.UserStore
	tasks         store.TaskStore
	goals         store.GoalStore
	alerts        store.AlertStore
	opportunities store.OpportunityStore
	posts         store.SocialPostStore
}

func NewDashboardService(users store.UserStore, tasks store.TaskStore, goals store.GoalStore, alerts store.AlertStore, opportunities store.OpportunityStore, posts store.SocialPostStore) DashboardService {
	return &dashboardService{
		users:         users,
		tasks:         tasks,
		goals:         goals,
		alerts:        alerts,
		opportunities: opportunities,
		posts:         posts,
	}
}

// Get gathers the dashboard sections concurrently.
func (s *dashboardService) Get(ctx context.Context, userID int64) (*model.Dashboard, error) {
	d := &model.Dashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := s.users.GetByID(gctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("getting user: %w", err)
		}
		d.OnboardingCompleted = user.OnboardingCompleted()
		return nil
	})
	g.Go(func() error {
		counts, err := s.tasks.CountByStatus(gctx, userID)
		if err != nil {
			return fmt.Errorf("counting tasks: %w", err)
		}
		d.TasksByStatus = make(map[model.TaskStatus]int64, len(model.TaskStatuses))
		for _, st := range model.TaskStatuses {
			d.TasksByStatus[st] = counts[st]
		}
		return nil
	})
	g.Go(func() error {
		active := model.GoalStatusActive
		goals, err := s.goals.List(gctx, userID, &active)
		if err != nil {
			return fmt.Errorf("listing goals: %w", err)
		}
		d.ActiveGoals = goals
		return nil
	})
	g.Go(func() error {
		n, err := s.alerts.CountUnread(gctx, userID)
		if err != nil {
			return fmt.Errorf("counting alerts: %w", err)
		}
		d.UnreadAlerts = n
		return nil
	})
	g.Go(func() error {
		open := model.OpportunityIdentified
		opps, err := s.opportunities.List(gctx, userID, &open, 0)
		if err != nil {
			return fmt.Errorf("listing opportunities: %w", err)
		}
		d.TopOpportunities = opps[:min(len(opps), dashboardTopOpportunities)]
		return nil
	})
	g.Go(func() error {
		n, err := s.posts.CountScheduled(gctx, userID)
		if err != nil {
			return fmt.Errorf("counting scheduled posts: %w", err)
		}
		d.ScheduledPosts = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if d.ActiveGoals == nil {
		d.ActiveGoals = []model.Goal{}
	}
	return d, nil
}
