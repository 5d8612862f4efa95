package service_test

import (
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/service"
	"solosuccess.app/api/internal/store"
)

var _ = Describe("OnboardingService", func() {
	var (
		ctx        context.Context
		users      *mockUserStore
		goals      *mockGoalStore
		tasks      *mockTaskStore
		briefcases *mockBriefcaseStore
		svc        service.OnboardingService
	)

	const userID = int64(42)

	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())
		ctx = context.Background()

		users = &mockUserStore{
			completeOnboardingFn: func(_ context.Context, uid int64, businessName, industry *string) (*model.User, error) {
				now := time.Now()
				return &model.User{ID: uid, BusinessName: businessName, Industry: industry, OnboardingCompletedAt: &now}, nil
			},
		}
		goals = newMockGoalStore()
		goals.getByTitleFn = func(_ context.Context, uid int64, title string) (*model.Goal, error) {
			for _, g := range goals.goals {
				if g.UserID == uid && strings.EqualFold(g.Title, title) {
					return g, nil
				}
			}
			return nil, store.ErrNotFound
		}
		tasks = newMockTaskStore()

		var defaultBriefcase *model.Briefcase
		briefcases = newMockBriefcaseStore()
		briefcases.getDefaultFn = func(context.Context, int64) (*model.Briefcase, error) {
			if defaultBriefcase == nil {
				for _, b := range briefcases.briefcases {
					if b.IsDefault {
						defaultBriefcase = b
					}
				}
			}
			if defaultBriefcase == nil {
				return nil, store.ErrNotFound
			}
			return defaultBriefcase, nil
		}

		tx := &fakeTxRunner{stores: &fakeStores{users: users, goals: goals, tasks: tasks, briefcases: briefcases}}
		svc = service.NewOnboardingService(tx, users)
	})

	params := service.OnboardingParams{
		BusinessName: "Acme Studio",
		Industry:     "design",
		Goals: []service.OnboardingGoal{
			{Title: "Grow the newsletter", Category: "marketing"},
			{Title: "grow the newsletter", Category: "marketing"},
			{Title: "Learn bookkeeping", Category: "astrology"},
		},
	}

	It("creates the default briefcase, goals and starter tasks", func() {
		result, err := svc.Complete(ctx, userID, params)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.User.OnboardingCompleted()).To(BeTrue())
		Expect(result.Briefcase.IsDefault).To(BeTrue())
		Expect(result.Briefcase.Name).To(Equal(model.DefaultBriefcaseName))
		Expect(result.Goals).To(HaveLen(2))
		Expect(result.TasksCreated).To(Equal(5))
		for _, t := range tasks.created {
			Expect(t.Tags).To(ConsistOf("onboarding"))
			Expect(t.GoalID).NotTo(BeNil())
		}
	})

	It("creates nothing new when run again", func() {
		first, err := svc.Complete(ctx, userID, params)
		Expect(err).NotTo(HaveOccurred())
		for _, g := range first.Goals {
			goals.counts[g.ID] = model.GoalTaskCounts{Total: 3}
		}

		second, err := svc.Complete(ctx, userID, params)

		Expect(err).NotTo(HaveOccurred())
		Expect(second.TasksCreated).To(BeZero())
		Expect(goals.created).To(HaveLen(2))
		Expect(briefcases.created).To(HaveLen(1))
		Expect(second.Briefcase.ID).To(Equal(first.Briefcase.ID))
	})

	It("requires between one and five goals", func() {
		_, err := svc.Complete(ctx, userID, service.OnboardingParams{BusinessName: "Acme"})

		var verr *service.ValidationError
		Expect(errors.As(err, &verr)).To(BeTrue())
		Expect(verr.Details).To(HaveKey("goals"))

		many := service.OnboardingParams{}
		for _, title := range []string{"a", "b", "c", "d", "e", "f"} {
			many.Goals = append(many.Goals, service.OnboardingGoal{Title: title})
		}
		_, err = svc.Complete(ctx, userID, many)
		Expect(errors.As(err, &verr)).To(BeTrue())
	})

	It("reports onboarding state", func() {
		users.getByIDFn = func(context.Context, int64) (*model.User, error) {
			return &model.User{ID: userID}, nil
		}

		state, err := svc.State(ctx, userID)

		Expect(err).NotTo(HaveOccurred())
		Expect(state.Completed).To(BeFalse())
	})
})
