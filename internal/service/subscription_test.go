package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/service"
	"solosuccess.app/api/internal/store"
)

var _ = Describe("SubscriptionService", func() {
	var (
		ctx           context.Context
		subscriptions *mockSubscriptionStore
		users         *mockUserStore
		svc           service.SubscriptionService
		sub           *model.Subscription
	)

	const (
		userID = int64(42)
		secret = "whsec_test"
	)

	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())
		ctx = context.Background()
		sub = nil
		subscriptions = &mockSubscriptionStore{
			getByUserFn: func(context.Context, int64) (*model.Subscription, error) {
				if sub == nil {
					return nil, store.ErrNotFound
				}
				return sub, nil
			},
		}
		users = &mockUserStore{
			getByEmailFn: func(_ context.Context, email string) (*model.User, error) {
				if email != "founder@example.com" {
					return nil, store.ErrNotFound
				}
				return &model.User{ID: userID, Email: email}, nil
			},
		}
		competitors := &mockCompetitorStore{countFn: func(context.Context, int64) (int64, error) { return 2, nil }}
		documents := &mockDocumentStore{countFn: func(context.Context, int64) (int64, error) { return 9, nil }}
		svc = service.NewSubscriptionService(subscriptions, users, competitors, documents, secret)
	})

	Describe("Summary", func() {
		It("treats a missing subscription as active free", func() {
			summary, err := svc.Summary(ctx, userID)

			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Tier).To(Equal(model.TierFree))
			Expect(summary.EffectiveTier).To(Equal(model.TierFree))
			Expect(summary.Limits.Competitors).To(Equal(3))
			Expect(summary.Usage.Competitors).To(Equal(int64(2)))
			Expect(summary.Usage.Documents).To(Equal(int64(9)))
		})

		It("reports unlimited competitors for enterprise", func() {
			sub = &model.Subscription{Tier: model.TierEnterprise, Status: model.SubscriptionActive}

			summary, err := svc.Summary(ctx, userID)

			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Limits.Competitors).To(Equal(model.Unlimited))
		})
	})

	Describe("ApplyBillingEvent", func() {
		event := service.BillingEvent{UserEmail: " Founder@Example.com ", Tier: "pro", Status: "active", CustomerID: "cus_123"}

		It("upserts the subscription of the matching user", func() {
			updated, err := svc.ApplyBillingEvent(ctx, secret, event)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.UserID).To(Equal(userID))
			Expect(updated.Tier).To(Equal(model.TierPro))
			Expect(*updated.ExternalCustomerID).To(Equal("cus_123"))
			Expect(subscriptions.upserted).To(HaveLen(1))
		})

		It("rejects a wrong secret", func() {
			_, err := svc.ApplyBillingEvent(ctx, "nope", event)

			Expect(err).To(MatchError(service.ErrInvalidWebhook))
			Expect(subscriptions.upserted).To(BeEmpty())
		})

		It("is disabled without a configured secret", func() {
			svc = service.NewSubscriptionService(subscriptions, users, nil, nil, "")

			_, err := svc.ApplyBillingEvent(ctx, "", event)

			Expect(err).To(MatchError(service.ErrFeatureUnavailable))
		})

		It("validates tier and status", func() {
			_, err := svc.ApplyBillingEvent(ctx, secret, service.BillingEvent{UserEmail: "founder@example.com", Tier: "gold", Status: "paid"})

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Details).To(HaveKey("tier"))
			Expect(verr.Details).To(HaveKey("status"))
		})

		It("returns ErrUserNotFound for unknown emails", func() {
			e := event
			e.UserEmail = "ghost@example.com"

			_, err := svc.ApplyBillingEvent(ctx, secret, e)

			Expect(err).To(MatchError(service.ErrUserNotFound))
		})
	})
})
