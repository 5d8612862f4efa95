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

var _ = Describe("OpportunityService", func() {
	var (
		ctx           context.Context
		opportunities *mockOpportunityStore
		alerts        *mockAlertStore
		tx            *fakeTxRunner
		svc           service.OpportunityService
	)

	const userID = int64(42)

	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())
		ctx = context.Background()
		opportunities = &mockOpportunityStore{}
		alerts = &mockAlertStore{}
		tx = &fakeTxRunner{stores: &fakeStores{opportunities: opportunities, alerts: alerts}}
		svc = service.NewOpportunityService(tx, opportunities, &mockCompetitorStore{})
	})

	Describe("Create", func() {
		It("scores the defaults as low priority", func() {
			o, err := svc.Create(ctx, userID, service.CreateOpportunityParams{Title: "Bundle pricing"})

			Expect(err).NotTo(HaveOccurred())
			Expect(o.OpportunityType).To(Equal("general"))
			Expect(o.PriorityScore).To(Equal(8))
			Expect(o.PriorityLevel).To(Equal(model.PriorityLow))
		})

		It("scores the strongest inputs at 100", func() {
			confidence := 1.0
			o, err := svc.Create(ctx, userID, service.CreateOpportunityParams{
				Title:      "Competitor outage",
				Confidence: &confidence,
				Impact:     "critical",
				Effort:     "low",
				Timing:     "immediate",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(o.PriorityScore).To(Equal(100))
			Expect(o.PriorityLevel).To(Equal(model.PriorityHigh))
		})

		It("rejects confidence outside 0..1", func() {
			confidence := 1.5
			_, err := svc.Create(ctx, userID, service.CreateOpportunityParams{Title: "x", Confidence: &confidence})

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Details).To(HaveKey("confidence"))
		})
	})

	Describe("Update", func() {
		It("rescores after the inputs change", func() {
			opportunities.getByIDFn = func(context.Context, int64, int64) (*model.Opportunity, error) {
				return &model.Opportunity{ID: 3, UserID: userID, Title: "x", Confidence: 0.5,
					Impact: model.ImpactMedium, Effort: model.EffortMedium, Timing: model.TimingMediumTerm,
					Status: model.OpportunityIdentified, PriorityScore: 8}, nil
			}
			impact := "critical"
			timing := "immediate"

			o, err := svc.Update(ctx, userID, 3, service.UpdateOpportunityParams{Impact: &impact, Timing: &timing})

			Expect(err).NotTo(HaveOccurred())
			Expect(o.PriorityScore).To(Equal(33))
			Expect(opportunities.updated).To(HaveLen(1))
		})
	})

	Describe("FromAlert", func() {
		var alert *model.CompetitorAlert

		BeforeEach(func() {
			alert = &model.CompetitorAlert{ID: 11, UserID: userID, CompetitorID: 5, AlertType: "pricing_change",
				Severity: model.SeverityUrgent, Title: "Rival cut prices"}
			alerts.getByIDFn = func(_ context.Context, uid, aid int64) (*model.CompetitorAlert, error) {
				if uid != userID || aid != alert.ID {
					return nil, store.ErrNotFound
				}
				return alert, nil
			}
			opportunities.getByAlertFn = func(context.Context, int64, int64) (*model.Opportunity, error) {
				return nil, store.ErrNotFound
			}
		})

		It("drafts a scored opportunity and marks the alert read", func() {
			o, err := svc.FromAlert(ctx, userID, 11)

			Expect(err).NotTo(HaveOccurred())
			Expect(o.Title).To(Equal("Respond to: Rival cut prices"))
			Expect(*o.AlertID).To(Equal(int64(11)))
			Expect(o.Impact).To(Equal(model.ImpactHigh))
			Expect(o.Timing).To(Equal(model.TimingImmediate))
			Expect(o.PriorityScore).To(Equal(30))
			Expect(opportunities.created).To(HaveLen(1))
			Expect(alerts.markedRead).To(ConsistOf(int64(11)))
		})

		It("refuses a second opportunity for the same alert", func() {
			opportunities.getByAlertFn = func(context.Context, int64, int64) (*model.Opportunity, error) {
				return &model.Opportunity{ID: 1}, nil
			}

			_, err := svc.FromAlert(ctx, userID, 11)

			Expect(err).To(MatchError(service.ErrOpportunityExists))
			Expect(opportunities.created).To(BeEmpty())
		})

		It("returns ErrAlertNotFound for another user's alert", func() {
			_, err := svc.FromAlert(ctx, 7, 11)
			Expect(err).To(MatchError(service.ErrAlertNotFound))
		})
	})
})
