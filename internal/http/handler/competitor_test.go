package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/internal/http/handler"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/service"
)

var _ = Describe("CompetitorHandler", func() {
	var (
		router      *gin.Engine
		competitors *mockCompetitorService
		scraping    *mockScrapingService
		alerts      *mockAlertService
	)

	BeforeEach(func() {
		competitors = &mockCompetitorService{}
		scraping = &mockScrapingService{}
		alerts = &mockAlertService{}
		h := handler.NewCompetitorHandler(competitors, scraping, alerts)
		router = newAuthedRouter()
		router.POST("/competitors", h.Create)
		router.GET("/competitors/alerts", h.ListAlerts)
		router.POST("/competitors/scraping/:jobId/run", h.RunScrapingJob)
	})

	It("reports the plan limit with 403", func() {
		competitors.createFn = func(context.Context, int64, service.CreateCompetitorParams) (*model.Competitor, error) {
			return nil, &service.PlanLimitError{Resource: "competitors", Tier: model.TierFree, Limit: 3}
		}

		w := doJSON(router, http.MethodPost, "/competitors", map[string]string{"name": "Rival Co"})

		Expect(w.Code).To(Equal(http.StatusForbidden))
		resp := decode(w)
		Expect(resp["error"]).To(Equal("plan_limit"))
		Expect(resp["limit"]).To(BeEquivalentTo(3))
		Expect(resp["tier"]).To(Equal("free"))
	})

	It("queues an immediate run with 202", func() {
		var queued int64
		scraping.runNowFn = func(_ context.Context, _ int64, jobID int64) error {
			queued = jobID
			return nil
		}

		w := doJSON(router, http.MethodPost, "/competitors/scraping/31/run", nil)

		Expect(w.Code).To(Equal(http.StatusAccepted))
		Expect(queued).To(Equal(int64(31)))
	})

	It("answers 503 when the queue is not configured", func() {
		scraping.runNowFn = func(context.Context, int64, int64) error { return service.ErrFeatureUnavailable }

		Expect(doJSON(router, http.MethodPost, "/competitors/scraping/31/run", nil).Code).To(Equal(http.StatusServiceUnavailable))
	})

	It("parses alert filters", func() {
		alerts.listFn = func(_ context.Context, _ int64, filter model.AlertFilter) ([]model.CompetitorAlert, error) {
			Expect(filter.UnreadOnly).To(BeTrue())
			Expect(*filter.CompetitorID).To(Equal(int64(12)))
			return []model.CompetitorAlert{}, nil
		}

		Expect(doJSON(router, http.MethodGet, "/competitors/alerts?unread=true&competitor_id=12", nil).Code).To(Equal(http.StatusOK))
		Expect(doJSON(router, http.MethodGet, "/competitors/alerts?unread=maybe", nil).Code).To(Equal(http.StatusBadRequest))
	})
})
