package service_test

import (
	"context"
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/service"
	"solosuccess.app/api/internal/store"
)

var _ = Describe("TemplateService", func() {
	var (
		ctx       context.Context
		templates *mockTemplateStore
		svc       service.TemplateService
		tmpl      *model.Template
	)

	const userID = int64(42)

	BeforeEach(func() {
		ctx = context.Background()
		tmpl = &model.Template{
			ID:       5,
			UserID:   userID,
			Title:    "Launch Plan",
			Category: "marketing",
			Content:  json.RawMessage(`{"launch_steps":["Warm up list","Ship"],"budget":500}`),
		}
		templates = &mockTemplateStore{
			getByIDFn: func(_ context.Context, _ int64, templateID int64) (*model.Template, error) {
				if templateID != tmpl.ID {
					return nil, store.ErrNotFound
				}
				cp := *tmpl
				return &cp, nil
			},
		}
		svc = service.NewTemplateService(templates)
	})

	Describe("Export", func() {
		It("renders markdown with headings per top-level key", func() {
			out, err := svc.Export(ctx, userID, 5, "markdown")

			Expect(err).NotTo(HaveOccurred())
			Expect(out.Filename).To(Equal("launch-plan.md"))
			Expect(out.ContentType).To(HavePrefix("text/markdown"))
			body := string(out.Body)
			Expect(body).To(HavePrefix("# Launch Plan\n"))
			Expect(body).To(ContainSubstring("## Budget\n\n500\n"))
			Expect(body).To(ContainSubstring("## Launch Steps\n\n- Warm up list\n- Ship\n"))
		})

		It("defaults to JSON", func() {
			out, err := svc.Export(ctx, userID, 5, "")

			Expect(err).NotTo(HaveOccurred())
			Expect(out.Filename).To(Equal("launch-plan.json"))
			var decoded model.Template
			Expect(json.Unmarshal(out.Body, &decoded)).To(Succeed())
			Expect(decoded.Title).To(Equal("Launch Plan"))
		})

		It("rejects unknown formats", func() {
			_, err := svc.Export(ctx, userID, 5, "pdf")

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})
	})

	Describe("Update", func() {
		It("does not let other users edit a public template", func() {
			tmpl.UserID = 99
			tmpl.IsPublic = true
			title := "Mine now"

			_, err := svc.Update(ctx, userID, 5, service.UpdateTemplateParams{Title: &title})

			Expect(err).To(MatchError(service.ErrTemplateNotFound))
			Expect(templates.updated).To(BeEmpty())
		})

		It("rejects content that is not JSON", func() {
			_, err := svc.Update(ctx, userID, 5, service.UpdateTemplateParams{Content: json.RawMessage(`{nope`)})

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Details).To(HaveKey("content"))
		})
	})
})
