package model_test

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/internal/model"
)

var _ = Describe("GoalTaskCounts", func() {
	DescribeTable("Progress",
		func(total, completed, cancelled int64, want int) {
			c := model.GoalTaskCounts{Total: total, Completed: completed, Cancelled: cancelled}
			Expect(c.Progress()).To(Equal(want))
		},
		Entry("no tasks", int64(0), int64(0), int64(0), 0),
		Entry("only cancelled tasks", int64(2), int64(0), int64(2), 0),
		Entry("half done", int64(4), int64(2), int64(0), 50),
		Entry("cancelled tasks are excluded", int64(4), int64(1), int64(1), 33),
		Entry("two of three rounds up", int64(3), int64(2), int64(0), 67),
		Entry("all done", int64(3), int64(3), int64(0), 100),
	)
})

var _ = Describe("Task", func() {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	It("stamps completed_at when completed", func() {
		t := model.Task{Status: model.TaskStatusTodo}
		t.ApplyStatus(model.TaskStatusCompleted, now)
		Expect(t.Status).To(Equal(model.TaskStatusCompleted))
		Expect(*t.CompletedAt).To(Equal(now))
	})

	It("keeps the original completion time", func() {
		earlier := now.Add(-time.Hour)
		t := model.Task{Status: model.TaskStatusCompleted, CompletedAt: &earlier}
		t.ApplyStatus(model.TaskStatusCompleted, now)
		Expect(*t.CompletedAt).To(Equal(earlier))
	})

	It("clears completed_at when reopened", func() {
		t := model.Task{Status: model.TaskStatusCompleted, CompletedAt: &now}
		t.ApplyStatus(model.TaskStatusInProgress, now)
		Expect(t.CompletedAt).To(BeNil())
	})

	It("validates enums", func() {
		Expect(model.TaskStatus("done").Valid()).To(BeFalse())
		Expect(model.TaskStatusCancelled.Valid()).To(BeTrue())
		Expect(model.TaskPriority("critical").Valid()).To(BeFalse())
		Expect(model.TaskPriorityUrgent.Valid()).To(BeTrue())
	})

	It("serialises ids as strings", func() {
		goal := int64(12)
		data, err := json.Marshal(model.Task{ID: 9007199254740993, GoalID: &goal})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"id":"9007199254740993"`))
		Expect(string(data)).To(ContainSubstring(`"goal_id":"12"`))
	})
})

var _ = Describe("ScrapingJob.FailureBackoff", func() {
	job := &model.ScrapingJob{FrequencyMinutes: 60}

	It("doubles per failure", func() {
		Expect(job.FailureBackoff(1)).To(Equal(time.Hour))
		Expect(job.FailureBackoff(2)).To(Equal(2 * time.Hour))
		Expect(job.FailureBackoff(3)).To(Equal(4 * time.Hour))
	})

	It("caps at a day", func() {
		Expect(job.FailureBackoff(10)).To(Equal(24 * time.Hour))
	})
})

var _ = Describe("Subscription", func() {
	It("falls back to free limits when lapsed", func() {
		s := &model.Subscription{Tier: model.TierPro, Status: model.SubscriptionPastDue}
		Expect(s.EffectiveTier()).To(Equal(model.TierFree))
	})

	It("honours trialing plans", func() {
		s := &model.Subscription{Tier: model.TierPro, Status: model.SubscriptionTrialing}
		Expect(s.EffectiveTier().CompetitorLimit()).To(Equal(25))
	})

	It("treats a missing subscription as free", func() {
		var s *model.Subscription
		Expect(s.EffectiveTier().CompetitorLimit()).To(Equal(3))
		Expect(model.TierEnterprise.CompetitorLimit()).To(Equal(model.Unlimited))
	})
})

var _ = Describe("ScrapeJobType.AlertSeverity", func() {
	It("maps page types to severity", func() {
		Expect(model.ScrapeJobPricing.AlertSeverity()).To(Equal(model.SeverityUrgent))
		Expect(model.ScrapeJobWebsite.AlertSeverity()).To(Equal(model.SeverityWarning))
		Expect(model.ScrapeJobBlog.AlertSeverity()).To(Equal(model.SeverityInfo))
	})
})
