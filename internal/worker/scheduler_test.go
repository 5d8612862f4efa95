package worker_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/worker"
)

var _ = Describe("Scheduler", func() {
	var (
		ctx      context.Context
		jobs     *mockScrapingJobStore
		producer *fakeProducer
	)

	BeforeEach(func() {
		ctx = context.Background()
		jobs = &mockScrapingJobStore{}
		producer = &fakeProducer{}
	})

	It("enqueues one scrape task per due job", func() {
		jobs.claimDueFn = func(context.Context, int32) ([]model.ScrapingJob, error) {
			return []model.ScrapingJob{{ID: 1, UserID: 7}, {ID: 2, UserID: 8}}, nil
		}

		n, err := worker.NewScheduler(jobs, producer, worker.SchedulerConfig{BatchSize: 10}).RunOnce(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(2))
		Expect(producer.tasks).To(HaveLen(2))
		Expect(producer.tasks[0].TaskType).To(Equal(queue.TaskTypeCompetitorScrape))
		Expect(*producer.tasks[1].JobID).To(Equal(int64(2)))
		Expect(*producer.tasks[1].UserID).To(Equal(int64(8)))
	})

	It("keeps claiming while batches come back full", func() {
		calls := 0
		jobs.claimDueFn = func(_ context.Context, limit int32) ([]model.ScrapingJob, error) {
			calls++
			if calls == 1 {
				return []model.ScrapingJob{{ID: 1}, {ID: 2}}, nil
			}
			return []model.ScrapingJob{{ID: 3}}, nil
		}

		n, err := worker.NewScheduler(jobs, producer, worker.SchedulerConfig{BatchSize: 2}).RunOnce(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(3))
		Expect(calls).To(Equal(2))
	})

	It("stops after MaxBatches", func() {
		calls := 0
		jobs.claimDueFn = func(context.Context, int32) ([]model.ScrapingJob, error) {
			calls++
			return []model.ScrapingJob{{ID: int64(calls)}}, nil
		}

		_, err := worker.NewScheduler(jobs, producer, worker.SchedulerConfig{BatchSize: 1, MaxBatches: 3}).RunOnce(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(3))
	})

	It("skips jobs that fail to enqueue", func() {
		jobs.claimDueFn = func(context.Context, int32) ([]model.ScrapingJob, error) {
			return []model.ScrapingJob{{ID: 1}}, nil
		}
		producer.err = errors.New("redis down")

		n, err := worker.NewScheduler(jobs, producer, worker.SchedulerConfig{}).RunOnce(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
	})

	It("surfaces claim errors", func() {
		jobs.claimDueFn = func(context.Context, int32) ([]model.ScrapingJob, error) {
			return nil, errors.New("db down")
		}

		_, err := worker.NewScheduler(jobs, producer, worker.SchedulerConfig{}).RunOnce(ctx)
		Expect(err).To(MatchError(ContainSubstring("db down")))
	})
})
