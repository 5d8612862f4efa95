package worker_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/worker"
)

var _ = Describe("Worker", func() {
	var (
		ctx      context.Context
		consumer *fakeConsumer
		handled  []string
		result   error
		w        *worker.Worker
	)

	BeforeEach(func() {
		ctx = context.Background()
		consumer = &fakeConsumer{}
		handled = nil
		result = nil

		handler := worker.TaskHandlerFunc(func(_ context.Context, msg queue.Message) error {
			handled = append(handled, msg.ID)
			return result
		})
		w = worker.New(consumer, map[queue.TaskType]worker.TaskHandler{
			queue.TaskTypeCompetitorScrape: handler,
		}, worker.Config{MaxAttempts: 3})
	})

	scrapeMsg := func(attempt int) queue.Message {
		jobID := int64(10)
		return queue.Message{ID: "1-0", TaskType: queue.TaskTypeCompetitorScrape, JobID: &jobID, Attempt: attempt}
	}

	It("acks messages that succeed", func() {
		Expect(w.HandleMessage(ctx, scrapeMsg(1))).To(Succeed())

		Expect(handled).To(ConsistOf("1-0"))
		Expect(consumer.acked).To(ConsistOf("1-0"))
		Expect(consumer.requeued).To(BeEmpty())
	})

	It("requeues failures below the attempt limit", func() {
		result = errors.New("redis hiccup")

		Expect(w.HandleMessage(ctx, scrapeMsg(1))).To(Succeed())

		Expect(consumer.acked).To(BeEmpty())
		Expect(consumer.requeued).To(ConsistOf("1-0"))
		Expect(consumer.dlq).To(BeEmpty())
	})

	It("dead-letters failures at the attempt limit", func() {
		result = errors.New("still broken")

		Expect(w.HandleMessage(ctx, scrapeMsg(3))).To(Succeed())

		Expect(consumer.requeued).To(BeEmpty())
		Expect(consumer.dlq).To(ConsistOf("1-0"))
	})

	It("recovers from handler panics", func() {
		w = worker.New(consumer, map[queue.TaskType]worker.TaskHandler{
			queue.TaskTypeCompetitorScrape: worker.TaskHandlerFunc(func(context.Context, queue.Message) error {
				panic("nil map")
			}),
		}, worker.Config{MaxAttempts: 3})

		Expect(w.HandleMessage(ctx, scrapeMsg(1))).To(Succeed())
		Expect(consumer.requeued).To(ConsistOf("1-0"))
	})

	It("acks task types it has no handler for", func() {
		userID := int64(1)
		msg := queue.Message{ID: "2-0", TaskType: queue.TaskTypeSendEmail, UserID: &userID, EmailKind: queue.EmailWelcome}

		Expect(w.ProcessMessage(ctx, msg)).To(Succeed())
		Expect(consumer.acked).To(ConsistOf("2-0"))
		Expect(handled).To(BeEmpty())
	})
})
