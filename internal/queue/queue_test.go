package queue_test

import (
	"context"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"solosuccess.app/api/internal/queue"
)

var _ = Describe("Redis queue", func() {
	var (
		ctx      context.Context
		mr       *miniredis.Miniredis
		client   *redis.Client
		producer queue.Producer
		consumer *queue.RedisConsumer
	)

	BeforeEach(func() {
		ctx = context.Background()
		mr = miniredis.RunT(GinkgoT())
		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		producer = queue.NewRedisProducer(client, "jobs", nil)

		var err error
		consumer, err = queue.NewRedisConsumer(ctx, client, queue.ConsumerConfig{
			Stream:    "jobs",
			Group:     "workers",
			Consumer:  "worker-1",
			DLQStream: "jobs_dlq",
			BatchSize: 10,
			Block:     10 * time.Millisecond,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = client.Close()
	})

	It("tolerates an existing consumer group", func() {
		_, err := queue.NewRedisConsumer(ctx, client, queue.ConsumerConfig{Stream: "jobs", Group: "workers"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("delivers enqueued scrape tasks", func() {
		Expect(producer.Enqueue(ctx, queue.ScrapeTask(42, 7))).To(Succeed())

		msgs, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0].TaskType).To(Equal(queue.TaskTypeCompetitorScrape))
		Expect(*msgs[0].JobID).To(Equal(int64(42)))
		Expect(*msgs[0].UserID).To(Equal(int64(7)))
		Expect(msgs[0].Attempt).To(Equal(1))
	})

	It("returns an empty batch when nothing is waiting", func() {
		msgs, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(msgs).To(BeEmpty())
	})

	It("drops malformed messages", func() {
		Expect(client.XAdd(ctx, &redis.XAddArgs{
			Stream: "jobs",
			Values: map[string]any{"task_type": "competitor_scrape"},
		}).Err()).To(Succeed())

		msgs, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(msgs).To(BeEmpty())

		pending, err := client.XPending(ctx, "jobs", "workers").Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(pending.Count).To(BeZero())
	})

	It("requeues with the next attempt number", func() {
		Expect(producer.Enqueue(ctx, queue.AlertEmailTask(7, 9))).To(Succeed())
		msgs, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(consumer.Requeue(ctx, msgs[0], "smtp timeout")).To(Succeed())

		again, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(HaveLen(1))
		Expect(again[0].Attempt).To(Equal(2))
		Expect(again[0].EmailKind).To(Equal(queue.EmailCompetitorAlert))
		Expect(*again[0].AlertID).To(Equal(int64(9)))
		Expect(again[0].Raw.Values).To(HaveKeyWithValue("last_error", "smtp timeout"))
	})

	It("moves messages to the dead letter stream", func() {
		Expect(producer.Enqueue(ctx, queue.WelcomeEmailTask(7))).To(Succeed())
		msgs, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(consumer.SendDLQ(ctx, msgs[0], "gave up")).To(Succeed())

		dlq, err := client.XRange(ctx, "jobs_dlq", "-", "+").Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(dlq).To(HaveLen(1))
		Expect(dlq[0].Values).To(HaveKeyWithValue("error", "gave up"))
		Expect(dlq[0].Values).To(HaveKeyWithValue("email_kind", "welcome"))
	})
})

var _ = Describe("ParseMessage", func() {
	DescribeTable("rejects incomplete payloads",
		func(values map[string]any) {
			_, err := queue.ParseMessage(redis.XMessage{ID: "1-0", Values: values})
			Expect(err).To(HaveOccurred())
		},
		Entry("no task type", map[string]any{"job_id": "1"}),
		Entry("unknown task type", map[string]any{"task_type": "reindex"}),
		Entry("scrape without job", map[string]any{"task_type": "competitor_scrape"}),
		Entry("email without user", map[string]any{"task_type": "send_email", "email_kind": "welcome"}),
		Entry("alert email without alert", map[string]any{"task_type": "send_email", "email_kind": "competitor_alert", "user_id": "1"}),
		Entry("unknown email kind", map[string]any{"task_type": "send_email", "email_kind": "digest", "user_id": "1"}),
		Entry("non numeric id", map[string]any{"task_type": "competitor_scrape", "job_id": "abc"}),
	)

	It("keeps the trace id", func() {
		msg, err := queue.ParseMessage(redis.XMessage{ID: "1-0", Values: map[string]any{
			"task_type": "competitor_scrape",
			"job_id":    "5",
			"trace_id":  "abc123",
		}})
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.TraceID).To(Equal("abc123"))
		Expect(*msg.Task().TraceID).To(Equal("abc123"))
	})
})

var _ = Describe("noop producer", func() {
	It("reports the queue as disabled", func() {
		err := queue.NewNoopProducer(nil).Enqueue(context.Background(), queue.WelcomeEmailTask(1))
		Expect(err).To(MatchError(queue.ErrQueueDisabled))
	})
})
