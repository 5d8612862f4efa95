package social_test

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/oauth2"

	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/social"
	"solosuccess.app/api/internal/store"
)

type mockPostStore struct {
	store.SocialPostStore
	mu        sync.Mutex
	due       []model.SocialPost
	claims    int
	published map[int64]string
	retried   []int64
	failed    []int64
}

func (m *mockPostStore) ClaimDue(_ context.Context, limit int32) ([]model.SocialPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.claims++
	n := min(int(limit), len(m.due))
	out := m.due[:n]
	m.due = m.due[n:]
	return out, nil
}

func (m *mockPostStore) MarkPublished(ctx context.Context, id int64, externalID string) error {
	// pgx refuses writes on a cancelled context.
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published[id] = externalID
	return nil
}

func (m *mockPostStore) MarkRetry(ctx context.Context, id int64, _ string) error {
	// pgx refuses writes on a cancelled context.
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.retried = append(m.retried, id)
	return nil
}

func (m *mockPostStore) MarkFailed(ctx context.Context, id int64, _ string) error {
	// pgx refuses writes on a cancelled context.
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = append(m.failed, id)
	return nil
}

func (m *mockPostStore) outcomes() (published []int64, retried []int64, failed []int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id := range m.published {
		published = append(published, id)
	}
	return published, append([]int64(nil), m.retried...), append([]int64(nil), m.failed...)
}

func (m *mockPostStore) claimCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.claims
}

type mockConnStore struct {
	store.SocialConnectionStore
	conns    map[model.SocialPlatform]*model.SocialConnection
	upserted []model.SocialConnection
}

func (m *mockConnStore) Get(_ context.Context, _ int64, platform model.SocialPlatform) (*model.SocialConnection, error) {
	conn, ok := m.conns[platform]
	if !ok {
		return nil, store.ErrNotFound
	}
	return conn, nil
}

func (m *mockConnStore) Upsert(_ context.Context, conn *model.SocialConnection) error {
	m.upserted = append(m.upserted, *conn)
	return nil
}

type fakePublisher struct {
	err   error
	token *oauth2.Token
	sent  []string
}

func (f *fakePublisher) Publish(_ context.Context, _ *model.SocialConnection, content string) (*social.PublishResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, content)
	return &social.PublishResult{ExternalID: "ext-" + content, Token: f.token}, nil
}

// blockingPublisher holds every publish until release is closed or the
// context ends, reporting each call on started.
type blockingPublisher struct {
	started chan int64
	release chan struct{}
}

func newBlockingPublisher() *blockingPublisher {
	return &blockingPublisher{started: make(chan int64, 10), release: make(chan struct{})}
}

func (b *blockingPublisher) Publish(ctx context.Context, _ *model.SocialConnection, content string) (*social.PublishResult, error) {
	b.started <- 0
	select {
	case <-b.release:
		return &social.PublishResult{ExternalID: "ext-" + content}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

var _ = Describe("Processor", func() {
	var (
		ctx       context.Context
		posts     *mockPostStore
		conns     *mockConnStore
		publisher *fakePublisher
		processor *social.Processor
	)

	post := func(id int64, attempts int) model.SocialPost {
		return model.SocialPost{ID: id, UserID: 7, Platform: model.PlatformTwitter, Content: "p" + string(rune('0'+id)), Attempts: attempts, Status: model.PostPublishing}
	}

	BeforeEach(func() {
		ctx = context.Background()
		posts = &mockPostStore{published: map[int64]string{}}
		conns = &mockConnStore{conns: map[model.SocialPlatform]*model.SocialConnection{
			model.PlatformTwitter: {UserID: 7, Platform: model.PlatformTwitter, AccessToken: "tok"},
		}}
		publisher = &fakePublisher{}
		processor = social.NewProcessor(posts, conns, map[model.SocialPlatform]social.Publisher{
			model.PlatformTwitter: publisher,
		}, social.ProcessorConfig{BatchSize: 10, MaxAttempts: 3})
	})

	Describe("ProcessNow", func() {
		It("publishes due posts", func() {
			posts.due = []model.SocialPost{post(1, 0), post(2, 0)}

			res, err := processor.ProcessNow(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(social.CycleResult{Claimed: 2, Published: 2}))
			Expect(posts.published).To(HaveKeyWithValue(int64(1), "ext-p1"))

			status := processor.Status()
			Expect(status.Running).To(BeFalse())
			Expect(status.LastRunAt).NotTo(BeNil())
			Expect(status.Totals.Published).To(Equal(2))
		})

		It("reschedules transient failures until attempts run out", func() {
			publisher.err = errors.New("connection reset")
			posts.due = []model.SocialPost{post(1, 0), post(2, 2)}

			res, err := processor.ProcessNow(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Retried).To(Equal(1))
			Expect(res.Failed).To(Equal(1))
			Expect(posts.retried).To(ConsistOf(int64(1)))
			Expect(posts.failed).To(ConsistOf(int64(2)))
		})

		It("fails immediately on permanent API errors", func() {
			publisher.err = &social.APIError{Platform: model.PlatformTwitter, Status: 401}
			posts.due = []model.SocialPost{post(1, 0)}

			_, _ = processor.ProcessNow(ctx)
			Expect(posts.failed).To(ConsistOf(int64(1)))
		})

		It("fails posts whose user disconnected the platform", func() {
			delete(conns.conns, model.PlatformTwitter)
			posts.due = []model.SocialPost{post(1, 0)}

			res, _ := processor.ProcessNow(ctx)
			Expect(res.Failed).To(Equal(1))
			Expect(publisher.sent).To(BeEmpty())
		})

		It("traces each publish call", func() {
			recorder := tracetest.NewSpanRecorder()
			previous := otel.GetTracerProvider()
			otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
			DeferCleanup(func() { otel.SetTracerProvider(previous) })

			publisher.err = errors.New("connection reset")
			posts.due = []model.SocialPost{post(1, 0)}

			_, _ = processor.ProcessNow(ctx)

			spans := recorder.Ended()
			Expect(spans).To(HaveLen(1))
			Expect(spans[0].Name()).To(Equal("social.publish"))
			Expect(spans[0].Attributes()).To(ContainElement(attribute.String("social.platform", "twitter")))
			Expect(spans[0].Events()).NotTo(BeEmpty())
		})

		It("persists refreshed tokens", func() {
			publisher.token = &oauth2.Token{AccessToken: "fresh", RefreshToken: "r2", Expiry: time.Now().Add(time.Hour)}
			posts.due = []model.SocialPost{post(1, 0)}

			_, _ = processor.ProcessNow(ctx)
			Expect(conns.upserted).To(HaveLen(1))
			Expect(conns.upserted[0].AccessToken).To(Equal("fresh"))
		})
	})

	Describe("Start and Stop", func() {
		AfterEach(func() {
			_ = processor.Stop()
		})

		It("refuses to start twice or stop when idle", func() {
			Expect(processor.Stop()).To(MatchError(social.ErrProcessorNotRunning))

			Expect(processor.Start(time.Minute)).To(Succeed())
			Expect(processor.Start(time.Minute)).To(MatchError(social.ErrProcessorRunning))
			Expect(processor.Status().IntervalSeconds).To(Equal(60))

			Expect(processor.Stop()).To(Succeed())
			Expect(processor.Status().Running).To(BeFalse())
		})

		It("raises short intervals to the floor", func() {
			Expect(processor.Start(time.Second)).To(Succeed())
			Expect(processor.Status().IntervalSeconds).To(Equal(10))
		})

		It("can be restarted after stopping", func() {
			Expect(processor.Start(time.Minute)).To(Succeed())
			Expect(processor.Stop()).To(Succeed())
			Expect(processor.Start(time.Minute)).To(Succeed())
			Expect(processor.Status().Running).To(BeTrue())
			Expect(posts.claimCount()).To(BeZero())
		})
	})

	Describe("ticker loop", func() {
		var blocking *blockingPublisher

		BeforeEach(func() {
			blocking = newBlockingPublisher()
			processor = social.NewProcessor(posts, conns, map[model.SocialPlatform]social.Publisher{
				model.PlatformTwitter: blocking,
			}, social.ProcessorConfig{BatchSize: 10, MaxAttempts: 3})
			processor.SetMinInterval(time.Millisecond)
		})

		AfterEach(func() {
			_ = processor.Stop()
		})

		It("publishes due posts on each tick", func() {
			close(blocking.release)
			posts.due = []model.SocialPost{post(1, 0)}

			Expect(processor.Start(5 * time.Millisecond)).To(Succeed())

			Eventually(func() []int64 {
				published, _, _ := posts.outcomes()
				return published
			}).Should(ConsistOf(int64(1)))
			Eventually(posts.claimCount).Should(BeNumerically(">=", 2))
			Eventually(func() int { return processor.Status().Totals.Published }).Should(Equal(1))
		})

		It("makes ProcessNow wait for the running tick cycle", func() {
			posts.due = []model.SocialPost{post(1, 0)}
			Expect(processor.Start(5 * time.Millisecond)).To(Succeed())
			Eventually(blocking.started).Should(Receive())

			done := make(chan social.CycleResult, 1)
			go func() {
				defer GinkgoRecover()
				res, err := processor.ProcessNow(context.Background())
				Expect(err).NotTo(HaveOccurred())
				done <- res
			}()

			Consistently(done, 50*time.Millisecond).ShouldNot(Receive())

			close(blocking.release)
			var res social.CycleResult
			Eventually(done).Should(Receive(&res))
			// The tick cycle already claimed the only due post.
			Expect(res.Claimed).To(BeZero())
			published, _, _ := posts.outcomes()
			Expect(published).To(ConsistOf(int64(1)))
		})

		It("returns in-flight and unstarted posts to scheduled when stopped mid-cycle", func() {
			posts.due = []model.SocialPost{post(1, 0), post(2, 2)}
			Expect(processor.Start(5 * time.Millisecond)).To(Succeed())
			Eventually(blocking.started).Should(Receive())

			Expect(processor.Stop()).To(Succeed())

			published, retried, failed := posts.outcomes()
			Expect(published).To(BeEmpty())
			Expect(failed).To(BeEmpty())
			Expect(retried).To(ConsistOf(int64(1), int64(2)))

			status := processor.Status()
			Expect(status.Running).To(BeFalse())
			Expect(status.LastCycle).To(Equal(social.CycleResult{Claimed: 2, Retried: 2}))
		})
	})
})
