package social

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"solosuccess.app/api/common/logger"
	"solosuccess.app/api/common/metrics"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/store"
)

var (
	ErrProcessorRunning    = errors.New("social post processor is already running")
	ErrProcessorNotRunning = errors.New("social post processor is not running")
)

// MinInterval is the shortest accepted tick interval.
const MinInterval = 10 * time.Second

// statusWriteTimeout bounds the status update that follows a publish attempt.
// It runs detached from the cycle context so Stop cannot strand a post in publishing.
const statusWriteTimeout = 5 * time.Second

var errInterrupted = errors.New("processor stopped before the post was published")

type ProcessorConfig struct {
	BatchSize   int32
	MaxAttempts int
}

// CycleResult counts what one pass over the due posts did.
type CycleResult struct {
	Claimed   int `json:"claimed"`
	Published int `json:"published"`
	Retried   int `json:"retried"`
	Failed    int `json:"failed"`
}

func (c *CycleResult) add(o CycleResult) {
	c.Claimed += o.Claimed
	c.Published += o.Published
	c.Retried += o.Retried
	c.Failed += o.Failed
}

type Status struct {
	Running         bool        `json:"running"`
	IntervalSeconds int         `json:"interval_seconds"`
	LastRunAt       *time.Time  `json:"last_run_at,omitempty"`
	LastCycle       CycleResult `json:"last_cycle"`
	Totals          CycleResult `json:"totals"`
}

// Processor publishes scheduled posts whose time has come, either on a ticker
// or on demand. Cycles never overlap.
type Processor struct {
	posts      store.SocialPostStore
	conns      store.SocialConnectionStore
	publishers map[model.SocialPlatform]Publisher
	cfg        ProcessorConfig

	minInterval time.Duration
	cycleMu     sync.Mutex

	mu       sync.Mutex
	running  bool
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	lastRun  *time.Time
	last     CycleResult
	totals   CycleResult
}

func NewProcessor(posts store.SocialPostStore, conns store.SocialConnectionStore, publishers map[model.SocialPlatform]Publisher, cfg ProcessorConfig) *Processor {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 25
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &Processor{
		posts:       posts,
		conns:       conns,
		publishers:  publishers,
		cfg:         cfg,
		minInterval: MinInterval,
	}
}

// Start launches the ticker loop. Intervals below MinInterval are raised to it.
func (p *Processor) Start(interval time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return ErrProcessorRunning
	}

	p.interval = max(interval, p.minInterval)
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	p.running = true

	go p.loop(p.interval, p.stop, p.done)

	slog.Info("social post processor started", "interval", p.interval)
	return nil
}

// Stop ends the loop and waits for an in-flight cycle to finish.
func (p *Processor) Stop() error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return ErrProcessorNotRunning
	}
	stop, done := p.stop, p.done
	p.running = false
	p.mu.Unlock()

	close(stop)
	<-done

	slog.Info("social post processor stopped")
	return nil
}

func (p *Processor) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Status{
		Running:   p.running,
		LastCycle: p.last,
		Totals:    p.totals,
	}
	if p.running {
		s.IntervalSeconds = int(p.interval / time.Second)
	}
	if p.lastRun != nil {
		t := *p.lastRun
		s.LastRunAt = &t
	}
	return s
}

// ProcessNow runs one cycle synchronously, waiting for a ticker cycle in progress.
func (p *Processor) ProcessNow(ctx context.Context) (CycleResult, error) {
	return p.runCycle(ctx)
}

func (p *Processor) loop(interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-stop
		cancel()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if _, err := p.runCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.ErrorContext(ctx, "social post cycle failed", "error", err)
			}
		}
	}
}

func (p *Processor) runCycle(ctx context.Context) (CycleResult, error) {
	p.cycleMu.Lock()
	defer p.cycleMu.Unlock()

	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "solosuccess.social.processor"})

	var result CycleResult
	posts, err := p.posts.ClaimDue(ctx, p.cfg.BatchSize)
	if err != nil {
		return result, fmt.Errorf("claiming due posts: %w", err)
	}
	result.Claimed = len(posts)

	for i := range posts {
		if ctx.Err() != nil {
			// Stopped mid-batch: return the rest to scheduled.
			p.release(ctx, &posts[i], errInterrupted)
			result.Retried++
			continue
		}
		switch p.publish(ctx, &posts[i]) {
		case model.PostPublished:
			result.Published++
		case model.PostScheduled:
			result.Retried++
		case model.PostFailed:
			result.Failed++
		}
	}

	now := time.Now()
	p.mu.Lock()
	p.lastRun = &now
	p.last = result
	p.totals.add(result)
	p.mu.Unlock()

	if result.Claimed > 0 {
		slog.InfoContext(ctx, "social post cycle finished",
			"claimed", result.Claimed,
			"published", result.Published,
			"retried", result.Retried,
			"failed", result.Failed)
	}
	return result, nil
}

// publish returns the status the post ended in.
func (p *Processor) publish(ctx context.Context, post *model.SocialPost) model.SocialPostStatus {
	ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &post.UserID, PostID: &post.ID})

	publisher, ok := p.publishers[post.Platform]
	if !ok {
		return p.fail(ctx, post, ErrPlatformNotConfigured, true)
	}

	conn, err := p.conns.Get(ctx, post.UserID, post.Platform)
	if err != nil {
		if ctx.Err() != nil {
			return p.release(ctx, post, err)
		}
		if errors.Is(err, store.ErrNotFound) {
			return p.fail(ctx, post, fmt.Errorf("no %s connection", post.Platform), true)
		}
		return p.fail(ctx, post, fmt.Errorf("loading connection: %w", err), false)
	}

	sc := logger.StartSpan(ctx, "social.publish",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("social.platform", string(post.Platform)),
			attribute.Int64("social.post_id", post.ID),
		))
	res, err := publisher.Publish(sc.Context(), conn, post.Content)
	sc.RecordError(err)
	sc.End()
	if err != nil {
		if ctx.Err() != nil {
			return p.release(ctx, post, err)
		}
		var apiErr *APIError
		return p.fail(ctx, post, err, errors.As(err, &apiErr) && apiErr.Permanent())
	}

	writeCtx, cancel := detached(ctx)
	defer cancel()

	if res.Token != nil {
		ApplyToken(conn, res.Token)
		if err := p.conns.Upsert(writeCtx, conn); err != nil {
			slog.WarnContext(ctx, "failed to persist refreshed token", "error", err)
		}
	}

	if err := p.posts.MarkPublished(writeCtx, post.ID, res.ExternalID); err != nil {
		// The post is live but stays in publishing until its claim lease lapses.
		slog.ErrorContext(ctx, "post published but status update failed", "error", err, "external_post_id", res.ExternalID)
		return model.PostPublished
	}

	metrics.SocialPosts.WithLabelValues(string(post.Platform), "published").Inc()
	slog.InfoContext(ctx, "social post published", "platform", post.Platform, "external_post_id", res.ExternalID)
	return model.PostPublished
}

func (p *Processor) fail(ctx context.Context, post *model.SocialPost, cause error, permanent bool) model.SocialPostStatus {
	msg := logger.Truncate(cause.Error(), 500)
	writeCtx, cancel := detached(ctx)
	defer cancel()

	if permanent || post.Attempts+1 >= p.cfg.MaxAttempts {
		if err := p.posts.MarkFailed(writeCtx, post.ID, msg); err != nil {
			slog.ErrorContext(ctx, "failed to mark post failed", "error", err)
		}
		metrics.SocialPosts.WithLabelValues(string(post.Platform), "failed").Inc()
		slog.WarnContext(ctx, "social post failed", "error", cause, "attempts", post.Attempts+1)
		return model.PostFailed
	}

	if err := p.posts.MarkRetry(writeCtx, post.ID, msg); err != nil {
		slog.ErrorContext(ctx, "failed to reschedule post", "error", err)
	}
	metrics.SocialPosts.WithLabelValues(string(post.Platform), "retried").Inc()
	slog.WarnContext(ctx, "social post will be retried", "error", cause, "attempts", post.Attempts+1)
	return model.PostScheduled
}

// release returns a post interrupted by Stop to scheduled. It never fails the
// post, whatever its attempt count.
func (p *Processor) release(ctx context.Context, post *model.SocialPost, cause error) model.SocialPostStatus {
	writeCtx, cancel := detached(ctx)
	defer cancel()

	if err := p.posts.MarkRetry(writeCtx, post.ID, logger.Truncate(cause.Error(), 500)); err != nil {
		slog.ErrorContext(ctx, "failed to release interrupted post", "error", err, "post_id", post.ID)
	}
	metrics.SocialPosts.WithLabelValues(string(post.Platform), "retried").Inc()
	slog.InfoContext(ctx, "social post released after stop", "post_id", post.ID)
	return model.PostScheduled
}

func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), statusWriteTimeout)
}
