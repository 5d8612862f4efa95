package worker_test

import (
	"context"
	"sync"
	"time"

	"solosuccess.app/api/internal/email"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/scraper"
	"solosuccess.app/api/internal/store"
	"solosuccess.app/api/internal/worker"
)

type fakeConsumer struct {
	mu       sync.Mutex
	acked    []string
	requeued []string
	dlq      []string
}

func (f *fakeConsumer) Read(context.Context) ([]queue.Message, error) { return nil, nil }

func (f *fakeConsumer) Ack(_ context.Context, msg queue.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, msg.ID)
	return nil
}

func (f *fakeConsumer) Requeue(_ context.Context, msg queue.Message, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requeued = append(f.requeued, msg.ID)
	return nil
}

func (f *fakeConsumer) SendDLQ(_ context.Context, msg queue.Message, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dlq = append(f.dlq, msg.ID)
	return nil
}

type fakeProducer struct {
	tasks []queue.Task
	err   error
}

func (p *fakeProducer) Enqueue(_ context.Context, task queue.Task) error {
	if p.err != nil {
		return p.err
	}
	p.tasks = append(p.tasks, task)
	return nil
}

func (p *fakeProducer) Close() error { return nil }

type fakeFetcher struct {
	page *scraper.Page
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*scraper.Page, error) {
	f.urls = append(f.urls, url)
	return f.page, f.err
}

type fakeSender struct {
	sent []email.Message
	err  error
}

func (s *fakeSender) Send(_ context.Context, msg email.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

// Each mock embeds its interface; calling a method without a stub panics.

type mockUserStore struct {
	store.UserStore
	getByIDFn func(ctx context.Context, id int64) (*model.User, error)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return m.getByIDFn(ctx, id)
}

type mockCompetitorStore struct {
	store.CompetitorStore
	getFn     func(ctx context.Context, id int64) (*model.Competitor, error)
	getByIDFn func(ctx context.Context, userID, id int64) (*model.Competitor, error)
}

func (m *mockCompetitorStore) Get(ctx context.Context, id int64) (*model.Competitor, error) {
	return m.getFn(ctx, id)
}

func (m *mockCompetitorStore) GetByID(ctx context.Context, userID, id int64) (*model.Competitor, error) {
	return m.getByIDFn(ctx, userID, id)
}

type mockScrapingJobStore struct {
	store.ScrapingJobStore
	getFn           func(ctx context.Context, id int64) (*model.ScrapingJob, error)
	claimDueFn      func(ctx context.Context, limit int32) ([]model.ScrapingJob, error)
	recordSuccessFn func(ctx context.Context, id int64, hash string) (*model.ScrapingJob, error)
	recordFailureFn func(ctx context.Context, id int64, errMsg string, next time.Time, pauseAfter int) (*model.ScrapingJob, error)
}

func (m *mockScrapingJobStore) Get(ctx context.Context, id int64) (*model.ScrapingJob, error) {
	return m.getFn(ctx, id)
}

func (m *mockScrapingJobStore) ClaimDue(ctx context.Context, limit int32) ([]model.ScrapingJob, error) {
	return m.claimDueFn(ctx, limit)
}

func (m *mockScrapingJobStore) RecordSuccess(ctx context.Context, id int64, hash string) (*model.ScrapingJob, error) {
	return m.recordSuccessFn(ctx, id, hash)
}

func (m *mockScrapingJobStore) RecordFailure(ctx context.Context, id int64, errMsg string, next time.Time, pauseAfter int) (*model.ScrapingJob, error) {
	return m.recordFailureFn(ctx, id, errMsg, next, pauseAfter)
}

type mockScrapingResultStore struct {
	store.ScrapingResultStore
	created []model.ScrapingResult
}

func (m *mockScrapingResultStore) Create(_ context.Context, r *model.ScrapingResult) error {
	m.created = append(m.created, *r)
	return nil
}

type mockAlertStore struct {
	store.AlertStore
	created   []model.CompetitorAlert
	getByIDFn func(ctx context.Context, userID, id int64) (*model.CompetitorAlert, error)
}

func (m *mockAlertStore) Create(_ context.Context, a *model.CompetitorAlert) error {
	m.created = append(m.created, *a)
	return nil
}

func (m *mockAlertStore) GetByID(ctx context.Context, userID, id int64) (*model.CompetitorAlert, error) {
	return m.getByIDFn(ctx, userID, id)
}

type mockStores struct {
	users       *mockUserStore
	competitors *mockCompetitorStore
	jobs        *mockScrapingJobStore
	results     *mockScrapingResultStore
	alerts      *mockAlertStore
}

func newMockStores() *mockStores {
	return &mockStores{
		users:       &mockUserStore{},
		competitors: &mockCompetitorStore{},
		jobs:        &mockScrapingJobStore{},
		results:     &mockScrapingResultStore{},
		alerts:      &mockAlertStore{},
	}
}

func (m *mockStores) Users() store.UserStore                     { return m.users }
func (m *mockStores) Competitors() store.CompetitorStore         { return m.competitors }
func (m *mockStores) ScrapingJobs() store.ScrapingJobStore       { return m.jobs }
func (m *mockStores) ScrapingResults() store.ScrapingResultStore { return m.results }
func (m *mockStores) Alerts() store.AlertStore                   { return m.alerts }

// mockTxRunner runs fn against the same stores without a real transaction.
type mockTxRunner struct {
	stores worker.StoreProvider
	err    error
}

func (m *mockTxRunner) WithTx(_ context.Context, fn func(stores worker.StoreProvider) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(m.stores)
}
