package service_test

import (
	"context"
	"io"
	"time"

	"golang.org/x/oauth2"

	"solosuccess.app/api/common/llm"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/service"
	"solosuccess.app/api/internal/social"
	"solosuccess.app/api/internal/store"
)

// Store mocks embed the interface so unexercised methods need no stub.

type mockUserStore struct {
	store.UserStore
	getByIDFn            func(ctx context.Context, id int64) (*model.User, error)
	getByEmailFn         func(ctx context.Context, email string) (*model.User, error)
	upsertByEmailFn      func(ctx context.Context, user *model.User) (bool, error)
	updateProfileFn      func(ctx context.Context, user *model.User) error
	completeOnboardingFn func(ctx context.Context, userID int64, businessName, industry *string) (*model.User, error)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserStore) UpsertByEmail(ctx context.Context, user *model.User) (bool, error) {
	return m.upsertByEmailFn(ctx, user)
}

func (m *mockUserStore) UpdateProfile(ctx context.Context, user *model.User) error {
	return m.updateProfileFn(ctx, user)
}

func (m *mockUserStore) CompleteOnboarding(ctx context.Context, userID int64, businessName, industry *string) (*model.User, error) {
	return m.completeOnboardingFn(ctx, userID, businessName, industry)
}

type mockSessionStore struct {
	store.SessionStore
	created    []*model.Session
	getValidFn func(ctx context.Context, id int64) (*model.Session, error)
	deleted    []int64
}

func (m *mockSessionStore) Create(_ context.Context, session *model.Session) error {
	m.created = append(m.created, session)
	return nil
}

func (m *mockSessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	return m.getValidFn(ctx, id)
}

func (m *mockSessionStore) Delete(_ context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockSubscriptionStore struct {
	store.SubscriptionStore
	getByUserFn     func(ctx context.Context, userID int64) (*model.Subscription, error)
	ensureDefaultFn func(ctx context.Context, userID int64) error
	upserted        []*model.Subscription
}

func (m *mockSubscriptionStore) GetByUser(ctx context.Context, userID int64) (*model.Subscription, error) {
	return m.getByUserFn(ctx, userID)
}

func (m *mockSubscriptionStore) EnsureDefault(ctx context.Context, userID int64) error {
	if m.ensureDefaultFn != nil {
		return m.ensureDefaultFn(ctx, userID)
	}
	return nil
}

func (m *mockSubscriptionStore) Upsert(_ context.Context, sub *model.Subscription) error {
	m.upserted = append(m.upserted, sub)
	return nil
}

type mockGoalStore struct {
	store.GoalStore
	goals        map[int64]*model.Goal
	counts       map[int64]model.GoalTaskCounts
	progress     map[int64]int
	created      []*model.Goal
	updateFn     func(ctx context.Context, goal *model.Goal) error
	deleteFn     func(ctx context.Context, userID, id int64) error
	listFn       func(ctx context.Context, userID int64, status *model.GoalStatus) ([]model.Goal, error)
	getByTitleFn func(ctx context.Context, userID int64, title string) (*model.Goal, error)
}

func newMockGoalStore() *mockGoalStore {
	return &mockGoalStore{
		goals:    map[int64]*model.Goal{},
		counts:   map[int64]model.GoalTaskCounts{},
		progress: map[int64]int{},
	}
}

func (m *mockGoalStore) Create(_ context.Context, goal *model.Goal) error {
	m.created = append(m.created, goal)
	m.goals[goal.ID] = goal
	return nil
}

func (m *mockGoalStore) GetByID(_ context.Context, userID, id int64) (*model.Goal, error) {
	g, ok := m.goals[id]
	if !ok || g.UserID != userID {
		return nil, store.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *mockGoalStore) GetByTitle(ctx context.Context, userID int64, title string) (*model.Goal, error) {
	if m.getByTitleFn != nil {
		return m.getByTitleFn(ctx, userID, title)
	}
	return nil, store.ErrNotFound
}

func (m *mockGoalStore) List(ctx context.Context, userID int64, status *model.GoalStatus) ([]model.Goal, error) {
	return m.listFn(ctx, userID, status)
}

func (m *mockGoalStore) Update(ctx context.Context, goal *model.Goal) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, goal)
	}
	return nil
}

func (m *mockGoalStore) UpdateProgress(_ context.Context, id int64, progress int) error {
	m.progress[id] = progress
	return nil
}

func (m *mockGoalStore) Delete(ctx context.Context, userID, id int64) error {
	return m.deleteFn(ctx, userID, id)
}

func (m *mockGoalStore) CountTasks(_ context.Context, goalID int64) (model.GoalTaskCounts, error) {
	return m.counts[goalID], nil
}

type mockTaskStore struct {
	store.TaskStore
	tasks        map[int64]*model.Task
	created      []*model.Task
	updated      []*model.Task
	listFn       func(ctx context.Context, userID int64, filter model.TaskFilter) ([]model.Task, error)
	bulkUpdateFn func(ctx context.Context, userID int64, ids []int64, status *model.TaskStatus, priority *model.TaskPriority) (int, []int64, error)
	dueBeforeFn  func(ctx context.Context, userID int64, before time.Time, limit int32) ([]model.Task, error)
	countFn      func(ctx context.Context, userID int64) (map[model.TaskStatus]int64, error)
}

func newMockTaskStore() *mockTaskStore {
	return &mockTaskStore{tasks: map[int64]*model.Task{}}
}

func (m *mockTaskStore) Create(_ context.Context, task *model.Task) error {
	m.created = append(m.created, task)
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskStore) GetByID(_ context.Context, userID, id int64) (*model.Task, error) {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return nil, store.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *mockTaskStore) List(ctx context.Context, userID int64, filter model.TaskFilter) ([]model.Task, error) {
	return m.listFn(ctx, userID, filter)
}

func (m *mockTaskStore) Update(_ context.Context, task *model.Task) error {
	m.updated = append(m.updated, task)
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskStore) Delete(_ context.Context, userID, id int64) error {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return store.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockTaskStore) BulkUpdate(ctx context.Context, userID int64, ids []int64, status *model.TaskStatus, priority *model.TaskPriority) (int, []int64, error) {
	return m.bulkUpdateFn(ctx, userID, ids, status, priority)
}

func (m *mockTaskStore) CountByStatus(ctx context.Context, userID int64) (map[model.TaskStatus]int64, error) {
	return m.countFn(ctx, userID)
}

func (m *mockTaskStore) ListOpenDueBefore(ctx context.Context, userID int64, before time.Time, limit int32) ([]model.Task, error) {
	return m.dueBeforeFn(ctx, userID, before, limit)
}

type mockBriefcaseStore struct {
	store.BriefcaseStore
	briefcases   map[int64]*model.Briefcase
	created      []*model.Briefcase
	getDefaultFn func(ctx context.Context, userID int64) (*model.Briefcase, error)
	deleted      []int64
}

func newMockBriefcaseStore() *mockBriefcaseStore {
	return &mockBriefcaseStore{briefcases: map[int64]*model.Briefcase{}}
}

func (m *mockBriefcaseStore) Create(_ context.Context, b *model.Briefcase) error {
	m.created = append(m.created, b)
	m.briefcases[b.ID] = b
	return nil
}

func (m *mockBriefcaseStore) GetByID(_ context.Context, userID, id int64) (*model.Briefcase, error) {
	b, ok := m.briefcases[id]
	if !ok || b.UserID != userID {
		return nil, store.ErrNotFound
	}
	return b, nil
}

func (m *mockBriefcaseStore) GetDefault(ctx context.Context, userID int64) (*model.Briefcase, error) {
	return m.getDefaultFn(ctx, userID)
}

func (m *mockBriefcaseStore) Delete(_ context.Context, _ int64, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockDocumentStore struct {
	store.DocumentStore
	created        []*model.Document
	listFn         func(ctx context.Context, userID, briefcaseID int64) ([]model.Document, error)
	getByIDsFn     func(ctx context.Context, userID int64, ids []int64) ([]model.Document, error)
	searchByNameFn func(ctx context.Context, userID int64, query string, limit int32) ([]model.Document, error)
	countFn        func(ctx context.Context, userID int64) (int64, error)
}

func (m *mockDocumentStore) Create(_ context.Context, doc *model.Document) error {
	m.created = append(m.created, doc)
	return nil
}

func (m *mockDocumentStore) ListByBriefcase(ctx context.Context, userID, briefcaseID int64) ([]model.Document, error) {
	return m.listFn(ctx, userID, briefcaseID)
}

func (m *mockDocumentStore) GetByIDs(ctx context.Context, userID int64, ids []int64) ([]model.Document, error) {
	return m.getByIDsFn(ctx, userID, ids)
}

func (m *mockDocumentStore) SearchByName(ctx context.Context, userID int64, query string, limit int32) ([]model.Document, error) {
	return m.searchByNameFn(ctx, userID, query, limit)
}

func (m *mockDocumentStore) Count(ctx context.Context, userID int64) (int64, error) {
	return m.countFn(ctx, userID)
}

type mockTemplateStore struct {
	store.TemplateStore
	getByIDFn func(ctx context.Context, userID, id int64) (*model.Template, error)
	updated   []*model.Template
}

func (m *mockTemplateStore) GetByID(ctx context.Context, userID, id int64) (*model.Template, error) {
	return m.getByIDFn(ctx, userID, id)
}

func (m *mockTemplateStore) Update(_ context.Context, t *model.Template) error {
	m.updated = append(m.updated, t)
	return nil
}

type mockCompetitorStore struct {
	store.CompetitorStore
	getByIDFn func(ctx context.Context, userID, id int64) (*model.Competitor, error)
	countFn   func(ctx context.Context, userID int64) (int64, error)
	created   []*model.Competitor
}

func (m *mockCompetitorStore) GetByID(ctx context.Context, userID, id int64) (*model.Competitor, error) {
	return m.getByIDFn(ctx, userID, id)
}

func (m *mockCompetitorStore) Count(ctx context.Context, userID int64) (int64, error) {
	return m.countFn(ctx, userID)
}

func (m *mockCompetitorStore) Create(_ context.Context, c *model.Competitor) error {
	m.created = append(m.created, c)
	return nil
}

type mockScrapingJobStore struct {
	store.ScrapingJobStore
	getByIDFn func(ctx context.Context, userID, id int64) (*model.ScrapingJob, error)
	created   []*model.ScrapingJob
	updated   []*model.ScrapingJob
}

func (m *mockScrapingJobStore) GetByID(ctx context.Context, userID, id int64) (*model.ScrapingJob, error) {
	return m.getByIDFn(ctx, userID, id)
}

func (m *mockScrapingJobStore) Create(_ context.Context, job *model.ScrapingJob) error {
	m.created = append(m.created, job)
	return nil
}

func (m *mockScrapingJobStore) UpdateSettings(_ context.Context, job *model.ScrapingJob) error {
	m.updated = append(m.updated, job)
	return nil
}

type mockAlertStore struct {
	store.AlertStore
	getByIDFn     func(ctx context.Context, userID, id int64) (*model.CompetitorAlert, error)
	countUnreadFn func(ctx context.Context, userID int64) (int64, error)
	markedRead    []int64
}

func (m *mockAlertStore) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return m.countUnreadFn(ctx, userID)
}

func (m *mockAlertStore) GetByID(ctx context.Context, userID, id int64) (*model.CompetitorAlert, error) {
	return m.getByIDFn(ctx, userID, id)
}

func (m *mockAlertStore) MarkRead(_ context.Context, _ int64, id int64) (*model.CompetitorAlert, error) {
	m.markedRead = append(m.markedRead, id)
	return &model.CompetitorAlert{ID: id, IsRead: true}, nil
}

type mockOpportunityStore struct {
	store.OpportunityStore
	getByIDFn    func(ctx context.Context, userID, id int64) (*model.Opportunity, error)
	getByAlertFn func(ctx context.Context, userID, alertID int64) (*model.Opportunity, error)
	listFn       func(ctx context.Context, userID int64, status *model.OpportunityStatus, minScore int) ([]model.Opportunity, error)
	created      []*model.Opportunity
	updated      []*model.Opportunity
}

func (m *mockOpportunityStore) List(ctx context.Context, userID int64, status *model.OpportunityStatus, minScore int) ([]model.Opportunity, error) {
	return m.listFn(ctx, userID, status, minScore)
}

func (m *mockOpportunityStore) GetByID(ctx context.Context, userID, id int64) (*model.Opportunity, error) {
	return m.getByIDFn(ctx, userID, id)
}

func (m *mockOpportunityStore) GetByAlert(ctx context.Context, userID, alertID int64) (*model.Opportunity, error) {
	return m.getByAlertFn(ctx, userID, alertID)
}

func (m *mockOpportunityStore) Create(_ context.Context, o *model.Opportunity) error {
	m.created = append(m.created, o)
	return nil
}

func (m *mockOpportunityStore) Update(_ context.Context, o *model.Opportunity) error {
	m.updated = append(m.updated, o)
	return nil
}

type mockConversationStore struct {
	store.ConversationStore
	getByIDFn func(ctx context.Context, userID, id int64) (*model.Conversation, error)
	created   []*model.Conversation
	touched   []int64
}

func (m *mockConversationStore) GetByID(ctx context.Context, userID, id int64) (*model.Conversation, error) {
	return m.getByIDFn(ctx, userID, id)
}

func (m *mockConversationStore) Create(_ context.Context, c *model.Conversation) error {
	m.created = append(m.created, c)
	return nil
}

func (m *mockConversationStore) Touch(_ context.Context, id int64) error {
	m.touched = append(m.touched, id)
	return nil
}

type mockChatMessageStore struct {
	store.ChatMessageStore
	messages    []model.ChatMessage
	recentLimit int32
}

func (m *mockChatMessageStore) Create(_ context.Context, msg *model.ChatMessage) error {
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *mockChatMessageStore) ListRecent(_ context.Context, _ int64, limit int32) ([]model.ChatMessage, error) {
	m.recentLimit = limit
	if int(limit) < len(m.messages) {
		return m.messages[len(m.messages)-int(limit):], nil
	}
	return m.messages, nil
}

type mockBrandProfileStore struct {
	store.BrandProfileStore
	created []*model.BrandProfile
}

func (m *mockBrandProfileStore) Create(_ context.Context, p *model.BrandProfile) error {
	m.created = append(m.created, p)
	return nil
}

type mockSocialConnectionStore struct {
	store.SocialConnectionStore
	getFn    func(ctx context.Context, userID int64, platform model.SocialPlatform) (*model.SocialConnection, error)
	upserted []*model.SocialConnection
}

func (m *mockSocialConnectionStore) Get(ctx context.Context, userID int64, platform model.SocialPlatform) (*model.SocialConnection, error) {
	return m.getFn(ctx, userID, platform)
}

func (m *mockSocialConnectionStore) Upsert(_ context.Context, conn *model.SocialConnection) error {
	m.upserted = append(m.upserted, conn)
	return nil
}

type mockSocialPostStore struct {
	store.SocialPostStore
	cancelFn         func(ctx context.Context, userID, id int64) (*model.SocialPost, error)
	getByIDFn        func(ctx context.Context, userID, id int64) (*model.SocialPost, error)
	countScheduledFn func(ctx context.Context, userID int64) (int64, error)
	created          []*model.SocialPost
}

func (m *mockSocialPostStore) CountScheduled(ctx context.Context, userID int64) (int64, error) {
	return m.countScheduledFn(ctx, userID)
}

func (m *mockSocialPostStore) Cancel(ctx context.Context, userID, id int64) (*model.SocialPost, error) {
	return m.cancelFn(ctx, userID, id)
}

func (m *mockSocialPostStore) GetByID(ctx context.Context, userID, id int64) (*model.SocialPost, error) {
	return m.getByIDFn(ctx, userID, id)
}

func (m *mockSocialPostStore) Create(_ context.Context, post *model.SocialPost) error {
	m.created = append(m.created, post)
	return nil
}

// fakeStores hands the same mocks to every transaction.
type fakeStores struct {
	users         *mockUserStore
	sessions      *mockSessionStore
	subscriptions *mockSubscriptionStore
	goals         *mockGoalStore
	tasks         *mockTaskStore
	briefcases    *mockBriefcaseStore
	documents     *mockDocumentStore
	alerts        *mockAlertStore
	opportunities *mockOpportunityStore
	conversations *mockConversationStore
	messages      *mockChatMessageStore
}

func (f *fakeStores) Users() store.UserStore                 { return f.users }
func (f *fakeStores) Sessions() store.SessionStore           { return f.sessions }
func (f *fakeStores) Subscriptions() store.SubscriptionStore { return f.subscriptions }
func (f *fakeStores) Goals() store.GoalStore                 { return f.goals }
func (f *fakeStores) Tasks() store.TaskStore                 { return f.tasks }
func (f *fakeStores) Briefcases() store.BriefcaseStore       { return f.briefcases }
func (f *fakeStores) Documents() store.DocumentStore         { return f.documents }
func (f *fakeStores) Alerts() store.AlertStore               { return f.alerts }
func (f *fakeStores) Opportunities() store.OpportunityStore  { return f.opportunities }
func (f *fakeStores) Conversations() store.ConversationStore { return f.conversations }
func (f *fakeStores) ChatMessages() store.ChatMessageStore   { return f.messages }

type fakeTxRunner struct {
	stores service.StoreProvider
	calls  int
}

func (r *fakeTxRunner) WithTx(_ context.Context, fn func(stores service.StoreProvider) error) error {
	r.calls++
	return fn(r.stores)
}

type mockProducer struct {
	tasks []queue.Task
	err   error
}

func (m *mockProducer) Enqueue(_ context.Context, task queue.Task) error {
	if m.err != nil {
		return m.err
	}
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *mockProducer) Close() error { return nil }

type mockObjectStore struct {
	puts    map[string]string
	deleted []string
	putErr  error
	url     string
	urlErr  error
}

func newMockObjectStore() *mockObjectStore {
	return &mockObjectStore{puts: map[string]string{}}
}

func (m *mockObjectStore) Put(_ context.Context, key string, body io.Reader, _ string) error {
	if m.putErr != nil {
		return m.putErr
	}
	data, _ := io.ReadAll(body)
	m.puts[key] = string(data)
	return nil
}

func (m *mockObjectStore) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockObjectStore) PresignGet(_ context.Context, _, _ string) (string, error) {
	return m.url, m.urlErr
}

type mockIndex struct {
	indexed   []int64
	removed   []int64
	searchFn  func(ctx context.Context, userID int64, query string, limit int) ([]int64, error)
	indexErr  error
	removeErr error
}

func (m *mockIndex) EnsureCollection(context.Context) error { return nil }

func (m *mockIndex) Index(_ context.Context, doc *model.Document) error {
	m.indexed = append(m.indexed, doc.ID)
	return m.indexErr
}

func (m *mockIndex) Remove(_ context.Context, id int64) error {
	m.removed = append(m.removed, id)
	return m.removeErr
}

func (m *mockIndex) Search(ctx context.Context, userID int64, query string, limit int) ([]int64, error) {
	return m.searchFn(ctx, userID, query, limit)
}

type mockChatClient struct {
	requests  []llm.ChatRequest
	responses []*llm.ChatResponse
	err       error
}

func (m *mockChatClient) Complete(_ context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	resp := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return resp, nil
}

func (m *mockChatClient) Model() string { return "test-chat" }

type mockStructuredClient struct {
	generateFn func(ctx context.Context, req llm.StructuredRequest, result any) (*llm.Usage, error)
}

func (m *mockStructuredClient) Generate(ctx context.Context, req llm.StructuredRequest, result any) (*llm.Usage, error) {
	return m.generateFn(ctx, req, result)
}

func (m *mockStructuredClient) Model() string { return "test-structured" }

type mockIdentityProvider struct {
	authenticateFn func(ctx context.Context, code string) (*service.Identity, error)
}

func (m *mockIdentityProvider) AuthorizationURL(state, _ string) (string, error) {
	return "https://auth.example.com/authorize?state=" + state, nil
}

func (m *mockIdentityProvider) Authenticate(ctx context.Context, code string) (*service.Identity, error) {
	return m.authenticateFn(ctx, code)
}

func (m *mockIdentityProvider) LogoutURL(sessionID string) (string, error) {
	return "https://auth.example.com/logout?session=" + sessionID, nil
}

type mockOAuthPlatform struct {
	exchangeFn func(ctx context.Context, code, verifier string) (*oauth2.Token, error)
	account    *social.Account
}

func (m *mockOAuthPlatform) AuthURL(state, _ string) string {
	return "https://social.example.com/authorize?state=" + state
}

func (m *mockOAuthPlatform) Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error) {
	return m.exchangeFn(ctx, code, verifier)
}

func (m *mockOAuthPlatform) Profile(context.Context, *oauth2.Token) (*social.Account, error) {
	return m.account, nil
}
