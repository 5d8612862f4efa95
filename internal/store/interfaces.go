package store

import (
	"context"
	"errors"
	"time"

	"solosuccess.app/api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist or belongs to another user.
var ErrNotFound = errors.New("not found")

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// UpsertByEmail inserts or refreshes a user and reports whether the row is new.
	UpsertByEmail(ctx context.Context, user *model.User) (bool, error)
	UpdateProfile(ctx context.Context, user *model.User) error
	CompleteOnboarding(ctx context.Context, userID int64, businessName, industry *string) (*model.User, error)
}

type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type SubscriptionStore interface {
	GetByUser(ctx context.Context, userID int64) (*model.Subscription, error)
	EnsureDefault(ctx context.Context, userID int64) error
	Upsert(ctx context.Context, sub *model.Subscription) error
}

type GoalStore interface {
	Create(ctx context.Context, goal *model.Goal) error
	GetByID(ctx context.Context, userID, id int64) (*model.Goal, error)
	GetByTitle(ctx context.Context, userID int64, title string) (*model.Goal, error) // case-insensitive
	List(ctx context.Context, userID int64, status *model.GoalStatus) ([]model.Goal, error)
	Update(ctx context.Context, goal *model.Goal) error
	UpdateProgress(ctx context.Context, id int64, progress int) error
	Delete(ctx context.Context, userID, id int64) error
	CountTasks(ctx context.Context, goalID int64) (model.GoalTaskCounts, error)
}

type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, userID, id int64) (*model.Task, error)
	List(ctx context.Context, userID int64, filter model.TaskFilter) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, userID, id int64) error
	// BulkUpdate returns the number of tasks changed and the distinct goals they belong to.
	BulkUpdate(ctx context.Context, userID int64, ids []int64, status *model.TaskStatus, priority *model.TaskPriority) (int, []int64, error)
	CountByStatus(ctx context.Context, userID int64) (map[model.TaskStatus]int64, error)
	ListOpenDueBefore(ctx context.Context, userID int64, before time.Time, limit int32) ([]model.Task, error)
}

type BriefcaseStore interface {
	Create(ctx context.Context, briefcase *model.Briefcase) error
	GetByID(ctx context.Context, userID, id int64) (*model.Briefcase, error)
	GetDefault(ctx context.Context, userID int64) (*model.Briefcase, error)
	List(ctx context.Context, userID int64) ([]model.Briefcase, error)
	Delete(ctx context.Context, userID, id int64) error // never deletes the default briefcase
}

type DocumentStore interface {
	Create(ctx context.Context, doc *model.Document) error
	GetByID(ctx context.Context, userID, id int64) (*model.Document, error)
	GetByIDs(ctx context.Context, userID int64, ids []int64) ([]model.Document, error)
	ListByBriefcase(ctx context.Context, userID, briefcaseID int64) ([]model.Document, error)
	SearchByName(ctx context.Context, userID int64, query string, limit int32) ([]model.Document, error)
	StorageKeysByBriefcase(ctx context.Context, userID, briefcaseID int64) ([]string, error)
	Delete(ctx context.Context, userID, id int64) error
	Count(ctx context.Context, userID int64) (int64, error)
}

type TemplateStore interface {
	Create(ctx context.Context, tmpl *model.Template) error
	GetByID(ctx context.Context, userID, id int64) (*model.Template, error) // own or public
	List(ctx context.Context, userID int64, category *string) ([]model.Template, error)
	Update(ctx context.Context, tmpl *model.Template) error
	Delete(ctx context.Context, userID, id int64) error
}

type CompetitorStore interface {
	Create(ctx context.Context, c *model.Competitor) error
	GetByID(ctx context.Context, userID, id int64) (*model.Competitor, error)
	// Get skips the tenancy check; for background jobs only.
	Get(ctx context.Context, id int64) (*model.Competitor, error)
	List(ctx context.Context, userID int64) ([]model.Competitor, error)
	Update(ctx context.Context, c *model.Competitor) error
	Delete(ctx context.Context, userID, id int64) error
	Count(ctx context.Context, userID int64) (int64, error)
}

type ScrapingJobStore interface {
	Create(ctx context.Context, job *model.ScrapingJob) error
	GetByID(ctx context.Context, userID, id int64) (*model.ScrapingJob, error)
	// Get skips the tenancy check; for background jobs only.
	Get(ctx context.Context, id int64) (*model.ScrapingJob, error)
	ListByCompetitor(ctx context.Context, userID, competitorID int64) ([]model.ScrapingJob, error)
	UpdateSettings(ctx context.Context, job *model.ScrapingJob) error
	Delete(ctx context.Context, userID, id int64) error
	// ClaimDue locks up to limit due jobs and pushes their next_run_at forward.
	ClaimDue(ctx context.Context, limit int32) ([]model.ScrapingJob, error)
	RecordSuccess(ctx context.Context, id int64, contentHash string) (*model.ScrapingJob, error)
	RecordFailure(ctx context.Context, id int64, errMsg string, nextRunAt time.Time, pauseAfter int) (*model.ScrapingJob, error)
}

type ScrapingResultStore interface {
	Create(ctx context.Context, result *model.ScrapingResult) error
	ListByJob(ctx context.Context, jobID int64, limit int32) ([]model.ScrapingResult, error)
}

type AlertStore interface {
	Create(ctx context.Context, alert *model.CompetitorAlert) error
	GetByID(ctx context.Context, userID, id int64) (*model.CompetitorAlert, error)
	List(ctx context.Context, userID int64, filter model.AlertFilter) ([]model.CompetitorAlert, error)
	MarkRead(ctx context.Context, userID, id int64) (*model.CompetitorAlert, error)
	Archive(ctx context.Context, userID, id int64) (*model.CompetitorAlert, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

type OpportunityStore interface {
	Create(ctx context.Context, o *model.Opportunity) error
	GetByID(ctx context.Context, userID, id int64) (*model.Opportunity, error)
	GetByAlert(ctx context.Context, userID, alertID int64) (*model.Opportunity, error)
	// List orders by priority score, highest first, then newest.
	List(ctx context.Context, userID int64, status *model.OpportunityStatus, minScore int) ([]model.Opportunity, error)
	Update(ctx context.Context, o *model.Opportunity) error
	Delete(ctx context.Context, userID, id int64) error
}

type ConversationStore interface {
	Create(ctx context.Context, c *model.Conversation) error
	GetByID(ctx context.Context, userID, id int64) (*model.Conversation, error)
	List(ctx context.Context, userID int64, agentID *string) ([]model.Conversation, error)
	Touch(ctx context.Context, id int64) error
	Delete(ctx context.Context, userID, id int64) error
}

type ChatMessageStore interface {
	Create(ctx context.Context, msg *model.ChatMessage) error
	List(ctx context.Context, conversationID int64) ([]model.ChatMessage, error)
	// ListRecent returns the last limit messages in chronological order.
	ListRecent(ctx context.Context, conversationID int64, limit int32) ([]model.ChatMessage, error)
}

type BrandProfileStore interface {
	Create(ctx context.Context, p *model.BrandProfile) error
	GetByID(ctx context.Context, userID, id int64) (*model.BrandProfile, error)
	List(ctx context.Context, userID int64) ([]model.BrandProfile, error)
	Delete(ctx context.Context, userID, id int64) error
}

type SocialConnectionStore interface {
	Upsert(ctx context.Context, conn *model.SocialConnection) error
	Get(ctx context.Context, userID int64, platform model.SocialPlatform) (*model.SocialConnection, error)
	List(ctx context.Context, userID int64) ([]model.SocialConnection, error)
	Delete(ctx context.Context, userID int64, platform model.SocialPlatform) error
}

type SocialPostStore interface {
	Create(ctx context.Context, post *model.SocialPost) error
	GetByID(ctx context.Context, userID, id int64) (*model.SocialPost, error)
	List(ctx context.Context, userID int64, status *model.SocialPostStatus) ([]model.SocialPost, error)
	// Cancel returns ErrNotFound unless the post exists and is still scheduled.
	Cancel(ctx context.Context, userID, id int64) (*model.SocialPost, error)
	// ClaimDue moves up to limit due posts to publishing, skipping rows locked by another processor.
	// Posts left in publishing past the claim lease are claimed again.
	ClaimDue(ctx context.Context, limit int32) ([]model.SocialPost, error)
	MarkPublished(ctx context.Context, id int64, externalID string) error
	MarkRetry(ctx context.Context, id int64, errMsg string) error
	MarkFailed(ctx context.Context, id int64, errMsg string) error
	CountScheduled(ctx context.Context, userID int64) (int64, error)
}
