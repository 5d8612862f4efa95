package store

import (
	"solosuccess.app/api/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Subscriptions() SubscriptionStore {
	return newSubscriptionStore(s.queries)
}

func (s *Stores) Goals() GoalStore {
	return newGoalStore(s.queries)
}

func (s *Stores) Tasks() TaskStore {
	return newTaskStore(s.queries)
}

func (s *Stores) Briefcases() BriefcaseStore {
	return newBriefcaseStore(s.queries)
}

func (s *Stores) Documents() DocumentStore {
	return newDocumentStore(s.queries)
}

func (s *Stores) Templates() TemplateStore {
	return newTemplateStore(s.queries)
}

func (s *Stores) Competitors() CompetitorStore {
	return newCompetitorStore(s.queries)
}

func (s *Stores) ScrapingJobs() ScrapingJobStore {
	return newScrapingJobStore(s.queries)
}

func (s *Stores) ScrapingResults() ScrapingResultStore {
	return newScrapingResultStore(s.queries)
}

func (s *Stores) Alerts() AlertStore {
	return newAlertStore(s.queries)
}

func (s *Stores) Opportunities() OpportunityStore {
	return newOpportunityStore(s.queries)
}

func (s *Stores) Conversations() ConversationStore {
	return newConversationStore(s.queries)
}

func (s *Stores) ChatMessages() ChatMessageStore {
	return newChatMessageStore(s.queries)
}

func (s *Stores) BrandProfiles() BrandProfileStore {
	return newBrandProfileStore(s.queries)
}

func (s *Stores) SocialConnections() SocialConnectionStore {
	return newSocialConnectionStore(s.queries)
}

func (s *Stores) SocialPosts() SocialPostStore {
	return newSocialPostStore(s.queries)
}
