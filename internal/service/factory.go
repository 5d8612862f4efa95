package service

import (
	"solosuccess.app/api/common/llm"
	"solosuccess.app/api/internal/model"
	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/search"
	"solosuccess.app/api/internal/social"
	"solosuccess.app/api/internal/storage"
	"solosuccess.app/api/internal/store"
)

// Deps are the external integrations behind the services. Nil LLM clients
// disable the features that need them.
type Deps struct {
	Identity             IdentityProvider
	Producer             queue.Producer
	Objects              storage.ObjectStore
	Index                search.DocumentIndex
	ChatLLM              llm.ChatClient
	BrandLLM             llm.StructuredClient
	SocialPlatforms      map[model.SocialPlatform]OAuthPlatform
	SocialState          *social.StateSigner
	BillingWebhookSecret string
}

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	deps     Deps
}

func NewServices(stores *store.Stores, txRunner TxRunner, deps Deps) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		deps:     deps,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.txRunner, s.stores.Sessions(), s.stores.Users(), s.deps.Identity, s.deps.Producer)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users())
}

func (s *Services) Tasks() TaskService {
	return NewTaskService(s.txRunner, s.stores.Tasks(), s.stores.Goals())
}

func (s *Services) Goals() GoalService {
	return NewGoalService(s.stores.Goals())
}

func (s *Services) Briefcases() BriefcaseService {
	return NewBriefcaseService(s.stores.Briefcases(), s.stores.Documents(), s.deps.Objects, s.deps.Index)
}

func (s *Services) Templates() TemplateService {
	return NewTemplateService(s.stores.Templates())
}

func (s *Services) Competitors() CompetitorService {
	return NewCompetitorService(s.stores.Competitors(), s.stores.ScrapingJobs(), s.stores.Subscriptions())
}

func (s *Services) Scraping() ScrapingService {
	return NewScrapingService(s.stores.Competitors(), s.stores.ScrapingJobs(), s.stores.ScrapingResults(), s.deps.Producer)
}

func (s *Services) Alerts() AlertService {
	return NewAlertService(s.stores.Alerts())
}

func (s *Services) Opportunities() OpportunityService {
	return NewOpportunityService(s.txRunner, s.stores.Opportunities(), s.stores.Competitors())
}

func (s *Services) Chat() ChatService {
	return NewChatService(s.stores.Conversations(), s.stores.ChatMessages(), s.stores.Tasks(), s.Tasks(), s.deps.ChatLLM)
}

func (s *Services) Brand() BrandService {
	return NewBrandService(s.stores.BrandProfiles(), s.deps.BrandLLM)
}

func (s *Services) Onboarding() OnboardingService {
	return NewOnboardingService(s.txRunner, s.stores.Users())
}

func (s *Services) Subscriptions() SubscriptionService {
	return NewSubscriptionService(s.stores.Subscriptions(), s.stores.Users(), s.stores.Competitors(), s.stores.Documents(), s.deps.BillingWebhookSecret)
}

func (s *Services) Dashboard() DashboardService {
	return NewDashboardService(s.stores.Users(), s.stores.Tasks(), s.stores.Goals(), s.stores.Alerts(), s.stores.Opportunities(), s.stores.SocialPosts())
}

func (s *Services) Social() SocialService {
	return NewSocialService(s.stores.SocialConnections(), s.stores.SocialPosts(), s.deps.SocialPlatforms, s.deps.SocialState)
}
