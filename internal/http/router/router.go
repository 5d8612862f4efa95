package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/internal/http/handler"
	"solosuccess.app/api/internal/http/middleware"
	"solosuccess.app/api/internal/ratelimit"
	"solosuccess.app/api/internal/service"
)

type RouterConfig struct {
	IsProduction bool
	AdminAPIKey  string

	// Limiter is optional; without it no route is rate limited.
	Limiter  ratelimit.Limiter
	APIRule  ratelimit.Rule
	ChatRule ratelimit.Rule

	Processor         handler.SocialProcessor
	ProcessorInterval time.Duration
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuthHandler(services.Auth(), services.Onboarding(), cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	subscriptionHandler := handler.NewSubscriptionHandler(services.Subscriptions())
	WebhookRouter(router.Group("/webhooks"), subscriptionHandler)

	api := router.Group("/api")
	if cfg.Limiter != nil {
		api.Use(middleware.RateLimit(cfg.Limiter, cfg.APIRule))
	}

	if cfg.Processor != nil {
		processorHandler := handler.NewProcessorHandler(cfg.Processor, cfg.ProcessorInterval)
		AdminRouter(api.Group("/admin", middleware.RequireAdminKey(cfg.AdminAPIKey)), processorHandler)
	}

	api.Use(middleware.RequireSession(services.Auth()))
	{
		ProfileRouter(api, handler.NewUserHandler(services.Users()))
		TaskRouter(api.Group("/tasks"), handler.NewTaskHandler(services.Tasks()))
		GoalRouter(api.Group("/goals"), handler.NewGoalHandler(services.Goals()))
		BriefcaseRouter(api, handler.NewBriefcaseHandler(services.Briefcases()))

		opportunityHandler := handler.NewOpportunityHandler(services.Opportunities())
		OpportunityRouter(api.Group("/opportunities"), opportunityHandler)

		competitorHandler := handler.NewCompetitorHandler(services.Competitors(), services.Scraping(), services.Alerts())
		CompetitorRouter(api.Group("/competitors"), competitorHandler, opportunityHandler)

		chat := api.Group("/chat")
		brand := api.Group("/brand")
		var expensive []gin.HandlerFunc
		if cfg.Limiter != nil {
			expensive = append(expensive, middleware.RateLimit(cfg.Limiter, cfg.ChatRule))
		}
		ChatRouter(chat, handler.NewChatHandler(services.Chat()), expensive...)
		BrandRouter(brand, handler.NewBrandHandler(services.Brand()), expensive...)

		SocialRouter(api.Group("/social"), handler.NewSocialHandler(services.Social()))
		OnboardingRouter(api.Group("/onboarding"), handler.NewOnboardingHandler(services.Onboarding()))
		TemplateRouter(api.Group("/templates"), handler.NewTemplateHandler(services.Templates()))
		SubscriptionRouter(api.Group("/subscription"), subscriptionHandler)
		DashboardRouter(api.Group("/dashboard"), handler.NewDashboardHandler(services.Dashboard()))
	}
}
