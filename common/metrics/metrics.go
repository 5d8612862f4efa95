package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solosuccess_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solosuccess_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solosuccess_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"scope"},
	)

	JobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solosuccess_worker_jobs_completed_total",
			Help: "Queue jobs processed successfully",
		},
		[]string{"task_type"},
	)

	JobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solosuccess_worker_jobs_failed_total",
			Help: "Queue jobs that returned an error",
		},
		[]string{"task_type", "dead_lettered"},
	)

	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "solosuccess_worker_job_duration_seconds",
			Help: "Queue job processing time",
		},
		[]string{"task_type"},
	)

	ScrapeRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solosuccess_scrape_runs_total",
			Help: "Competitor page fetches by outcome",
		},
		[]string{"outcome"},
	)

	ScrapeChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solosuccess_scrape_changes_total",
			Help: "Competitor page changes detected",
		},
		[]string{"job_type"},
	)

	SocialPosts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solosuccess_social_posts_total",
			Help: "Scheduled social posts by outcome",
		},
		[]string{"platform", "outcome"},
	)

	LLMTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solosuccess_llm_tokens_total",
			Help: "LLM tokens consumed",
		},
		[]string{"feature", "kind"},
	)
)

// Handler exposes the default registry for the metrics listener.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordTokens adds prompt and completion usage for a feature ("chat", "brand").
func RecordTokens(feature string, prompt, completion int) {
	LLMTokens.WithLabelValues(feature, "prompt").Add(float64(prompt))
	LLMTokens.WithLabelValues(feature, "completion").Add(float64(completion))
}
