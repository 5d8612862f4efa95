package queue

type TaskType string

const (
	TaskTypeCompetitorScrape TaskType = "competitor_scrape"
	TaskTypeSendEmail        TaskType = "send_email"
)

type EmailKind string

const (
	EmailWelcome         EmailKind = "welcome"
	EmailCompetitorAlert EmailKind = "competitor_alert"
)

type Task struct {
	TaskType  TaskType
	JobID     *int64
	UserID    *int64
	AlertID   *int64
	EmailKind EmailKind
	TraceID   *string
	Attempt   int
}

func ScrapeTask(jobID, userID int64) Task {
	return Task{TaskType: TaskTypeCompetitorScrape, JobID: &jobID, UserID: &userID}
}

func WelcomeEmailTask(userID int64) Task {
	return Task{TaskType: TaskTypeSendEmail, UserID: &userID, EmailKind: EmailWelcome}
}

func AlertEmailTask(userID, alertID int64) Task {
	return Task{TaskType: TaskTypeSendEmail, UserID: &userID, AlertID: &alertID, EmailKind: EmailCompetitorAlert}
}
