package domain

import "solosuccess.app/api/internal/model"

// MaxOnboardingGoals bounds how many goals a user may set up in one onboarding run.
const MaxOnboardingGoals = 5

// StarterTask is a task seeded under a goal created during onboarding.
type StarterTask struct {
	Title    string
	Priority model.TaskPriority
}

var starterTasks = map[string][]StarterTask{
	"marketing": {
		{"Define your ideal customer profile", model.TaskPriorityHigh},
		{"Draft a 30-day content calendar", model.TaskPriorityMedium},
		{"Set up an email newsletter signup", model.TaskPriorityMedium},
	},
	"sales": {
		{"List 20 warm leads", model.TaskPriorityHigh},
		{"Write a discovery call script", model.TaskPriorityMedium},
		{"Set a weekly outreach target", model.TaskPriorityMedium},
	},
	"product": {
		{"Write down the core problem you solve", model.TaskPriorityHigh},
		{"Interview three potential customers", model.TaskPriorityHigh},
		{"Scope the smallest shippable version", model.TaskPriorityMedium},
	},
	"finance": {
		{"Open a separate business bank account", model.TaskPriorityHigh},
		{"Build a simple monthly budget", model.TaskPriorityMedium},
		{"Decide on pricing for your main offer", model.TaskPriorityMedium},
	},
	"operations": {
		{"Document your weekly routine", model.TaskPriorityMedium},
		{"Pick a tool for invoices and bookkeeping", model.TaskPriorityMedium},
	},
}

var defaultStarterTasks = []StarterTask{
	{"Break this goal into three milestones", model.TaskPriorityHigh},
	{"Block focus time on your calendar this week", model.TaskPriorityMedium},
}

// StarterTasks returns the seed tasks for a goal category, falling back to a
// generic plan for unknown categories.
func StarterTasks(category string) []StarterTask {
	if tasks, ok := starterTasks[category]; ok {
		return tasks
	}
	return defaultStarterTasks
}
