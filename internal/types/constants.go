package types

// Priority levels shared by projects and tasks.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Project lifecycle statuses.
const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusOnHold     = "on-hold"
	ProjectStatusCompleted  = "completed"
)

// Task workflow statuses.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in-progress"
	TaskStatusReview     = "review"
	TaskStatusCompleted  = "completed"
)

// DateFormat is the wire format for deadline and due date fields.
const DateFormat = "2006-01-02"

var priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

var projectStatuses = []string{
	ProjectStatusPlanning,
	ProjectStatusInProgress,
	ProjectStatusOnHold,
	ProjectStatusCompleted,
}

var taskStatuses = []string{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusReview,
	TaskStatusCompleted,
}

func ValidPriority(value string) bool {
	return contains(priorities, value)
}

func ValidProjectStatus(value string) bool {
	return contains(projectStatuses, value)
}

func ValidTaskStatus(value string) bool {
	return contains(taskStatuses, value)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}
