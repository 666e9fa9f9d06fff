package domain

type TaskStatus string

const (
	TaskStatusUnclaimed TaskStatus = "unclaimed"
	TaskStatusClaimed   TaskStatus = "claimed"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task is a unit of work on the claim board. The claim triad
// (Status, ClaimedBy, ClaimedByID) always agrees: Status is claimed
// iff ClaimedByID is non-nil.
type Task struct {
	ID          uint64
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     string
	Category    *string
	Status      TaskStatus
	ClaimedBy   *string
	ClaimedByID *uint64
}

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     string
	Category    *string
}

// UpdateTaskInput carries the content fields of a task. An update
// replaces all content fields and never touches the claim triad.
type UpdateTaskInput struct {
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     string
	Category    *string
}
