package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"due_date"`
	Category    *string `json:"category"`
	ClaimedBy   *string `json:"claimed_by"`
	ClaimedByID *uint64 `json:"claimed_by_id"`
	Status      string  `json:"status"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	Priority    string  `json:"priority" binding:"required,oneof=low medium high"`
	DueDate     string  `json:"due_date" binding:"required,max=32"`
	Category    *string `json:"category" binding:"omitempty,max=255"`
}

// UpdateTaskRequest replaces all content fields of a task; the claim
// triad is not part of the payload.
type UpdateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	Priority    string  `json:"priority" binding:"required,oneof=low medium high"`
	DueDate     string  `json:"due_date" binding:"required,max=32"`
	Category    *string `json:"category" binding:"omitempty,max=255"`
}

type ClaimTaskRequest struct {
	Name   string `json:"name" binding:"required,max=255"`
	UserID uint64 `json:"userId" binding:"required,gt=0"`
}

type CreateTaskResponse struct {
	ID      uint64 `json:"id"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
