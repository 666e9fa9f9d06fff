package mapper

import (
	"taskclaim/internal/adapter/http/dto"
	"taskclaim/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		Status:      string(task.Status),
	}

	if task.Category != nil {
		value := *task.Category
		item.Category = &value
	}

	if task.ClaimedBy != nil {
		value := *task.ClaimedBy
		item.ClaimedBy = &value
	}

	if task.ClaimedByID != nil {
		value := *task.ClaimedByID
		item.ClaimedByID = &value
	}

	return item
}
