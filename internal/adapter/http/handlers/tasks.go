package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskclaim/internal/adapter/http/dto"
	"taskclaim/internal/adapter/http/mapper"
	"taskclaim/internal/adapter/http/middleware"
	"taskclaim/internal/core/domain"
	"taskclaim/internal/core/ports"
	"taskclaim/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
		Category:    req.Category,
	})
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTaskResponse{
		ID:      task.ID,
		Message: "Task created successfully",
	})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	err := h.taskService.UpdateTask(c.Request.Context(), taskID, domain.UpdateTaskInput{
		Title:       title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Task updated successfully"})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Task deleted successfully"})
}

func (h *TaskHandler) ClaimTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.ClaimTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	err := h.taskService.ClaimTask(c.Request.Context(), taskID, req.Name, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrTaskAlreadyClaimed):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgTaskAlreadyClaimed, lang),
			)
		default:
			zap.L().Error("failed to claim task", zap.Uint64("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailClaimTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *TaskHandler) UnclaimTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.UnclaimTask(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to unclaim task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUnclaimTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func taskIDParam(c *gin.Context, lang string) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return taskID, true
}
