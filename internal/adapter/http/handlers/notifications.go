package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskclaim/internal/adapter/http/mapper"
	"taskclaim/internal/adapter/http/middleware"
	"taskclaim/internal/core/ports"
	"taskclaim/pkg/apierrors"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserID, lang),
		)
		return
	}

	notifications, err := h.notificationService.NotificationsFor(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to build notifications", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailNotifications, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItems(notifications))
}
