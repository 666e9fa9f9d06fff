package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskclaim/internal/adapter/http/dto"
	"taskclaim/internal/adapter/http/mapper"
	"taskclaim/internal/adapter/http/middleware"
	"taskclaim/internal/core/domain"
	"taskclaim/internal/core/ports"
	"taskclaim/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgEmailTaken, lang),
			)
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRegister, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:    mapper.ToUserItem(user),
		Message: "Registration successful",
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log user in", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:    mapper.ToUserItem(user),
		Message: "Login successful",
	})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListUsers, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := userIDParam(c, lang)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "User deleted successfully"})
}

func (h *UserHandler) GetSettings(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := userIDParam(c, lang)
	if !ok {
		return
	}

	settings, err := h.userService.GetSettings(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to get settings", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetSettings, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSettingsItem(settings))
}

func (h *UserHandler) UpdateSettings(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := userIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	err := h.userService.UpdateSettings(c.Request.Context(), userID, domain.Settings{
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
		TaskReminders:      req.TaskReminders,
		CompactMode:        req.CompactMode,
		Theme:              req.Theme,
	})
	if err != nil {
		zap.L().Error("failed to update settings", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateSettings, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Settings updated successfully"})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := userIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), userID, req.Name, req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgEmailTaken, lang),
			)
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
		default:
			zap.L().Error("failed to update profile", zap.Uint64("user_id", userID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateProfile, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Profile updated successfully"})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := userIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrWrongPassword):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgWrongPassword, lang),
			)
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
		default:
			zap.L().Error("failed to change password", zap.Uint64("user_id", userID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailChangePassword, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Password updated successfully"})
}

func (h *UserHandler) ExportUserData(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := userIDParam(c, lang)
	if !ok {
		return
	}

	export, err := h.userService.ExportUserData(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to export user data", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailExportUserData, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserExportResponse(export))
}

func userIDParam(c *gin.Context, lang string) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserID, lang),
		)
		return 0, false
	}
	return userID, true
}
