package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskclaim/internal/adapter/http/mapper"
	"taskclaim/internal/adapter/http/middleware"
	"taskclaim/internal/core/ports"
	"taskclaim/pkg/apierrors"
)

type StatsHandler struct {
	statsService ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) DashboardStats(c *gin.Context) {
	lang := middleware.GetLang(c)

	stats, err := h.statsService.DashboardStats(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to compute dashboard stats", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDashboardStats, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboardStats(stats))
}

func (h *StatsHandler) UserStats(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := userIDParam(c, lang)
	if !ok {
		return
	}

	stats, err := h.statsService.UserStats(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to compute user stats", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUserStats, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserStats(stats))
}

func (h *StatsHandler) AnalyticsOverview(c *gin.Context) {
	lang := middleware.GetLang(c)

	overview, err := h.statsService.AnalyticsOverview(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to compute analytics overview", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAnalytics, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAnalyticsOverview(overview))
}

func (h *StatsHandler) TeamOverview(c *gin.Context) {
	lang := middleware.GetLang(c)

	overview, err := h.statsService.TeamOverview(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to compute team overview", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailTeamOverview, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTeamMemberOverviews(overview))
}
