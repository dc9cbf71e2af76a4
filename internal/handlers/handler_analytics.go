package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackhq/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/expense_tracker_app/internal/dto"
	"github.com/fintrackhq/expense_tracker_app/internal/middleware"
)

// analyticsHandler handles period aggregation and insight requests.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade) *analyticsHandler {
	return &analyticsHandler{analyticsService: as}
}

// registerAnalyticsRoutes registers routes related to analytics.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(analyticsService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/summary/daily", h.getDailySummary)
		analytics.GET("/summary/monthly", h.getMonthlySummary)
		analytics.GET("/categories", h.getCategoryBreakdown)
		analytics.GET("/insights", h.getInsights)
	}
}

// monthYearParams reads 1-indexed month and year query parameters, defaulting
// to the current server month and year.
func monthYearParams(c *gin.Context, now time.Time) (int, time.Month, error) {
	year := now.Year()
	month := now.Month()

	if yearStr := c.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			return 0, 0, err
		}
		year = y
	}
	if monthStr := c.Query("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, strconv.ErrRange
		}
		month = time.Month(m)
	}
	return year, month, nil
}

// getDailySummary godoc
// @Summary Daily transaction summary
// @Description Lists the day's transactions (00:00:00 through the day's last instant) with their total. Defaults to today.
// @Tags analytics
// @Produce json
// @Param date query string false "Day to summarize (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.DailySummaryResponse
// @Failure 400 {object} map[string]string "Invalid date format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /analytics/summary/daily [get]
func (h *analyticsHandler) getDailySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	date := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			logger.Warn("Invalid date format", slog.String("date", dateStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	summary, err := h.analyticsService.DailySummary(c.Request.Context(), userID, date)
	if err != nil {
		logger.Error("Failed to compute daily summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute daily summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailySummaryResponse(summary))
}

// getMonthlySummary godoc
// @Summary Monthly transaction summary
// @Description Lists the month's transactions with their total and a category rollup. Month is 1-indexed; defaults to the current month.
// @Tags analytics
// @Produce json
// @Param month query int false "Month (1-12)" default(current month)
// @Param year query int false "Year" default(current year)
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} map[string]string "Invalid month or year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /analytics/summary/monthly [get]
func (h *analyticsHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	year, month, err := monthYearParams(c, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month or year"})
		return
	}

	summary, err := h.analyticsService.MonthlySummary(c.Request.Context(), userID, year, month)
	if err != nil {
		logger.Error("Failed to compute monthly summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(summary))
}

// getCategoryBreakdown godoc
// @Summary Per-category breakdown for a month
// @Description Aggregates the month's transactions into per-category totals and counts, largest total first. Category keys are raw, case-sensitive strings.
// @Tags analytics
// @Produce json
// @Param month query int false "Month (1-12)" default(current month)
// @Param year query int false "Year" default(current year)
// @Param kind query string false "Restrict to INCOME or EXPENSE"
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute breakdown"
// @Security BearerAuth
// @Router /analytics/categories [get]
func (h *analyticsHandler) getCategoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	year, month, err := monthYearParams(c, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month or year"})
		return
	}

	var kind *domain.TransactionKind
	if kindStr := c.Query("kind"); kindStr != "" {
		k := domain.TransactionKind(kindStr)
		if !k.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be INCOME or EXPENSE"})
			return
		}
		kind = &k
	}

	period := domain.MonthPeriod(year, month, time.UTC)
	summary, err := h.analyticsService.Aggregate(c.Request.Context(), userID, kind, period)
	if err != nil {
		logger.Error("Failed to compute category breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute category breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(summary, int(month), year))
}

// getInsights godoc
// @Summary Month-over-month spending insights
// @Description Compares the current expense month against the previous one and reports per-category changes of at least 10%
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.InsightsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute insights"
// @Security BearerAuth
// @Router /analytics/insights [get]
func (h *analyticsHandler) getInsights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	insights, err := h.analyticsService.Insights(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to compute insights", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute insights"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInsightsResponse(insights))
}
