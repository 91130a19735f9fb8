// controllers/analytics_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// AnalyticsController serves the dashboard's derived records. These endpoints
// never fail on "no identity" or "no data": an unauthenticated or empty-history
// request gets the endpoint's documented empty sentinel with a 200, so a
// dashboard render can't crash on an error banner.
type AnalyticsController struct {
	Svc *services.AnalyticsService
	Cmp *services.ComparisonService
}

func NewAnalyticsController(svc *services.AnalyticsService, cmp *services.ComparisonService) *AnalyticsController {
	return &AnalyticsController{Svc: svc, Cmp: cmp}
}

func (h *AnalyticsController) GetNutritionBreakdown(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.NutritionBreakdown(c.Request.Context(), userID, daysParam(c, 30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if out == nil {
		out = []services.CategoryCount{}
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsController) GetSleepAnalysis(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.SleepAnalysis(c.Request.Context(), userID, daysParam(c, 30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out) // null when no sleep logs in range
}

func (h *AnalyticsController) GetExerciseBreakdown(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.ExerciseBreakdown(c.Request.Context(), userID, daysParam(c, 30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsController) GetTimePatterns(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.TimePatterns(c.Request.Context(), userID, daysParam(c, 30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsController) GetPersonalBests(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.PersonalBests(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsController) GetWeekComparison(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Cmp.CompareWeeks(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsController) GetMonthlySummary(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.MonthlySummary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsController) GetFoodFrequency(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.FoodFrequency(c.Request.Context(), userID, daysParam(c, 30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if out == nil {
		out = []services.FoodCount{}
	}
	c.JSON(http.StatusOK, out)
}

func (h *AnalyticsController) GetActivityCalendar(c *gin.Context) {
	userID, _ := userIDFromCtx(c)

	now := time.Now()
	month := intParam(c, "month", int(now.Month()))
	year := intParam(c, "year", now.Year())
	if month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
		return
	}

	out, err := h.Svc.ActivityCalendar(c.Request.Context(), userID, month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}

func daysParam(c *gin.Context, fallback int) int {
	return intParam(c, "days", fallback)
}

func intParam(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
