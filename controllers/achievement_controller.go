// controllers/achievement_controller.go
package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	Svc *services.AchievementService
}

func NewAchievementController(svc *services.AchievementService) *AchievementController {
	return &AchievementController{Svc: svc}
}

func (h *AchievementController) GetAchievements(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.Achievements(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if out == nil {
		out = []services.Achievement{}
	}
	c.JSON(http.StatusOK, out)
}

func (h *AchievementController) GetPredictions(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.PredictMonthEnd(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
