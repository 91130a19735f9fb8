// controllers/goal_controller.go
package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Svc *services.GoalService
}

func NewGoalController(svc *services.GoalService) *GoalController {
	return &GoalController{Svc: svc}
}

func (h *GoalController) GetGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goal, err := h.Svc.GetGoal(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *GoalController) UpsertGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		MonthlyWorkouts int     `json:"monthly_workouts"`
		SleepHours      float64 `json:"sleep_hours"`
		WaterGlasses    float64 `json:"water_glasses"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.Svc.UpsertGoal(c.Request.Context(), userID, body.MonthlyWorkouts, body.SleepHours, body.WaterGlasses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}
