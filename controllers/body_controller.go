// controllers/body_controller.go
package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type BodyController struct {
	Svc *services.BodyService
}

func NewBodyController(svc *services.BodyService) *BodyController {
	return &BodyController{Svc: svc}
}

func (h *BodyController) CreateMeasurement(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var m models.BodyMeasurement
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m.ID = 0
	m.UserID = userID

	if err := h.Svc.CreateMeasurement(c.Request.Context(), &m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *BodyController) ListMeasurements(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	rows, err := h.Svc.ListMeasurements(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []models.BodyMeasurement{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *BodyController) GetBMI(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.CurrentBMI(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out) // null when no weight or height on file
}

func (h *BodyController) GetWeightTrend(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.WeightTrendSince(c.Request.Context(), userID, daysParam(c, 30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
