// controllers/icon_controller.go
package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type IconController struct {
	Svc *services.IconService
}

func NewIconController(svc *services.IconService) *IconController {
	return &IconController{Svc: svc}
}

func (h *IconController) ListSportMappings(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.ListSportMappings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if out == nil {
		out = []models.IconMapping{}
	}
	c.JSON(http.StatusOK, out)
}

func (h *IconController) UpsertSportMapping(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		Key         string `json:"key" binding:"required"`
		Icon        string `json:"icon" binding:"required"`
		CustomLabel string `json:"custom_label"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.Svc.UpsertSportMapping(c.Request.Context(), userID, body.Key, body.Icon, body.CustomLabel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}
