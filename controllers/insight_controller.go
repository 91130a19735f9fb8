// controllers/insight_controller.go
package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	Svc *services.InsightService
}

func NewInsightController(svc *services.InsightService) *InsightController {
	return &InsightController{Svc: svc}
}

// GetInsights returns the triggered coaching insights, highest priority first.
// The confidence threshold filter lives client-side; everything triggered is
// returned here.
func (h *InsightController) GetInsights(c *gin.Context) {
	userID, _ := userIDFromCtx(c)
	out, err := h.Svc.GenerateInsights(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if out == nil {
		out = []services.Insight{}
	}
	c.JSON(http.StatusOK, out)
}
