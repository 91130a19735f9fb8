// controllers/log_controller.go
package controllers

import (
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LogController struct {
	Svc *services.LogService
}

func NewLogController(svc *services.LogService) *LogController {
	return &LogController{Svc: svc}
}

func (h *LogController) CreateLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var entry models.LogEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry.ID = 0
	entry.UserID = userID

	if err := h.Svc.CreateLog(c.Request.Context(), &entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *LogController) ListLogs(c *gin.Context) {
	userID, _ := userIDFromCtx(c)

	now := time.Now()
	from := now.AddDate(0, 0, -29)
	to := now
	if v := c.Query("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, now.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, now.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = t
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
		return
	}

	logs, err := h.Svc.GetLogs(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if logs == nil {
		logs = []models.LogEntry{}
	}
	c.JSON(http.StatusOK, logs)
}

func (h *LogController) DeleteLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	uid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	if err := h.Svc.DeleteLog(c.Request.Context(), userID, uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
