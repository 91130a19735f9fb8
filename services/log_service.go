// services/log_service.go
package services

import (
	"context"
	"time"

	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogService struct{ db *gorm.DB }

func NewLogService(db *gorm.DB) *LogService { return &LogService{db: db} }

// GetLogs returns all log entries for a user whose date falls within
// [from, to], both bounds inclusive. The result is unordered; callers sort
// when order matters. userID 0 means "no identity" and yields an empty slice,
// never an error, so every aggregate downstream degrades to its empty state.
func (s *LogService) GetLogs(ctx context.Context, userID uint, from, to time.Time) ([]models.LogEntry, error) {
	if userID == 0 {
		return nil, nil
	}
	var logs []models.LogEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Find(&logs).Error
	return logs, err
}

// GetLogsSince returns logs for the trailing N days including today.
func (s *LogService) GetLogsSince(ctx context.Context, userID uint, days int) ([]models.LogEntry, error) {
	if days <= 0 {
		days = 1
	}
	now := time.Now()
	return s.GetLogs(ctx, userID, now.AddDate(0, 0, -(days-1)), now)
}

// GetAllLogs returns the user's full history, used by all-time aggregates
// (personal bests, achievements).
func (s *LogService) GetAllLogs(ctx context.Context, userID uint) ([]models.LogEntry, error) {
	if userID == 0 {
		return nil, nil
	}
	var logs []models.LogEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&logs).Error
	return logs, err
}

func (s *LogService) CreateLog(ctx context.Context, entry *models.LogEntry) error {
	if entry.UID == uuid.Nil {
		entry.UID = uuid.New()
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	return s.db.WithContext(ctx).Create(entry).Error
}

// DeleteLog removes an entry by its public UID, scoped to the owner. Aggregates
// are recomputed from scratch on every request, so no invalidation is needed.
func (s *LogService) DeleteLog(ctx context.Context, userID uint, uid uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND uid = ?", userID, uid).
		Delete(&models.LogEntry{}).Error
}
