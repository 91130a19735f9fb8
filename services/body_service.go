// services/body_service.go
package services

import (
	"context"
	"errors"
	"time"

	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BodyService struct{ db *gorm.DB }

func NewBodyService(db *gorm.DB) *BodyService { return &BodyService{db: db} }

func (s *BodyService) CreateMeasurement(ctx context.Context, m *models.BodyMeasurement) error {
	if m.UID == uuid.Nil {
		m.UID = uuid.New()
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *BodyService) ListMeasurements(ctx context.Context, userID uint) ([]models.BodyMeasurement, error) {
	if userID == 0 {
		return nil, nil
	}
	var rows []models.BodyMeasurement
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
}

// CurrentBMI derives BMI from the user's profile height and the most recent
// measurement that carries a weight. Returns nil when either is missing.
func (s *BodyService) CurrentBMI(ctx context.Context, userID uint) (*BMIResult, error) {
	if userID == 0 {
		return nil, nil
	}
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var m models.BodyMeasurement
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND weight IS NOT NULL", userID).
		Order("date DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	bmi, err := utils.CalculateBMI(user.HeightCm, *m.Weight)
	if err != nil {
		return nil, nil // incomplete profile, not an error to the dashboard
	}
	return &BMIResult{
		BMI:      round2(bmi),
		Category: utils.BMICategory(bmi),
		WeightKg: *m.Weight,
		HeightCm: user.HeightCm,
	}, nil
}

type WeightTrend struct {
	StartWeight  float64 `json:"start_weight"`
	EndWeight    float64 `json:"end_weight"`
	Change       float64 `json:"change"`
	Measurements int     `json:"measurements"`
}

// WeightTrendSince compares the first and last weighed measurements in the
// trailing window. Nil when fewer than two weigh-ins exist.
func (s *BodyService) WeightTrendSince(ctx context.Context, userID uint, days int) (*WeightTrend, error) {
	if userID == 0 {
		return nil, nil
	}
	if days <= 0 {
		days = 30
	}
	from := time.Now().AddDate(0, 0, -(days - 1))
	var rows []models.BodyMeasurement
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND weight IS NOT NULL AND date >= ?", userID, dayStart(from)).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}
	start := *rows[0].Weight
	end := *rows[len(rows)-1].Weight
	return &WeightTrend{
		StartWeight:  start,
		EndWeight:    end,
		Change:       round2(end - start),
		Measurements: len(rows),
	}, nil
}
