package services

import (
	"context"
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

func (s *GoalService) GetGoal(ctx context.Context, userID uint) (*models.Goal, error) {
	var g models.Goal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Goal{UserID: userID}, nil
		}
		return nil, err
	}
	return &g, nil
}

func (s *GoalService) UpsertGoal(ctx context.Context, userID uint, monthlyWorkouts int, sleepHours, waterGlasses float64) (*models.Goal, error) {
	var g models.Goal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		g = models.Goal{
			UserID:          userID,
			MonthlyWorkouts: monthlyWorkouts,
			SleepHours:      sleepHours,
			WaterGlasses:    waterGlasses,
		}
		if err := s.db.WithContext(ctx).Create(&g).Error; err != nil {
			return nil, err
		}
		return &g, nil
	}
	if err != nil {
		return nil, err
	}

	g.MonthlyWorkouts = monthlyWorkouts
	g.SleepHours = sleepHours
	g.WaterGlasses = waterGlasses
	if err := s.db.WithContext(ctx).Save(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}
