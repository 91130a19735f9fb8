package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

func (s *AuthService) Register(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}
	return s.db.Create(&user).Error
}

func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User
	err := s.db.Where("email = ? AND disabled = ?", email, false).First(&user).Error
	if err != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
