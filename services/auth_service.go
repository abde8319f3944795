package services

import (
	"errors"
	"strings"
	"time"

	"travel-backend/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const sessionTTL = 7 * 24 * time.Hour

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Login verifies the password and issues a bearer token backed by an
// AdminSession row.
func (s *AuthService) Login(email, password string) (*models.Admin, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	var admin models.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	session := models.AdminSession{
		Token:     uuid.NewString(),
		AdminID:   admin.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, "", err
	}
	return &admin, session.Token, nil
}

func (s *AuthService) Logout(token string) error {
	return s.DB.Where("token = ?", token).Delete(&models.AdminSession{}).Error
}

// AdminByToken resolves a bearer token to its admin, or nil when the token
// is unknown or expired. Expired sessions are removed on sight.
func (s *AuthService) AdminByToken(token string) *models.Admin {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	var session models.AdminSession
	if err := s.DB.Preload("Admin").Where("token = ?", token).First(&session).Error; err != nil {
		return nil
	}
	if time.Now().After(session.ExpiresAt) {
		s.DB.Delete(&session)
		return nil
	}
	if session.Admin.ID == 0 {
		return nil
	}
	return &session.Admin
}
