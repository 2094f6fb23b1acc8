package service

import (
	"context"
	"errors"
	"time"

	"github.com/acadmap/consult-sdk/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAccountExists = errors.New("이미 가입된 계정입니다")
	ErrLoginFailed   = errors.New("계정 또는 비밀번호가 올바르지 않습니다")
)

type ProfileService struct {
	*Service
	token *TokenService
}

func NewProfileService(s *Service) *ProfileService {
	return &ProfileService{Service: s, token: NewTokenService(s.RDB)}
}

// Register 휴대폰/이메일 기반 가입. 비밀번호는 bcrypt 해시로 저장.
func (s *ProfileService) Register(userName, phone, email, password string) (*models.Profile, error) {
	if phone == "" && email == "" {
		return nil, ErrLoginFailed
	}

	var count int64
	q := s.DB.Model(&models.Profile{})
	switch {
	case phone != "" && email != "":
		q = q.Where("phone = ? OR email = ?", phone, email)
	case phone != "":
		q = q.Where("phone = ?", phone)
	default:
		q = q.Where("email = ?", email)
	}
	if err := q.Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAccountExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p := &models.Profile{
		UID:      uuid.New().String(),
		UserName: userName,
		Phone:    phone,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.DB.Create(p).Error; err != nil {
		return nil, err
	}

	// 기본 역할은 학부모
	role := &models.UserRole{UserID: p.ID, Role: models.RoleParent}
	if err := s.DB.Create(role).Error; err != nil {
		return nil, err
	}

	return p, nil
}

// Login 휴대폰 또는 이메일로 로그인하고 토큰을 발급한다.
func (s *ProfileService) Login(ctx context.Context, account, password string) (*models.Profile, string, error) {
	var p models.Profile
	err := s.DB.Where("phone = ? OR email = ?", account, account).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrLoginFailed
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password)); err != nil {
		return nil, "", ErrLoginFailed
	}

	token, err := s.token.GenerateToken()
	if err != nil {
		return nil, "", err
	}
	if err := s.token.StoreToken(ctx, token, p.ID, 0); err != nil {
		return nil, "", err
	}

	now := time.Now()
	s.DB.Model(&models.Profile{}).Where("id = ?", p.ID).Update("last_login_at", now)

	return &p, token, nil
}

// GetProfile 단건 조회
func (s *ProfileService) GetProfile(userID uint64) (*models.Profile, error) {
	var p models.Profile
	if err := s.DB.Where("id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// IsAdmin 학원 운영자 여부 (user_roles 기준)
func (s *ProfileService) IsAdmin(userID uint64) (bool, error) {
	var count int64
	err := s.DB.Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, models.RoleAdmin).
		Count(&count).Error
	return count > 0, err
}
