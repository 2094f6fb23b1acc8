package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/acadmap/consult-sdk/models"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// AuthService 신원 제공자 어댑터.
// - 요청에서 token 추출 (Bearer 우선, query 차선)
// - token -> userID 검증 (Redis)
// - userID -> Session 적재 (프로필 + 메타데이터)
//
// 모든 권한 필요 연산은 매 요청 세션을 새로 해석한다
// (렌더 사이에 세션이 바뀔 수 있다는 전제).
type AuthService struct {
	token *TokenService
	db    *gorm.DB
}

func NewAuthService(rdb *redis.Client, db *gorm.DB) *AuthService {
	return &AuthService{token: NewTokenService(rdb), db: db}
}

// Token 내부 TokenService 핸들 (로그인/로그아웃 흐름에서 사용)
func (a *AuthService) Token() *TokenService {
	return a.token
}

// ExtractToken Authorization: Bearer 우선, 없으면 ?token= 쿼리
func (a *AuthService) ExtractToken(r *http.Request) string {
	if r == nil {
		return ""
	}

	ah := strings.TrimSpace(r.Header.Get("Authorization"))
	if ah != "" {
		parts := strings.SplitN(ah, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	return strings.TrimSpace(r.URL.Query().Get("token"))
}

// Authenticate token 으로 userID 해석
func (a *AuthService) Authenticate(ctx context.Context, token string) (uint64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, fmt.Errorf("missing token")
	}
	return a.token.GetUserIDByToken(ctx, token)
}

// AuthenticateRequest 요청에서 token 추출 + 검증
func (a *AuthService) AuthenticateRequest(ctx context.Context, r *http.Request) (uint64, string, error) {
	t := a.ExtractToken(r)
	uid, err := a.Authenticate(ctx, t)
	return uid, t, err
}

// LoadSession 프로필 행으로 Session 구성.
// 표시 이름 폴백 재료(프로필 이름/메타데이터 이름/연락처)를 함께 담는다.
func (a *AuthService) LoadSession(ctx context.Context, userID uint64) (*Session, error) {
	if userID == 0 {
		return nil, ErrNoSession
	}

	var p models.Profile
	if err := a.db.WithContext(ctx).Where("id = ?", userID).First(&p).Error; err != nil {
		return nil, ErrNoSession
	}

	sess := &Session{
		UserID:   p.ID,
		UserName: p.UserName,
		Phone:    p.Phone,
		Email:    p.Email,
	}
	if len(p.Metadata) > 0 {
		var meta struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(p.Metadata, &meta); err == nil {
			sess.MetadataName = meta.Name
		}
	}
	return sess, nil
}

// RevokeToken 단건 로그아웃 (token 키와 user 집합 양쪽 정리)
func (a *AuthService) RevokeToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if uid, err := a.token.GetUserIDByToken(ctx, token); err == nil {
		_ = a.token.RemoveUserToken(ctx, uid, token)
	}
	return a.token.RevokeToken(ctx, token)
}
