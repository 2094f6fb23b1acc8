package service

import (
	"strings"

	"github.com/acadmap/consult-sdk/cons"
)

// Session 인증 계층이 해석한 호출자 신원.
// 서비스가 내부에서 세션을 다시 조회하지 않도록 모든 연산에 명시적으로 전달한다
// (테스트에서 가짜 세션 주입 가능).
type Session struct {
	UserID uint64

	// 표시 이름 폴백 체인 재료: 프로필 이름 -> 메타데이터 이름 -> 연락처
	UserName     string
	MetadataName string
	Phone        string
	Email        string
}

// Valid 세션 존재 여부
func (s *Session) Valid() bool {
	return s != nil && s.UserID != 0
}

// DisplayName 요청 안내문 등에 쓰는 표시 이름.
// 프로필 이름 -> 메타데이터 이름 -> 휴대폰 -> 이메일 -> "학부모" 순서.
func (s *Session) DisplayName() string {
	if s == nil {
		return cons.FallbackParentLabel
	}
	return FirstNonEmpty(s.UserName, s.MetadataName, s.Phone, s.Email, cons.FallbackParentLabel)
}

// FirstNonEmpty 순서 폴백 해석. 전부 비어 있으면 빈 문자열.
// 종단 기본값은 호출측이 마지막 인자로 넣는다.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
