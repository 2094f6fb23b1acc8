package service

import (
	"context"

	"github.com/acadmap/consult-sdk/message"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Service 기초 서비스. DB/Redis 와 엔진이 주입하는 콜백을 담는다.
type Service struct {
	DB          *gorm.DB
	RDB         *redis.Client
	TablePrefix string
	Debug       bool

	// RoomNotifier 방 스코프 이벤트를 실시간 구독자에게 전파하는 콜백.
	// 순환 의존을 피하기 위해 함수 주입 방식 (engine 이 WS 허브 + feed 허브로 연결).
	RoomNotifier func(roomID uint64, evt message.Event)

	// UserNotifier 특정 사용자에게 직접 전달 (예: 새 상담 요청 알림).
	UserNotifier func(userID uint64, evt message.Event)

	// StaffDirectory 학원별 채팅 상담 가능 담당자 조회.
	// 기본값은 DB 조회 구현이며, 외부 디렉터리 RPC 로 교체할 수 있다.
	StaffDirectory func(ctx context.Context, academyID uint64) ([]StaffDirectoryRow, error)
}

// Table 접두어 붙은 테이블 핸들
func (s *Service) Table(name string) *gorm.DB {
	return s.DB.Table(s.TablePrefix + name)
}

// notifyRoom nil 가드 포함 전파 (전파 실패가 본 작업을 막으면 안 된다)
func (s *Service) notifyRoom(roomID uint64, evt message.Event) {
	if s.RoomNotifier != nil {
		s.RoomNotifier(roomID, evt)
	}
}

func (s *Service) notifyUser(userID uint64, evt message.Event) {
	if s.UserNotifier != nil {
		s.UserNotifier(userID, evt)
	}
}
