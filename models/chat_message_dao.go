package models

import (
	"errors"

	"gorm.io/gorm"
)

// ChatMessageDAO 메시지 관련 DB 접근 캡슐화.
// 쿼리만 담당하고 검증/허용 정책은 service 가 가진다.
type ChatMessageDAO struct {
	db *gorm.DB
}

func NewChatMessageDAO(db *gorm.DB) *ChatMessageDAO {
	return &ChatMessageDAO{db: db}
}

// WithDB 트랜잭션(tx) 안에서 DAO 재사용
func (dao *ChatMessageDAO) WithDB(db *gorm.DB) *ChatMessageDAO {
	if db == nil {
		return dao
	}
	return &ChatMessageDAO{db: db}
}

// Create 메시지 생성
func (dao *ChatMessageDAO) Create(msg *ChatMessage) error {
	return dao.db.Create(msg).Error
}

// FindByID ID로 메시지 조회
func (dao *ChatMessageDAO) FindByID(id uint64) (*ChatMessage, error) {
	var msg ChatMessage
	err := dao.db.Where("id = ?", id).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListByRoomAsc 방 메시지를 생성 시각 오름차순으로 조회.
// 방 화면 진입 시 전체 로드 용도 (피드와의 병합은 id 중복 제거로 처리).
func (dao *ChatMessageDAO) ListByRoomAsc(roomID uint64) ([]ChatMessage, error) {
	var messages []ChatMessage
	err := dao.db.Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// LastByRoom 방의 마지막 메시지. 없으면 (nil, nil).
func (dao *ChatMessageDAO) LastByRoom(roomID uint64) (*ChatMessage, error) {
	var msg ChatMessage
	err := dao.db.Where("room_id = ?", roomID).
		Order("created_at DESC").
		First(&msg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

// CountUnread 열람자 기준 미확인 메시지 수 (내가 보낸 메시지는 제외)
func (dao *ChatMessageDAO) CountUnread(roomID, viewerID uint64) (int64, error) {
	var count int64
	err := dao.db.Model(&ChatMessage{}).
		Where("room_id = ? AND is_read = ? AND sender_id != ?", roomID, false, viewerID).
		Count(&count).Error
	return count, err
}

// MarkRoomRead 방의 다른 사람 메시지를 모두 읽음 처리 (방 진입 시)
func (dao *ChatMessageDAO) MarkRoomRead(roomID, readerID uint64) error {
	return dao.db.Model(&ChatMessage{}).
		Where("room_id = ? AND sender_id != ? AND is_read = ?", roomID, readerID, false).
		Update("is_read", true).Error
}

// MarkRead 단건 읽음 처리 (실시간 수신 시 fire-and-forget)
func (dao *ChatMessageDAO) MarkRead(messageID uint64) error {
	return dao.db.Model(&ChatMessage{}).
		Where("id = ?", messageID).
		Update("is_read", true).Error
}
