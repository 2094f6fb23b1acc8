package service

import (
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/acadmap/consult-sdk/cons"
	"github.com/acadmap/consult-sdk/message"
	"github.com/acadmap/consult-sdk/models"
	"github.com/acadmap/consult-sdk/repository"
)

// MessageDTO 메시지 응답 구조
type MessageDTO struct {
	ID        uint64    `json:"id"`
	RoomID    uint64    `json:"room_id"`
	SenderID  uint64    `json:"sender_id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToMessageDTO(msg *models.ChatMessage) *MessageDTO {
	if msg == nil {
		return nil
	}
	return &MessageDTO{
		ID:        msg.ID,
		RoomID:    msg.RoomID,
		SenderID:  msg.SenderID,
		Type:      msg.Type,
		Content:   msg.Content,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
	}
}

func ToMessageDTOs(msgs []models.ChatMessage) []MessageDTO {
	out := make([]MessageDTO, 0, len(msgs))
	for i := range msgs {
		if dto := ToMessageDTO(&msgs[i]); dto != nil {
			out = append(out, *dto)
		}
	}
	return out
}

func toMessagePayload(msg *models.ChatMessage) *message.MessagePayload {
	if msg == nil {
		return nil
	}
	return &message.MessagePayload{
		ID:        msg.ID,
		RoomID:    msg.RoomID,
		SenderID:  msg.SenderID,
		Type:      msg.Type,
		Content:   msg.Content,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
	}
}

type MessageService struct {
	*Service
	roomDAO *repository.ChatRoomDAO
	msgDAO  *models.ChatMessageDAO
}

func NewMessageService(s *Service) *MessageService {
	return &MessageService{
		Service: s,
		roomDAO: repository.NewChatRoomDAO(s.DB),
		msgDAO:  models.NewChatMessageDAO(s.DB),
	}
}

// ValidateContent trim 후 길이 검증. 통과하면 정제된 내용을 돌려준다.
// DB 호출 전에 로컬에서 끝난다 (rune 기준 1~5000자).
func ValidateContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	n := utf8.RuneCountInString(trimmed)
	if n < models.MessageContentMinLen {
		return "", ErrEmptyContent
	}
	if n > models.MessageContentMaxLen {
		return "", ErrContentTooLong
	}
	return trimmed, nil
}

// SendMessage 발신 허용 정책을 거쳐 메시지를 저장한다.
//
// 허용 규칙: 방이 pending 이고 발신자가 학부모(요청자)면 거부.
// 배정 담당자는 pending 중에도 보낼 수 있다 (차단은 요청자에게만 걸린다 —
// 담당자가 답장으로 수락 의사를 밝히는 흐름을 막지 않기 위함).
//
// 저장과 방 updated_at 갱신은 한 트랜잭션으로 묶는다.
func (s *MessageService) SendMessage(sess *Session, roomID uint64, content string) (*models.ChatMessage, error) {
	if !sess.Valid() {
		return nil, ErrNoSession
	}

	trimmed, err := ValidateContent(content)
	if err != nil {
		return nil, err
	}

	room, err := s.roomDAO.FindByID(roomID)
	if err != nil {
		log.Printf("SendMessage room lookup error: %v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if room.Status == models.RoomStatusPending && sess.UserID == room.ParentID {
		return nil, ErrAwaitAcceptance
	}

	now := time.Now()
	msg := &models.ChatMessage{
		RoomID:    roomID,
		SenderID:  sess.UserID,
		Type:      models.MessageTypeNormal,
		Content:   trimmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	if err := s.msgDAO.WithDB(tx).Create(msg); err != nil {
		log.Printf("SendMessage create error: %v", err)
		return nil, err
	}
	if err := s.roomDAO.WithDB(tx).Touch(roomID, now); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.notifyRoom(roomID, message.Event{
		Type:    cons.EventMessageCreated,
		Message: toMessagePayload(msg),
	})

	return msg, nil
}

// AcceptChatRequest pending -> active 전이. 배정 담당자만, 정확히 한 번.
//
// 선행조건(상태=pending, 담당자=호출자)은 단문 조건부 UPDATE 의 WHERE 가드로
// 평가되어 별도 read-then-write 경합이 없다. 0행이면 원인 판별용 재조회만 한다.
// 이미 active 인 방에 대한 두 번째 호출은 조용히 성공하지 않고 실패한다.
func (s *MessageService) AcceptChatRequest(sess *Session, roomID uint64) error {
	if !sess.Valid() {
		return ErrNoSession
	}

	now := time.Now()
	rows, err := s.roomDAO.AcceptPending(roomID, sess.UserID, now)
	if err != nil {
		log.Printf("AcceptChatRequest update error: %v", err)
		return err
	}

	if rows == 0 {
		room, err := s.roomDAO.FindByID(roomID)
		if err != nil {
			return err
		}
		switch {
		case room == nil:
			return ErrRoomNotFound
		case room.Status != models.RoomStatusPending:
			return ErrNotPending
		default:
			return ErrNotAssignedStaff
		}
	}

	// 수락 안내 시스템 메시지 (전이 자체는 이미 확정됐으므로 best effort)
	accepted := &models.ChatMessage{
		RoomID:    roomID,
		SenderID:  sess.UserID,
		Type:      models.MessageTypeChatAccepted,
		Content:   "채팅 상담을 수락했습니다. 이제 메시지를 주고받을 수 있습니다.",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.msgDAO.Create(accepted); err != nil {
		log.Printf("AcceptChatRequest system message error: %v", err)
		accepted = nil
	}

	s.notifyRoom(roomID, message.Event{
		Type: cons.EventRoomStatusUpdated,
		Room: &message.RoomStatusPayload{RoomID: roomID, Status: models.RoomStatusActive, UpdatedAt: now},
	})
	if accepted != nil {
		s.notifyRoom(roomID, message.Event{
			Type:    cons.EventMessageCreated,
			Message: toMessagePayload(accepted),
		})
	}

	return nil
}

// GetRoomMessages 방 메시지 전체 (생성 시각 오름차순)
func (s *MessageService) GetRoomMessages(roomID uint64) ([]models.ChatMessage, error) {
	return s.msgDAO.ListByRoomAsc(roomID)
}

// MarkRoomRead 방 진입 시 다른 사람 메시지 일괄 읽음 처리.
// 실패해도 화면 표시를 막지 않는다.
func (s *MessageService) MarkRoomRead(sess *Session, roomID uint64) error {
	if !sess.Valid() {
		return ErrNoSession
	}
	if err := s.msgDAO.MarkRoomRead(roomID, sess.UserID); err != nil {
		log.Printf("MarkRoomRead error room=%d: %v", roomID, err)
		return err
	}
	return nil
}

// MarkMessageRead 실시간 수신 단건 읽음 처리 (feed 의 fire-and-forget 콜백)
func (s *MessageService) MarkMessageRead(messageID uint64) {
	if err := s.msgDAO.MarkRead(messageID); err != nil {
		log.Printf("MarkMessageRead error id=%d: %v", messageID, err)
	}
}
