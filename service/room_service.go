package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/acadmap/consult-sdk/cons"
	"github.com/acadmap/consult-sdk/message"
	"github.com/acadmap/consult-sdk/models"
	"github.com/acadmap/consult-sdk/repository"
	"github.com/google/uuid"
)

type RoomService struct {
	*Service
	roomDAO *repository.ChatRoomDAO
	msgDAO  *models.ChatMessageDAO
}

func NewRoomService(s *Service) *RoomService {
	return &RoomService{
		Service: s,
		roomDAO: repository.NewChatRoomDAO(s.DB),
		msgDAO:  models.NewChatMessageDAO(s.DB),
	}
}

// GetOrCreateRoom (학원, 학부모, 담당자-또는-NULL) 키로 방을 찾고 없으면 생성한다.
// staffUserID nil 은 학원 대표 문의방: 담당자 방과는 서로 매칭되지 않는다.
// requireAcceptance 가 true 면 pending 으로 생성하고 chat_request 시스템 메시지를
// 학부모 명의로 한 건 합성한다.
//
// 조회-후-생성 사이의 동시 중복 생성은 (academy_id, parent_id, staff_user_id)
// 유니크 인덱스가 막는다. staff NULL 방은 MySQL 특성상 인덱스가 중복 NULL 을
// 허용하므로 좁은 경합 창이 남는다.
func (s *RoomService) GetOrCreateRoom(sess *Session, academyID uint64, staffUserID *uint64, requireAcceptance bool) (*models.ChatRoom, error) {
	if !sess.Valid() {
		return nil, ErrNoSession
	}
	if academyID == 0 {
		return nil, ErrRoomNotFound
	}

	existing, err := s.roomDAO.FindByKey(academyID, sess.UserID, staffUserID)
	if err != nil {
		log.Printf("GetOrCreateRoom lookup error: %v", err)
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	status := models.RoomStatusActive
	if requireAcceptance {
		status = models.RoomStatusPending
	}

	room := &models.ChatRoom{
		RoomUID:     uuid.New().String(),
		AcademyID:   academyID,
		ParentID:    sess.UserID,
		StaffUserID: staffUserID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var requestMsg *models.ChatMessage

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	if err := s.roomDAO.WithDB(tx).Create(room); err != nil {
		log.Printf("GetOrCreateRoom create error: %v", err)
		return nil, err
	}

	if requireAcceptance {
		requestMsg = &models.ChatMessage{
			RoomID:   room.ID,
			SenderID: sess.UserID,
			Type:     models.MessageTypeChatRequest,
			Content:  chatRequestNotice(sess.DisplayName()),
			// 요청자는 자기 요청을 이미 본 상태
			IsRead:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.msgDAO.WithDB(tx).Create(requestMsg); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	// 배정 담당자에게 새 상담 요청 푸시 (best effort)
	if staffUserID != nil {
		s.notifyUser(*staffUserID, message.Event{
			Type: cons.EventRoomCreated,
			Room: &message.RoomStatusPayload{RoomID: room.ID, Status: room.Status, UpdatedAt: room.UpdatedAt},
		})
	}
	if requestMsg != nil {
		s.notifyRoom(room.ID, message.Event{
			Type:    cons.EventMessageCreated,
			Message: toMessagePayload(requestMsg),
		})
	}

	return room, nil
}

// chatRequestNotice 요청 안내문. 요청자 표시 이름을 포함한다.
func chatRequestNotice(displayName string) string {
	return fmt.Sprintf("%s님이 선생님에게 채팅 상담 요청을 보냈습니다. 수락 후 대화를 시작할 수 있습니다.", displayName)
}

// AcademyDTO 방 목록에 붙는 학원 요약
type AcademyDTO struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	ProfileImage string `json:"profile_image"`
}

// ParentDTO 운영자 화면에 붙는 학부모 요약
type ParentDTO struct {
	UserID   uint64 `json:"user_id"`
	UserName string `json:"user_name"`
	Phone    string `json:"phone"`
}

// RoomListItemDTO 방 목록 항목
type RoomListItemDTO struct {
	ID            uint64     `json:"id"`
	RoomUID       string     `json:"room_uid"`
	AcademyID     uint64     `json:"academy_id"`
	Academy       AcademyDTO `json:"academy"`
	ParentID      uint64     `json:"parent_id"`
	StaffUserID   *uint64    `json:"staff_user_id,omitempty"`
	Status        string     `json:"status"`
	Parent        *ParentDTO `json:"parent,omitempty"`
	LastMessage   *string    `json:"last_message,omitempty"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	UnreadCount   int64      `json:"unread_count"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ListRooms 열람자의 방 목록을 최근 활동순으로 조회한다.
// asStaff true 면 담당자 시점 (배정 방 + 대표 학원의 대표 문의방, 학부모 정보 포함).
//
// 방별 마지막 메시지/미확인 수 조회는 서로 독립이라 방 단위로 병렬 실행하고
// 인덱스로 재조립한다. 완료 순서에 의존하지 않는다.
func (s *RoomService) ListRooms(sess *Session, asStaff bool) ([]RoomListItemDTO, error) {
	if !sess.Valid() {
		return nil, ErrNoSession
	}

	var (
		rooms []models.ChatRoom
		err   error
	)
	if asStaff {
		rooms, err = s.roomDAO.ListByStaff(sess.UserID)
	} else {
		rooms, err = s.roomDAO.ListByParent(sess.UserID)
	}
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return []RoomListItemDTO{}, nil
	}

	dtos := make([]RoomListItemDTO, len(rooms))
	var wg sync.WaitGroup
	for i := range rooms {
		r := &rooms[i]
		dtos[i] = RoomListItemDTO{
			ID:          r.ID,
			RoomUID:     r.RoomUID,
			AcademyID:   r.AcademyID,
			Academy:     AcademyDTO{ID: r.Academy.ID, Name: r.Academy.Name, ProfileImage: r.Academy.ProfileImage},
			ParentID:    r.ParentID,
			StaffUserID: r.StaffUserID,
			Status:      r.Status,
			UpdatedAt:   r.UpdatedAt,
		}
		if asStaff {
			dtos[i].Parent = &ParentDTO{
				UserID:   r.Parent.ID,
				UserName: FirstNonEmpty(r.Parent.UserName, cons.FallbackParentLabel),
				Phone:    r.Parent.Phone,
			}
		}

		wg.Add(1)
		go func(i int, roomID uint64) {
			defer wg.Done()

			last, err := s.msgDAO.LastByRoom(roomID)
			if err != nil {
				log.Printf("ListRooms last message error room=%d: %v", roomID, err)
			} else if last != nil {
				dtos[i].LastMessage = &last.Content
				dtos[i].LastMessageAt = &last.CreatedAt
			}

			count, err := s.msgDAO.CountUnread(roomID, sess.UserID)
			if err != nil {
				log.Printf("ListRooms unread count error room=%d: %v", roomID, err)
				return
			}
			dtos[i].UnreadCount = count
		}(i, r.ID)
	}
	wg.Wait()

	return dtos, nil
}

// RoomInfoDTO 방 화면 헤더/상태 정보
type RoomInfoDTO struct {
	ID          uint64     `json:"id"`
	RoomUID     string     `json:"room_uid"`
	Status      string     `json:"status"`
	Academy     AcademyDTO `json:"academy"`
	ParentID    uint64     `json:"parent_id"`
	StaffUserID *uint64    `json:"staff_user_id,omitempty"`
}

// GetRoomInfo 방 단건 조회 (학원 정보 포함)
func (s *RoomService) GetRoomInfo(roomID uint64) (*RoomInfoDTO, error) {
	if roomID == 0 {
		return nil, ErrRoomNotFound
	}

	var room models.ChatRoom
	err := s.DB.Preload("Academy").Where("id = ?", roomID).First(&room).Error
	if err != nil {
		return nil, ErrRoomNotFound
	}

	return &RoomInfoDTO{
		ID:          room.ID,
		RoomUID:     room.RoomUID,
		Status:      room.Status,
		Academy:     AcademyDTO{ID: room.Academy.ID, Name: room.Academy.Name, ProfileImage: room.Academy.ProfileImage},
		ParentID:    room.ParentID,
		StaffUserID: room.StaffUserID,
	}, nil
}
