package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	prefix = "ac_"
)

// Profile 사용자 프로필 (학부모/학생/담당자 공용)
type Profile struct {
	ID       uint64 `gorm:"primarykey"`
	UID      string `gorm:"size:36;uniqueIndex;not null"`      // 대외 사용자 ID
	UserName string `gorm:"size:100"`                          // 표시 이름 (비어 있을 수 있음)
	Password string `gorm:"size:255;not null"`                 // 비밀번호 해시
	Phone    string `gorm:"size:20;uniqueIndex;default:null"`  // 휴대폰 번호
	Email    string `gorm:"size:100;uniqueIndex;default:null"` // 이메일
	Avatar   string `gorm:"size:500"`                          // 프로필 이미지

	// Metadata 가입 경로에서 내려온 부가 정보({"name": ...} 등).
	// UserName이 비어 있을 때 표시 이름 폴백으로 사용된다.
	Metadata datatypes.JSON `gorm:"type:json"`

	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Profile) TableName() string {
	return prefix + "profile"
}

// 역할 값
const (
	RoleAdmin  = "admin"  // 학원 운영자
	RoleParent = "parent" // 학부모/학생
)

// UserRole 사용자 역할 테이블
type UserRole struct {
	ID     uint64 `gorm:"primarykey"`
	UserID uint64 `gorm:"uniqueIndex;not null"`
	Role   string `gorm:"size:20;not null"` // admin / parent

	CreatedAt time.Time

	User Profile `gorm:"foreignKey:UserID"`
}

func (UserRole) TableName() string {
	return prefix + "user_role"
}

// Academy 학원 테이블
type Academy struct {
	ID           uint64  `gorm:"primarykey"`
	UID          string  `gorm:"size:36;uniqueIndex;not null"` // 대외 학원 ID
	Name         string  `gorm:"size:100;not null"`
	ProfileImage string  `gorm:"size:500"`
	Description  string  `gorm:"size:500"`
	OwnerID      *uint64 `gorm:"index"` // 대표 운영자 (없을 수 있음)

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Owner *Profile `gorm:"foreignKey:OwnerID"`
}

func (Academy) TableName() string {
	return prefix + "academy"
}

// AcademyMember 학원 소속 담당자 테이블 (채팅 상담 디렉터리의 원천)
type AcademyMember struct {
	ID        uint64 `gorm:"primarykey"`
	AcademyID uint64 `gorm:"index:idx_academy_user,unique;not null"`
	UserID    uint64 `gorm:"index:idx_academy_user,unique;not null"`

	// RoleLabel 원장/부원장/강사 등. 비어 있으면 조회 시 "관리자"로 폴백.
	RoleLabel     string `gorm:"size:30"`
	Description   string `gorm:"size:255"`
	IsChatEnabled bool   `gorm:"default:true"` // 채팅 상담 노출 여부

	CreatedAt time.Time
	UpdatedAt time.Time

	Academy Academy `gorm:"foreignKey:AcademyID"`
	User    Profile `gorm:"foreignKey:UserID"`
}

func (AcademyMember) TableName() string {
	return prefix + "academy_member"
}

// 채팅방 상태
const (
	RoomStatusPending = "pending" // 담당자 수락 대기 (학부모 발신 차단)
	RoomStatusActive  = "active"  // 양방향 대화 가능
)

// ChatRoom 상담 채팅방 테이블.
// (academy_id, parent_id, staff_user_id) 조합당 방 하나.
// staff_user_id 가 NULL 이면 학원 대표 문의방이며, 특정 담당자 방과는 별개의 키다.
type ChatRoom struct {
	ID      uint64 `gorm:"primarykey"`
	RoomUID string `gorm:"size:36;uniqueIndex;not null"` // 대외 방 ID

	AcademyID   uint64  `gorm:"index:idx_room_key,unique;not null"`
	ParentID    uint64  `gorm:"index:idx_room_key,unique;not null"`
	StaffUserID *uint64 `gorm:"index:idx_room_key,unique"`

	// Status pending -> active 단방향 전이만 존재한다.
	Status string `gorm:"size:10;not null;default:active"`

	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"` // 방 목록 정렬 기준

	Academy Academy  `gorm:"foreignKey:AcademyID"`
	Parent  Profile  `gorm:"foreignKey:ParentID"`
	Staff   *Profile `gorm:"foreignKey:StaffUserID"`
}

func (ChatRoom) TableName() string {
	return prefix + "chat_room"
}

// 메시지 타입
const (
	MessageTypeNormal       = "normal"
	MessageTypeChatRequest  = "chat_request"  // 방 생성 시 시스템이 합성, 사용자가 직접 쓸 수 없음
	MessageTypeChatAccepted = "chat_accepted" // 수락 시 시스템이 합성
)

// 메시지 내용 길이 제한 (trim 후 rune 기준)
const (
	MessageContentMinLen = 1
	MessageContentMaxLen = 5000
)

// ChatMessage 상담 메시지 테이블
type ChatMessage struct {
	ID       uint64 `gorm:"primarykey"`
	RoomID   uint64 `gorm:"index;not null"`
	SenderID uint64 `gorm:"index;not null"`

	Type    string `gorm:"size:20;not null;default:normal"`
	Content string `gorm:"type:text;not null"`
	IsRead  bool   `gorm:"default:false"`

	Extra datatypes.JSON `gorm:"type:json"`

	CreatedAt time.Time `gorm:"index"` // 방 내 정렬 기준
	UpdatedAt time.Time

	Room   ChatRoom `gorm:"foreignKey:RoomID"`
	Sender Profile  `gorm:"foreignKey:SenderID"`
}

func (ChatMessage) TableName() string {
	return prefix + "chat_message"
}
