package repository

import (
	"errors"
	"time"

	"github.com/acadmap/consult-sdk/models"
	"gorm.io/gorm"
)

// ChatRoomDAO 채팅방 관련 DB 접근 캡슐화.
//
// 약속:
// - "데이터 접근"만 담당 (조회/생성/조건부 갱신). 정책 판단은 service 가 한다.
// - 트랜잭션 경계는 service 가 가진다. tx 안에서 쓰려면 WithDB(tx).
type ChatRoomDAO struct {
	db *gorm.DB
}

func NewChatRoomDAO(db *gorm.DB) *ChatRoomDAO {
	return &ChatRoomDAO{db: db}
}

// WithDB 트랜잭션(tx) 안에서 DAO 재사용
func (dao *ChatRoomDAO) WithDB(db *gorm.DB) *ChatRoomDAO {
	if db == nil {
		return dao
	}
	return &ChatRoomDAO{db: db}
}

// FindByKey (학원, 학부모, 담당자) 정확 일치로 방 조회.
// staffUserID 가 nil 이면 staff_user_id IS NULL 인 대표 문의방만 매칭한다.
// 담당자 방과 대표 방이 서로 섞여 매칭되는 일은 없어야 한다.
// 없으면 (nil, nil).
func (dao *ChatRoomDAO) FindByKey(academyID, parentID uint64, staffUserID *uint64) (*models.ChatRoom, error) {
	query := dao.db.Where("academy_id = ? AND parent_id = ?", academyID, parentID)
	if staffUserID != nil {
		query = query.Where("staff_user_id = ?", *staffUserID)
	} else {
		query = query.Where("staff_user_id IS NULL")
	}

	var room models.ChatRoom
	err := query.First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// Create 방 생성
func (dao *ChatRoomDAO) Create(room *models.ChatRoom) error {
	return dao.db.Create(room).Error
}

// FindByID ID로 방 조회. 없으면 (nil, nil).
func (dao *ChatRoomDAO) FindByID(roomID uint64) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := dao.db.Where("id = ?", roomID).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// AcceptPending pending -> active 전이를 단문 조건부 UPDATE 로 수행.
// WHERE 가드에 상태/담당자 선행조건을 같이 넣어 read-then-write 경합을 없앤다.
// 반환값은 영향 행 수: 0 이면 선행조건 불충족 (원인 판별은 호출측 재조회).
func (dao *ChatRoomDAO) AcceptPending(roomID, staffUserID uint64, now time.Time) (int64, error) {
	res := dao.db.Model(&models.ChatRoom{}).
		Where("id = ? AND status = ? AND staff_user_id = ?", roomID, models.RoomStatusPending, staffUserID).
		Updates(map[string]any{"status": models.RoomStatusActive, "updated_at": now})
	return res.RowsAffected, res.Error
}

// Touch 방의 마지막 활동 시각 갱신 (메시지 전송 후)
func (dao *ChatRoomDAO) Touch(roomID uint64, now time.Time) error {
	return dao.db.Model(&models.ChatRoom{}).
		Where("id = ?", roomID).
		Update("updated_at", now).Error
}

// ListByParent 학부모가 연 방 목록 (최근 활동순)
func (dao *ChatRoomDAO) ListByParent(parentID uint64) ([]models.ChatRoom, error) {
	var rooms []models.ChatRoom
	err := dao.db.Preload("Academy").
		Where("parent_id = ?", parentID).
		Order("updated_at DESC").
		Find(&rooms).Error
	return rooms, err
}

// ListByStaff 담당자에게 배정됐거나 담당자가 대표인 학원의 방 목록 (최근 활동순).
// 운영자 화면(상담 관리) 용도.
func (dao *ChatRoomDAO) ListByStaff(staffUserID uint64) ([]models.ChatRoom, error) {
	academyTable := models.Academy{}.TableName()
	roomTable := models.ChatRoom{}.TableName()

	var rooms []models.ChatRoom
	err := dao.db.Preload("Academy").Preload("Parent").
		Joins("JOIN "+academyTable+" ON "+academyTable+".id = "+roomTable+".academy_id").
		Where(roomTable+".staff_user_id = ? OR ("+roomTable+".staff_user_id IS NULL AND "+academyTable+".owner_id = ?)", staffUserID, staffUserID).
		Order(roomTable + ".updated_at DESC").
		Find(&rooms).Error
	return rooms, err
}
