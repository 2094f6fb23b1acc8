package repository

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/acadmap/consult-sdk/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqldb, SkipInitializeWithVersion: true}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		_ = sqldb.Close()
		t.Fatalf("gorm.Open: %v", err)
	}

	return db, mock, sqldb
}

func TestChatRoomDAO_FindByKey_Missing(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	dao := NewChatRoomDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `ac_chat_room` WHERE academy_id = ? AND parent_id = ? AND staff_user_id IS NULL ORDER BY `ac_chat_room`.`id` LIMIT ?")).
		WithArgs(uint64(1), uint64(2), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	room, err := dao.FindByKey(1, 2, nil)
	if err != nil {
		t.Fatalf("FindByKey: %v", err)
	}
	if room != nil {
		t.Fatalf("expected nil for missing room, got %#v", room)
	}
}

// WHERE 가드가 상태/담당자 선행조건을 함께 평가해야 한다.
func TestChatRoomDAO_AcceptPending(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	dao := NewChatRoomDAO(db)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `ac_chat_room` SET `status`=?,`updated_at`=? WHERE id = ? AND status = ? AND staff_user_id = ?")).
		WithArgs(models.RoomStatusActive, now, uint64(10), models.RoomStatusPending, uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := dao.AcceptPending(10, 7, now)
	if err != nil {
		t.Fatalf("AcceptPending: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row, got %d", rows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestChatRoomDAO_AcceptPending_NoMatch(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	dao := NewChatRoomDAO(db)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `ac_chat_room` SET `status`=?,`updated_at`=? WHERE id = ? AND status = ? AND staff_user_id = ?")).
		WithArgs(models.RoomStatusActive, now, uint64(10), models.RoomStatusPending, uint64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := dao.AcceptPending(10, 8, now)
	if err != nil {
		t.Fatalf("AcceptPending: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows, got %d", rows)
	}
}

// 담당자 배정 방 + 대표 학원의 대표 문의방을 함께 조회한다.
func TestChatRoomDAO_ListByStaff(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	dao := NewChatRoomDAO(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `ac_chat_room`.`id`,`ac_chat_room`.`room_uid`,`ac_chat_room`.`academy_id`,`ac_chat_room`.`parent_id`,`ac_chat_room`.`staff_user_id`,`ac_chat_room`.`status`,`ac_chat_room`.`created_at`,`ac_chat_room`.`updated_at` FROM `ac_chat_room` JOIN ac_academy ON ac_academy.id = ac_chat_room.academy_id WHERE ac_chat_room.staff_user_id = ? OR (ac_chat_room.staff_user_id IS NULL AND ac_academy.owner_id = ?) ORDER BY ac_chat_room.updated_at DESC")).
		WithArgs(uint64(7), uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_uid", "academy_id", "parent_id", "staff_user_id", "status", "created_at", "updated_at"}).
			AddRow(uint64(10), "room-uid-10", uint64(1), uint64(2), uint64(7), models.RoomStatusPending, now, now))

	// Academy preload
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `ac_academy` WHERE `ac_academy`.`id` = ? AND `ac_academy`.`deleted_at` IS NULL")).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "name"}).AddRow(uint64(1), "academy-uid-1", "한빛학원"))

	// Parent preload
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `ac_profile` WHERE `ac_profile`.`id` = ? AND `ac_profile`.`deleted_at` IS NULL")).
		WithArgs(uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "user_name", "phone"}).AddRow(uint64(2), "uid-2", "학부모A", "01012345678"))

	rooms, err := dao.ListByStaff(7)
	if err != nil {
		t.Fatalf("ListByStaff: %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(rooms))
	}
	if rooms[0].Academy.Name != "한빛학원" || rooms[0].Parent.UserName != "학부모A" {
		t.Fatalf("expected preloads, got %#v", rooms[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
