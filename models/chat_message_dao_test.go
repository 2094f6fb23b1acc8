package models

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

// 미확인 수는 열람자가 보낸 메시지를 빼고 센다.
func TestChatMessageDAO_CountUnread(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	dao := NewChatMessageDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `ac_chat_message` WHERE room_id = ? AND is_read = ? AND sender_id != ?")).
		WithArgs(uint64(10), false, uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(int64(5)))

	count, err := dao.CountUnread(10, 2)
	if err != nil {
		t.Fatalf("CountUnread: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected 5, got %d", count)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestChatMessageDAO_LastByRoom_Missing(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	dao := NewChatMessageDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `ac_chat_message` WHERE room_id = ? ORDER BY created_at DESC,`ac_chat_message`.`id` LIMIT ?")).
		WithArgs(uint64(10), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	msg, err := dao.LastByRoom(10)
	if err != nil {
		t.Fatalf("LastByRoom: %v", err)
	}
	if msg != nil {
		t.Fatalf("expected nil for empty room, got %#v", msg)
	}
}

func TestChatMessageDAO_MarkRoomRead(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	dao := NewChatMessageDAO(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `ac_chat_message` SET `is_read`=?,`updated_at`=? WHERE room_id = ? AND sender_id != ? AND is_read = ?")).
		WithArgs(true, sqlmock.AnyArg(), uint64(10), uint64(2), false).
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := dao.MarkRoomRead(10, 2); err != nil {
		t.Fatalf("MarkRoomRead: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestChatMessageDAO_ListByRoomAsc(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	dao := NewChatMessageDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `ac_chat_message` WHERE room_id = ? ORDER BY created_at ASC")).
		WithArgs(uint64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "sender_id", "type", "content"}).
			AddRow(uint64(1), uint64(10), uint64(2), MessageTypeChatRequest, "요청").
			AddRow(uint64(2), uint64(10), uint64(7), MessageTypeNormal, "답장"))

	msgs, err := dao.ListByRoomAsc(10)
	if err != nil {
		t.Fatalf("ListByRoomAsc: %v", err)
	}
	if len(msgs) != 2 || msgs[0].ID != 1 || msgs[1].ID != 2 {
		t.Fatalf("unexpected messages %#v", msgs)
	}
}
