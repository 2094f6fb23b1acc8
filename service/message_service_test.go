package service

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/acadmap/consult-sdk/cons"
	"github.com/acadmap/consult-sdk/message"
	"github.com/acadmap/consult-sdk/models"
)

func TestValidateContent(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"empty", "", "", ErrEmptyContent},
		{"spaces only", "   \n\t", "", ErrEmptyContent},
		{"trimmed", "  안녕하세요  ", "안녕하세요", nil},
		{"single rune", "가", "가", nil},
		{"max runes", strings.Repeat("가", 5000), strings.Repeat("가", 5000), nil},
		{"over max runes", strings.Repeat("가", 5001), "", ErrContentTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateContent(tc.in)
			if err != tc.wantErr {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func expectRoomByID(mock sqlmock.Sqlmock, roomID, academyID, parentID uint64, staffUserID *uint64, status string) {
	now := time.Now()
	rows := sqlmock.NewRows(roomColumns())
	if staffUserID != nil {
		rows.AddRow(roomID, "room-uid", academyID, parentID, *staffUserID, status, now, now)
	} else {
		rows.AddRow(roomID, "room-uid", academyID, parentID, nil, status, now, now)
	}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `ac_chat_room` WHERE id = ? ORDER BY `ac_chat_room`.`id` LIMIT ?")).
		WithArgs(roomID, 1).
		WillReturnRows(rows)
}

// pending 방에서 요청자(학부모)는 발신이 거부된다. DB 쓰기는 일어나지 않는다.
func TestMessageService_SendMessage_PendingParentBlocked(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	ms := NewMessageService(&Service{DB: gormDB, TablePrefix: "ac_"})
	staffID := uint64(7)

	expectRoomByID(mock, 10, 1, 2, &staffID, models.RoomStatusPending)

	_, err := ms.SendMessage(&Session{UserID: 2}, 10, "보내고 싶은 말")
	if err != ErrAwaitAcceptance {
		t.Fatalf("expected ErrAwaitAcceptance, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

// 차단은 요청자에게만 걸린다. 배정 담당자는 pending 중에도 답장할 수 있다.
func TestMessageService_SendMessage_StaffMaySendWhilePending(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	var events []message.Event
	ms := NewMessageService(&Service{
		DB:          gormDB,
		TablePrefix: "ac_",
		RoomNotifier: func(roomID uint64, evt message.Event) {
			events = append(events, evt)
		},
	})
	staffID := uint64(7)

	expectRoomByID(mock, 10, 1, 2, &staffID, models.RoomStatusPending)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `ac_chat_message`")).
		WillReturnResult(sqlmock.NewResult(100, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `ac_chat_room` SET `updated_at`=? WHERE id = ?")).
		WithArgs(sqlmock.AnyArg(), uint64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	msg, err := ms.SendMessage(&Session{UserID: staffID}, 10, "  안녕하세요  ")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.ID != 100 || msg.Content != "안녕하세요" || msg.Type != models.MessageTypeNormal {
		t.Fatalf("unexpected message: %#v", msg)
	}

	if len(events) != 1 || events[0].Type != cons.EventMessageCreated {
		t.Fatalf("expected message.created, got %#v", events)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestMessageService_SendMessage_ValidationBeforeDB(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	ms := NewMessageService(&Service{DB: gormDB, TablePrefix: "ac_"})

	// DB 기대 없음: 검증 실패는 쿼리 전에 끝나야 한다
	if _, err := ms.SendMessage(&Session{UserID: 2}, 10, "   "); err != ErrEmptyContent {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if _, err := ms.SendMessage(&Session{UserID: 2}, 10, strings.Repeat("가", 5001)); err != ErrContentTooLong {
		t.Fatalf("expected ErrContentTooLong, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestMessageService_SendMessage_RoomMissing(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	ms := NewMessageService(&Service{DB: gormDB, TablePrefix: "ac_"})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `ac_chat_room` WHERE id = ? ORDER BY `ac_chat_room`.`id` LIMIT ?")).
		WithArgs(uint64(99), 1).
		WillReturnRows(sqlmock.NewRows(roomColumns()))

	if _, err := ms.SendMessage(&Session{UserID: 2}, 99, "안녕하세요"); err != ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func acceptUpdateSQL() string {
	return regexp.QuoteMeta("UPDATE `ac_chat_room` SET `status`=?,`updated_at`=? WHERE id = ? AND status = ? AND staff_user_id = ?")
}

func TestMessageService_AcceptChatRequest_Success(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	var events []message.Event
	ms := NewMessageService(&Service{
		DB:          gormDB,
		TablePrefix: "ac_",
		RoomNotifier: func(roomID uint64, evt message.Event) {
			events = append(events, evt)
		},
	})

	mock.ExpectExec(acceptUpdateSQL()).
		WithArgs(models.RoomStatusActive, sqlmock.AnyArg(), uint64(10), models.RoomStatusPending, uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `ac_chat_message`")).
		WillReturnResult(sqlmock.NewResult(101, 1))

	if err := ms.AcceptChatRequest(&Session{UserID: 7}, 10); err != nil {
		t.Fatalf("AcceptChatRequest: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected status + message events, got %#v", events)
	}
	if events[0].Type != cons.EventRoomStatusUpdated || events[0].Room.Status != models.RoomStatusActive {
		t.Fatalf("expected room.status.updated active, got %#v", events[0])
	}
	if events[1].Type != cons.EventMessageCreated || events[1].Message.Type != models.MessageTypeChatAccepted {
		t.Fatalf("expected chat_accepted message, got %#v", events[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

// 이미 active 인 방의 두 번째 수락은 조용히 성공하지 않는다.
func TestMessageService_AcceptChatRequest_AlreadyActive(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	ms := NewMessageService(&Service{DB: gormDB, TablePrefix: "ac_"})
	staffID := uint64(7)

	mock.ExpectExec(acceptUpdateSQL()).
		WithArgs(models.RoomStatusActive, sqlmock.AnyArg(), uint64(10), models.RoomStatusPending, staffID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	expectRoomByID(mock, 10, 1, 2, &staffID, models.RoomStatusActive)

	if err := ms.AcceptChatRequest(&Session{UserID: 7}, 10); err != ErrNotPending {
		t.Fatalf("expected ErrNotPending, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestMessageService_AcceptChatRequest_NotAssignedStaff(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	ms := NewMessageService(&Service{DB: gormDB, TablePrefix: "ac_"})
	assigned := uint64(9)

	mock.ExpectExec(acceptUpdateSQL()).
		WithArgs(models.RoomStatusActive, sqlmock.AnyArg(), uint64(10), models.RoomStatusPending, uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	expectRoomByID(mock, 10, 1, 2, &assigned, models.RoomStatusPending)

	if err := ms.AcceptChatRequest(&Session{UserID: 7}, 10); err != ErrNotAssignedStaff {
		t.Fatalf("expected ErrNotAssignedStaff, got %v", err)
	}
}

func TestMessageService_AcceptChatRequest_RoomMissing(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	ms := NewMessageService(&Service{DB: gormDB, TablePrefix: "ac_"})

	mock.ExpectExec(acceptUpdateSQL()).
		WithArgs(models.RoomStatusActive, sqlmock.AnyArg(), uint64(99), models.RoomStatusPending, uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `ac_chat_room` WHERE id = ? ORDER BY `ac_chat_room`.`id` LIMIT ?")).
		WithArgs(uint64(99), 1).
		WillReturnRows(sqlmock.NewRows(roomColumns()))

	if err := ms.AcceptChatRequest(&Session{UserID: 7}, 99); err != ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestMessageService_MarkRoomRead(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	ms := NewMessageService(&Service{DB: gormDB, TablePrefix: "ac_"})

	// updated_at 은 GORM 이 자동으로 끼워 넣는다
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `ac_chat_message` SET `is_read`=?,`updated_at`=? WHERE room_id = ? AND sender_id != ? AND is_read = ?")).
		WithArgs(true, sqlmock.AnyArg(), uint64(10), uint64(2), false).
		WillReturnResult(sqlmock.NewResult(0, 4))

	if err := ms.MarkRoomRead(&Session{UserID: 2}, 10); err != nil {
		t.Fatalf("MarkRoomRead: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
