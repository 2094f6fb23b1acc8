package service

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newMockDB go-sqlmock 으로 GORM 에 물릴 수 있는 *gorm.DB 를 만든다.
// mysql dialector 는 GORM 이 생성하는 SQL/플레이스홀더(?)를 고정하기 위한 것으로,
// 실제 MySQL 에는 접속하지 않는다.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	// SkipDefaultTransaction: GORM 이 쓰기마다 여는 기본 트랜잭션을 끄고
	// 서비스가 직접 여는 트랜잭션만 단언한다
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqldb, SkipInitializeWithVersion: true}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		_ = sqldb.Close()
		t.Fatalf("gorm.Open: %v", err)
	}

	return db, mock, sqldb
}
