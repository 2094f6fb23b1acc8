package consult_sdk

import (
	"context"

	"github.com/acadmap/consult-sdk/service"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type ServiceConfig struct {
	Debug bool
}

type Config struct {
	DB          *gorm.DB
	RDB         *redis.Client
	TablePrefix string
	Service     ServiceConfig

	// StaffDirectory 학원별 담당자 디렉터리 조회 교체용 (기본: DB 조회).
	// 외부 디렉터리 RPC 를 붙일 때 사용한다.
	StaffDirectory func(ctx context.Context, academyID uint64) ([]service.StaffDirectoryRow, error)
}

type Option func(*Config)

func WithDB(db *gorm.DB) Option {
	return func(c *Config) {
		c.DB = db
	}
}

func WithRDB(rdb *redis.Client) Option {
	return func(c *Config) {
		c.RDB = rdb
	}
}

func WithTablePrefix(prefix string) Option {
	return func(c *Config) {
		c.TablePrefix = prefix
	}
}

func WithServiceDebug(debug bool) Option {
	return func(c *Config) {
		c.Service.Debug = debug
	}
}

// WithStaffDirectory 디렉터리 원천 교체
func WithStaffDirectory(fn func(ctx context.Context, academyID uint64) ([]service.StaffDirectoryRow, error)) Option {
	return func(c *Config) {
		c.StaffDirectory = fn
	}
}
