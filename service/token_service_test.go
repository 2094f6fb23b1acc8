package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestTokenService_StoreAndGet(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := NewTokenService(rdb)
	ctx := context.Background()

	token, err := svc.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(token))
	}

	if err := svc.StoreToken(ctx, token, 42, 0); err != nil {
		t.Fatalf("StoreToken: %v", err)
	}

	uid, err := svc.GetUserIDByToken(ctx, token)
	if err != nil {
		t.Fatalf("GetUserIDByToken: %v", err)
	}
	if uid != 42 {
		t.Fatalf("expected 42, got %d", uid)
	}
}

func TestTokenService_Revoke(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := NewTokenService(rdb)
	ctx := context.Background()

	token, _ := svc.GenerateToken()
	if err := svc.StoreToken(ctx, token, 42, 0); err != nil {
		t.Fatalf("StoreToken: %v", err)
	}

	if err := svc.RevokeToken(ctx, token); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	if _, err := svc.GetUserIDByToken(ctx, token); err != redis.Nil {
		t.Fatalf("expected redis.Nil after revoke, got %v", err)
	}
}

func TestTokenService_RevokeAllTokensByUser(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := NewTokenService(rdb)
	ctx := context.Background()

	// 멀티 디바이스: 토큰 두 개 발급 후 전체 로그아웃
	t1, _ := svc.GenerateToken()
	t2, _ := svc.GenerateToken()
	if err := svc.StoreToken(ctx, t1, 42, 0); err != nil {
		t.Fatalf("StoreToken t1: %v", err)
	}
	if err := svc.StoreToken(ctx, t2, 42, 0); err != nil {
		t.Fatalf("StoreToken t2: %v", err)
	}

	if err := svc.RevokeAllTokensByUser(ctx, 42); err != nil {
		t.Fatalf("RevokeAllTokensByUser: %v", err)
	}

	for _, tok := range []string{t1, t2} {
		if _, err := svc.GetUserIDByToken(ctx, tok); err != redis.Nil {
			t.Fatalf("expected redis.Nil for %q, got %v", tok, err)
		}
	}
}

func TestTokenService_NilClient(t *testing.T) {
	svc := NewTokenService(nil)
	if err := svc.StoreToken(context.Background(), "x", 1, 0); err == nil {
		t.Fatalf("expected error with nil redis client")
	}
}
