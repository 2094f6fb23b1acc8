package service

import (
	"context"
	"errors"
	"testing"

	"github.com/acadmap/consult-sdk/cons"
)

func strptr(s string) *string { return &s }

func TestStaffService_GetAcademyStaff_SortAndFallback(t *testing.T) {
	rows := []StaffDirectoryRow{
		{UserID: 1, Name: strptr("김강사"), RoleLabel: strptr(cons.RoleLabelTeacher)},
		{UserID: 2, Name: nil, RoleLabel: nil}, // 이름/역할 없음 -> 폴백
		{UserID: 3, Name: strptr("박원장"), RoleLabel: strptr(cons.RoleLabelDirector), Description: strptr("원장 직통")},
		{UserID: 4, Name: strptr("이부원장"), RoleLabel: strptr(cons.RoleLabelDeputy)},
		{UserID: 5, Name: strptr("미지정"), RoleLabel: strptr("실장")}, // 미등록 라벨 -> 맨 뒤
	}

	ss := NewStaffService(&Service{
		StaffDirectory: func(ctx context.Context, academyID uint64) ([]StaffDirectoryRow, error) {
			if academyID != 1 {
				t.Fatalf("unexpected academy %d", academyID)
			}
			return rows, nil
		},
	})

	items, err := ss.GetAcademyStaff(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetAcademyStaff: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}

	// 원장 < 부원장 < 강사 < 관리자(폴백) < 미등록
	wantOrder := []uint64{3, 4, 1, 2, 5}
	for i, want := range wantOrder {
		if items[i].UserID != want {
			t.Fatalf("order[%d] = %d, want %d (%#v)", i, items[i].UserID, want, items)
		}
	}

	fallback := items[3]
	if fallback.Name != cons.FallbackStaffName {
		t.Fatalf("expected name fallback %q, got %q", cons.FallbackStaffName, fallback.Name)
	}
	if fallback.RoleLabel != cons.RoleLabelAdmin {
		t.Fatalf("expected role fallback %q, got %q", cons.RoleLabelAdmin, fallback.RoleLabel)
	}

	if items[0].Description != "원장 직통" {
		t.Fatalf("expected description kept, got %q", items[0].Description)
	}
}

// 같은 역할끼리는 디렉터리 원본 순서가 유지되어야 한다 (안정 정렬).
func TestStaffService_GetAcademyStaff_StableWithinRole(t *testing.T) {
	rows := []StaffDirectoryRow{
		{UserID: 1, Name: strptr("강사A"), RoleLabel: strptr(cons.RoleLabelTeacher)},
		{UserID: 2, Name: strptr("강사B"), RoleLabel: strptr(cons.RoleLabelTeacher)},
		{UserID: 3, Name: strptr("강사C"), RoleLabel: strptr(cons.RoleLabelTeacher)},
	}

	ss := NewStaffService(&Service{
		StaffDirectory: func(ctx context.Context, academyID uint64) ([]StaffDirectoryRow, error) {
			return rows, nil
		},
	})

	items, err := ss.GetAcademyStaff(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetAcademyStaff: %v", err)
	}
	for i, want := range []uint64{1, 2, 3} {
		if items[i].UserID != want {
			t.Fatalf("order[%d] = %d, want %d", i, items[i].UserID, want)
		}
	}
}

func TestStaffService_GetAcademyStaff_DirectoryError(t *testing.T) {
	ss := NewStaffService(&Service{
		StaffDirectory: func(ctx context.Context, academyID uint64) ([]StaffDirectoryRow, error) {
			return nil, errors.New("directory down")
		},
	})

	items, err := ss.GetAcademyStaff(context.Background(), 1)
	if err == nil {
		t.Fatalf("expected error")
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty slice alongside error, got %#v", items)
	}
}

func TestStaffService_GetAcademyStaff_ZeroAcademy(t *testing.T) {
	called := false
	ss := NewStaffService(&Service{
		StaffDirectory: func(ctx context.Context, academyID uint64) ([]StaffDirectoryRow, error) {
			called = true
			return nil, nil
		},
	})

	items, err := ss.GetAcademyStaff(context.Background(), 0)
	if err != nil || len(items) != 0 {
		t.Fatalf("expected empty/no error, got %#v / %v", items, err)
	}
	if called {
		t.Fatalf("directory must not be called for academy 0")
	}
}

func TestFindItem(t *testing.T) {
	items := []StaffItem{
		{UserID: 3, Name: "박원장", RoleLabel: cons.RoleLabelDirector},
		{UserID: 1, Name: "김강사", RoleLabel: cons.RoleLabelTeacher},
	}

	id := uint64(1)
	got := FindItem(items, &id)
	if got.Name != "김강사" {
		t.Fatalf("expected 김강사, got %#v", got)
	}

	missing := uint64(99)
	got = FindItem(items, &missing)
	if got.Name != cons.FallbackStaffName || got.RoleLabel != cons.RoleLabelAdmin {
		t.Fatalf("expected fallback item, got %#v", got)
	}

	got = FindItem(items, nil)
	if got.Name != cons.FallbackStaffName {
		t.Fatalf("expected fallback for nil staff, got %#v", got)
	}
}
