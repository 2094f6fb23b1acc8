package service

import (
	"context"
	"log"
	"sort"

	"github.com/acadmap/consult-sdk/cons"
	"github.com/acadmap/consult-sdk/models"
)

// StaffDirectoryRow 디렉터리 원천 행. null 허용 필드는 포인터로 받아
// 폴백 치환을 서비스에서 일괄 처리한다.
type StaffDirectoryRow struct {
	UserID      uint64
	Name        *string
	RoleLabel   *string
	Description *string
}

// StaffItem 채팅 상담 대상 선택/방 라벨링에 쓰는 담당자 항목
type StaffItem struct {
	UserID      uint64 `json:"user_id"`
	Name        string `json:"name"`
	RoleLabel   string `json:"role_label"`
	Description string `json:"description"`
}

// 역할 정렬 우선순위. 미등록 라벨은 맨 뒤 (안정 정렬로 원래 순서 유지).
var rolePriority = map[string]int{
	cons.RoleLabelDirector: 0,
	cons.RoleLabelDeputy:   1,
	cons.RoleLabelTeacher:  2,
	cons.RoleLabelAdmin:    3,
}

const unknownRolePriority = 99

type StaffService struct {
	*Service
}

func NewStaffService(s *Service) *StaffService {
	return &StaffService{Service: s}
}

// GetAcademyStaff 학원의 채팅 상담 가능 담당자 목록.
// 원장 < 부원장 < 강사 < 관리자 < 그 외 순으로 정렬하고,
// 이름/역할 라벨이 비어 있으면 정의된 폴백 문자열로 치환한다.
// 디렉터리 조회 실패는 빈 목록으로 처리한다 (상담 진입 자체를 막지 않음).
func (s *StaffService) GetAcademyStaff(ctx context.Context, academyID uint64) ([]StaffItem, error) {
	if academyID == 0 {
		return []StaffItem{}, nil
	}

	directory := s.StaffDirectory
	if directory == nil {
		directory = s.queryStaffRows
	}

	rows, err := directory(ctx, academyID)
	if err != nil {
		log.Printf("GetAcademyStaff directory error academy=%d: %v", academyID, err)
		return []StaffItem{}, err
	}

	items := make([]StaffItem, 0, len(rows))
	for _, row := range rows {
		item := StaffItem{
			UserID:    row.UserID,
			Name:      cons.FallbackStaffName,
			RoleLabel: cons.RoleLabelAdmin,
		}
		if row.Name != nil && *row.Name != "" {
			item.Name = *row.Name
		}
		if row.RoleLabel != nil && *row.RoleLabel != "" {
			item.RoleLabel = *row.RoleLabel
		}
		if row.Description != nil {
			item.Description = *row.Description
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return roleOrder(items[i].RoleLabel) < roleOrder(items[j].RoleLabel)
	})

	return items, nil
}

func roleOrder(label string) int {
	if p, ok := rolePriority[label]; ok {
		return p
	}
	return unknownRolePriority
}

// FindItem 목록에서 특정 담당자 찾기 (기존 방에 담당자 이름/역할 라벨을 붙일 때).
// 없으면 폴백 항목을 돌려준다.
func FindItem(items []StaffItem, staffUserID *uint64) StaffItem {
	if staffUserID != nil {
		for _, item := range items {
			if item.UserID == *staffUserID {
				return item
			}
		}
	}
	return StaffItem{Name: cons.FallbackStaffName, RoleLabel: cons.RoleLabelAdmin}
}

// queryStaffRows 기본 디렉터리 구현: academy_member + profile 조인.
// 외부 디렉터리 RPC 를 쓰려면 Config 로 StaffDirectory 를 교체한다.
func (s *StaffService) queryStaffRows(ctx context.Context, academyID uint64) ([]StaffDirectoryRow, error) {
	memberTable := models.AcademyMember{}.TableName()
	profileTable := models.Profile{}.TableName()

	type row struct {
		UserID      uint64
		UserName    *string
		RoleLabel   *string
		Description *string
	}
	var raw []row
	err := s.DB.WithContext(ctx).
		Table(memberTable).
		Select(memberTable+".user_id, "+profileTable+".user_name, "+memberTable+".role_label, "+memberTable+".description").
		Joins("JOIN "+profileTable+" ON "+profileTable+".id = "+memberTable+".user_id").
		Where(memberTable+".academy_id = ? AND "+memberTable+".is_chat_enabled = ?", academyID, true).
		Scan(&raw).Error
	if err != nil {
		return nil, err
	}

	rows := make([]StaffDirectoryRow, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, StaffDirectoryRow{
			UserID:      r.UserID,
			Name:        r.UserName,
			RoleLabel:   r.RoleLabel,
			Description: r.Description,
		})
	}
	return rows, nil
}
