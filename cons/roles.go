package cons

// 담당자 역할 라벨. 디렉터리 정렬 우선순위의 기준이 된다.
const (
	RoleLabelDirector = "원장"
	RoleLabelDeputy   = "부원장"
	RoleLabelTeacher  = "강사"
	RoleLabelAdmin    = "관리자" // 역할 라벨이 비어 있을 때의 폴백이기도 하다
)

// 디렉터리 응답의 null 필드 폴백
const (
	FallbackStaffName   = "이름 없음"
	FallbackParentLabel = "학부모" // 표시 이름 폴백 체인의 종단
)
