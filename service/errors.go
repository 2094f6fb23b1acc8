package service

import "errors"

// 사용자 노출 메시지를 그대로 담는 sentinel 에러.
// 핸들러는 errors.Is 로 분기해 business code 를 정하고 메시지는 그대로 내린다.
var (
	// ErrNoSession 세션 없음: 즉시 실패, 재시도 없음
	ErrNoSession = errors.New("로그인이 필요합니다")

	// ErrRoomNotFound 방 없음
	ErrRoomNotFound = errors.New("채팅방을 찾을 수 없습니다")

	// 내용 검증 실패 (네트워크 호출 전에 로컬에서 거부)
	ErrEmptyContent   = errors.New("메시지를 입력해주세요")
	ErrContentTooLong = errors.New("메시지는 5000자 이하여야 합니다")

	// ErrAwaitAcceptance pending 방에서 학부모 발신 차단
	ErrAwaitAcceptance = errors.New("강사가 수락할 때까지 기다려주세요. 수락 후 메시지를 보낼 수 있습니다.")

	// 수락 선행조건 위반 (상태 변경 없음)
	ErrNotPending       = errors.New("수락할 수 있는 상태가 아닙니다")
	ErrNotAssignedStaff = errors.New("배정된 담당자만 수락할 수 있습니다")
)
