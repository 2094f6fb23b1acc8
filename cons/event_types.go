package cons

// 방 스코프 실시간 이벤트 타입 (event_type)
const (
	EventMessageCreated    = "message.created"     // 새 메시지
	EventRoomCreated       = "room.created"        // 방 생성 (배정 담당자에게 알림)
	EventRoomStatusUpdated = "room.status.updated" // pending -> active 전이
)
