package message

import "time"

// WS 상행 메시지 타입
const (
	ReqTypeJoin    = "join"     // 방 화면 진입 (이후 이 방 이벤트를 수신)
	ReqTypeLeave   = "leave"    // 방 화면 이탈 (수신 중단)
	ReqTypeSend    = "send"     // 메시지 전송
	ReqTypeReadAck = "read_ack" // 방 읽음 처리
)

// Req WS 상행 요청
type Req struct {
	Type     string `json:"type"`      // join/leave/send/read_ack
	RoomID   uint64 `json:"room_id"`   // 대상 방 ID
	Content  string `json:"content"`   // send 일 때 메시지 내용
	PacketID string `json:"packet_id"` // 선택: 클라이언트 ack 매칭용
}

// MessagePayload 새 메시지 이벤트의 행 스냅샷
type MessagePayload struct {
	ID        uint64    `json:"id"`
	RoomID    uint64    `json:"room_id"`
	SenderID  uint64    `json:"sender_id"`
	Type      string    `json:"type"` // normal/chat_request/chat_accepted
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomStatusPayload 방 상태 변경 이벤트의 행 스냅샷
type RoomStatusPayload struct {
	RoomID    uint64    `json:"room_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Event 방 스코프 하행 이벤트. WS 하행과 feed 구독 양쪽에서 같은 형태를 쓴다.
// Type 은 cons.Event* 값.
type Event struct {
	Type    string             `json:"type"`
	Message *MessagePayload    `json:"message,omitempty"`
	Room    *RoomStatusPayload `json:"room,omitempty"`
}

// ErrResp WS 상행 처리 실패 하행 (packet_id 로 요청과 매칭)
type ErrResp struct {
	Type     string `json:"type"` // "error"
	PacketID string `json:"packet_id,omitempty"`
	Msg      string `json:"msg"`
}
