package feed

import (
	"sync"

	"github.com/acadmap/consult-sdk/cons"
	"github.com/acadmap/consult-sdk/message"
	"github.com/acadmap/consult-sdk/models"
)

// RoomFeed 열려 있는 방 화면의 로컬 상태.
// 최초 전체 조회 결과와 실시간 이벤트 두 흐름을 id 기준 중복 제거만으로
// 병합한다 (피드 전송로의 순서 보장을 가정하지 않는다).
type RoomFeed struct {
	mu sync.Mutex

	roomID   uint64
	viewerID uint64

	status   string
	messages []message.MessagePayload
	seen     map[uint64]struct{}

	// markRead 열람자가 보내지 않은 메시지 수신 시 호출 (fire-and-forget).
	// 실패가 표시를 막으면 안 되므로 반환값이 없다.
	markRead func(messageID uint64)

	closed bool
}

// NewRoomFeed 최초 전체 조회 결과로 피드를 연다.
// seen 집합은 초기 메시지로 시드해서 이후 중복 이벤트를 무시한다.
func NewRoomFeed(roomID, viewerID uint64, status string, initial []message.MessagePayload, markRead func(uint64)) *RoomFeed {
	f := &RoomFeed{
		roomID:   roomID,
		viewerID: viewerID,
		status:   status,
		messages: make([]message.MessagePayload, 0, len(initial)),
		seen:     make(map[uint64]struct{}, len(initial)),
		markRead: markRead,
	}
	for _, m := range initial {
		if _, ok := f.seen[m.ID]; ok {
			continue
		}
		f.seen[m.ID] = struct{}{}
		f.messages = append(f.messages, m)
	}
	return f
}

// Apply 실시간 이벤트 한 건 반영. Close 이후에는 무시된다.
func (f *RoomFeed) Apply(evt message.Event) {
	switch evt.Type {
	case cons.EventMessageCreated:
		if evt.Message != nil {
			f.applyMessage(*evt.Message)
		}
	case cons.EventRoomStatusUpdated:
		if evt.Room != nil {
			f.applyStatus(*evt.Room)
		}
	}
}

// applyMessage 이미 있는 id 면 no-op (at-least-once 전달 전제).
// 새 메시지가 열람자 작성이 아니면 읽음 처리 콜백을 발사한다.
func (f *RoomFeed) applyMessage(p message.MessagePayload) {
	f.mu.Lock()
	if f.closed || p.RoomID != f.roomID {
		f.mu.Unlock()
		return
	}
	if _, ok := f.seen[p.ID]; ok {
		f.mu.Unlock()
		return
	}
	f.seen[p.ID] = struct{}{}
	f.messages = append(f.messages, p)
	markRead := f.markRead
	f.mu.Unlock()

	if p.SenderID != f.viewerID && markRead != nil {
		markRead(p.ID)
	}
}

// applyStatus 이 범위에서 관측되는 전이는 active 뿐이다.
func (f *RoomFeed) applyStatus(p message.RoomStatusPayload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || p.RoomID != f.roomID {
		return
	}
	if p.Status == models.RoomStatusActive {
		f.status = p.Status
	}
}

// Run 구독 채널을 소비해 피드에 반영한다. 구독이 닫히면 반환.
func (f *RoomFeed) Run(sub *Subscription) {
	for evt := range sub.C {
		f.Apply(evt)
	}
}

// Messages 현재 메시지 목록 스냅샷
func (f *RoomFeed) Messages() []message.MessagePayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]message.MessagePayload, len(f.messages))
	copy(out, f.messages)
	return out
}

// Status 현재 방 상태
func (f *RoomFeed) Status() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// RoomID 피드가 보는 방
func (f *RoomFeed) RoomID() uint64 {
	return f.roomID
}

// Close 화면 이탈: 이후 이벤트에 반응하지 않는다.
// 진행 중인 작업을 중단시키지는 않는다 (결과는 버려질 뿐).
func (f *RoomFeed) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}
