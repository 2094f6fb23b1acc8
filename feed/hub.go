package feed

import (
	"sync"

	"github.com/acadmap/consult-sdk/message"
)

// Hub 방 단위 이벤트 분배기.
// 전달 보장은 at-least-once 전제이고 소비측이 id 중복 제거를 한다.
type Hub struct {
	mu   sync.RWMutex
	subs map[uint64]map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]map[*Subscription]struct{})}
}

// Subscription 취소 가능한 방 구독. C 에서 이벤트를 받는다.
type Subscription struct {
	hub    *Hub
	roomID uint64
	C      chan message.Event
	once   sync.Once
}

// Subscribe 방 이벤트 구독 시작
func (h *Hub) Subscribe(roomID uint64, buf int) *Subscription {
	if buf <= 0 {
		buf = 64
	}
	sub := &Subscription{hub: h, roomID: roomID, C: make(chan message.Event, buf)}

	h.mu.Lock()
	set := h.subs[roomID]
	if set == nil {
		set = make(map[*Subscription]struct{})
		h.subs[roomID] = set
	}
	set[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

// Publish 방 구독자 전원에게 전달. 버퍼가 가득 찬 구독자는 건너뛴다
// (발행측이 막히면 안 된다; 놓친 쪽은 재진입 시 전체 조회로 복구).
func (h *Hub) Publish(roomID uint64, evt message.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs[roomID] {
		select {
		case sub.C <- evt:
		default:
		}
	}
}

// Close 구독 해지. 이후 이벤트는 오지 않고 C 는 닫힌다.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		if set, ok := s.hub.subs[s.roomID]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(s.hub.subs, s.roomID)
			}
		}
		s.hub.mu.Unlock()
		close(s.C)
	})
}
