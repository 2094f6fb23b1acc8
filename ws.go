package consult_sdk

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// 쓰기 타임아웃
	writeWait = 10 * time.Second

	// pong 타임아웃
	pongWait = 60 * time.Second

	// ping 주기 (pong 보다 짧아야 함)
	pingPeriod = (pongWait * 9) / 10

	// 상행 메시지 최대 크기 (메시지 본문 5000자 + 봉투 여유)
	maxMessageSize = 32 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // SDK 특성상 origin 제한은 호스트 앱에서
	},
}

// Client 웹소켓 연결 하나. 같은 사용자가 여러 디바이스로 붙을 수 있다.
type Client struct {
	hub *WsServer

	conn *websocket.Conn

	// 하행 버퍼
	send chan []byte

	UserID uint64

	// rooms 이 연결이 보고 있는 방들 (join/leave 로 관리, hub.mu 로 보호)
	rooms map[uint64]struct{}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { _ = c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("readPump error: %v", err)
			}
			break
		}
		c.hub.handleMessage(c, msg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			_, _ = w.Write(msg)

			// 버퍼에 쌓인 나머지도 한 번에 흘려보낸다
			n := len(c.send)
			for i := 0; i < n; i++ {
				_, _ = w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// WsServer 실시간 허브. 사용자별 연결과 방별 구독을 관리한다.
type WsServer struct {
	clients map[*Client]bool

	// 사용자 ID -> 활성 연결들 (멀티 디바이스)
	userClients map[uint64][]*Client

	// 방 ID -> 그 방을 보고 있는 연결들
	roomClients map[uint64]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	// 상행 메시지 처리 콜백 (engine 이 주입)
	onMessage func(client *Client, msg []byte)
}

func NewWsServer() *WsServer {
	return &WsServer{
		clients:     make(map[*Client]bool),
		userClients: make(map[uint64][]*Client),
		roomClients: make(map[uint64]map[*Client]struct{}),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
	}
}

func (h *WsServer) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.userClients[client.UserID] = append(h.userClients[client.UserID], client)
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				if conns, exists := h.userClients[client.UserID]; exists {
					for i, conn := range conns {
						if conn == client {
							h.userClients[client.UserID] = append(conns[:i], conns[i+1:]...)
							break
						}
					}
					if len(h.userClients[client.UserID]) == 0 {
						delete(h.userClients, client.UserID)
					}
				}

				// 연결이 끊기면 보고 있던 방 구독도 해제
				for roomID := range client.rooms {
					h.leaveRoomLocked(client, roomID)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *WsServer) handleMessage(client *Client, msg []byte) {
	if h.onMessage != nil {
		h.onMessage(client, msg)
	}
}

func (h *WsServer) SetOnMessage(fn func(client *Client, msg []byte)) {
	h.onMessage = fn
}

// JoinRoom 연결을 방 구독자로 등록
func (h *WsServer) JoinRoom(client *Client, roomID uint64) {
	if roomID == 0 {
		return
	}
	h.mu.Lock()
	set := h.roomClients[roomID]
	if set == nil {
		set = make(map[*Client]struct{})
		h.roomClients[roomID] = set
	}
	set[client] = struct{}{}
	client.rooms[roomID] = struct{}{}
	h.mu.Unlock()
}

// LeaveRoom 방 구독 해제
func (h *WsServer) LeaveRoom(client *Client, roomID uint64) {
	h.mu.Lock()
	h.leaveRoomLocked(client, roomID)
	h.mu.Unlock()
}

func (h *WsServer) leaveRoomLocked(client *Client, roomID uint64) {
	if set, ok := h.roomClients[roomID]; ok {
		delete(set, client)
		if len(set) == 0 {
			delete(h.roomClients, roomID)
		}
	}
	delete(client.rooms, roomID)
}

// ServeWS 웹소켓 요청 처리. 인증은 호출측이 끝내고 userID 를 넘긴다.
func (h *WsServer) ServeWS(w http.ResponseWriter, r *http.Request, userID uint64) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	client := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, 256),
		UserID: userID,
		rooms:  make(map[uint64]struct{}),
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// SendToUser 사용자의 모든 연결로 전송 (버퍼 초과 시 드랍)
func (h *WsServer) SendToUser(userID uint64, msg []byte) {
	h.mu.RLock()
	clients := h.userClients[userID]
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.send <- msg:
		default:
		}
	}
}

// BroadcastRoom 방을 보고 있는 모든 연결로 전송
func (h *WsServer) BroadcastRoom(roomID uint64, msg []byte) {
	h.mu.RLock()
	set := h.roomClients[roomID]
	clients := make([]*Client, 0, len(set))
	for c := range set {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.send <- msg:
		default:
		}
	}
}
