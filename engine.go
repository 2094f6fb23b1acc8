package consult_sdk

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/acadmap/consult-sdk/feed"
	"github.com/acadmap/consult-sdk/message"
	"github.com/acadmap/consult-sdk/middleware"
	model "github.com/acadmap/consult-sdk/models"
	"github.com/acadmap/consult-sdk/service"
	"github.com/gin-gonic/gin"
)

// ConsultEngine 상담 채팅 SDK 의 진입점.
// 방 해석/발신 허용 정책/수락 전이/담당자 디렉터리/실시간 동기화를 묶는다.
type ConsultEngine struct {
	config *Config

	ProfileService *service.ProfileService
	RoomService    *service.RoomService
	MsgService     *service.MessageService
	StaffService   *service.StaffService
	AuthService    *service.AuthService

	WsServer *WsServer
	feedHub  *feed.Hub
}

var (
	Instance *ConsultEngine
	once     sync.Once
)

// NewEngine 엔진 생성 (옵션 패턴, 프로세스당 하나)
func NewEngine(opts ...Option) *ConsultEngine {
	once.Do(func() {
		c := &Config{
			TablePrefix: "ac_", // Default
		}
		for _, opt := range opts {
			opt(c)
		}

		Instance = &ConsultEngine{config: c}

		Instance.WsServer = NewWsServer()
		go Instance.WsServer.Run()

		Instance.feedHub = feed.NewHub()

		baseService := &service.Service{
			DB:             c.DB,
			RDB:            c.RDB,
			TablePrefix:    c.TablePrefix,
			Debug:          c.Service.Debug,
			StaffDirectory: c.StaffDirectory,
			// 방 이벤트는 WS 구독자와 feed 구독자 양쪽으로 흘린다
			RoomNotifier: Instance.notifyRoom,
			UserNotifier: Instance.notifyUser,
		}

		Instance.ProfileService = service.NewProfileService(baseService)
		Instance.RoomService = service.NewRoomService(baseService)
		Instance.MsgService = service.NewMessageService(baseService)
		Instance.StaffService = service.NewStaffService(baseService)
		Instance.AuthService = service.NewAuthService(c.RDB, c.DB)

		if err := Instance.AutoMigrate(); err != nil {
			log.Printf("AutoMigrate failed: %v", err)
		}

		Instance.WsServer.onMessage = Instance.handleWsMessage
	})

	return Instance
}

func (c *ConsultEngine) AutoMigrate() error {
	db := c.config.DB
	return db.AutoMigrate(
		&model.Profile{},
		&model.UserRole{},
		&model.Academy{},
		&model.AcademyMember{},
		&model.ChatRoom{},
		&model.ChatMessage{},
	)
}

// notifyRoom 방 이벤트 전파: WS 방 구독자 + feed 구독자
func (c *ConsultEngine) notifyRoom(roomID uint64, evt message.Event) {
	if b, err := json.Marshal(evt); err == nil {
		c.WsServer.BroadcastRoom(roomID, b)
	}
	c.feedHub.Publish(roomID, evt)
}

// notifyUser 사용자 직접 전파 (새 상담 요청 알림 등)
func (c *ConsultEngine) notifyUser(userID uint64, evt message.Event) {
	if b, err := json.Marshal(evt); err == nil {
		c.WsServer.SendToUser(userID, b)
	}
}

// handleWsMessage WS 상행 처리. 발신은 HTTP 발신과 같은 허용 정책을 탄다.
func (c *ConsultEngine) handleWsMessage(client *Client, msg []byte) {
	var req message.Req
	if err := json.Unmarshal(msg, &req); err != nil {
		log.Printf("invalid ws message: %v", err)
		return
	}

	switch req.Type {
	case message.ReqTypeJoin:
		c.WsServer.JoinRoom(client, req.RoomID)

	case message.ReqTypeLeave:
		c.WsServer.LeaveRoom(client, req.RoomID)

	case message.ReqTypeSend:
		sess, err := c.AuthService.LoadSession(context.Background(), client.UserID)
		if err != nil {
			c.sendWsError(client, req.PacketID, service.ErrNoSession.Error())
			return
		}
		if _, err := c.MsgService.SendMessage(sess, req.RoomID, req.Content); err != nil {
			c.sendWsError(client, req.PacketID, err.Error())
		}

	case message.ReqTypeReadAck:
		sess := &service.Session{UserID: client.UserID}
		_ = c.MsgService.MarkRoomRead(sess, req.RoomID)

	default:
		log.Printf("unknown ws message type: %s", req.Type)
	}
}

func (c *ConsultEngine) sendWsError(client *Client, packetID, msg string) {
	b, err := json.Marshal(message.ErrResp{Type: "error", PacketID: packetID, Msg: msg})
	if err != nil {
		return
	}
	select {
	case client.send <- b:
	default:
	}
}

// OpenRoomFeed 방 화면을 연다: 전체 조회 + 일괄 읽음 처리 + 실시간 구독.
// 반환된 피드는 Close 로 구독 해제한다. 반환된 Subscription 은 피드가 소유한다.
func (c *ConsultEngine) OpenRoomFeed(viewerID, roomID uint64) (*feed.RoomFeed, *feed.Subscription, error) {
	info, err := c.RoomService.GetRoomInfo(roomID)
	if err != nil {
		return nil, nil, err
	}

	msgs, err := c.MsgService.GetRoomMessages(roomID)
	if err != nil {
		return nil, nil, err
	}

	// 진입 시 상대 메시지 일괄 읽음 처리 (실패해도 진행)
	_ = c.MsgService.MarkRoomRead(&service.Session{UserID: viewerID}, roomID)

	initial := make([]message.MessagePayload, 0, len(msgs))
	for i := range msgs {
		initial = append(initial, message.MessagePayload{
			ID:        msgs[i].ID,
			RoomID:    msgs[i].RoomID,
			SenderID:  msgs[i].SenderID,
			Type:      msgs[i].Type,
			Content:   msgs[i].Content,
			IsRead:    msgs[i].IsRead,
			CreatedAt: msgs[i].CreatedAt,
		})
	}

	f := feed.NewRoomFeed(roomID, viewerID, info.Status, initial, func(messageID uint64) {
		go c.MsgService.MarkMessageRead(messageID)
	})

	sub := c.feedHub.Subscribe(roomID, 0)
	go f.Run(sub)

	return f, sub, nil
}

// ServeWS 웹소켓 연결 처리. token 검증 후 연결을 승격한다.
func (c *ConsultEngine) ServeWS(w http.ResponseWriter, r *http.Request) {
	uid, _, err := c.AuthService.AuthenticateRequest(r.Context(), r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	c.WsServer.ServeWS(w, r, uid)
}

// GinAuthMiddleware 엔진 내부 AuthService 를 쓰는 Gin 인증 미들웨어.
//
// 사용 예:
//
//	engine := consult_sdk.NewEngine(...)
//	r := gin.Default()
//	api := r.Group("/api/v1", engine.GinAuthMiddleware(nil))
func (c *ConsultEngine) GinAuthMiddleware(opt *middleware.AuthOptions) gin.HandlerFunc {
	return middleware.GinAuthMiddleware(c.AuthService, opt)
}
