package consult_sdk

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/acadmap/consult-sdk/middleware"
	"github.com/acadmap/consult-sdk/response"
	"github.com/acadmap/consult-sdk/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 상담 채팅방(Room) 관련 인터페이스 --------------------

// sessionFrom 미들웨어가 기록한 user_id 로 세션을 적재한다.
// 권한 필요 연산마다 매번 해석한다 (요청 사이에 세션이 바뀔 수 있음).
func (c *ConsultEngine) sessionFrom(ctx *gin.Context) (*service.Session, bool) {
	uid, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "user_id not found"))
		return nil, false
	}
	sess, err := c.AuthService.LoadSession(ctx.Request.Context(), uid.(uint64))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeNoSession, service.ErrNoSession.Error()))
		return nil, false
	}
	return sess, true
}

// errCode 서비스 sentinel 에러 -> business code
func errCode(err error) int {
	switch {
	case errors.Is(err, service.ErrNoSession):
		return response.CodeNoSession
	case errors.Is(err, service.ErrEmptyContent), errors.Is(err, service.ErrContentTooLong):
		return response.CodeParamError
	case errors.Is(err, service.ErrAwaitAcceptance),
		errors.Is(err, service.ErrNotPending),
		errors.Is(err, service.ErrNotAssignedStaff):
		return response.CodePermissionDeny
	case errors.Is(err, service.ErrRoomNotFound):
		return response.CodeNotFound
	default:
		return response.CodeInternalError
	}
}

type ResolveRoomReqBody struct {
	AcademyID         uint64  `json:"academy_id" binding:"required" example:"1"`
	StaffUserID       *uint64 `json:"staff_user_id" example:"7"` // 생략 시 학원 대표 문의방
	RequireAcceptance bool    `json:"require_acceptance" example:"true"`
}

// GinHandleResolveRoom 채팅방 해석/생성
// @Summary 채팅방 해석/생성
// @Description (학원, 학부모, 담당자-또는-생략) 키로 방을 찾고 없으면 생성. require_acceptance 면 pending 으로 생성하고 chat_request 메시지를 합성한다.
// @Tags 상담방
// @Accept json
// @Produce json
// @Param req body ResolveRoomReqBody true "방 키"
// @Success 200 {object} response.Response "방 정보"
// @Failure 400 {object} response.Response "파라미터 오류"
// @Security BearerAuth
// @Router /chat/room/resolve [post]
func (c *ConsultEngine) GinHandleResolveRoom(ctx *gin.Context) {
	var req ResolveRoomReqBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	sess, ok := c.sessionFrom(ctx)
	if !ok {
		return
	}

	room, err := c.RoomService.GetOrCreateRoom(sess, req.AcademyID, req.StaffUserID, req.RequireAcceptance)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(errCode(err), err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, response.Success(map[string]any{
		"room_id":  room.ID,
		"room_uid": room.RoomUID,
		"status":   room.Status,
	}))
}

// GinHandleListRooms 상담방 목록
// @Summary 상담방 목록
// @Description 최근 활동순 방 목록. as_staff=1 이면 담당자 시점 (학부모 정보 포함). 방별 마지막 메시지/미확인 수 포함.
// @Tags 상담방
// @Produce json
// @Param as_staff query bool false "담당자 시점 여부"
// @Success 200 {object} response.Response{data=[]service.RoomListItemDTO} "방 목록"
// @Security BearerAuth
// @Router /chat/rooms [get]
func (c *ConsultEngine) GinHandleListRooms(ctx *gin.Context) {
	sess, ok := c.sessionFrom(ctx)
	if !ok {
		return
	}

	asStaff := ctx.Query("as_staff") == "1" || ctx.Query("as_staff") == "true"
	if asStaff {
		// 담당자 시점은 운영자 역할 확인
		isAdmin, err := c.ProfileService.IsAdmin(sess.UserID)
		if err != nil || !isAdmin {
			ctx.JSON(http.StatusOK, response.Error(response.CodePermissionDeny, "권한이 없습니다"))
			return
		}
	}

	list, err := c.RoomService.ListRooms(sess, asStaff)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(errCode(err), err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(list))
}

// GinHandleRoomInfo 방 정보
// @Summary 방 정보
// @Description 방 헤더/상태 정보 (학원 포함)
// @Tags 상담방
// @Produce json
// @Param room_id query uint64 true "방 ID"
// @Success 200 {object} response.Response{data=service.RoomInfoDTO} "방 정보"
// @Security BearerAuth
// @Router /chat/room/info [get]
func (c *ConsultEngine) GinHandleRoomInfo(ctx *gin.Context) {
	rid, err := strconv.ParseUint(ctx.Query("room_id"), 10, 64)
	if err != nil || rid == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid room_id"))
		return
	}

	if _, ok := c.sessionFrom(ctx); !ok {
		return
	}

	info, err := c.RoomService.GetRoomInfo(rid)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(errCode(err), err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(info))
}

type AcceptReqBody struct {
	RoomID uint64 `json:"room_id" binding:"required" example:"1"`
}

// GinHandleAcceptChatRequest 상담 요청 수락
// @Summary 상담 요청 수락
// @Description pending -> active 전이. 배정 담당자만, 정확히 한 번. 이미 active 면 실패한다.
// @Tags 상담방
// @Accept json
// @Produce json
// @Param req body AcceptReqBody true "방 ID"
// @Success 200 {object} response.Response "성공"
// @Failure 400 {object} response.Response "파라미터 오류"
// @Security BearerAuth
// @Router /chat/room/accept [post]
func (c *ConsultEngine) GinHandleAcceptChatRequest(ctx *gin.Context) {
	var req AcceptReqBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	sess, ok := c.sessionFrom(ctx)
	if !ok {
		return
	}

	if err := c.MsgService.AcceptChatRequest(sess, req.RoomID); err != nil {
		ctx.JSON(http.StatusOK, response.Error(errCode(err), err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(map[string]any{"message": "채팅 상담을 수락했습니다. 이제 메시지를 주고받을 수 있습니다."}))
}
