package consult_sdk

import (
	"net/http"
	"strconv"

	"github.com/acadmap/consult-sdk/response"
	"github.com/acadmap/consult-sdk/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 메시지 관련 인터페이스 --------------------

type SendMessageReqBody struct {
	RoomID  uint64 `json:"room_id" binding:"required" example:"1"`
	Content string `json:"content" binding:"required" example:"안녕하세요"`
}

// GinHandleSendMessage 메시지 발신
// @Summary 메시지 발신
// @Description 발신 허용 정책(수락 대기 방의 학부모 차단)을 거쳐 저장 후 방 구독자에게 전파한다.
// @Tags 메시지
// @Accept json
// @Produce json
// @Param req body SendMessageReqBody true "메시지"
// @Success 200 {object} response.Response{data=service.MessageDTO} "저장된 메시지"
// @Failure 400 {object} response.Response "파라미터 오류"
// @Security BearerAuth
// @Router /chat/message/send [post]
func (c *ConsultEngine) GinHandleSendMessage(ctx *gin.Context) {
	var req SendMessageReqBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	sess, ok := c.sessionFrom(ctx)
	if !ok {
		return
	}

	msg, err := c.MsgService.SendMessage(sess, req.RoomID, req.Content)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(errCode(err), err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, response.Success(service.ToMessageDTO(msg)))
}

// GinHandleRoomMessages 방 메시지 목록
// @Summary 방 메시지 목록
// @Description 방의 메시지 전체를 생성 시각 오름차순으로 돌려준다.
// @Tags 메시지
// @Produce json
// @Param room_id query uint64 true "방 ID"
// @Success 200 {object} response.Response{data=[]service.MessageDTO} "메시지 목록"
// @Security BearerAuth
// @Router /chat/message/list [get]
func (c *ConsultEngine) GinHandleRoomMessages(ctx *gin.Context) {
	rid, err := strconv.ParseUint(ctx.Query("room_id"), 10, 64)
	if err != nil || rid == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid room_id"))
		return
	}

	if _, ok := c.sessionFrom(ctx); !ok {
		return
	}

	msgs, err := c.MsgService.GetRoomMessages(rid)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(errCode(err), err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(service.ToMessageDTOs(msgs)))
}

type MarkReadReqBody struct {
	RoomID uint64 `json:"room_id" binding:"required" example:"1"`
}

// GinHandleMarkRoomRead 방 읽음 처리
// @Summary 방 읽음 처리
// @Description 방 진입 시 다른 사람 메시지를 일괄 읽음 처리한다.
// @Tags 메시지
// @Accept json
// @Produce json
// @Param req body MarkReadReqBody true "방 ID"
// @Success 200 {object} response.Response "성공"
// @Failure 400 {object} response.Response "파라미터 오류"
// @Security BearerAuth
// @Router /chat/message/read [post]
func (c *ConsultEngine) GinHandleMarkRoomRead(ctx *gin.Context) {
	var req MarkReadReqBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	sess, ok := c.sessionFrom(ctx)
	if !ok {
		return
	}

	if err := c.MsgService.MarkRoomRead(sess, req.RoomID); err != nil {
		ctx.JSON(http.StatusOK, response.Error(errCode(err), err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}
