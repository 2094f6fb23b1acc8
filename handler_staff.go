package consult_sdk

import (
	"net/http"
	"strconv"

	"github.com/acadmap/consult-sdk/response"
	"github.com/gin-gonic/gin"
)

// -------------------- 담당자 디렉터리 인터페이스 --------------------

// GinHandleAcademyStaff 학원 담당자 목록
// @Summary 학원 담당자 목록
// @Description 채팅 상담 가능 담당자를 역할 우선순위(원장, 부원장, 강사, 관리자 순)로 돌려준다.
// @Tags 담당자
// @Produce json
// @Param academy_id query uint64 true "학원 ID"
// @Success 200 {object} response.Response{data=[]service.StaffItem} "담당자 목록"
// @Security BearerAuth
// @Router /chat/staff/list [get]
func (c *ConsultEngine) GinHandleAcademyStaff(ctx *gin.Context) {
	aid, err := strconv.ParseUint(ctx.Query("academy_id"), 10, 64)
	if err != nil || aid == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid academy_id"))
		return
	}

	if _, ok := c.sessionFrom(ctx); !ok {
		return
	}

	// 디렉터리 실패는 빈 목록으로 응답한다 (상담 진입을 막지 않음)
	items, _ := c.StaffService.GetAcademyStaff(ctx.Request.Context(), aid)
	ctx.JSON(http.StatusOK, response.Success(items))
}
