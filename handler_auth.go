package consult_sdk

import (
	"errors"
	"net/http"

	"github.com/acadmap/consult-sdk/middleware"
	"github.com/acadmap/consult-sdk/response"
	"github.com/acadmap/consult-sdk/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 계정/인증 관련 인터페이스 --------------------

type RegisterReqBody struct {
	UserName string `json:"user_name" example:"홍길동"`
	Phone    string `json:"phone" example:"01012345678"`
	Email    string `json:"email" example:"parent@example.com"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// GinHandleRegister 회원 가입
// @Summary 회원 가입
// @Description 휴대폰 또는 이메일 기반 가입. 기본 역할은 학부모.
// @Tags 계정
// @Accept json
// @Produce json
// @Param req body RegisterReqBody true "가입 정보"
// @Success 200 {object} response.Response "가입된 사용자"
// @Failure 400 {object} response.Response "파라미터 오류"
// @Router /auth/register [post]
func (c *ConsultEngine) GinHandleRegister(ctx *gin.Context) {
	var req RegisterReqBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	p, err := c.ProfileService.Register(req.UserName, req.Phone, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAccountExists) || errors.Is(err, service.ErrLoginFailed) {
			ctx.JSON(http.StatusOK, response.Error(response.CodeParamError, err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, response.Success(map[string]any{
		"user_id":   p.ID,
		"uid":       p.UID,
		"user_name": p.UserName,
	}))
}

type LoginReqBody struct {
	Account  string `json:"account" binding:"required" example:"01012345678"` // 휴대폰 또는 이메일
	Password string `json:"password" binding:"required" example:"secret"`
}

// GinHandleLogin 로그인
// @Summary 로그인
// @Description 휴대폰/이메일 + 비밀번호로 로그인하고 Bearer 토큰을 발급한다.
// @Tags 계정
// @Accept json
// @Produce json
// @Param req body LoginReqBody true "로그인 정보"
// @Success 200 {object} response.Response "token 포함"
// @Failure 400 {object} response.Response "파라미터 오류"
// @Router /auth/login [post]
func (c *ConsultEngine) GinHandleLogin(ctx *gin.Context) {
	var req LoginReqBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	p, token, err := c.ProfileService.Login(ctx.Request.Context(), req.Account, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginFailed) {
			ctx.JSON(http.StatusOK, response.Error(response.CodeParamError, err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, response.Success(map[string]any{
		"user_id":   p.ID,
		"user_name": p.UserName,
		"token":     token,
	}))
}

// GinHandleLogout 로그아웃
// @Summary 로그아웃
// @Description 현재 토큰을 무효화한다.
// @Tags 계정
// @Produce json
// @Success 200 {object} response.Response "성공"
// @Security BearerAuth
// @Router /auth/logout [post]
func (c *ConsultEngine) GinHandleLogout(ctx *gin.Context) {
	token, exists := ctx.Get(middleware.ContextTokenKey)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeTokenInvalid, "missing token"))
		return
	}
	if err := c.AuthService.RevokeToken(ctx.Request.Context(), token.(string)); err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// GinHandleMe 내 프로필
// @Summary 내 프로필
// @Description 현재 세션 사용자의 프로필을 돌려준다.
// @Tags 계정
// @Produce json
// @Success 200 {object} response.Response "프로필"
// @Security BearerAuth
// @Router /auth/me [get]
func (c *ConsultEngine) GinHandleMe(ctx *gin.Context) {
	sess, ok := c.sessionFrom(ctx)
	if !ok {
		return
	}

	p, err := c.ProfileService.GetProfile(sess.UserID)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeNotFound, err.Error()))
		return
	}

	isAdmin, _ := c.ProfileService.IsAdmin(sess.UserID)
	ctx.JSON(http.StatusOK, response.Success(map[string]any{
		"user_id":      p.ID,
		"uid":          p.UID,
		"user_name":    p.UserName,
		"display_name": sess.DisplayName(),
		"phone":        p.Phone,
		"email":        p.Email,
		"is_admin":     isAdmin,
	}))
}
