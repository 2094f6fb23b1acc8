package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// Response 통합 응답 구조
type Response struct {
	Code int         `json:"code" example:"0"`                    // business code
	Msg  string      `json:"msg" example:"success"`               // 사용자 노출 메시지
	Data interface{} `json:"data,omitempty" swaggertype:"object"` // 응답 데이터
}

// business code 정의
// - 미들웨어 계층: HTTP 상태 코드 (401/403/500)
// - 비즈니스 계층: HTTP 200 + business code
const (
	CodeSuccess        = 0     // 성공
	CodeParamError     = 10001 // 파라미터/검증 오류 (내용 길이 등)
	CodeNoSession      = 10002 // 세션 없음
	CodeTokenInvalid   = 10004 // 토큰 무효/만료
	CodePermissionDeny = 10005 // 허용 정책/선행조건 위반 (수락 대기, 담당자 아님 등)
	CodeNotFound       = 10006 // 대상 없음 (방 등)
	CodeInternalError  = 99999 // 내부 오류
)

// Success 성공 응답
func Success(data interface{}, args ...string) *Response {
	msg := "success"
	for _, arg := range args {
		msg = arg
	}
	return &Response{
		Code: CodeSuccess,
		Msg:  msg,
		Data: data,
	}
}

// Error 오류 응답
func Error(code int, msg string) *Response {
	return &Response{
		Code: code,
		Msg:  msg,
	}
}

// WriteJSON JSON 응답 (비즈니스 계층은 HTTP 200 고정)
func (r *Response) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(r); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// WriteJSONWithStatus HTTP 상태 코드 지정 응답 (미들웨어용, 401 등)
func (r *Response) WriteJSONWithStatus(w http.ResponseWriter, httpStatus int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	if err := json.NewEncoder(w).Encode(r); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
