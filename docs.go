// Package consult_sdk 학원-학부모 상담 채팅 SDK
// @title Academy Consult SDK API
// @version 1.0
// @description 학원 상담 채팅 SDK 의 RESTful API 문서. 계정, 상담방, 메시지, 담당자 모듈 포함.
// @description
// @description ## 비즈니스 상태 코드
// @description | Code | 설명 |
// @description |------|------|
// @description | 0 | 성공 |
// @description | 10001 | 파라미터/검증 오류 |
// @description | 10002 | 세션 없음 |
// @description | 10004 | Token 무효 |
// @description | 10005 | 허용 정책/선행조건 위반 |
// @description | 10006 | 대상 없음 |
// @description | 99999 | 내부 오류 |
// @description
// @description ## HTTP 상태 코드
// @description - **200**: 요청 처리됨 (response.code 로 비즈니스 상태 판별)
// @description - **400**: 요청 본문/파라미터 파싱 실패
// @description - **401**: 인증 실패 (Token 무효)
// @description
// @description ## 응답 형식
// @description ```json
// @description {
// @description   "code": 0,
// @description   "msg": "success",
// @description   "data": {}
// @description }
// @description ```
//
// @contact.name API Support
// @contact.url https://github.com/acadmap/consult-sdk/issues
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package consult_sdk
