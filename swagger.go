package consult_sdk

import (
	_ "github.com/acadmap/consult-sdk/docs"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterSwagger Gin 라우터에 Swagger UI 를 등록한다.
// 기본 경로: /swagger/*any
//
// 사용 예:
//
//	r := gin.Default()
//	consult_sdk.RegisterSwagger(r, "/swagger/*any")
//	r.Run(":8080")
//
// 접속: http://localhost:8080/swagger/index.html
func RegisterSwagger(r *gin.Engine, path string) {
	if path == "" {
		path = "/swagger/*any"
	}
	r.GET(path, ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// RegisterSwaggerWithGroup 라우터 그룹에 Swagger UI 를 등록한다.
func RegisterSwaggerWithGroup(g *gin.RouterGroup, path string) {
	if path == "" {
		path = "/swagger/*any"
	}
	g.GET(path, ginSwagger.WrapHandler(swaggerFiles.Handler))
}
