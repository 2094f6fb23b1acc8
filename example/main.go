package main

import (
	"log"

	consult_sdk "github.com/acadmap/consult-sdk"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// 1. DB 연결
	dsn := "root:password@tcp(127.0.0.1:3306)/consult_db?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("DB 연결 실패:", err)
	}

	// 2. Redis 연결 (토큰 인증용)
	rdb := redis.NewClient(&redis.Options{
		Addr: "127.0.0.1:6379",
	})

	// 3. Consult Engine 초기화 (싱글턴, 프로세스당 한 번)
	engine := consult_sdk.NewEngine(
		consult_sdk.WithDB(db),
		consult_sdk.WithRDB(rdb),
		consult_sdk.WithTablePrefix("ac_"),
	)

	// 4. Gin 라우터
	r := gin.Default()

	// CORS (필요 시)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Swagger UI
	consult_sdk.RegisterSwagger(r, "/swagger/*any")

	// 5. WebSocket 라우트
	// 클라이언트 연결: ws://localhost:8080/ws?token=xxx
	r.GET("/ws", func(c *gin.Context) {
		engine.ServeWS(c.Writer, c.Request)
	})

	// 6. API 라우트 그룹
	api := r.Group("/api/v1")

	// 계정 모듈 (가입/로그인은 토큰 불필요)
	authAPI := api.Group("/auth")
	{
		authAPI.POST("/register", engine.GinHandleRegister)
		authAPI.POST("/login", engine.GinHandleLogin)
	}
	authedAuthAPI := api.Group("/auth", engine.GinAuthMiddleware(nil))
	{
		authedAuthAPI.POST("/logout", engine.GinHandleLogout)
		authedAuthAPI.GET("/me", engine.GinHandleMe)
	}

	// 상담 모듈 (토큰 필요)
	chatAPI := api.Group("/chat", engine.GinAuthMiddleware(nil))
	{
		chatAPI.POST("/room/resolve", engine.GinHandleResolveRoom)
		chatAPI.GET("/rooms", engine.GinHandleListRooms)
		chatAPI.GET("/room/info", engine.GinHandleRoomInfo)
		chatAPI.POST("/room/accept", engine.GinHandleAcceptChatRequest)

		chatAPI.POST("/message/send", engine.GinHandleSendMessage)
		chatAPI.GET("/message/list", engine.GinHandleRoomMessages)
		chatAPI.POST("/message/read", engine.GinHandleMarkRoomRead)

		chatAPI.GET("/staff/list", engine.GinHandleAcademyStaff)
	}

	log.Println("서버 시작: http://localhost:8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatal("서버 실행 실패:", err)
	}
}
