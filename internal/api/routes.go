package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ayo-oluu/sus-game/internal/api/handlers"
	"github.com/ayo-oluu/sus-game/internal/middleware"
	"github.com/ayo-oluu/sus-game/internal/service"
	"github.com/ayo-oluu/sus-game/pkg/config"
)

func SetupRoutes(r *gin.Engine, services *service.Services, cfg *config.Config) {
	// 初始化 handlers
	roomHandler := handlers.NewRoomHandler(services.Registry, cfg.Server.JoinBaseURL)
	wsHandler := handlers.NewWebSocketHandler(services.WebSocket)

	r.Use(middleware.CORSMiddleware())

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "not found",
		})
	})

	// 基本的健康檢查
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	api.GET("/stats", roomHandler.Stats)

	// 房間相關查詢
	rooms := api.Group("/rooms")
	{
		rooms.GET("/:code", roomHandler.GetRoom)   // 房間存在性查詢
		rooms.GET("/:code/qr", roomHandler.JoinQR) // 加入連結的 QR code
	}

	// WebSocket 連接點，所有遊戲事件由此進出
	api.GET("/ws", wsHandler.HandleWebSocket)
}
