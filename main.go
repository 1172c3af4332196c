package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ayo-oluu/sus-game/internal/api"
	"github.com/ayo-oluu/sus-game/internal/service"
	"github.com/ayo-oluu/sus-game/pkg/config"
)

func main() {
	// 載入應用程式配置
	// 從配置文件與環境變數讀取伺服器位址和遊戲預設值
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化服務
	// 包含字庫、房間註冊表、房間服務與 WebSocket 服務
	services := service.NewServices(cfg)

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services, cfg)

	// 啟動伺服器
	log.Printf("Server running on %s", cfg.Server.Address)
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
