package service

import (
	"github.com/ayo-oluu/sus-game/internal/models"
	"github.com/ayo-oluu/sus-game/internal/repository"
	"github.com/ayo-oluu/sus-game/internal/storage"
	"github.com/ayo-oluu/sus-game/pkg/config"
)

// Services 聚合所有服務，供路由層使用
type Services struct {
	Room      *RoomService
	WebSocket *WebSocketService
	Registry  *repository.RoomRegistry
	Words     *storage.WordStore
}

// NewServices 依配置建立並串接所有服務
func NewServices(cfg *config.Config) *Services {
	registry := repository.NewRoomRegistry()
	words := storage.NewWordStore(cfg.Game.WordsPath)
	hub := NewWebSocketService()

	defaults := models.RoomSettings{
		MaxPlayers:      cfg.Game.MaxPlayers,
		TotalRounds:     cfg.Game.TotalRounds,
		ClueTimeLimit:   cfg.Game.ClueTimeLimit,
		VotingTimeLimit: cfg.Game.VotingTimeLimit,
	}
	roomService := NewRoomService(registry, words, hub, defaults, cfg.Game.MinPlayers)

	// hub 與 roomService 互相依賴：hub 收事件交給 roomService，
	// roomService 經由 hub 廣播，因此在建構後補上反向引用
	hub.rooms = roomService

	return &Services{
		Room:      roomService,
		WebSocket: hub,
		Registry:  registry,
		Words:     words,
	}
}
