package service

import (
	"log"

	"github.com/ayo-oluu/sus-game/internal/models"
	"github.com/ayo-oluu/sus-game/internal/repository"
	"github.com/ayo-oluu/sus-game/internal/storage"
	"github.com/ayo-oluu/sus-game/internal/utils"
)

// RoomService 負責房間的建立與事件分派
type RoomService struct {
	registry   *repository.RoomRegistry
	words      *storage.WordStore
	hub        Broadcaster
	defaults   models.RoomSettings
	minPlayers int
}

// NewRoomService 建立 RoomService
// defaults 是客戶端未指定設定時使用的預設值
func NewRoomService(registry *repository.RoomRegistry, words *storage.WordStore, hub Broadcaster, defaults models.RoomSettings, minPlayers int) *RoomService {
	return &RoomService{
		registry:   registry,
		words:      words,
		hub:        hub,
		defaults:   defaults,
		minPlayers: minPlayers,
	}
}

// CreateRoom 建立新房間與房主玩家並啟動房間會話
// 代碼產生與註冊在註冊表的鎖內完成，不會出現重複代碼
func (s *RoomService) CreateRoom(playerName string, settings *models.RoomSettings, sender models.Sender) {
	host := models.NewPlayer(utils.PlayerID(), playerName, true)
	merged := s.mergeSettings(settings)

	var session *RoomSession
	var room *models.Room
	s.registry.Create(func(code string) repository.Session {
		room = models.NewRoom(utils.RoomID(), code, merged)
		room.Players = append(room.Players, host)
		session = NewRoomSession(room, s.registry, s.words, s.hub, s.minPlayers)
		return session
	})

	sender.Attach(room.Code, host.ID)
	s.hub.Join(room.Code, host.ID, sender)
	go session.Run()

	sender.Send(&models.ServerMessage{
		Event: models.MsgRoomCreated,
		Data: models.RoomCreatedData{
			Room:   room.Snapshot(false),
			Player: *host,
		},
	})

	log.Printf("room %s created by %s", room.Code, playerName)
}

// JoinRoom 解析房間代碼並將加入請求交給房間會話處理
// 名單的實際變更發生在會話的 goroutine 內，避免與階段檢查競爭
func (s *RoomService) JoinRoom(evt models.ClientEvent, sender models.Sender) {
	session, ok := s.registry.Get(evt.RoomCode)
	if !ok {
		sender.Send(&models.ServerMessage{
			Event: models.MsgJoinError,
			Data:  models.JoinErrorData{Message: "Room not found"},
		})
		return
	}

	session.Deliver(models.Envelope{Event: evt, From: sender})
}

// Dispatch 將房間內事件轉交給對應的房間會話
// 找不到房間的事件被靜默丟棄
func (s *RoomService) Dispatch(evt models.ClientEvent, sender models.Sender) {
	session, ok := s.registry.Get(evt.RoomCode)
	if !ok {
		return
	}
	session.Deliver(models.Envelope{Event: evt, From: sender})
}

func (s *RoomService) mergeSettings(settings *models.RoomSettings) models.RoomSettings {
	merged := s.defaults
	if settings == nil {
		return merged
	}
	if settings.MaxPlayers > 0 {
		merged.MaxPlayers = settings.MaxPlayers
	}
	if settings.TotalRounds > 0 {
		merged.TotalRounds = settings.TotalRounds
	}
	if settings.ClueTimeLimit > 0 {
		merged.ClueTimeLimit = settings.ClueTimeLimit
	}
	if settings.VotingTimeLimit > 0 {
		merged.VotingTimeLimit = settings.VotingTimeLimit
	}
	return merged
}
