package repository

import (
	"sync"

	"github.com/ayo-oluu/sus-game/internal/models"
	"github.com/ayo-oluu/sus-game/internal/utils"
)

// Session 是一個正在運行的房間會話，由 service 層實作
type Session interface {
	Code() string
	Deliver(env models.Envelope)
}

// RoomRegistry 維護房間代碼到會話的對應
// 它是 code → Session 映射的唯一持有者；所有增刪查都在同一把鎖內完成，
// 任何操作都不會看到半建立或半刪除的項目
type RoomRegistry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewRoomRegistry 建立一個空的房間註冊表
func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		sessions: make(map[string]Session),
	}
}

// Create 產生一個未被使用的房間代碼，呼叫 build 建立會話並註冊
// 代碼產生、碰撞檢查與註冊都在鎖內一次完成
func (r *RoomRegistry) Create(build func(code string) Session) Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := utils.RoomCode()
	for {
		if _, exists := r.sessions[code]; !exists {
			break
		}
		code = utils.RoomCode()
	}

	session := build(code)
	r.sessions[code] = session
	return session
}

// Get 依房間代碼查詢會話
func (r *RoomRegistry) Get(code string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[code]
	return session, ok
}

// Remove 從註冊表移除房間，之後對該代碼的查詢都會失敗
func (r *RoomRegistry) Remove(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, code)
}

// Count 回傳目前註冊的房間數量
func (r *RoomRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
