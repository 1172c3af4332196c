package service

import (
	"sync"

	"github.com/ayo-oluu/sus-game/internal/models"
)

// fakeMessage 記錄一次送出的訊息，target 為空字串代表房間廣播
type fakeMessage struct {
	target string
	msg    *models.ServerMessage
}

// fakeHub 是測試用的 Broadcaster，記錄所有送出的訊息
type fakeHub struct {
	mu      sync.Mutex
	sent    []fakeMessage
	joined  map[string][]string
	left    map[string][]string
	dropped []string
}

func newFakeHub() *fakeHub {
	return &fakeHub{
		joined: make(map[string][]string),
		left:   make(map[string][]string),
	}
}

func (h *fakeHub) Join(roomCode, playerID string, sender models.Sender) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.joined[roomCode] = append(h.joined[roomCode], playerID)
}

func (h *fakeHub) Leave(roomCode, playerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.left[roomCode] = append(h.left[roomCode], playerID)
}

func (h *fakeHub) BroadcastToRoom(roomCode string, msg *models.ServerMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sent = append(h.sent, fakeMessage{msg: msg})
}

func (h *fakeHub) SendToPlayer(roomCode, playerID string, msg *models.ServerMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sent = append(h.sent, fakeMessage{target: playerID, msg: msg})
}

func (h *fakeHub) DropRoom(roomCode string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropped = append(h.dropped, roomCode)
}

// count 回傳指定事件被送出的次數
func (h *fakeHub) count(event string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, m := range h.sent {
		if m.msg.Event == event {
			n++
		}
	}
	return n
}

// last 回傳指定事件最後一次送出的訊息，沒有時回傳 nil
func (h *fakeHub) last(event string) *models.ServerMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(h.sent) - 1; i >= 0; i-- {
		if h.sent[i].msg.Event == event {
			return h.sent[i].msg
		}
	}
	return nil
}

// sentTo 回傳送給指定玩家的個人化訊息
func (h *fakeHub) sentTo(playerID string) []*models.ServerMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	var msgs []*models.ServerMessage
	for _, m := range h.sent {
		if m.target == playerID {
			msgs = append(msgs, m.msg)
		}
	}
	return msgs
}

func (h *fakeHub) total() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sent)
}

// fakeSender 是測試用的客戶端連線
type fakeSender struct {
	mu       sync.Mutex
	msgs     []*models.ServerMessage
	roomCode string
	playerID string
}

func (f *fakeSender) Send(msg *models.ServerMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
}

func (f *fakeSender) Attach(roomCode, playerID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roomCode = roomCode
	f.playerID = playerID
}

func (f *fakeSender) binding() (string, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roomCode, f.playerID
}

// received 回傳指定事件最後一次收到的訊息，沒有時回傳 nil
func (f *fakeSender) received(event string) *models.ServerMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.msgs) - 1; i >= 0; i-- {
		if f.msgs[i].Event == event {
			return f.msgs[i]
		}
	}
	return nil
}
