package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/ayo-oluu/sus-game/internal/models"
)

// 每個連線的事件速率上限
const (
	eventsPerSecond = 20
	eventBurst      = 40
)

// Client 代表一個 WebSocket 客戶端連線
type Client struct {
	ID       string                     // 連線識別碼，僅用於日誌
	Conn     *websocket.Conn            // WebSocket 連線
	SendChan chan *models.ServerMessage // 訊息發送通道，用於非同步傳送
	limiter  *rate.Limiter
	done     chan struct{} // 連線結束時關閉，通知 writePump 收尾

	mu       sync.Mutex
	roomCode string
	playerID string
}

// Send 將訊息排入客戶端的發送隊列
// 隊列已滿時直接關閉連線，由讀取端負責清理
func (c *Client) Send(msg *models.ServerMessage) {
	select {
	case c.SendChan <- msg:
	default:
		c.Conn.Close()
	}
}

// Attach 綁定連線的房間身份，由房間會話在加入成功後呼叫
func (c *Client) Attach(roomCode, playerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roomCode = roomCode
	c.playerID = playerID
}

func (c *Client) binding() (roomCode, playerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roomCode, c.playerID
}

// WebSocketService 管理所有的 WebSocket 連線與訊息傳遞
// 訂閱表為 roomCode → playerID → Sender，個人化訊息直接查表送出，
// 不需要掃描全域連線
type WebSocketService struct {
	clients    map[string]map[string]models.Sender
	clientsMux sync.RWMutex
	rooms      *RoomService // 由 NewServices 在建構後設定
}

// NewWebSocketService 建立並初始化新的 WebSocket 服務
func NewWebSocketService() *WebSocketService {
	return &WebSocketService{
		clients: make(map[string]map[string]models.Sender),
	}
}

// HandleConnection 處理新的 WebSocket 連線請求
// 連線中斷時向所屬房間送出 disconnect 事件並清理訂閱
func (s *WebSocketService) HandleConnection(conn *websocket.Conn) {
	client := &Client{
		ID:       uuid.NewString(),
		Conn:     conn,
		SendChan: make(chan *models.ServerMessage, 256),
		limiter:  rate.NewLimiter(rate.Limit(eventsPerSecond), eventBurst),
		done:     make(chan struct{}),
	}

	defer func() {
		roomCode, playerID := client.binding()
		if roomCode != "" {
			s.rooms.Dispatch(models.ClientEvent{
				Type:     models.EventDisconnect,
				RoomCode: roomCode,
				PlayerID: playerID,
			}, client)
		}
		close(client.done)
		conn.Close()
	}()

	go s.writePump(client)
	s.readPump(client)
}

// readPump 持續讀取並路由客戶端事件
func (s *WebSocketService) readPump(client *Client) {
	client.Conn.SetReadLimit(4096)
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			break
		}

		var evt models.ClientEvent
		if err := json.Unmarshal(raw, &evt); err != nil {
			log.Printf("event parse error: %v", err)
			continue
		}

		// 丟棄超出速率上限的事件
		if !client.limiter.Allow() {
			continue
		}

		s.route(client, evt)
	}
}

// route 將事件導向正確的處理路徑
// 未綁定房間的連線只接受 create_room 與 join_room；
// 已綁定的連線一律以伺服器記錄的房間與玩家身份為準
func (s *WebSocketService) route(client *Client, evt models.ClientEvent) {
	roomCode, playerID := client.binding()
	if roomCode == "" {
		switch evt.Type {
		case models.EventCreateRoom:
			s.rooms.CreateRoom(evt.PlayerName, evt.Settings, client)
		case models.EventJoinRoom:
			s.rooms.JoinRoom(evt, client)
		}
		return
	}

	evt.RoomCode = roomCode
	evt.PlayerID = playerID
	s.rooms.Dispatch(evt, client)
}

// writePump 處理向客戶端發送訊息的邏輯
func (s *WebSocketService) writePump(client *Client) {
	// 心跳計時器
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg := <-client.SendChan:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			data, err := json.Marshal(msg)
			if err != nil {
				log.Printf("message encoding error: %v", err)
				continue
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-client.done:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Join 將玩家的連線加入房間的訂閱表
func (s *WebSocketService) Join(roomCode, playerID string, sender models.Sender) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	if s.clients[roomCode] == nil {
		s.clients[roomCode] = make(map[string]models.Sender)
	}
	s.clients[roomCode][playerID] = sender
}

// Leave 將玩家的連線移出房間的訂閱表
func (s *WebSocketService) Leave(roomCode, playerID string) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	if room, ok := s.clients[roomCode]; ok {
		delete(room, playerID)
		if len(room) == 0 {
			delete(s.clients, roomCode)
		}
	}
}

// BroadcastToRoom 向房間內所有訂閱的連線廣播訊息
// 在鎖內收集接收者，送出時不持有鎖
func (s *WebSocketService) BroadcastToRoom(roomCode string, msg *models.ServerMessage) {
	s.clientsMux.RLock()
	receivers := make([]models.Sender, 0, len(s.clients[roomCode]))
	for _, sender := range s.clients[roomCode] {
		receivers = append(receivers, sender)
	}
	s.clientsMux.RUnlock()

	for _, sender := range receivers {
		sender.Send(msg)
	}
}

// SendToPlayer 向房間內指定玩家發送個人化訊息
func (s *WebSocketService) SendToPlayer(roomCode, playerID string, msg *models.ServerMessage) {
	s.clientsMux.RLock()
	sender, ok := s.clients[roomCode][playerID]
	s.clientsMux.RUnlock()

	if ok {
		sender.Send(msg)
	}
}

// DropRoom 移除整個房間的訂閱表，在房間被刪除時呼叫
func (s *WebSocketService) DropRoom(roomCode string) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	delete(s.clients, roomCode)
}

// RoomClientCount 回傳指定房間目前的連線數
func (s *WebSocketService) RoomClientCount(roomCode string) int {
	s.clientsMux.RLock()
	defer s.clientsMux.RUnlock()

	return len(s.clients[roomCode])
}
