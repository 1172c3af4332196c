package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/ayo-oluu/sus-game/internal/repository"
)

// RoomHandler 處理與遊戲房間相關的 HTTP 查詢
type RoomHandler struct {
	registry    *repository.RoomRegistry
	joinBaseURL string
}

// NewRoomHandler 創建一個新的 RoomHandler 實例
func NewRoomHandler(registry *repository.RoomRegistry, joinBaseURL string) *RoomHandler {
	return &RoomHandler{
		registry:    registry,
		joinBaseURL: joinBaseURL,
	}
}

// GetRoom 查詢房間是否存在，供加入畫面在連線前檢查代碼
func (h *RoomHandler) GetRoom(c *gin.Context) {
	code := c.Param("code")

	if _, ok := h.registry.Get(code); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": code})
}

// Stats 回傳目前活躍房間數
func (h *RoomHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activeRooms": h.registry.Count()})
}

// JoinQR 產生加入連結的 QR code 圖片
func (h *RoomHandler) JoinQR(c *gin.Context) {
	code := c.Param("code")

	if _, ok := h.registry.Get(code); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	joinURL := fmt.Sprintf("%s/join?code=%s", h.joinBaseURL, code)
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
