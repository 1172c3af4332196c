// Package api 處理 HTTP 請求路由和處理。
//
// 這個包包含了所有的 HTTP 處理器（handlers）。
// 它負責將 HTTP 請求轉換為適當的服務調用，並將結果轉換回 HTTP 響應。
// 遊戲本身的事件透過 WebSocket 端點進出，HTTP 只提供輔助查詢。
package api
