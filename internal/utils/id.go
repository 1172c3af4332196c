package utils

import (
	"math/rand/v2"
	"strconv"
)

// 玩家與房間內部識別碼使用的字元集
const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func token(length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(buf)
}

// PlayerID 產生一個 9 位的隨機英數字玩家識別碼
// 只需要在行程存活期間內不重複，不提供密碼學等級的保證
func PlayerID() string {
	return token(9)
}

// RoomID 產生房間的內部識別碼，與房間代碼不同
func RoomID() string {
	return token(9)
}

// RoomCode 產生一個 6 位數字的房間代碼
// 重複檢查由房間註冊表負責
func RoomCode() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}
