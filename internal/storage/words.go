package storage

import (
	"encoding/json"
	"log"
	"math/rand/v2"
	"os"
)

// fallbackWords 在字庫檔案缺失或損壞時使用
var fallbackWords = []string{"pizza", "beach", "game", "music", "food"}

type wordFile struct {
	Words []string `json:"words"`
}

// WordStore 提供秘密詞的來源，載入後不再變動
type WordStore struct {
	words []string
}

// NewWordStore 從 JSON 檔案載入候選秘密詞
// 檔案無法讀取或內容無效時退回內建的字表
func NewWordStore(path string) *WordStore {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read word list %s: %v, using fallback words", path, err)
		return &WordStore{words: fallbackWords}
	}

	var parsed wordFile
	if err := json.Unmarshal(data, &parsed); err != nil || len(parsed.Words) == 0 {
		log.Printf("Invalid word list %s, using fallback words", path)
		return &WordStore{words: fallbackWords}
	}

	log.Printf("Loaded %d words for the game", len(parsed.Words))
	return &WordStore{words: parsed.Words}
}

// NewStaticWordStore 以固定的字表建立 WordStore
func NewStaticWordStore(words []string) *WordStore {
	return &WordStore{words: words}
}

// Random 均勻隨機抽出一個秘密詞，每回合獨立且允許重複
func (s *WordStore) Random() string {
	return s.words[rand.IntN(len(s.words))]
}

// Count 回傳候選字數量
func (s *WordStore) Count() int {
	return len(s.words)
}
