package models

// RoundResult 是一個投票回合的結算結果
// 只在廣播時產生，不會保存在房間狀態中
type RoundResult struct {
	ImpostorID       string         `json:"impostorId"`
	VotesForImpostor int            `json:"votesForImpostor"`
	TotalVotes       int            `json:"totalVotes"`
	ImpostorEscaped  bool           `json:"impostorEscaped"`
	RoundPoints      map[string]int `json:"roundPoints"`
}

// RoundCompleteData 是 round-complete 的負載，此時臥底身份已揭曉
type RoundCompleteData struct {
	Room *RoomView `json:"room"`
	RoundResult
}

// GameOverData 是 game-over 的負載
// GameOverReason 為 "score"（有人達到分數門檻）或 "rounds"（回合數用盡）
type GameOverData struct {
	Room           *RoomView `json:"room"`
	Winner         string    `json:"winner"`
	GameOverReason string    `json:"gameOverReason"`
	RoundResult
}
