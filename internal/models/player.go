package models

// Player 代表房間中的一位玩家
// 玩家由其所屬房間獨佔持有，只有房間會話可以修改這些欄位
type Player struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IsHost        bool   `json:"isHost"`
	IsImpostor    bool   `json:"isImpostor"`
	Score         int    `json:"score"`
	Clue          string `json:"clue"`
	ClueSubmitted bool   `json:"clueSubmitted"`
	VoteFor       string `json:"voteFor"`
	HasVoted      bool   `json:"hasVoted"`
}

// NewPlayer 建立一位新玩家，分數從零開始
func NewPlayer(id, name string, isHost bool) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		IsHost: isHost,
	}
}

// ResetRound 清除玩家的回合狀態，累積分數保留
func (p *Player) ResetRound() {
	p.IsImpostor = false
	p.Clue = ""
	p.ClueSubmitted = false
	p.VoteFor = ""
	p.HasVoted = false
}

// Masked 回傳一份隱藏臥底身份的玩家複本，用於角色揭曉前的廣播
func (p *Player) Masked() Player {
	masked := *p
	masked.IsImpostor = false
	return masked
}
