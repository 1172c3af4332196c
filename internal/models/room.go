package models

// RoomPhase 定義房間遊戲階段的類型
type RoomPhase string

const (
	PhaseLobby       RoomPhase = "lobby"
	PhaseClue        RoomPhase = "clue_phase"
	PhaseVoting      RoomPhase = "voting_phase"
	PhaseScoreUpdate RoomPhase = "score_update"
	PhaseGameOver    RoomPhase = "game_over"
)

// RoomSettings 是建立房間時客戶端可以指定的設定
// 零值欄位會被伺服器端的預設值取代
type RoomSettings struct {
	MaxPlayers      int `json:"maxPlayers"`
	TotalRounds     int `json:"totalRounds"`
	ClueTimeLimit   int `json:"clueTimeLimit"`
	VotingTimeLimit int `json:"votingTimeLimit"`
}

// Room 代表一個遊戲房間
// 房間由其房間會話獨佔持有；秘密詞不會出現在任何快照中，
// 只透過 game-started 的個人化訊息傳給非臥底玩家
type Room struct {
	ID              string
	Code            string
	Players         []*Player // 依加入順序排列
	MaxPlayers      int
	Phase           RoomPhase
	CurrentRound    int
	TotalRounds     int // 0 表示不限回合數
	SecretWord      string
	ClueTimeLimit   int // 毫秒，僅供客戶端倒數顯示
	VotingTimeLimit int // 毫秒，僅供客戶端倒數顯示
}

// RoomView 是傳給客戶端的房間快照，不含秘密詞
type RoomView struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Players         []Player  `json:"players"`
	MaxPlayers      int       `json:"maxPlayers"`
	Phase           RoomPhase `json:"phase"`
	CurrentRound    int       `json:"currentRound"`
	TotalRounds     int       `json:"totalRounds"`
	ClueTimeLimit   int       `json:"clueTimeLimit"`
	VotingTimeLimit int       `json:"votingTimeLimit"`
}

// NewRoom 以指定的設定建立一個空房間，階段為 lobby
func NewRoom(id, code string, settings RoomSettings) *Room {
	return &Room{
		ID:              id,
		Code:            code,
		Players:         make([]*Player, 0, settings.MaxPlayers),
		MaxPlayers:      settings.MaxPlayers,
		Phase:           PhaseLobby,
		TotalRounds:     settings.TotalRounds,
		ClueTimeLimit:   settings.ClueTimeLimit,
		VotingTimeLimit: settings.VotingTimeLimit,
	}
}

// Snapshot 產生房間的客戶端視圖
// revealRoles 為 false 時所有玩家的臥底身份都會被遮蔽
func (r *Room) Snapshot(revealRoles bool) *RoomView {
	players := make([]Player, 0, len(r.Players))
	for _, p := range r.Players {
		if revealRoles {
			players = append(players, *p)
		} else {
			players = append(players, p.Masked())
		}
	}
	return &RoomView{
		ID:              r.ID,
		Code:            r.Code,
		Players:         players,
		MaxPlayers:      r.MaxPlayers,
		Phase:           r.Phase,
		CurrentRound:    r.CurrentRound,
		TotalRounds:     r.TotalRounds,
		ClueTimeLimit:   r.ClueTimeLimit,
		VotingTimeLimit: r.VotingTimeLimit,
	}
}

// FindPlayer 依 ID 搜尋玩家，找不到時回傳 nil
func (r *Room) FindPlayer(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Impostor 回傳目前的臥底玩家，沒有臥底時回傳 nil
func (r *Room) Impostor() *Player {
	for _, p := range r.Players {
		if p.IsImpostor {
			return p
		}
	}
	return nil
}

// RemovePlayer 從名單中移除玩家並保持加入順序
func (r *Room) RemovePlayer(id string) bool {
	for i, p := range r.Players {
		if p.ID == id {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Room) IsFull() bool {
	return len(r.Players) >= r.MaxPlayers
}

// AllCluesSubmitted 檢查是否所有玩家都已提交線索
func (r *Room) AllCluesSubmitted() bool {
	for _, p := range r.Players {
		if !p.ClueSubmitted {
			return false
		}
	}
	return len(r.Players) > 0
}

// AllVoted 檢查是否所有玩家都已投票
func (r *Room) AllVoted() bool {
	for _, p := range r.Players {
		if !p.HasVoted {
			return false
		}
	}
	return len(r.Players) > 0
}
