package models

// 客戶端事件類型
const (
	EventCreateRoom    = "create_room"
	EventJoinRoom      = "join_room"
	EventStartGame     = "start_game"
	EventSubmitClue    = "submit_clue"
	EventEditClue      = "edit_clue"
	EventSubmitVote    = "submit_vote"
	EventStartNewRound = "start_new_round"
	EventImpostorGuess = "impostor_guess"
	EventDisconnect    = "disconnect" // 由伺服器在連線中斷時產生
)

// 伺服器廣播事件名稱
const (
	MsgRoomCreated         = "room-created"
	MsgPlayerJoined        = "player-joined"
	MsgJoinError           = "join-error"
	MsgGameStarted         = "game-started"
	MsgClueSubmitted       = "clue-submitted"
	MsgClueUpdated         = "clue-updated"
	MsgAllCluesSubmitted   = "all-clues-submitted"
	MsgVoteSubmitted       = "vote-submitted"
	MsgRoundComplete       = "round-complete"
	MsgGameOver            = "game-over"
	MsgNewRoundStarted     = "new-round-started"
	MsgPlayerLeft          = "player-left"
	MsgImpostorGuessResult = "impostor-guess-result"
)

// ClientEvent 是客戶端送入的統一事件結構
// 與房間相關的事件由房間會話逐一處理
type ClientEvent struct {
	Type       string        `json:"type"`
	RoomCode   string        `json:"roomCode,omitempty"`
	PlayerID   string        `json:"playerId,omitempty"`
	PlayerName string        `json:"playerName,omitempty"`
	Clue       string        `json:"clue,omitempty"`
	VoteForID  string        `json:"voteForId,omitempty"`
	Guess      string        `json:"guess,omitempty"`
	Settings   *RoomSettings `json:"settings,omitempty"`
}

// ServerMessage 是伺服器送出的統一訊息結構
type ServerMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Sender 是一條可以送出訊息的客戶端連線
// Attach 在玩家成功加入房間後由房間會話呼叫，綁定連線的房間身份
type Sender interface {
	Send(msg *ServerMessage)
	Attach(roomCode, playerID string)
}

// Envelope 將客戶端事件與其來源連線包裝後送入房間信箱
type Envelope struct {
	Event ClientEvent
	From  Sender
}

// RoomCreatedData 是 room-created 的負載
type RoomCreatedData struct {
	Room   *RoomView `json:"room"`
	Player Player    `json:"player"`
}

// PlayerJoinedData 是 player-joined 的負載
type PlayerJoinedData struct {
	Player Player    `json:"player"`
	Room   *RoomView `json:"room"`
}

// JoinErrorData 是 join-error 的負載，只會送給嘗試加入的玩家
type JoinErrorData struct {
	Message string `json:"message"`
}

// RoomUpdateData 是一般房間狀態廣播的負載
type RoomUpdateData struct {
	Room *RoomView `json:"room"`
}

// GameStartData 是 game-started 的個人化負載
// 秘密詞只會出現在非臥底玩家的訊息中，臥底收到 null
type GameStartData struct {
	Room       *RoomView `json:"room"`
	SecretWord *string   `json:"secretWord"`
	IsImpostor bool      `json:"isImpostor"`
}

// GuessResultData 是 impostor-guess-result 的負載
type GuessResultData struct {
	Room    *RoomView `json:"room"`
	Correct bool      `json:"correct"`
	Guess   string    `json:"guess"`
}
