package service

import (
	"log"
	"math/rand/v2"
	"strings"

	"github.com/ayo-oluu/sus-game/internal/models"
	"github.com/ayo-oluu/sus-game/internal/repository"
	"github.com/ayo-oluu/sus-game/internal/storage"
	"github.com/ayo-oluu/sus-game/internal/utils"
)

// 每個房間的事件信箱容量
const mailboxSize = 256

// Broadcaster 是房間會話對外發送訊息的出口
// 由 WebSocketService 實作；測試時可替換為記錄用的假實作
type Broadcaster interface {
	Join(roomCode, playerID string, sender models.Sender)
	Leave(roomCode, playerID string)
	BroadcastToRoom(roomCode string, msg *models.ServerMessage)
	SendToPlayer(roomCode, playerID string, msg *models.ServerMessage)
	DropRoom(roomCode string)
}

// RoomSession 是單一房間的權威會話
// 一條長駐的 goroutine 依到達順序逐一處理信箱中的事件，
// 同一房間的事件絕不並行，不同房間互不阻塞
type RoomSession struct {
	room       *models.Room
	registry   *repository.RoomRegistry
	words      *storage.WordStore
	hub        Broadcaster
	minPlayers int
	mailbox    chan models.Envelope
	done       chan struct{}
}

// NewRoomSession 建立房間會話，呼叫端負責啟動 Run
func NewRoomSession(room *models.Room, registry *repository.RoomRegistry, words *storage.WordStore, hub Broadcaster, minPlayers int) *RoomSession {
	return &RoomSession{
		room:       room,
		registry:   registry,
		words:      words,
		hub:        hub,
		minPlayers: minPlayers,
		mailbox:    make(chan models.Envelope, mailboxSize),
		done:       make(chan struct{}),
	}
}

// Code 回傳房間代碼
func (s *RoomSession) Code() string {
	return s.room.Code
}

// Deliver 將事件排入信箱；事件一旦被接受就必定會被完整處理
// 房間已結束時事件被丟棄
func (s *RoomSession) Deliver(env models.Envelope) {
	select {
	case s.mailbox <- env:
	case <-s.done:
	}
}

// Run 是房間的事件迴圈，房間被刪除後結束
func (s *RoomSession) Run() {
	for {
		select {
		case env := <-s.mailbox:
			s.handle(env)
		case <-s.done:
			return
		}
	}
}

func (s *RoomSession) handle(env models.Envelope) {
	switch env.Event.Type {
	case models.EventJoinRoom:
		s.handleJoin(env)
	case models.EventStartGame:
		s.handleStartGame()
	case models.EventSubmitClue:
		s.handleSubmitClue(env.Event)
	case models.EventEditClue:
		s.handleEditClue(env.Event)
	case models.EventSubmitVote:
		s.handleSubmitVote(env.Event)
	case models.EventStartNewRound:
		s.handleStartNewRound()
	case models.EventImpostorGuess:
		s.handleImpostorGuess(env.Event)
	case models.EventDisconnect:
		s.handleDisconnect(env.Event)
	}
}

// handleJoin 將新玩家加入名單並訂閱房間廣播
func (s *RoomSession) handleJoin(env models.Envelope) {
	if env.From == nil {
		return
	}
	if s.room.IsFull() {
		env.From.Send(&models.ServerMessage{
			Event: models.MsgJoinError,
			Data:  models.JoinErrorData{Message: "Room is full"},
		})
		return
	}

	player := models.NewPlayer(utils.PlayerID(), env.Event.PlayerName, false)
	s.room.Players = append(s.room.Players, player)

	env.From.Attach(s.room.Code, player.ID)
	s.hub.Join(s.room.Code, player.ID, env.From)

	s.hub.BroadcastToRoom(s.room.Code, &models.ServerMessage{
		Event: models.MsgPlayerJoined,
		Data: models.PlayerJoinedData{
			Player: player.Masked(),
			Room:   s.room.Snapshot(false),
		},
	})
}

// handleStartGame 分配臥底與秘密詞並進入線索階段
// 每位玩家收到個人化的負載：名單中的臥底身份一律遮蔽，
// 秘密詞只送給非臥底玩家
func (s *RoomSession) handleStartGame() {
	if s.room.Phase != models.PhaseLobby || len(s.room.Players) < s.minPlayers {
		return
	}

	if s.room.CurrentRound == 0 {
		s.room.CurrentRound = 1
	}

	impostorIndex := rand.IntN(len(s.room.Players))
	for i, p := range s.room.Players {
		p.Clue = ""
		p.ClueSubmitted = false
		p.VoteFor = ""
		p.HasVoted = false
		p.IsImpostor = i == impostorIndex
	}

	s.room.SecretWord = s.words.Random()
	s.room.Phase = models.PhaseClue

	for _, p := range s.room.Players {
		data := models.GameStartData{
			Room:       s.room.Snapshot(false),
			IsImpostor: p.IsImpostor,
		}
		if !p.IsImpostor {
			word := s.room.SecretWord
			data.SecretWord = &word
		}
		s.hub.SendToPlayer(s.room.Code, p.ID, &models.ServerMessage{
			Event: models.MsgGameStarted,
			Data:  data,
		})
	}
}

func (s *RoomSession) handleSubmitClue(evt models.ClientEvent) {
	if s.room.Phase != models.PhaseClue {
		return
	}
	player := s.room.FindPlayer(evt.PlayerID)
	if player == nil {
		return
	}

	player.Clue = evt.Clue
	player.ClueSubmitted = true

	s.hub.BroadcastToRoom(s.room.Code, &models.ServerMessage{
		Event: models.MsgClueSubmitted,
		Data:  models.RoomUpdateData{Room: s.room.Snapshot(false)},
	})

	if s.room.AllCluesSubmitted() {
		s.room.Phase = models.PhaseVoting
		s.hub.BroadcastToRoom(s.room.Code, &models.ServerMessage{
			Event: models.MsgAllCluesSubmitted,
			Data:  models.RoomUpdateData{Room: s.room.Snapshot(false)},
		})
	}
}

// handleEditClue 只在玩家尚未提交自己的線索前允許修改
// 提交後的修改被靜默忽略，不改狀態也不廣播
func (s *RoomSession) handleEditClue(evt models.ClientEvent) {
	if s.room.Phase != models.PhaseClue {
		return
	}
	player := s.room.FindPlayer(evt.PlayerID)
	if player == nil || player.ClueSubmitted {
		return
	}

	player.Clue = evt.Clue

	s.hub.BroadcastToRoom(s.room.Code, &models.ServerMessage{
		Event: models.MsgClueUpdated,
		Data:  models.RoomUpdateData{Room: s.room.Snapshot(false)},
	})
}

// handleSubmitVote 記錄投票，全員投完時同步結算回合
// 結算前重複投票會覆蓋前一票；結算每回合只會發生一次，
// 因為它只在「尚有人未投」轉為「全員已投」的那一次事件中觸發
func (s *RoomSession) handleSubmitVote(evt models.ClientEvent) {
	if s.room.Phase != models.PhaseVoting {
		return
	}
	player := s.room.FindPlayer(evt.PlayerID)
	if player == nil {
		return
	}

	player.VoteFor = evt.VoteForID
	player.HasVoted = true

	if !s.room.AllVoted() {
		s.hub.BroadcastToRoom(s.room.Code, &models.ServerMessage{
			Event: models.MsgVoteSubmitted,
			Data:  models.RoomUpdateData{Room: s.room.Snapshot(false)},
		})
		return
	}

	s.resolveRound()
}

// resolveRound 結算投票回合：計分、檢查勝利條件並廣播結果
// 從這裡開始臥底身份對所有玩家揭曉
func (s *RoomSession) resolveRound() {
	result, err := ResolveRound(s.room.Players)
	if err != nil {
		log.Printf("room %s: round resolution failed: %v", s.room.Code, err)
		return
	}

	var scoreWinner *models.Player
	for _, p := range s.room.Players {
		p.Score += result.RoundPoints[p.ID]
		if scoreWinner == nil && p.Score >= winningScore {
			scoreWinner = p
		}
	}

	roundLimitReached := s.room.TotalRounds > 0 && s.room.CurrentRound >= s.room.TotalRounds

	if scoreWinner != nil || roundLimitReached {
		s.room.Phase = models.PhaseGameOver

		winner := scoreWinner
		reason := "score"
		if winner == nil {
			winner = HighestScorer(s.room.Players)
			reason = "rounds"
		}

		s.hub.BroadcastToRoom(s.room.Code, &models.ServerMessage{
			Event: models.MsgGameOver,
			Data: models.GameOverData{
				Room:           s.room.Snapshot(true),
				Winner:         winner.Name,
				GameOverReason: reason,
				RoundResult:    *result,
			},
		})
		return
	}

	s.room.Phase = models.PhaseScoreUpdate
	s.hub.BroadcastToRoom(s.room.Code, &models.ServerMessage{
		Event: models.MsgRoundComplete,
		Data: models.RoundCompleteData{
			Room:        s.room.Snapshot(true),
			RoundResult: *result,
		},
	})
}

// handleStartNewRound 重置回合狀態並回到 lobby
// 下一回合的線索收集要等房主再送出 start_game 才開始
func (s *RoomSession) handleStartNewRound() {
	if s.room.Phase != models.PhaseScoreUpdate {
		return
	}

	s.room.CurrentRound++
	for _, p := range s.room.Players {
		p.ResetRound()
	}
	s.room.SecretWord = s.words.Random()
	s.room.Phase = models.PhaseLobby

	s.hub.BroadcastToRoom(s.room.Code, &models.ServerMessage{
		Event: models.MsgNewRoundStarted,
		Data:  models.RoomUpdateData{Room: s.room.Snapshot(false)},
	})
}

// handleImpostorGuess 讓臥底隨時嘗試猜出秘密詞
// 不分大小寫完全相符時加一分，不影響遊戲階段
func (s *RoomSession) handleImpostorGuess(evt models.ClientEvent) {
	player := s.room.FindPlayer(evt.PlayerID)
	if player == nil || !player.IsImpostor || s.room.SecretWord == "" {
		return
	}

	correct := strings.EqualFold(evt.Guess, s.room.SecretWord)
	if correct {
		player.Score++
	}

	s.hub.BroadcastToRoom(s.room.Code, &models.ServerMessage{
		Event: models.MsgImpostorGuessResult,
		Data: models.GuessResultData{
			Room:    s.room.Snapshot(false),
			Correct: correct,
			Guess:   evt.Guess,
		},
	})
}

// handleDisconnect 將離線玩家移出名單
// 名單清空時房間立刻從註冊表刪除並結束會話；
// 進行中的回合若因此無法湊齊線索或投票會停在原階段，這是已知限制
func (s *RoomSession) handleDisconnect(evt models.ClientEvent) {
	if !s.room.RemovePlayer(evt.PlayerID) {
		return
	}
	s.hub.Leave(s.room.Code, evt.PlayerID)

	if len(s.room.Players) == 0 {
		s.registry.Remove(s.room.Code)
		s.hub.DropRoom(s.room.Code)
		close(s.done)
		log.Printf("room %s deleted (empty)", s.room.Code)
		return
	}

	s.hub.BroadcastToRoom(s.room.Code, &models.ServerMessage{
		Event: models.MsgPlayerLeft,
		Data:  models.RoomUpdateData{Room: s.room.Snapshot(false)},
	})
}
