package service

import (
	"errors"

	"github.com/ayo-oluu/sus-game/internal/models"
)

// 達到此累積分數的玩家立即獲勝
const winningScore = 10

// 臥底逃脫時獲得的分數
const impostorEscapePoints = 2

// 投中臥底的玩家獲得的分數
const correctVotePoints = 1

var errNoImpostor = errors.New("no impostor in room")

// MajorityThreshold 回傳抓出臥底所需的票數門檻 ceil(n/2)
// 得票恰好等於門檻時臥底視為被抓（逃脫需要嚴格少於門檻）
func MajorityThreshold(playerCount int) int {
	return (playerCount + 1) / 2
}

// ResolveRound 依目前的投票計算回合結果
// 純函數：不修改任何玩家狀態，相同輸入必定產生相同輸出
func ResolveRound(players []*models.Player) (*models.RoundResult, error) {
	var impostor *models.Player
	for _, p := range players {
		if p.IsImpostor {
			impostor = p
			break
		}
	}
	if impostor == nil {
		return nil, errNoImpostor
	}

	votesForImpostor := 0
	for _, p := range players {
		if p.VoteFor == impostor.ID {
			votesForImpostor++
		}
	}

	escaped := votesForImpostor < MajorityThreshold(len(players))

	points := make(map[string]int, len(players))
	for _, p := range players {
		switch {
		case p.IsImpostor && escaped:
			points[p.ID] = impostorEscapePoints
		case p.IsImpostor:
			points[p.ID] = 0
		case p.VoteFor == impostor.ID:
			points[p.ID] = correctVotePoints
		default:
			points[p.ID] = 0
		}
	}

	return &models.RoundResult{
		ImpostorID:       impostor.ID,
		VotesForImpostor: votesForImpostor,
		TotalVotes:       len(players),
		ImpostorEscaped:  escaped,
		RoundPoints:      points,
	}, nil
}

// HighestScorer 回傳分數最高的玩家，同分時取名單中較早加入者
func HighestScorer(players []*models.Player) *models.Player {
	if len(players) == 0 {
		return nil
	}
	best := players[0]
	for _, p := range players[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return best
}
