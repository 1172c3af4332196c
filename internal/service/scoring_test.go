package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayo-oluu/sus-game/internal/models"
)

func TestMajorityThreshold(t *testing.T) {
	cases := []struct {
		players  int
		expected int
	}{
		{4, 2},
		{5, 3},
		{6, 3},
		{7, 4},
		{8, 4},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, MajorityThreshold(c.players), "players=%d", c.players)
	}
}

// buildVoters 建立一組玩家，第一位是臥底，votes 指定每位玩家投給誰
func buildVoters(votes map[string]string) []*models.Player {
	ids := []string{"imp", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}
	players := make([]*models.Player, 0)
	for i, id := range ids {
		if _, ok := votes[id]; !ok {
			continue
		}
		p := models.NewPlayer(id, "player-"+id, i == 0)
		p.IsImpostor = id == "imp"
		p.VoteFor = votes[id]
		p.HasVoted = true
		players = append(players, p)
	}
	return players
}

func TestResolveRound(t *testing.T) {
	t.Run("tie at threshold counts as caught", func(t *testing.T) {
		// 4 人，臥底得 2 票，門檻 2 → 被抓
		players := buildVoters(map[string]string{
			"imp": "p2",
			"p2":  "imp",
			"p3":  "imp",
			"p4":  "p2",
		})

		result, err := ResolveRound(players)
		require.NoError(t, err)

		assert.False(t, result.ImpostorEscaped)
		assert.Equal(t, 2, result.VotesForImpostor)
		assert.Equal(t, 4, result.TotalVotes)
		assert.Equal(t, 0, result.RoundPoints["imp"])
		assert.Equal(t, 1, result.RoundPoints["p2"])
		assert.Equal(t, 1, result.RoundPoints["p3"])
		assert.Equal(t, 0, result.RoundPoints["p4"])
	})

	t.Run("below threshold escapes", func(t *testing.T) {
		// 5 人，臥底得 1 票，門檻 3 → 逃脫
		players := buildVoters(map[string]string{
			"imp": "p2",
			"p2":  "imp",
			"p3":  "p2",
			"p4":  "p5",
			"p5":  "p4",
		})

		result, err := ResolveRound(players)
		require.NoError(t, err)

		assert.True(t, result.ImpostorEscaped)
		assert.Equal(t, 1, result.VotesForImpostor)
		assert.Equal(t, 2, result.RoundPoints["imp"])
		assert.Equal(t, 1, result.RoundPoints["p2"])
		assert.Equal(t, 0, result.RoundPoints["p3"])
	})

	t.Run("pure and deterministic", func(t *testing.T) {
		players := buildVoters(map[string]string{
			"imp": "p3",
			"p2":  "imp",
			"p3":  "imp",
			"p4":  "p2",
		})

		first, err := ResolveRound(players)
		require.NoError(t, err)
		second, err := ResolveRound(players)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		for _, p := range players {
			assert.Zero(t, p.Score, "ResolveRound must not mutate scores")
		}
	})

	t.Run("no impostor is an error", func(t *testing.T) {
		players := []*models.Player{models.NewPlayer("p1", "a", true)}
		_, err := ResolveRound(players)
		assert.Error(t, err)
	})
}

func TestHighestScorer(t *testing.T) {
	p1 := models.NewPlayer("p1", "first", true)
	p2 := models.NewPlayer("p2", "second", false)
	p3 := models.NewPlayer("p3", "third", false)
	p1.Score = 4
	p2.Score = 7
	p3.Score = 7

	// 同分時取名單中較早加入者
	winner := HighestScorer([]*models.Player{p1, p2, p3})
	assert.Equal(t, "p2", winner.ID)

	assert.Nil(t, HighestScorer(nil))
}
