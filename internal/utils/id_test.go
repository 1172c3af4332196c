package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := RoomCode()

		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestPlayerID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := PlayerID()

		require.Len(t, id, 9)
		for _, c := range id {
			assert.Contains(t, idAlphabet, string(c))
		}
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestRoomID(t *testing.T) {
	assert.Len(t, RoomID(), 9)
}
