package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewWordStore(t *testing.T) {
	t.Run("loads words from file", func(t *testing.T) {
		path := writeWordFile(t, `{"words": ["pizza", "beach", "music"]}`)

		store := NewWordStore(path)

		assert.Equal(t, 3, store.Count())
		assert.Contains(t, []string{"pizza", "beach", "music"}, store.Random())
	})

	t.Run("missing file falls back to builtin words", func(t *testing.T) {
		store := NewWordStore(filepath.Join(t.TempDir(), "nope.json"))

		assert.Equal(t, len(fallbackWords), store.Count())
		assert.Contains(t, fallbackWords, store.Random())
	})

	t.Run("malformed file falls back to builtin words", func(t *testing.T) {
		path := writeWordFile(t, `{"words": [`)

		store := NewWordStore(path)

		assert.Equal(t, len(fallbackWords), store.Count())
	})

	t.Run("empty word list falls back to builtin words", func(t *testing.T) {
		path := writeWordFile(t, `{"words": []}`)

		store := NewWordStore(path)

		assert.Equal(t, len(fallbackWords), store.Count())
	})
}

func TestNewStaticWordStore(t *testing.T) {
	store := NewStaticWordStore([]string{"only"})

	assert.Equal(t, 1, store.Count())
	// 單一候選字時每次都抽中它
	for i := 0; i < 5; i++ {
		assert.Equal(t, "only", store.Random())
	}
}
