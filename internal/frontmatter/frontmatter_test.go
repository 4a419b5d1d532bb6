package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Run("simple block", func(t *testing.T) {
		text := "---\nMood: 4\nWeight: 81.5\n---\n\nFree text body.\n"
		pairs := Extract(text)
		require.Len(t, pairs, 2)
		assert.Equal(t, Pair{Key: "Mood", Value: "4"}, pairs[0])
		assert.Equal(t, Pair{Key: "Weight", Value: "81.5"}, pairs[1])
	})

	t.Run("colons in value preserved", func(t *testing.T) {
		text := "---\nsleep-in: 23:30\nwake-up: 07:15\n---\n"
		pairs := Extract(text)
		require.Len(t, pairs, 2)
		assert.Equal(t, "23:30", pairs[0].Value)
		assert.Equal(t, "07:15", pairs[1].Value)
	})

	t.Run("no block yields empty", func(t *testing.T) {
		assert.Empty(t, Extract("Just a plain note.\nNo metadata here.\n"))
	})

	t.Run("unterminated block yields empty", func(t *testing.T) {
		assert.Empty(t, Extract("---\nMood: 4\nbody without closing line\n"))
	})

	t.Run("empty block yields empty", func(t *testing.T) {
		assert.Empty(t, Extract("---\n---\nbody\n"))
	})

	t.Run("lines without colon discarded", func(t *testing.T) {
		text := "---\njust a sentence\nMood: 3\nanother stray line\n---\n"
		pairs := Extract(text)
		require.Len(t, pairs, 1)
		assert.Equal(t, "Mood", pairs[0].Key)
	})

	t.Run("blank inner lines skipped", func(t *testing.T) {
		text := "---\n\nMood: 3\n\n---\n"
		pairs := Extract(text)
		require.Len(t, pairs, 1)
	})

	t.Run("block after leading prose", func(t *testing.T) {
		text := "Monday.\n---\nMood: 2\n---\n"
		pairs := Extract(text)
		require.Len(t, pairs, 1)
		assert.Equal(t, Pair{Key: "Mood", Value: "2"}, pairs[0])
	})

	t.Run("crlf delimiters", func(t *testing.T) {
		text := "---\r\nMood: 5\r\n---\r\n"
		pairs := Extract(text)
		require.Len(t, pairs, 1)
		assert.Equal(t, "5", pairs[0].Value)
	})

	t.Run("whitespace around key and value trimmed", func(t *testing.T) {
		text := "---\n  Meditation :  15  \n---\n"
		pairs := Extract(text)
		require.Len(t, pairs, 1)
		assert.Equal(t, Pair{Key: "Meditation", Value: "15"}, pairs[0])
	})
}
