package qrcode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneohq/notify/pkg/qrcode"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("returns png bytes", func(t *testing.T) {
		t.Parallel()
		png, err := qrcode.Generate("https://book.oneo.app/i/abc123", 128)
		require.NoError(t, err)
		assert.Equal(t, pngMagic, png[:4])
	})

	t.Run("default size for non-positive input", func(t *testing.T) {
		t.Parallel()
		png, err := qrcode.Generate("https://book.oneo.app/i/abc123", 0)
		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Generate("", 128)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})
}

func TestGenerateDataURI(t *testing.T) {
	t.Parallel()

	uri, err := qrcode.GenerateDataURI("https://book.oneo.app/i/abc123", 128)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	assert.Greater(t, len(uri), len("data:image/png;base64,"))
}
