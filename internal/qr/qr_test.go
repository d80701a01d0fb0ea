package qr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanURL(t *testing.T) {
	assert.Equal(t, "https://game.example.com/scan/1", ScanURL("https://game.example.com", "1"))
	// Trailing slash must not double up
	assert.Equal(t, "https://game.example.com/scan/2", ScanURL("https://game.example.com/", "2"))
}

func TestImagePNG(t *testing.T) {
	data, err := ImagePNG("https://game.example.com", "1")
	require.NoError(t, err)

	// PNG signature
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
}
