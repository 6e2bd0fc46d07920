package imageutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyway-ai/skyway-go/chat"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestPartsFromGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.png", makePNG(t, 4, 4))
	writeFile(t, dir, "nested/a.png", makePNG(t, 8, 8))
	writeFile(t, dir, "notes.txt", []byte("not an image"))

	parts, err := PartsFromGlob(dir, "**/*.png")
	require.NoError(t, err)
	require.Len(t, parts, 2)

	for _, part := range parts {
		img, ok := part.(chat.ImagePart)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(img.ImageURL.URL, "data:image/png;base64,"))
	}
}

func TestPartsFromGlobNoMatches(t *testing.T) {
	parts, err := PartsFromGlob(t.TempDir(), "*.png")
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestPartsFromGlobAbortsOnBadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.png", makePNG(t, 4, 4))
	writeFile(t, dir, "zz-bad.png", []byte("corrupt"))

	parts, err := PartsFromGlob(dir, "*.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zz-bad.png")
	assert.Nil(t, parts, "no partial result on failure")
}
