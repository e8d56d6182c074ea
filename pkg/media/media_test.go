package media

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURL(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff}
	data, ct, err := DecodeDataURL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)
	assert.Equal(t, raw, data)

	_, _, err = DecodeDataURL("https://example.com/a.jpg")
	assert.ErrorIs(t, err, ErrNotDataURL)
	_, _, err = DecodeDataURL("data:text/plain,hello")
	assert.ErrorIs(t, err, ErrNotDataURL)
	_, _, err = DecodeDataURL("data:image/png;base64,!!!")
	assert.Error(t, err)
}

func TestObjectKey(t *testing.T) {
	k := objectKey("image/jpeg", time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(k, "evidence/2026/10/"))
	assert.True(t, strings.HasSuffix(k, ".jpg"))
}

func TestLocalPut(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocal(dir, "/media/")
	require.NoError(t, err)

	url, err := l.Put(context.Background(), "image/png", []byte("png"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/media/evidence/"))

	got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(url, "/media/"))))
	require.NoError(t, err)
	assert.Equal(t, "png", string(got))
}
