package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreUploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	asset, err := store.Upload(context.Background(), strings.NewReader("image bytes"), "profiles")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(asset.URL, "/uploads/"))
	assert.True(t, strings.HasPrefix(asset.AssetID, "profiles-"))

	data, err := os.ReadFile(filepath.Join(dir, asset.AssetID))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))

	require.NoError(t, store.Delete(context.Background(), asset.AssetID))
	_, err = os.Stat(filepath.Join(dir, asset.AssetID))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStoreDeleteIsIdempotent(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Delete(context.Background(), "never-existed"))
}

func TestLocalStoreDeleteIgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	outside := filepath.Join(dir, "..", "victim")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))
	t.Cleanup(func() { os.Remove(outside) })

	_ = store.Delete(context.Background(), "../victim")
	_, err = os.Stat(outside)
	assert.NoError(t, err, "delete must never reach outside the uploads dir")
}

func TestLocalStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStore(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
