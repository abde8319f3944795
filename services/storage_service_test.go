package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDisabledStorage(t *testing.T) *StorageService {
	t.Helper()
	svc, err := NewStorageService(StorageConfig{
		PublicURL: "https://cdn.example.com/bucket",
		Folder:    "uploads",
	})
	require.NoError(t, err)
	return svc
}

func TestStorageDisabledWithoutCredentials(t *testing.T) {
	svc := newDisabledStorage(t)
	assert.False(t, svc.Enabled())

	_, err := svc.Upload(context.Background(), []byte("img"), "a.jpg", "image/jpeg")
	assert.ErrorIs(t, err, ErrStorageNotConfigured)

	// best-effort delete never errors when disabled
	assert.NoError(t, svc.Delete(context.Background(), "https://cdn.example.com/bucket/uploads/a.jpg"))
}

func TestKeyFromURL(t *testing.T) {
	svc := newDisabledStorage(t)

	key, ok := svc.KeyFromURL("https://cdn.example.com/bucket/uploads/abc-123.jpg")
	require.True(t, ok)
	assert.Equal(t, "uploads/abc-123.jpg", key)

	key, ok = svc.KeyFromURL("https://cdn.example.com/bucket/uploads/abc-123.jpg?w=400")
	require.True(t, ok)
	assert.Equal(t, "uploads/abc-123.jpg", key)

	// external URLs do not belong to the bucket
	_, ok = svc.KeyFromURL("https://images.unsplash.com/photo.jpg")
	assert.False(t, ok)

	// the bare base URL has no key
	_, ok = svc.KeyFromURL("https://cdn.example.com/bucket")
	assert.False(t, ok)
}

func TestKeyFromURLNoPublicBase(t *testing.T) {
	svc, err := NewStorageService(StorageConfig{})
	require.NoError(t, err)

	_, ok := svc.KeyFromURL("https://cdn.example.com/bucket/uploads/a.jpg")
	assert.False(t, ok)
}
