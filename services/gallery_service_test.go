package services

import (
	"testing"

	"travel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryListOrdersBySortOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewGalleryService(db, &fakeStorage{})

	require.NoError(t, svc.Create(&models.GalleryImage{URL: "u2", Order: 2, IsActive: true}))
	require.NoError(t, svc.Create(&models.GalleryImage{URL: "u0", Order: 0, IsActive: true}))
	require.NoError(t, svc.Create(&models.GalleryImage{URL: "u1", Order: 1, IsActive: false}))

	all, err := svc.GetAll(false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "u0", all[0].URL)
	assert.Equal(t, "u1", all[1].URL)
	assert.Equal(t, "u2", all[2].URL)

	active, err := svc.GetAll(true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "u0", active[0].URL)
	assert.Equal(t, "u2", active[1].URL)
}

func TestGalleryUpdateDeletesReplacedObject(t *testing.T) {
	db := newTestDB(t)
	storage := &fakeStorage{}
	svc := NewGalleryService(db, storage)

	image := models.GalleryImage{URL: "https://cdn.example.com/bucket/uploads/old.jpg", IsActive: true}
	require.NoError(t, svc.Create(&image))

	previous := image.URL
	image.Alt = "sunset"
	require.NoError(t, svc.Update(&image, previous))
	assert.Empty(t, storage.deletes)

	previous = image.URL
	image.URL = "https://cdn.example.com/bucket/uploads/new.jpg"
	require.NoError(t, svc.Update(&image, previous))
	assert.Equal(t, []string{"https://cdn.example.com/bucket/uploads/old.jpg"}, storage.deletes)
}

func TestGalleryDeleteRemovesObject(t *testing.T) {
	db := newTestDB(t)
	storage := &fakeStorage{}
	svc := NewGalleryService(db, storage)

	image := models.GalleryImage{URL: "https://cdn.example.com/bucket/uploads/g.jpg", IsActive: true}
	require.NoError(t, svc.Create(&image))
	require.NoError(t, svc.Delete(image.ID))

	assert.Equal(t, []string{"https://cdn.example.com/bucket/uploads/g.jpg"}, storage.deletes)
	_, err := svc.GetByID(image.ID)
	assert.Error(t, err)
}
