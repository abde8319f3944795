package services

import (
	"testing"

	"travel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteDestinationDeletesImageOnce(t *testing.T) {
	db := newTestDB(t)
	storage := &fakeStorage{}
	svc := NewDestinationService(db, storage)

	dest := models.Destination{
		Name:     "Goa",
		IsActive: true,
		ImageURL: "https://cdn.example.com/bucket/uploads/goa.jpg",
	}
	require.NoError(t, svc.Create(&dest))
	assert.Equal(t, "goa", dest.Slug)

	require.NoError(t, svc.Delete(dest.ID))
	assert.Equal(t, []string{"https://cdn.example.com/bucket/uploads/goa.jpg"}, storage.deletes)

	_, err := svc.GetByID(dest.ID)
	assert.Error(t, err)
}

func TestDeleteDestinationWithoutImageSkipsStorage(t *testing.T) {
	db := newTestDB(t)
	storage := &fakeStorage{}
	svc := NewDestinationService(db, storage)

	dest := models.Destination{Name: "Hampi", IsActive: true}
	require.NoError(t, svc.Create(&dest))
	require.NoError(t, svc.Delete(dest.ID))

	assert.Empty(t, storage.deletes)
}

func TestUpdateDestinationDeletesReplacedImageOnly(t *testing.T) {
	db := newTestDB(t)
	storage := &fakeStorage{}
	svc := NewDestinationService(db, storage)

	dest := models.Destination{
		Name:     "Manali",
		IsActive: true,
		ImageURL: "https://cdn.example.com/bucket/uploads/old.jpg",
	}
	require.NoError(t, svc.Create(&dest))

	// unchanged URL: no delete
	previous := dest.ImageURL
	dest.Description = "Hill station"
	require.NoError(t, svc.Update(&dest, previous))
	assert.Empty(t, storage.deletes)

	// replaced URL: old object deleted after the save
	previous = dest.ImageURL
	dest.ImageURL = "https://cdn.example.com/bucket/uploads/new.jpg"
	require.NoError(t, svc.Update(&dest, previous))
	assert.Equal(t, []string{"https://cdn.example.com/bucket/uploads/old.jpg"}, storage.deletes)
}

func TestPopularDestinationsOldestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewDestinationService(db, &fakeStorage{})

	names := []string{"First", "Second", "Third"}
	for _, n := range names {
		dest := models.Destination{Name: n, IsActive: true, IsPopular: true}
		require.NoError(t, svc.Create(&dest))
	}
	hidden := models.Destination{Name: "Hidden", IsActive: false, IsPopular: true}
	require.NoError(t, svc.Create(&hidden))

	dests, err := svc.GetAll(true, true, 7)
	require.NoError(t, err)
	require.Len(t, dests, 3)
	assert.Equal(t, "First", dests[0].Name)
	assert.Equal(t, "Third", dests[2].Name)
}

func TestGetByTokenSlugOrID(t *testing.T) {
	db := newTestDB(t)
	svc := NewDestinationService(db, &fakeStorage{})

	dest := models.Destination{Name: "Rishikesh", Slug: "rishikesh", IsActive: true}
	require.NoError(t, svc.Create(&dest))

	bySlug, err := svc.GetByToken("rishikesh")
	require.NoError(t, err)
	assert.Equal(t, dest.ID, bySlug.ID)

	_, err = svc.GetByToken("nowhere")
	assert.Error(t, err)
}
