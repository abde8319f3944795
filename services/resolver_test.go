package services

import (
	"fmt"
	"testing"

	"travel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePackageBySlug(t *testing.T) {
	db := newTestDB(t)
	pkg := models.TourPackage{Name: "Goa Getaway", Slug: "goa-getaway", IsActive: true}
	require.NoError(t, db.Create(&pkg).Error)

	got := ResolvePackage(db, "goa-getaway")
	require.NotNil(t, got)
	assert.Equal(t, pkg.ID, got.ID)
	assert.Equal(t, "Goa Getaway", got.Name)
}

func TestResolvePackageFallsBackToID(t *testing.T) {
	db := newTestDB(t)
	pkg := models.TourPackage{Name: "Kerala Backwaters", Slug: "kerala-backwaters", IsActive: true}
	require.NoError(t, db.Create(&pkg).Error)

	got := ResolvePackage(db, fmt.Sprintf("%d", pkg.ID))
	require.NotNil(t, got)
	assert.Equal(t, pkg.ID, got.ID)
}

func TestResolvePackageSlugWinsOverID(t *testing.T) {
	db := newTestDB(t)
	first := models.TourPackage{Name: "First", Slug: "first", IsActive: true}
	require.NoError(t, db.Create(&first).Error)
	// a package whose slug happens to be the first package's numeric ID
	shadow := models.TourPackage{Name: "Shadow", Slug: fmt.Sprintf("%d", first.ID), IsActive: true}
	require.NoError(t, db.Create(&shadow).Error)

	got := ResolvePackage(db, fmt.Sprintf("%d", first.ID))
	require.NotNil(t, got)
	assert.Equal(t, shadow.ID, got.ID, "slug lookup must be attempted before primary key")
}

func TestResolvePackageMissReturnsNil(t *testing.T) {
	db := newTestDB(t)

	assert.Nil(t, ResolvePackage(db, "no-such-package"))
	assert.Nil(t, ResolvePackage(db, "999"))
	assert.Nil(t, ResolvePackage(db, ""))
	assert.Nil(t, ResolvePackage(db, "   "))
}

func TestResolveDestination(t *testing.T) {
	db := newTestDB(t)
	dest := models.Destination{Name: "Goa", Slug: "goa", IsActive: true}
	require.NoError(t, db.Create(&dest).Error)

	bySlug := ResolveDestination(db, "goa")
	require.NotNil(t, bySlug)
	assert.Equal(t, dest.ID, bySlug.ID)

	byID := ResolveDestination(db, fmt.Sprintf("%d", dest.ID))
	require.NotNil(t, byID)
	assert.Equal(t, dest.ID, byID.ID)

	assert.Nil(t, ResolveDestination(db, "atlantis"))
}
