package services

import (
	"testing"
	"time"

	"travel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePackageFirstImageIsPrimary(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db, &fakeStorage{})

	pkg := models.TourPackage{Name: "Goa Getaway", IsActive: true}
	err := svc.Create(&pkg, []PackageImageInput{
		{URL: "https://cdn.example.com/bucket/uploads/a.jpg", Alt: "beach"},
		{URL: "https://cdn.example.com/bucket/uploads/b.jpg"},
		{URL: "https://cdn.example.com/bucket/uploads/c.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "goa-getaway", pkg.Slug, "slug derived from name when omitted")

	var rows []models.PackageImage
	require.NoError(t, db.Where("package_id = ?", pkg.ID).Order("id ASC").Find(&rows).Error)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].IsPrimary)
	assert.Equal(t, 0, rows[0].Order)
	assert.False(t, rows[1].IsPrimary)
	assert.Equal(t, 0, rows[1].Order)
	assert.False(t, rows[2].IsPrimary)
	assert.Equal(t, 1, rows[2].Order)
}

func TestReplaceImagesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	storage := &fakeStorage{}
	svc := NewPackageService(db, storage)

	pkg := models.TourPackage{Name: "Kerala", IsActive: true}
	require.NoError(t, svc.Create(&pkg, []PackageImageInput{
		{URL: "https://cdn.example.com/bucket/uploads/old1.jpg"},
		{URL: "https://cdn.example.com/bucket/uploads/old2.jpg"},
		{URL: "https://cdn.example.com/bucket/uploads/old3.jpg"},
	}))

	require.NoError(t, svc.ReplaceImages(pkg.ID, []PackageImageInput{
		{URL: "https://cdn.example.com/bucket/uploads/new1.jpg"},
		{URL: "https://cdn.example.com/bucket/uploads/old2.jpg"},
	}))

	var rows []models.PackageImage
	require.NoError(t, db.Where("package_id = ?", pkg.ID).Order("id ASC").Find(&rows).Error)
	require.Len(t, rows, 2, "image set is replaced wholesale")
	assert.True(t, rows[0].IsPrimary)
	assert.Equal(t, "https://cdn.example.com/bucket/uploads/new1.jpg", rows[0].URL)
	assert.False(t, rows[1].IsPrimary)

	// only the objects no longer referenced get deleted
	assert.ElementsMatch(t, []string{
		"https://cdn.example.com/bucket/uploads/old1.jpg",
		"https://cdn.example.com/bucket/uploads/old3.jpg",
	}, storage.deletes)
}

func TestReplaceImagesWithEmptySetClearsRows(t *testing.T) {
	db := newTestDB(t)
	storage := &fakeStorage{}
	svc := NewPackageService(db, storage)

	pkg := models.TourPackage{Name: "Rajasthan", IsActive: true}
	require.NoError(t, svc.Create(&pkg, []PackageImageInput{
		{URL: "https://cdn.example.com/bucket/uploads/one.jpg"},
	}))

	require.NoError(t, svc.ReplaceImages(pkg.ID, nil))

	var count int64
	db.Model(&models.PackageImage{}).Where("package_id = ?", pkg.ID).Count(&count)
	assert.Zero(t, count)
	assert.Equal(t, []string{"https://cdn.example.com/bucket/uploads/one.jpg"}, storage.deletes)
}

func TestToggleFeaturedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db, &fakeStorage{})

	pkg := models.TourPackage{Name: "Ladakh", Slug: "ladakh", Duration: "7 days", IsActive: true}
	require.NoError(t, svc.Create(&pkg, nil))

	before, err := svc.GetByID(pkg.ID)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		current, err := svc.GetByID(pkg.ID)
		require.NoError(t, err)
		current.IsFeatured = !current.IsFeatured
		current.Images = nil
		require.NoError(t, svc.Update(&current, nil))
	}

	after, err := svc.GetByID(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, before.IsFeatured, after.IsFeatured)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Slug, after.Slug)
	assert.Equal(t, before.Duration, after.Duration)
	assert.Equal(t, before.IsActive, after.IsActive)
}

func TestFeaturedListingOldestFirstCapped(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackageService(db, &fakeStorage{})

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 8; i++ {
		pkg := models.TourPackage{
			Name:       "Pkg",
			Slug:       "pkg-" + string(rune('a'+i)),
			IsActive:   true,
			IsFeatured: true,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&pkg).Error)
	}
	// inactive and non-featured rows must never appear
	require.NoError(t, db.Create(&models.TourPackage{Name: "Hidden", Slug: "hidden", IsActive: false, IsFeatured: true}).Error)
	require.NoError(t, db.Create(&models.TourPackage{Name: "Plain", Slug: "plain", IsActive: true, IsFeatured: false}).Error)

	pkgs, err := svc.GetAll(true, true, 6)
	require.NoError(t, err)
	require.Len(t, pkgs, 6)
	for i := 1; i < len(pkgs); i++ {
		assert.False(t, pkgs[i].CreatedAt.Before(pkgs[i-1].CreatedAt), "featured listing is oldest first")
	}
	assert.Equal(t, "pkg-a", pkgs[0].Slug)
}

func TestDeletePackageRemovesImagesAndObjects(t *testing.T) {
	db := newTestDB(t)
	storage := &fakeStorage{}
	svc := NewPackageService(db, storage)

	pkg := models.TourPackage{Name: "Andaman", IsActive: true}
	require.NoError(t, svc.Create(&pkg, []PackageImageInput{
		{URL: "https://cdn.example.com/bucket/uploads/x.jpg"},
		{URL: "https://cdn.example.com/bucket/uploads/y.jpg"},
	}))

	require.NoError(t, svc.Delete(pkg.ID))

	var count int64
	db.Model(&models.PackageImage{}).Where("package_id = ?", pkg.ID).Count(&count)
	assert.Zero(t, count)
	assert.Len(t, storage.deletes, 2)

	_, err := svc.GetByID(pkg.ID)
	assert.Error(t, err)
}
