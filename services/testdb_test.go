package services

import (
	"context"
	"testing"

	"travel-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.AdminSession{},
		&models.SiteSetting{},
		&models.Category{},
		&models.Destination{},
		&models.TourPackage{},
		&models.PackageImage{},
		&models.GalleryImage{},
		&models.Inquiry{},
	))
	return db
}

// fakeStorage records calls so tests can assert how the entity services use
// the bucket.
type fakeStorage struct {
	uploads []string
	deletes []string
}

func (f *fakeStorage) Upload(_ context.Context, _ []byte, originalName, _ string) (string, error) {
	f.uploads = append(f.uploads, originalName)
	return "https://cdn.example.com/bucket/uploads/" + originalName, nil
}

func (f *fakeStorage) Delete(_ context.Context, fileURL string) error {
	f.deletes = append(f.deletes, fileURL)
	return nil
}
