package services

import (
	"context"
	"log"
	"strings"

	"travel-backend/models"
	"travel-backend/utils"

	"gorm.io/gorm"
)

type PackageService struct {
	DB      *gorm.DB
	Storage ObjectStorage
}

func NewPackageService(db *gorm.DB, storage ObjectStorage) *PackageService {
	return &PackageService{DB: db, Storage: storage}
}

// PackageImageInput is one image in the order the admin submitted it. The
// first entry becomes the primary image.
type PackageImageInput struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

func (s *PackageService) Create(pkg *models.TourPackage, images []PackageImageInput) error {
	if strings.TrimSpace(pkg.Slug) == "" {
		pkg.Slug = utils.Slugify(pkg.Name)
	}
	if err := s.DB.Create(pkg).Error; err != nil {
		return err
	}
	if len(images) > 0 {
		rows := buildImageRows(pkg.ID, images)
		if err := s.DB.Create(&rows).Error; err != nil {
			return err
		}
		pkg.Images = rows
	}
	return nil
}

// buildImageRows enforces the save-path invariant: the first submitted image
// is the primary one, the remaining gallery images are numbered 0..n-2 in
// submission order.
func buildImageRows(packageID uint, images []PackageImageInput) []models.PackageImage {
	rows := make([]models.PackageImage, 0, len(images))
	for i, img := range images {
		order := 0
		if i > 0 {
			order = i - 1
		}
		rows = append(rows, models.PackageImage{
			PackageID: packageID,
			URL:       img.URL,
			Alt:       img.Alt,
			IsPrimary: i == 0,
			Order:     order,
		})
	}
	return rows
}

// ReplaceImages swaps the whole image set: old storage objects are
// best-effort deleted, old rows dropped, new rows inserted. There is no
// incremental diffing and no surrounding transaction.
func (s *PackageService) ReplaceImages(packageID uint, images []PackageImageInput) error {
	var old []models.PackageImage
	if err := s.DB.Where("package_id = ?", packageID).Find(&old).Error; err != nil {
		return err
	}

	keep := make(map[string]bool, len(images))
	for _, img := range images {
		keep[img.URL] = true
	}
	for _, img := range old {
		if keep[img.URL] {
			continue
		}
		if err := s.Storage.Delete(context.Background(), img.URL); err != nil {
			log.Printf("warning: could not delete replaced package image: %v", err)
		}
	}

	if err := s.DB.Where("package_id = ?", packageID).Delete(&models.PackageImage{}).Error; err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}
	rows := buildImageRows(packageID, images)
	return s.DB.Create(&rows).Error
}

func (s *PackageService) GetAll(activeOnly, featuredOnly bool, limit int) ([]models.TourPackage, error) {
	var pkgs []models.TourPackage
	q := s.DB.Preload("Category").Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("package_images.is_primary DESC, package_images.sort_order ASC")
	})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
		q = q.Order("tour_packages.created_at ASC, tour_packages.id ASC")
	} else {
		q = q.Order("tour_packages.id DESC")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&pkgs).Error
	return pkgs, err
}

func (s *PackageService) GetByID(id uint) (models.TourPackage, error) {
	var pkg models.TourPackage
	err := s.DB.Preload("Category").Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("package_images.is_primary DESC, package_images.sort_order ASC")
	}).First(&pkg, id).Error
	return pkg, err
}

func (s *PackageService) GetByToken(token string) (models.TourPackage, error) {
	pkg := ResolvePackage(s.DB, token)
	if pkg == nil {
		return models.TourPackage{}, gorm.ErrRecordNotFound
	}
	return s.GetByID(pkg.ID)
}

// Update saves the package row; when images is non-nil the whole image set
// is replaced as well.
func (s *PackageService) Update(pkg *models.TourPackage, images []PackageImageInput) error {
	pkg.Category = nil
	pkg.Images = nil // image rows are only written through ReplaceImages
	if err := s.DB.Save(pkg).Error; err != nil {
		return err
	}
	if images != nil {
		return s.ReplaceImages(pkg.ID, images)
	}
	return nil
}

func (s *PackageService) Delete(id uint) error {
	var pkg models.TourPackage
	if err := s.DB.Preload("Images").First(&pkg, id).Error; err != nil {
		return err
	}
	for _, img := range pkg.Images {
		if err := s.Storage.Delete(context.Background(), img.URL); err != nil {
			log.Printf("warning: could not delete package image: %v", err)
		}
	}
	if err := s.DB.Where("package_id = ?", id).Delete(&models.PackageImage{}).Error; err != nil {
		return err
	}
	return s.DB.Delete(&pkg).Error
}
