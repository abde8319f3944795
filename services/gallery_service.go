package services

import (
	"context"
	"log"

	"travel-backend/models"

	"gorm.io/gorm"
)

type GalleryService struct {
	DB      *gorm.DB
	Storage ObjectStorage
}

func NewGalleryService(db *gorm.DB, storage ObjectStorage) *GalleryService {
	return &GalleryService{DB: db, Storage: storage}
}

func (s *GalleryService) Create(image *models.GalleryImage) error {
	return s.DB.Create(image).Error
}

func (s *GalleryService) GetAll(activeOnly bool) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	q := s.DB.Order("gallery_images.sort_order ASC, gallery_images.id ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&images).Error
	return images, err
}

func (s *GalleryService) GetByID(id uint) (models.GalleryImage, error) {
	var image models.GalleryImage
	err := s.DB.First(&image, id).Error
	return image, err
}

func (s *GalleryService) Update(image *models.GalleryImage, previousURL string) error {
	if err := s.DB.Save(image).Error; err != nil {
		return err
	}
	if previousURL != "" && previousURL != image.URL {
		if err := s.Storage.Delete(context.Background(), previousURL); err != nil {
			log.Printf("warning: could not delete replaced gallery image: %v", err)
		}
	}
	return nil
}

func (s *GalleryService) Delete(id uint) error {
	var image models.GalleryImage
	if err := s.DB.First(&image, id).Error; err != nil {
		return err
	}
	if err := s.DB.Delete(&image).Error; err != nil {
		return err
	}
	if image.URL != "" {
		if err := s.Storage.Delete(context.Background(), image.URL); err != nil {
			log.Printf("warning: could not delete gallery image: %v", err)
		}
	}
	return nil
}
