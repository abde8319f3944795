package services

import (
	"context"
	"log"
	"strings"

	"travel-backend/models"
	"travel-backend/utils"

	"gorm.io/gorm"
)

type DestinationService struct {
	DB      *gorm.DB
	Storage ObjectStorage
}

func NewDestinationService(db *gorm.DB, storage ObjectStorage) *DestinationService {
	return &DestinationService{DB: db, Storage: storage}
}

func (s *DestinationService) Create(dest *models.Destination) error {
	if strings.TrimSpace(dest.Slug) == "" {
		dest.Slug = utils.Slugify(dest.Name)
	}
	return s.DB.Create(dest).Error
}

// GetAll lists destinations for the admin screens; popularOnly with a limit
// backs the public "Popular Destinations" section (oldest first, cap applied
// by the caller as a presentation policy).
func (s *DestinationService) GetAll(activeOnly, popularOnly bool, limit int) ([]models.Destination, error) {
	var dests []models.Destination
	q := s.DB.Preload("Category")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if popularOnly {
		q = q.Where("is_popular = ?", true)
		q = q.Order("destinations.created_at ASC, destinations.id ASC")
	} else {
		q = q.Order("destinations.id DESC")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&dests).Error
	return dests, err
}

func (s *DestinationService) GetByID(id uint) (models.Destination, error) {
	var dest models.Destination
	err := s.DB.Preload("Category").First(&dest, id).Error
	return dest, err
}

// GetByToken looks up a destination by slug with an ID fallback, for the
// public detail endpoint.
func (s *DestinationService) GetByToken(token string) (models.Destination, error) {
	dest := ResolveDestination(s.DB, token)
	if dest == nil {
		return models.Destination{}, gorm.ErrRecordNotFound
	}
	return s.GetByID(dest.ID)
}

// Update saves the row and, if the image was replaced with a different URL,
// best-effort deletes the previous object afterwards.
func (s *DestinationService) Update(dest *models.Destination, previousImageURL string) error {
	dest.Category = nil // association rows are never written from here
	if err := s.DB.Save(dest).Error; err != nil {
		return err
	}
	if previousImageURL != "" && previousImageURL != dest.ImageURL {
		if err := s.Storage.Delete(context.Background(), previousImageURL); err != nil {
			log.Printf("warning: could not delete replaced destination image: %v", err)
		}
	}
	return nil
}

func (s *DestinationService) Delete(id uint) error {
	var dest models.Destination
	if err := s.DB.First(&dest, id).Error; err != nil {
		return err
	}
	if err := s.DB.Delete(&dest).Error; err != nil {
		return err
	}
	if dest.ImageURL != "" {
		if err := s.Storage.Delete(context.Background(), dest.ImageURL); err != nil {
			log.Printf("warning: could not delete destination image: %v", err)
		}
	}
	return nil
}
