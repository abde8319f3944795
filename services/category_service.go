package services

import (
	"strings"

	"travel-backend/models"
	"travel-backend/utils"

	"gorm.io/gorm"
)

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

func (s *CategoryService) Create(category *models.Category) error {
	if strings.TrimSpace(category.Slug) == "" {
		category.Slug = utils.Slugify(category.Name)
	}
	return s.DB.Create(category).Error
}

func (s *CategoryService) GetAll(activeOnly bool) ([]models.Category, error) {
	var categories []models.Category
	q := s.DB.Order("categories.id ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&categories).Error
	return categories, err
}

func (s *CategoryService) GetByID(id uint) (models.Category, error) {
	var category models.Category
	err := s.DB.First(&category, id).Error
	return category, err
}

func (s *CategoryService) Update(id uint, updates map[string]any) (models.Category, error) {
	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		return category, err
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&category).Updates(updates).Error; err != nil {
			return category, err
		}
	}
	err := s.DB.First(&category, id).Error
	return category, err
}

// Delete removes the category only. Destinations and packages that pointed
// at it keep a null category rather than being cascade-deleted.
func (s *CategoryService) Delete(id uint) error {
	if err := s.DB.Model(&models.Destination{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
		return err
	}
	if err := s.DB.Model(&models.TourPackage{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
		return err
	}
	res := s.DB.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
