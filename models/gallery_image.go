package models

import (
	"time"

	"gorm.io/gorm"
)

type GalleryImage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	URL       string         `gorm:"size:500" json:"url"`
	Alt       string         `gorm:"size:255" json:"alt"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
	Order     int            `gorm:"column:sort_order;default:0" json:"order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
