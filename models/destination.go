package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Destination struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255" json:"name"`
	Slug        string `gorm:"uniqueIndex;size:255" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Country     string `gorm:"size:150" json:"country"`
	Region      string `gorm:"size:150" json:"region"`
	ImageURL    string `gorm:"size:500" json:"imageUrl"`
	CategoryID  *uint  `gorm:"index" json:"categoryId,omitempty"`

	IsActive  bool `gorm:"default:true" json:"isActive"`
	IsPopular bool `gorm:"default:false" json:"isPopular"`

	Duration     string `gorm:"size:100" json:"duration"`
	TripOverview string `gorm:"type:text" json:"tripOverview"`
	// JSON array of HTML-bearing strings, kept in submission order.
	TripHighlights    datatypes.JSON `json:"tripHighlights,omitempty"`
	DetailedItinerary string         `gorm:"type:text" json:"detailedItinerary"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
}
