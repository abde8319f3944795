package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ItineraryDay is one entry of a package itinerary. The itinerary is stored
// as an ordered JSON array so day ordering survives round trips (a plain
// map would not guarantee it).
type ItineraryDay struct {
	Label string `json:"label"`
	HTML  string `json:"html"`
}

type TourPackage struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"size:255" json:"name"`
	Slug        string   `gorm:"uniqueIndex;size:255" json:"slug"`
	Duration    string   `gorm:"size:100" json:"duration"`
	Description string   `gorm:"type:text" json:"description"`
	CategoryID  *uint    `gorm:"index" json:"categoryId,omitempty"`
	Price       *float64 `json:"price,omitempty"`

	ShowPrice      bool   `gorm:"default:true" json:"showPrice"`
	WhatsappNumber string `gorm:"size:50" json:"whatsappNumber"`
	IsActive       bool   `gorm:"default:true" json:"isActive"`
	IsFeatured     bool   `gorm:"default:false" json:"isFeatured"`

	// JSON arrays of strings, submission order preserved.
	Highlights datatypes.JSON `json:"highlights,omitempty"`
	Includes   datatypes.JSON `json:"includes,omitempty"`
	Excludes   datatypes.JSON `json:"excludes,omitempty"`
	// JSON array of ItineraryDay.
	Itinerary datatypes.JSON `json:"itinerary,omitempty"`

	CostDetails       string `gorm:"type:text" json:"costDetails"`
	DetailedItinerary string `gorm:"type:text" json:"detailedItinerary"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Category *Category      `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	Images   []PackageImage `gorm:"foreignKey:PackageID" json:"images"`
}
