package models

import "time"

// PackageImage rows are owned by their TourPackage and replaced wholesale
// whenever the package's image set is updated.
type PackageImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PackageID uint      `gorm:"index" json:"packageId"`
	URL       string    `gorm:"size:500" json:"url"`
	Alt       string    `gorm:"size:255" json:"alt"`
	IsPrimary bool      `gorm:"default:false" json:"isPrimary"`
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
