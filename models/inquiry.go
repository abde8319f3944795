package models

import "time"

// Inquiry is written once by a public form submission. Admins only flip
// IsRead or delete the row; the composed message is never edited.
type Inquiry struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:150" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Message string `gorm:"type:text" json:"message"`

	PackageID     *uint `gorm:"index" json:"packageId,omitempty"`
	DestinationID *uint `gorm:"index" json:"destinationId,omitempty"`
	// Free-text destination kept verbatim when the token does not resolve.
	Destination string `gorm:"size:255" json:"destination"`

	// Travel details arrive as free text from the form and stay that way.
	Travelers  string `gorm:"size:50" json:"travelers"`
	Adults     string `gorm:"size:50" json:"adults"`
	Children   string `gorm:"size:50" json:"children"`
	TravelDate string `gorm:"size:100" json:"travelDate"`

	Source string `gorm:"size:50;default:'contact'" json:"source"`
	IsRead bool   `gorm:"default:false" json:"isRead"`

	CreatedAt time.Time `json:"created_at"`

	Package           *TourPackage `gorm:"foreignKey:PackageID;references:ID" json:"package,omitempty"`
	LinkedDestination *Destination `gorm:"foreignKey:DestinationID;references:ID" json:"linkedDestination,omitempty"`
}
