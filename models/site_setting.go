package models

import "time"

type SiteSetting struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SiteName       string    `gorm:"size:255" json:"siteName"`
	ContactEmail   string    `gorm:"size:150" json:"contactEmail"`
	ContactPhone   string    `gorm:"size:50" json:"contactPhone"`
	WhatsappNumber string    `gorm:"size:50" json:"whatsappNumber"`
	Address        string    `gorm:"type:text" json:"address"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
