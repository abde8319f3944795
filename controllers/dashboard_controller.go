package controllers

import (
	"net/http"

	"travel-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// Stats returns the entity counts the admin dashboard shows.
func (ctl *DashboardController) Stats(c *gin.Context) {
	var categories, destinations, packages, gallery, inquiries, unread int64

	ctl.DB.Model(&models.Category{}).Count(&categories)
	ctl.DB.Model(&models.Destination{}).Count(&destinations)
	ctl.DB.Model(&models.TourPackage{}).Count(&packages)
	ctl.DB.Model(&models.GalleryImage{}).Count(&gallery)
	ctl.DB.Model(&models.Inquiry{}).Count(&inquiries)
	ctl.DB.Model(&models.Inquiry{}).Where("is_read = ?", false).Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"categories":      categories,
		"destinations":    destinations,
		"packages":        packages,
		"galleryImages":   gallery,
		"inquiries":       inquiries,
		"unreadInquiries": unread,
	})
}
