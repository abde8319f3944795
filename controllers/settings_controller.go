package controllers

import (
	"errors"
	"net/http"

	"travel-backend/config"
	"travel-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type siteSettingsPayload struct {
	SiteName       string `json:"siteName"`
	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	WhatsappNumber string `json:"whatsappNumber"`
	Address        string `json:"address"`
}

func GetSiteSettings(c *gin.Context) {
	var settings models.SiteSetting
	if err := config.DB.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"settings": models.SiteSetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func UpdateSiteSettings(c *gin.Context) {
	var payload siteSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	var settings models.SiteSetting
	err := config.DB.First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = models.SiteSetting{
				SiteName:       payload.SiteName,
				ContactEmail:   payload.ContactEmail,
				ContactPhone:   payload.ContactPhone,
				WhatsappNumber: payload.WhatsappNumber,
				Address:        payload.Address,
			}
			if err := config.DB.Create(&settings).Error; err != nil {
				handleDBError(c, err, "")
				return
			}
			c.JSON(http.StatusOK, gin.H{"settings": settings})
			return
		}
		handleDBError(c, err, "")
		return
	}

	settings.SiteName = payload.SiteName
	settings.ContactEmail = payload.ContactEmail
	settings.ContactPhone = payload.ContactPhone
	settings.WhatsappNumber = payload.WhatsappNumber
	settings.Address = payload.Address
	if err := config.DB.Save(&settings).Error; err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
