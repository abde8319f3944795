package controllers

import (
	"net/http"

	"travel-backend/models"
	"travel-backend/services"

	"github.com/gin-gonic/gin"
)

type GalleryController struct {
	Svc *services.GalleryService
}

func NewGalleryController(svc *services.GalleryService) *GalleryController {
	return &GalleryController{Svc: svc}
}

type galleryImagePayload struct {
	URL      *string `json:"url"`
	Alt      *string `json:"alt"`
	IsActive *bool   `json:"isActive"`
	Order    *int    `json:"order"`
}

func (ctl *GalleryController) ListPublic(c *gin.Context) {
	images, err := ctl.Svc.GetAll(true)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, images)
}

func (ctl *GalleryController) List(c *gin.Context) {
	images, err := ctl.Svc.GetAll(false)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, images)
}

func (ctl *GalleryController) Create(c *gin.Context) {
	var payload galleryImagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.URL == nil || *payload.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	image := models.GalleryImage{URL: *payload.URL, IsActive: true}
	if payload.Alt != nil {
		image.Alt = *payload.Alt
	}
	if payload.IsActive != nil {
		image.IsActive = *payload.IsActive
	}
	if payload.Order != nil {
		image.Order = *payload.Order
	}

	if err := ctl.Svc.Create(&image); err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, image)
}

func (ctl *GalleryController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload galleryImagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	image, err := ctl.Svc.GetByID(id)
	if err != nil {
		handleDBError(c, err, "")
		return
	}

	previousURL := image.URL
	if payload.URL != nil {
		image.URL = *payload.URL
	}
	if payload.Alt != nil {
		image.Alt = *payload.Alt
	}
	if payload.IsActive != nil {
		image.IsActive = *payload.IsActive
	}
	if payload.Order != nil {
		image.Order = *payload.Order
	}

	if err := ctl.Svc.Update(&image, previousURL); err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, image)
}

func (ctl *GalleryController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gallery image deleted"})
}
