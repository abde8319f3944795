package controllers

import (
	"net/http"
	"strings"

	"travel-backend/models"
	"travel-backend/services"

	"github.com/gin-gonic/gin"
)

// Public "Popular Destinations" shows at most 7, oldest first. The cap is a
// presentation policy: admins may flag any number of destinations popular.
const popularDestinationsLimit = 7

type DestinationController struct {
	Svc *services.DestinationService
}

func NewDestinationController(svc *services.DestinationService) *DestinationController {
	return &DestinationController{Svc: svc}
}

type destinationPayload struct {
	Name              *string   `json:"name"`
	Slug              *string   `json:"slug"`
	Description       *string   `json:"description"`
	Country           *string   `json:"country"`
	Region            *string   `json:"region"`
	ImageURL          *string   `json:"imageUrl"`
	CategoryID        *uint     `json:"categoryId"`
	IsActive          *bool     `json:"isActive"`
	IsPopular         *bool     `json:"isPopular"`
	Duration          *string   `json:"duration"`
	TripOverview      *string   `json:"tripOverview"`
	TripHighlights    *[]string `json:"tripHighlights"`
	DetailedItinerary *string   `json:"detailedItinerary"`
}

func (ctl *DestinationController) ListPublic(c *gin.Context) {
	popularOnly := c.Query("popular") == "true"
	limit := 0
	if popularOnly {
		limit = popularDestinationsLimit
	}
	dests, err := ctl.Svc.GetAll(true, popularOnly, limit)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dests)
}

func (ctl *DestinationController) GetPublic(c *gin.Context) {
	dest, err := ctl.Svc.GetByToken(c.Param("slug"))
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	if !dest.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusOK, dest)
}

func (ctl *DestinationController) List(c *gin.Context) {
	dests, err := ctl.Svc.GetAll(false, false, 0)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dests)
}

func (ctl *DestinationController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	dest, err := ctl.Svc.GetByID(id)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dest)
}

func applyDestinationPayload(dest *models.Destination, payload destinationPayload) {
	if payload.Name != nil {
		dest.Name = strings.TrimSpace(*payload.Name)
	}
	if payload.Slug != nil {
		dest.Slug = strings.TrimSpace(*payload.Slug)
	}
	if payload.Description != nil {
		dest.Description = *payload.Description
	}
	if payload.Country != nil {
		dest.Country = *payload.Country
	}
	if payload.Region != nil {
		dest.Region = *payload.Region
	}
	if payload.ImageURL != nil {
		dest.ImageURL = *payload.ImageURL
	}
	if payload.CategoryID != nil {
		if *payload.CategoryID == 0 {
			dest.CategoryID = nil
		} else {
			dest.CategoryID = payload.CategoryID
		}
	}
	if payload.IsActive != nil {
		dest.IsActive = *payload.IsActive
	}
	if payload.IsPopular != nil {
		dest.IsPopular = *payload.IsPopular
	}
	if payload.Duration != nil {
		dest.Duration = *payload.Duration
	}
	if payload.TripOverview != nil {
		dest.TripOverview = *payload.TripOverview
	}
	if payload.TripHighlights != nil {
		dest.TripHighlights = services.JSONList(*payload.TripHighlights)
	}
	if payload.DetailedItinerary != nil {
		dest.DetailedItinerary = *payload.DetailedItinerary
	}
}

func (ctl *DestinationController) Create(c *gin.Context) {
	var payload destinationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Name == nil || strings.TrimSpace(*payload.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	dest := models.Destination{IsActive: true}
	applyDestinationPayload(&dest, payload)

	if err := ctl.Svc.Create(&dest); err != nil {
		handleDBError(c, err, "A destination with this slug already exists")
		return
	}
	c.JSON(http.StatusOK, dest)
}

func (ctl *DestinationController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload destinationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	dest, err := ctl.Svc.GetByID(id)
	if err != nil {
		handleDBError(c, err, "")
		return
	}

	previousImageURL := dest.ImageURL
	applyDestinationPayload(&dest, payload)

	if err := ctl.Svc.Update(&dest, previousImageURL); err != nil {
		handleDBError(c, err, "A destination with this slug already exists")
		return
	}
	c.JSON(http.StatusOK, dest)
}

func (ctl *DestinationController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted"})
}
