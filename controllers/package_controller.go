package controllers

import (
	"net/http"
	"strings"

	"travel-backend/models"
	"travel-backend/services"

	"github.com/gin-gonic/gin"
)

// Public "Featured Packages" shows at most 6, oldest first. Flagging more
// than 6 packages featured is allowed; the extras just stay off the home
// page until older ones are unflagged.
const featuredPackagesLimit = 6

type PackageController struct {
	Svc *services.PackageService
}

func NewPackageController(svc *services.PackageService) *PackageController {
	return &PackageController{Svc: svc}
}

type packagePayload struct {
	Name              *string                       `json:"name"`
	Slug              *string                       `json:"slug"`
	Duration          *string                       `json:"duration"`
	Description       *string                       `json:"description"`
	CategoryID        *uint                         `json:"categoryId"`
	Price             *float64                      `json:"price"`
	ShowPrice         *bool                         `json:"showPrice"`
	WhatsappNumber    *string                       `json:"whatsappNumber"`
	IsActive          *bool                         `json:"isActive"`
	IsFeatured        *bool                         `json:"isFeatured"`
	Highlights        *[]string                     `json:"highlights"`
	Includes          *[]string                     `json:"includes"`
	Excludes          *[]string                     `json:"excludes"`
	Itinerary         *[]models.ItineraryDay        `json:"itinerary"`
	CostDetails       *string                       `json:"costDetails"`
	DetailedItinerary *string                       `json:"detailedItinerary"`
	Images            *[]services.PackageImageInput `json:"images"`
}

func (ctl *PackageController) ListPublic(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"
	limit := 0
	if featuredOnly {
		limit = featuredPackagesLimit
	}
	pkgs, err := ctl.Svc.GetAll(true, featuredOnly, limit)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

func (ctl *PackageController) GetPublic(c *gin.Context) {
	pkg, err := ctl.Svc.GetByToken(c.Param("slug"))
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	if !pkg.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (ctl *PackageController) List(c *gin.Context) {
	pkgs, err := ctl.Svc.GetAll(false, false, 0)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

func (ctl *PackageController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	pkg, err := ctl.Svc.GetByID(id)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func applyPackagePayload(pkg *models.TourPackage, payload packagePayload) {
	if payload.Name != nil {
		pkg.Name = strings.TrimSpace(*payload.Name)
	}
	if payload.Slug != nil {
		pkg.Slug = strings.TrimSpace(*payload.Slug)
	}
	if payload.Duration != nil {
		pkg.Duration = *payload.Duration
	}
	if payload.Description != nil {
		pkg.Description = *payload.Description
	}
	if payload.CategoryID != nil {
		if *payload.CategoryID == 0 {
			pkg.CategoryID = nil
		} else {
			pkg.CategoryID = payload.CategoryID
		}
	}
	if payload.Price != nil {
		pkg.Price = payload.Price
	}
	if payload.ShowPrice != nil {
		pkg.ShowPrice = *payload.ShowPrice
	}
	if payload.WhatsappNumber != nil {
		pkg.WhatsappNumber = *payload.WhatsappNumber
	}
	if payload.IsActive != nil {
		pkg.IsActive = *payload.IsActive
	}
	if payload.IsFeatured != nil {
		pkg.IsFeatured = *payload.IsFeatured
	}
	if payload.Highlights != nil {
		pkg.Highlights = services.JSONList(*payload.Highlights)
	}
	if payload.Includes != nil {
		pkg.Includes = services.JSONList(*payload.Includes)
	}
	if payload.Excludes != nil {
		pkg.Excludes = services.JSONList(*payload.Excludes)
	}
	if payload.Itinerary != nil {
		pkg.Itinerary = services.JSONValue(*payload.Itinerary)
	}
	if payload.CostDetails != nil {
		pkg.CostDetails = *payload.CostDetails
	}
	if payload.DetailedItinerary != nil {
		pkg.DetailedItinerary = *payload.DetailedItinerary
	}
}

func (ctl *PackageController) Create(c *gin.Context) {
	var payload packagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Name == nil || strings.TrimSpace(*payload.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	pkg := models.TourPackage{IsActive: true, ShowPrice: true}
	applyPackagePayload(&pkg, payload)

	var images []services.PackageImageInput
	if payload.Images != nil {
		images = *payload.Images
	}

	if err := ctl.Svc.Create(&pkg, images); err != nil {
		handleDBError(c, err, "A package with this slug already exists")
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (ctl *PackageController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload packagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	pkg, err := ctl.Svc.GetByID(id)
	if err != nil {
		handleDBError(c, err, "")
		return
	}

	applyPackagePayload(&pkg, payload)

	var images []services.PackageImageInput
	if payload.Images != nil {
		images = *payload.Images
		if images == nil {
			images = []services.PackageImageInput{}
		}
	}

	if err := ctl.Svc.Update(&pkg, images); err != nil {
		handleDBError(c, err, "A package with this slug already exists")
		return
	}

	updated, err := ctl.Svc.GetByID(id)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ctl *PackageController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
}
