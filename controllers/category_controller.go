package controllers

import (
	"net/http"
	"strings"

	"travel-backend/models"
	"travel-backend/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Svc *services.CategoryService
}

func NewCategoryController(svc *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: svc}
}

type categoryPayload struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// ListPublic returns active categories for the public site.
func (ctl *CategoryController) ListPublic(c *gin.Context) {
	categories, err := ctl.Svc.GetAll(true)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.Svc.GetAll(false)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (ctl *CategoryController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	category, err := ctl.Svc.GetByID(id)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctl *CategoryController) Create(c *gin.Context) {
	var payload categoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Name == nil || strings.TrimSpace(*payload.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	category := models.Category{
		Name:     strings.TrimSpace(*payload.Name),
		IsActive: true,
	}
	if payload.Slug != nil {
		category.Slug = strings.TrimSpace(*payload.Slug)
	}
	if payload.Description != nil {
		category.Description = *payload.Description
	}
	if payload.IsActive != nil {
		category.IsActive = *payload.IsActive
	}

	if err := ctl.Svc.Create(&category); err != nil {
		handleDBError(c, err, "A category with this slug already exists")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctl *CategoryController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload categoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updates := map[string]any{}
	if payload.Name != nil {
		updates["name"] = strings.TrimSpace(*payload.Name)
	}
	if payload.Slug != nil {
		updates["slug"] = strings.TrimSpace(*payload.Slug)
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.IsActive != nil {
		updates["is_active"] = *payload.IsActive
	}

	category, err := ctl.Svc.Update(id, updates)
	if err != nil {
		handleDBError(c, err, "A category with this slug already exists")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctl *CategoryController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
