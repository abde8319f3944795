package services

import (
	"strconv"
	"strings"

	"travel-backend/models"

	"gorm.io/gorm"
)

// Public URLs carry slugs but admin tooling and older callers still pass raw
// IDs, so both resolvers try the slug first and fall back to the primary key.
// A miss is not an error: callers treat nil as "not linked".

func ResolvePackage(db *gorm.DB, token string) *models.TourPackage {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	var pkg models.TourPackage
	if err := db.Where("slug = ?", token).First(&pkg).Error; err == nil {
		return &pkg
	}

	if id, err := strconv.ParseUint(token, 10, 64); err == nil {
		if err := db.First(&pkg, uint(id)).Error; err == nil {
			return &pkg
		}
	}
	return nil
}

func ResolveDestination(db *gorm.DB, token string) *models.Destination {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	var dest models.Destination
	if err := db.Where("slug = ?", token).First(&dest).Error; err == nil {
		return &dest
	}

	if id, err := strconv.ParseUint(token, 10, 64); err == nil {
		if err := db.First(&dest, uint(id)).Error; err == nil {
			return &dest
		}
	}
	return nil
}
