package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"travel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// handleDBError maps persistence errors onto the API's status codes:
// record-not-found → 404, duplicate slug → 400 "already exists", everything
// else is logged and answered with a generic 500.
func handleDBError(c *gin.Context, err error, conflictMsg string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case utils.IsDuplicateKey(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": conflictMsg})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
