package controllers

import (
	"io"
	"log"
	"net/http"

	"travel-backend/services"

	"github.com/gin-gonic/gin"
)

// 10 MB; the admin UI compresses images client-side before uploading.
const maxUploadBytes = 10 << 20

type UploadController struct {
	Storage *services.StorageService
}

func NewUploadController(storage *services.StorageService) *UploadController {
	return &UploadController{Storage: storage}
}

// Upload stores an admin-submitted image in the bucket and returns its
// public URL for the caller to attach to an entity.
func (ctl *UploadController) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		log.Printf("failed to read upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if len(data) > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	url, err := ctl.Storage.Upload(c.Request.Context(), data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
