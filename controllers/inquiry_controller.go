package controllers

import (
	"net/http"

	"travel-backend/services"

	"github.com/gin-gonic/gin"
)

type InquiryController struct {
	Svc *services.InquiryService
}

func NewInquiryController(svc *services.InquiryService) *InquiryController {
	return &InquiryController{Svc: svc}
}

func (ctl *InquiryController) List(c *gin.Context) {
	inquiries, err := ctl.Svc.GetAll()
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

func (ctl *InquiryController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	inquiry, err := ctl.Svc.GetByID(id)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, inquiry)
}

type markReadPayload struct {
	IsRead *bool `json:"isRead"`
}

func (ctl *InquiryController) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload markReadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	read := true
	if payload.IsRead != nil {
		read = *payload.IsRead
	}
	inquiry, err := ctl.Svc.MarkRead(id, read)
	if err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, inquiry)
}

func (ctl *InquiryController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		handleDBError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted"})
}
