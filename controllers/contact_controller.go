package controllers

import (
	"errors"
	"log"
	"net/http"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	InquirySvc *services.InquiryService
}

func NewContactController(svc *services.InquiryService) *ContactController {
	return &ContactController{InquirySvc: svc}
}

// SubmitInquiry handles the public contact form. The inquiry is persisted
// first; the admin notification email is best-effort and never affects the
// response the visitor sees.
func (ctl *ContactController) SubmitInquiry(c *gin.Context) {
	var input services.InquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	submission, err := ctl.InquirySvc.Submit(input)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
			return
		}
		log.Printf("failed to save inquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
		return
	}

	if err := utils.SendInquiryNotification(utils.InquiryNotification{
		Name:            submission.Inquiry.Name,
		Email:           submission.Inquiry.Email,
		Phone:           submission.Inquiry.Phone,
		PackageName:     submission.PackageName,
		DestinationName: submission.DestinationName,
		Travelers:       submission.Inquiry.Travelers,
		Adults:          submission.Inquiry.Adults,
		Children:        submission.Inquiry.Children,
		TravelDate:      submission.Inquiry.TravelDate,
		Message:         submission.Inquiry.Message,
	}); err != nil {
		log.Printf("inquiry %d saved but notification not sent: %v", submission.Inquiry.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
