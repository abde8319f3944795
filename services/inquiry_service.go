package services

import (
	"errors"
	"fmt"
	"strings"

	"travel-backend/models"

	"gorm.io/gorm"
)

var ErrValidation = errors.New("validation failed")

type InquiryService struct {
	DB *gorm.DB
}

func NewInquiryService(db *gorm.DB) *InquiryService {
	return &InquiryService{DB: db}
}

// InquiryInput is a public contact form submission. PackageID and
// DestinationID may be a slug or a raw ID; travel details are free text.
type InquiryInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PackageID     string `json:"packageId"`
	DestinationID string `json:"destinationId"`
	Destination   string `json:"destination"`
	Travelers     string `json:"travelers"`
	Adults        string `json:"adults"`
	Children      string `json:"children"`
	TravelDate    string `json:"travelDate"`
	Message       string `json:"message"`
	Source        string `json:"source"`
}

// InquirySubmission is a persisted inquiry plus the names resolved at write
// time, which the notification email needs.
type InquirySubmission struct {
	Inquiry         *models.Inquiry
	PackageName     string
	DestinationName string
}

func (s *InquiryService) Submit(in InquiryInput) (*InquirySubmission, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}

	var (
		packageID       *uint
		destinationID   *uint
		packageName     string
		destinationName string
	)

	if pkg := ResolvePackage(s.DB, in.PackageID); pkg != nil {
		packageID = &pkg.ID
		packageName = pkg.Name
	}
	if dest := ResolveDestination(s.DB, in.DestinationID); dest != nil {
		destinationID = &dest.ID
		destinationName = dest.Name
	}

	// Unresolved tokens leave the FK null; the free-text destination the
	// visitor typed is kept verbatim either way.
	composedDest := destinationName
	if composedDest == "" {
		composedDest = strings.TrimSpace(in.Destination)
	}

	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = "contact"
	}

	inquiry := models.Inquiry{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         strings.TrimSpace(in.Phone),
		Message:       ComposeInquiryMessage(in, composedDest, packageName),
		PackageID:     packageID,
		DestinationID: destinationID,
		Destination:   strings.TrimSpace(in.Destination),
		Travelers:     strings.TrimSpace(in.Travelers),
		Adults:        strings.TrimSpace(in.Adults),
		Children:      strings.TrimSpace(in.Children),
		TravelDate:    strings.TrimSpace(in.TravelDate),
		Source:        source,
	}

	if err := s.DB.Create(&inquiry).Error; err != nil {
		return nil, err
	}

	return &InquirySubmission{
		Inquiry:         &inquiry,
		PackageName:     packageName,
		DestinationName: composedDest,
	}, nil
}

// ComposeInquiryMessage folds the auxiliary form fields into the free-text
// message. The line order is a fixed contract the admin panel and the
// notification email both rely on:
//
//	Preferred Travel Date: ...
//	Adults: ..., Children: ...
//	Total Travelers: ...
//	Interested in Destination: ...
//	Interested in Package: ...
//	<blank line>
//	<visitor message>
func ComposeInquiryMessage(in InquiryInput, destinationName, packageName string) string {
	var lines []string

	if date := strings.TrimSpace(in.TravelDate); date != "" {
		lines = append(lines, "Preferred Travel Date: "+date)
	}

	adults := strings.TrimSpace(in.Adults)
	children := strings.TrimSpace(in.Children)
	if adults != "" || children != "" {
		if adults == "" {
			adults = "0"
		}
		if children == "" {
			children = "0"
		}
		lines = append(lines, fmt.Sprintf("Adults: %s, Children: %s", adults, children))
	}

	if travelers := strings.TrimSpace(in.Travelers); travelers != "" {
		lines = append(lines, "Total Travelers: "+travelers)
	}
	if destinationName != "" {
		lines = append(lines, "Interested in Destination: "+destinationName)
	}
	if packageName != "" {
		lines = append(lines, "Interested in Package: "+packageName)
	}

	body := strings.TrimSpace(in.Message)
	if body == "" {
		body = "No additional details provided."
	}
	if len(lines) == 0 {
		return body
	}
	return strings.Join(lines, "\n") + "\n\n" + body
}

func (s *InquiryService) GetAll() ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.DB.
		Preload("Package").
		Preload("LinkedDestination").
		Order("inquiries.id DESC").
		Find(&inquiries).Error
	return inquiries, err
}

func (s *InquiryService) GetByID(id uint) (models.Inquiry, error) {
	var inquiry models.Inquiry
	err := s.DB.
		Preload("Package").
		Preload("LinkedDestination").
		First(&inquiry, id).Error
	return inquiry, err
}

func (s *InquiryService) MarkRead(id uint, read bool) (models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.DB.First(&inquiry, id).Error; err != nil {
		return inquiry, err
	}
	if err := s.DB.Model(&inquiry).Update("is_read", read).Error; err != nil {
		return inquiry, err
	}
	inquiry.IsRead = read
	return inquiry, nil
}

func (s *InquiryService) Delete(id uint) error {
	res := s.DB.Delete(&models.Inquiry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
