package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-backend/models"
	"travel-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newContactTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Destination{},
		&models.TourPackage{},
		&models.PackageImage{},
		&models.Inquiry{},
	))

	ctl := NewContactController(services.NewInquiryService(db))
	r := gin.New()
	r.POST("/api/contact", ctl.SubmitInquiry)
	return r, db
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContactMissingEmailReturns400(t *testing.T) {
	r, db := newContactTestRouter(t)

	w := postJSON(r, "/api/contact", `{"name":"Asha","message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")

	var count int64
	db.Model(&models.Inquiry{}).Count(&count)
	assert.Zero(t, count)
}

func TestContactValidSubmission(t *testing.T) {
	r, db := newContactTestRouter(t)
	pkg := models.TourPackage{Name: "Goa Getaway", Slug: "goa-getaway", IsActive: true}
	require.NoError(t, db.Create(&pkg).Error)

	w := postJSON(r, "/api/contact",
		`{"name":"Asha","email":"a@x.com","packageId":"goa-getaway","travelDate":"2025-03-01","message":"Need a quote"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	var inquiry models.Inquiry
	require.NoError(t, db.First(&inquiry).Error)
	require.NotNil(t, inquiry.PackageID)
	assert.Equal(t, pkg.ID, *inquiry.PackageID)
	assert.Equal(t,
		"Preferred Travel Date: 2025-03-01\nInterested in Package: Goa Getaway\n\nNeed a quote",
		inquiry.Message)
}

func TestContactInvalidJSONReturns400(t *testing.T) {
	r, _ := newContactTestRouter(t)
	w := postJSON(r, "/api/contact", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
