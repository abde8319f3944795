package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel-backend/models"
	"travel-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.AdminSession{}))

	auth := services.NewAuthService(db)
	r := gin.New()
	r.GET("/protected", AuthRequired(auth), func(c *gin.Context) {
		admin := CurrentAdmin(c)
		c.JSON(http.StatusOK, gin.H{"email": admin.Email})
	})
	return r, db
}

func TestAuthRequiredWithoutTokenIs401(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestAuthRequiredWithBadTokenIs401(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredWithValidSession(t *testing.T) {
	r, db := newAuthTestRouter(t)

	admin := models.Admin{Email: "admin@travel.local", Password: "x", Name: "Admin"}
	require.NoError(t, db.Create(&admin).Error)
	session := models.AdminSession{
		Token:     "good-token",
		AdminID:   admin.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&session).Error)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"admin@travel.local"}`, w.Body.String())
}
