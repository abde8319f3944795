package controllers

import (
	"net/http"

	"travel-backend/middleware"
	"travel-backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	admin, token, err := ctl.Svc.Login(payload.Email, payload.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
			"name":  admin.Name,
		},
	})
}

func (ctl *AuthController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		if err := ctl.Svc.Logout(header[len(prefix):]); err != nil {
			handleDBError(c, err, "")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ctl *AuthController) Me(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    admin.ID,
		"email": admin.Email,
		"name":  admin.Name,
	})
}
