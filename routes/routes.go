package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"travel-backend/controllers"
	"travel-backend/middleware"
	"travel-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public site routes, the contact form, and the
// session-guarded admin API.
func SetupRouter(
	authSvc *services.AuthService,
	contactCtl *controllers.ContactController,
	categoryCtl *controllers.CategoryController,
	destinationCtl *controllers.DestinationController,
	packageCtl *controllers.PackageController,
	galleryCtl *controllers.GalleryController,
	inquiryCtl *controllers.InquiryController,
	uploadCtl *controllers.UploadController,
	dashboardCtl *controllers.DashboardController,
	authCtl *controllers.AuthController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/contact", contactCtl.SubmitInquiry)

		api.GET("/categories", categoryCtl.ListPublic)
		api.GET("/destinations", destinationCtl.ListPublic)
		api.GET("/destinations/:slug", destinationCtl.GetPublic)
		api.GET("/packages", packageCtl.ListPublic)
		api.GET("/packages/:slug", packageCtl.GetPublic)
		api.GET("/gallery", galleryCtl.ListPublic)
		api.GET("/settings", controllers.GetSiteSettings)

		auth := api.Group("/auth")
		{
			auth.POST("/login", authCtl.Login)
			auth.POST("/logout", authCtl.Logout)
			auth.GET("/me", middleware.AuthRequired(authSvc), authCtl.Me)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(authSvc))
		{
			admin.GET("/dashboard", dashboardCtl.Stats)
			admin.POST("/upload", uploadCtl.Upload)
			admin.GET("/settings", controllers.GetSiteSettings)
			admin.PUT("/settings", controllers.UpdateSiteSettings)

			categories := admin.Group("/categories")
			{
				categories.GET("", categoryCtl.List)
				categories.GET("/:id", categoryCtl.Get)
				categories.POST("", categoryCtl.Create)
				categories.PATCH("/:id", categoryCtl.Update)
				categories.DELETE("/:id", categoryCtl.Delete)
			}

			destinations := admin.Group("/destinations")
			{
				destinations.GET("", destinationCtl.List)
				destinations.GET("/:id", destinationCtl.Get)
				destinations.POST("", destinationCtl.Create)
				destinations.PATCH("/:id", destinationCtl.Update)
				destinations.DELETE("/:id", destinationCtl.Delete)
			}

			packages := admin.Group("/packages")
			{
				packages.GET("", packageCtl.List)
				packages.GET("/:id", packageCtl.Get)
				packages.POST("", packageCtl.Create)
				packages.PATCH("/:id", packageCtl.Update)
				packages.DELETE("/:id", packageCtl.Delete)
			}

			gallery := admin.Group("/gallery-images")
			{
				gallery.GET("", galleryCtl.List)
				gallery.POST("", galleryCtl.Create)
				gallery.PATCH("/:id", galleryCtl.Update)
				gallery.DELETE("/:id", galleryCtl.Delete)
			}

			inquiries := admin.Group("/inquiries")
			{
				inquiries.GET("", inquiryCtl.List)
				inquiries.GET("/:id", inquiryCtl.Get)
				inquiries.PATCH("/:id/read", inquiryCtl.MarkRead)
				inquiries.DELETE("/:id", inquiryCtl.Delete)
			}
		}
	}

	return r
}
