package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"travel-backend/config"
	"travel-backend/controllers"
	"travel-backend/routes"
	"travel-backend/services"
)

func storageConfigFromEnv() services.StorageConfig {
	return services.StorageConfig{
		Endpoint:     os.Getenv("STORAGE_ENDPOINT"),
		Region:       os.Getenv("STORAGE_REGION"),
		AccessKey:    os.Getenv("STORAGE_ACCESS_KEY"),
		SecretKey:    os.Getenv("STORAGE_SECRET_KEY"),
		Bucket:       os.Getenv("STORAGE_BUCKET"),
		PublicURL:    os.Getenv("STORAGE_PUBLIC_URL"),
		Folder:       os.Getenv("STORAGE_FOLDER"),
		UsePathStyle: os.Getenv("STORAGE_USE_PATH_STYLE") == "true",
	}
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Object storage: missing credentials disable uploads but never stop boot
	storage, err := services.NewStorageService(storageConfigFromEnv())
	if err != nil {
		log.Fatalf("❌ Storage init failed: %v", err)
	}

	// Initialize services
	authService := services.NewAuthService(db)
	inquiryService := services.NewInquiryService(db)
	categoryService := services.NewCategoryService(db)
	destinationService := services.NewDestinationService(db, storage)
	packageService := services.NewPackageService(db, storage)
	galleryService := services.NewGalleryService(db, storage)

	// Initialize controllers
	contactController := controllers.NewContactController(inquiryService)
	categoryController := controllers.NewCategoryController(categoryService)
	destinationController := controllers.NewDestinationController(destinationService)
	packageController := controllers.NewPackageController(packageService)
	galleryController := controllers.NewGalleryController(galleryService)
	inquiryController := controllers.NewInquiryController(inquiryService)
	uploadController := controllers.NewUploadController(storage)
	dashboardController := controllers.NewDashboardController(db)
	authController := controllers.NewAuthController(authService)

	// Build router
	router := routes.SetupRouter(
		authService,
		contactController,
		categoryController,
		destinationController,
		packageController,
		galleryController,
		inquiryController,
		uploadController,
		dashboardController,
		authController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
