package main

import (
	"log"
	"net/http"
	"os"

	"commute4good-api/config"
	"commute4good-api/handlers"
	"commute4good-api/helper"
	"commute4good-api/middleware"
	"commute4good-api/repositories"
	"commute4good-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	geolocationRepo := repositories.NewGeolocationRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	badgeRepo := repositories.NewBadgeRepository(db)

	// Initialize services
	geolocationService := services.NewGeolocationService(userRepo, geolocationRepo)
	userService := services.NewUserService(userRepo, tagRepo, badgeRepo)
	tagService := services.NewTagService(tagRepo)
	authService := services.NewAuthService(userRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	geolocationHandler := handlers.NewGeolocationHandler(geolocationService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)
	authHandler := handlers.NewAuthHandler(authService, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	router.POST("/geolocation", geolocationHandler.RecordPosition)
	router.GET("/users/:id", userHandler.GetProfile)
	router.PUT("/users", userHandler.UpdateUser)
	router.POST("/users/login", authHandler.Login)
	router.POST("/tags", tagHandler.AttachTag)

	// Token-protected profile lookup
	router.GET("/profile", middleware.AuthMiddleware(), authHandler.GetProfile)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
