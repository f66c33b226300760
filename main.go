package main

import (
	"log"
	"net/http"
	"os"

	"commune-cms/config"
	"commune-cms/handlers"
	"commune-cms/middleware"
	"commune-cms/migration"
	"commune-cms/repositories"
	"commune-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrations()
		return
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	siteRepo := repositories.NewSiteRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo)
	siteService := services.NewSiteService(siteRepo, services.NewBrandLookupFromEnv())
	tagService := services.NewTagService(tagRepo, siteRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService)
	siteHandler := handlers.NewSiteHandler(siteService)
	tagHandler := handlers.NewTagHandler(tagService)

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
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Posts
			posts := protected.Group("/posts")
			{
				posts.GET("/site/:siteId", postHandler.GetPostsBySite)
				posts.GET("/:postId", postHandler.GetPost)
				posts.POST("", postHandler.CreatePost)
				posts.PUT("/:postId", postHandler.UpdatePost)
				posts.DELETE("/:postId", postHandler.DeletePost)
			}

			// Sites and spaces
			sites := protected.Group("/sites")
			{
				sites.GET("", siteHandler.GetSites)
				sites.GET("/:siteId", siteHandler.GetSite)
				sites.POST("", siteHandler.CreateSite)
				sites.POST("/:siteId/spaces", siteHandler.CreateSpace)
				sites.GET("/:siteId/spaces", siteHandler.GetSpaces)
				sites.POST("/:siteId/reconcile", siteHandler.ReconcileSpaces)
				sites.GET("/:siteId/tags", tagHandler.GetTags)
				sites.POST("/:siteId/tags", tagHandler.CreateTag)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

// runMigrations executes the unification migration on a dedicated
// single-connection pool, closing it whatever the outcome.
func runMigrations() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db := config.InitMigrationDB()
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to access migration connection", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := migration.NewRunner(db, logger).Run(); err != nil {
		logger.Fatal("migration run failed", zap.Error(err))
	}
	logger.Info("migrations complete")
}
