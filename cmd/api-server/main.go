package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookhub/database"
	"bookhub/internal/cache"
	"bookhub/internal/config"
	"bookhub/internal/http-api/handler"
	"bookhub/internal/http-api/middleware"
	"bookhub/internal/http-api/repository"
	"bookhub/internal/http-api/service"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// 2. Connect to the database
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("could not get database instance: %v", err)
	}
	defer sqlDB.Close()

	// 3. Connect to redis; the catalog works without it, only slower
	bookCache, err := cache.NewBookCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		log.Printf("redis unavailable, continuing without cache: %v", err)
		bookCache = nil
	} else {
		defer bookCache.Close()
	}

	// 4. Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	bookRepo := repository.NewBookRepo(db)
	reviewRepo := repository.NewReviewRepository(db)
	likeRepo := repository.NewReviewLikeRepository(db)
	readingListRepo := repository.NewReadingListRepository(db)

	// 5. Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	bookService := service.NewBookService(bookRepo, bookCache)
	reviewService := service.NewReviewService(reviewRepo, likeRepo, bookRepo, bookCache)
	readingListService := service.NewReadingListService(readingListRepo, bookRepo)
	userService := service.NewUserService(userRepo, reviewRepo, readingListRepo)

	// 6. Handlers
	authHandler := handler.NewAuthHandler(authService, userService, cfg.AccessTokenTTL)
	bookHandler := handler.NewBookHandler(bookService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	readingListHandler := handler.NewReadingListHandler(readingListService)
	userHandler := handler.NewUserHandler(userService)

	// 7. Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RateLimit(middleware.NewClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "API is alive and database connected",
		})
	})

	api := r.Group("/api")
	protected := api.Group("", middleware.AuthMiddleware(authService))

	authHandler.RegisterRoutes(api, protected)
	bookHandler.RegisterRoutes(api, protected)
	reviewHandler.RegisterRoutes(api, protected)
	readingListHandler.RegisterRoutes(protected)
	userHandler.RegisterRoutes(api, protected)

	httpServer := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Println("Server running at", httpServer)
	if err := r.Run(httpServer); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
