package main

import (
	"log"
	"net/http"

	_ "newsapi/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"newsapi/internal/auth"
	"newsapi/internal/cache"
	"newsapi/internal/config"
	"newsapi/internal/db"
	"newsapi/internal/handler"
	"newsapi/internal/logging"
	"newsapi/internal/model"
	"newsapi/internal/repository"
	"newsapi/internal/router"
	"newsapi/internal/service"
)

// @title News API
// @version 1.0
// @description News publishing backend with category management, thumbnail uploads and JWT authentication.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Category{},
		&model.News{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	newsRepo := repository.NewNewsRepository(gormDB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient)
	newsService := service.NewNewsService(newsRepo, categoryRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, logger)
	newsHandler := handler.NewNewsHandler(newsService, logger, cfg.MaxThumbnailBytes)

	e := echo.New()
	router.Register(e, cfg, userRepo, authHandler, categoryHandler, newsHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
