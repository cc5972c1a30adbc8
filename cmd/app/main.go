package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"progress-api/config"
	"progress-api/internal/application/usecase"
	"progress-api/internal/domain"
	"progress-api/internal/infrastructure/repository"
	"progress-api/internal/middleware"
	handlers "progress-api/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// 1. Конфиг
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Подключение к БД
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// 3. Миграции
	log.Println("Running migrations...")
	if err := db.AutoMigrate(&domain.User{}, &domain.Course{}, &domain.Progress{}, &domain.Badge{}); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	// 4. Redis (кеш каталога + rate limiter)
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// 5. Инициализация слоев
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db, rdb)
	progressRepo := repository.NewProgressRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)

	badgeUC := usecase.NewBadgeUseCase(badgeRepo)
	progressUC := usecase.NewProgressUseCase(userRepo, courseRepo, progressRepo, badgeUC)
	courseUC := usecase.NewCourseUseCase(courseRepo)

	progressHandler := handlers.NewProgressHandler(progressUC)
	badgeHandler := handlers.NewBadgeHandler(badgeUC)
	courseHandler := handlers.NewCourseHandler(courseUC)

	verifier := middleware.NewTokenVerifier(cfg.AccessSecret)
	limiter := middleware.NewRateLimiter(rdb)

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	if cfg.CORSOrigins == "" {
		corsOrigins = []string{"http://localhost:4200"}
	}

	// 6. Запуск HTTP сервера
	router := handlers.NewRouter(progressHandler, badgeHandler, courseHandler, verifier, limiter, corsOrigins)

	log.Printf("Progress API running on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
