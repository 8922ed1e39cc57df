package main

import (
	"log"

	"github.com/curtisnlogan/lodestar-project/internal/app/catalog"
	"github.com/curtisnlogan/lodestar-project/internal/app/config"
	"github.com/curtisnlogan/lodestar-project/internal/app/enrich"
	"github.com/curtisnlogan/lodestar-project/internal/app/handler"
	"github.com/curtisnlogan/lodestar-project/internal/app/middleware"
	"github.com/curtisnlogan/lodestar-project/internal/app/redisdb"
	"github.com/curtisnlogan/lodestar-project/internal/app/repository"
	app "github.com/curtisnlogan/lodestar-project/internal/pkg"

	"github.com/gin-gonic/gin"
)

func main() {
	// --- Загружаем конфиг ---
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфига: %v", err)
	}

	// --- Подключаемся к БД ---
	repo, err := repository.NewRepository(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}

	// --- Redis для токенов сессий ---
	redisClient := redisdb.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	repo.Redis = repository.NewRedisRepository(redisClient)
	middleware.InitAuth(repo)

	// --- MinIO для зарисовок ---
	minioClient := config.InitMinio(cfg)

	// --- Клиенты каталога и эфемерид ---
	simbad := catalog.NewSimbadClient(cfg.SimbadBaseURL, cfg.LookupTimeout)
	horizons := catalog.NewHorizonsClient(cfg.HorizonsBaseURL, cfg.LookupTimeout)
	enricher := enrich.NewEnricher(simbad, horizons)

	// --- Создаем handler ---
	h := handler.NewHandler(repo, enricher, minioClient, cfg.MinioBucket)

	// --- Создаем Gin роутер ---
	router := gin.Default()

	// --- Собираем приложение ---
	application := app.NewApp(cfg, router, h)

	// --- Запуск ---
	application.RunApp()
}
