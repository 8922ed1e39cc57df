package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	ServiceHost string
	ServicePort int

	PostgresDSN string

	RedisAddr     string
	RedisPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string

	SimbadBaseURL   string
	HorizonsBaseURL string
	// таймаут внешних запросов каталога/эфемерид
	LookupTimeout time.Duration
}

func NewConfig() (*Config, error) {
	// .env опционален, в проде переменные приходят из окружения
	if err := godotenv.Load(); err != nil {
		log.Info("файл .env не найден, используем переменные окружения")
	}

	cfg := &Config{
		ServiceHost:     getEnv("SERVICE_HOST", "0.0.0.0"),
		ServicePort:     getEnvInt("SERVICE_PORT", 8080),
		PostgresDSN:     getEnv("POSTGRES_DSN", "host=127.0.0.1 port=5432 user=lodestar password=lodestar dbname=lodestar sslmode=disable"),
		RedisAddr:       getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		MinioEndpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:  getEnv("MINIO_ACCESS_KEY", "minio"),
		MinioSecretKey:  getEnv("MINIO_SECRET_KEY", "minio124"),
		MinioBucket:     getEnv("MINIO_BUCKET", "drawings"),
		SimbadBaseURL:   getEnv("SIMBAD_BASE_URL", "https://simbad.cds.unistra.fr/simbad/sim-tap"),
		HorizonsBaseURL: getEnv("HORIZONS_BASE_URL", "https://ssd.jpl.nasa.gov/api/horizons.api"),
		LookupTimeout:   time.Duration(getEnvInt("LOOKUP_TIMEOUT_SECONDS", 10)) * time.Second,
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warnf("некорректное значение %s=%q, используем %d", key, value, fallback)
		return fallback
	}
	return parsed
}
