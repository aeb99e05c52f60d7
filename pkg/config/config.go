package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// BackendConfig describes the general-services PHP backend the gateway
// forwards every domain operation to.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CacheConfig struct {
	CatalogTTL     time.Duration
	FormSessionTTL time.Duration
}

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Backend BackendConfig
	Cache   CacheConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET_KEY", "4C2F8A1D93BE07A5616F2E84CC91D"),
			AccessTokenTTL:  time.Hour * 24,
			RefreshTokenTTL: time.Hour * 24 * 7,
		},
		Backend: BackendConfig{
			BaseURL: getEnv("GSD_BACKEND_URL", "http://localhost/gsd/api/gateway.php"),
			Timeout: time.Second * 20,
		},
		Cache: CacheConfig{
			CatalogTTL:     time.Minute,
			FormSessionTTL: time.Hour * 2,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
