package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Store Config
	StoreDriver string `env:"STORE_DRIVER" envDefault:"file"`
	DataFile    string `env:"DATA_FILE" envDefault:"data/history.json"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Redis Config (кэш обратного геокодирования, опционально)
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Geocode Config
	NominatimURL     string        `env:"NOMINATIM_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocodeUserAgent string        `env:"GEOCODE_USER_AGENT" envDefault:"attendance-system-demo/1.0 (contact: demo@example.com)"`
	GeocodeTimeout   time.Duration `env:"GEOCODE_TIMEOUT" envDefault:"5s"`
	GeocodeCacheTTL  time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"5m"`

	// Часовой пояс для фильтра "сегодня"
	TimeZone string `env:"TIME_ZONE" envDefault:"Local"`

	// Check-In Client Config
	CheckinPIN    string  `env:"CHECKIN_PIN" envDefault:"1234"`
	CheckinUserID string  `env:"CHECKIN_USER_ID" envDefault:"employee-1"`
	ServerURL     string  `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	FallbackLat   float64 `env:"FALLBACK_LAT" envDefault:"22.302711"`
	FallbackLon   float64 `env:"FALLBACK_LON" envDefault:"114.177216"`

	// Загруженный часовой пояс (разобранный TimeZone)
	Location *time.Location
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		StoreDriver:      getEnv("STORE_DRIVER", StoreDriverFile),
		DataFile:         getEnv("DATA_FILE", "data/history.json"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),
		NominatimURL:     getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		GeocodeUserAgent: getEnv("GEOCODE_USER_AGENT", "attendance-system-demo/1.0 (contact: demo@example.com)"),
		GeocodeTimeout:   getEnvAsDuration("GEOCODE_TIMEOUT", 5*time.Second),
		GeocodeCacheTTL:  getEnvAsDuration("GEOCODE_CACHE_TTL", 5*time.Minute),
		TimeZone:         getEnv("TIME_ZONE", "Local"),
		CheckinPIN:       getEnv("CHECKIN_PIN", "1234"),
		CheckinUserID:    getEnv("CHECKIN_USER_ID", "employee-1"),
		ServerURL:        getEnv("SERVER_URL", "http://localhost:8080"),
		FallbackLat:      getEnvAsFloat("FALLBACK_LAT", 22.302711),
		FallbackLon:      getEnvAsFloat("FALLBACK_LON", 114.177216),
	}

	switch cfg.StoreDriver {
	case StoreDriverFile, StoreDriverPostgres:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER: %q", cfg.StoreDriver)
	}

	if cfg.StoreDriver == StoreDriverPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=postgres")
	}

	loc, err := loadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE %q: %w", cfg.TimeZone, err)
	}
	cfg.Location = loc

	return cfg, nil
}

// loadLocation разбирает имя часового пояса, "Local" означает пояс процесса
func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
