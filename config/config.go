package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	DBPath           string
	BusyTimeout      time.Duration
	LiveQueryWorkers int
	LogMode          string
	LogFile          string
	SeedSampleData   bool
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		DBPath:           "data/shop.db",
		BusyTimeout:      5 * time.Second,
		LiveQueryWorkers: 8, // Default qiymat
		LogMode:          "development",
	}

	if dbPath := os.Getenv("SHOP_DB_PATH"); dbPath != "" {
		config.DBPath = dbPath
	}

	if raw := os.Getenv("SQLITE_BUSY_TIMEOUT"); raw != "" {
		timeout, err := parseBusyTimeout(raw)
		if err != nil {
			return nil, err
		}
		config.BusyTimeout = timeout
	}

	if raw := os.Getenv("LIVE_QUERY_WORKERS"); raw != "" {
		workers, err := cast.ToIntE(raw)
		if err != nil {
			return nil, errors.Wrap(err, "LIVE_QUERY_WORKERS noto'g'ri formatda")
		}
		config.LiveQueryWorkers = workers
	}

	if mode := os.Getenv("LOG_MODE"); mode != "" {
		config.LogMode = mode
	}
	config.LogFile = os.Getenv("LOG_FILE")

	if raw := os.Getenv("SEED_SAMPLE_DATA"); raw != "" {
		seed, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, errors.Wrap(err, "SEED_SAMPLE_DATA noto'g'ri formatda")
		}
		config.SeedSampleData = seed
	}

	// Validatsiya
	if config.LiveQueryWorkers <= 0 {
		return nil, errors.Errorf("LIVE_QUERY_WORKERS musbat bo'lishi kerak: %d", config.LiveQueryWorkers)
	}
	if config.BusyTimeout < time.Millisecond {
		return nil, errors.Errorf("SQLITE_BUSY_TIMEOUT kamida 1ms bo'lishi kerak: %s", config.BusyTimeout)
	}
	if config.LogMode != "development" && config.LogMode != "production" {
		return nil, errors.Errorf("LOG_MODE noma'lum: %s", config.LogMode)
	}

	return config, nil
}

// parseBusyTimeout "250ms", "5s" yoki birliksiz son (millisekund) qabul qiladi
func parseBusyTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if ms, err := cast.ToInt64E(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	timeout, err := cast.ToDurationE(raw)
	if err != nil {
		return 0, errors.Wrap(err, "SQLITE_BUSY_TIMEOUT noto'g'ri formatda")
	}
	return timeout, nil
}
