package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken  string // токен бота, нужен только для cmd/bot
	HTTPAddr       string // адрес HTTP API, по умолчанию :8080
	VisionBackend  string // "std" или "gocv"
	ThresholdsFile string // путь к YAML с порогами, пусто — значения по умолчанию
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		VisionBackend:  os.Getenv("VISION_BACKEND"),
		ThresholdsFile: os.Getenv("THRESHOLDS_FILE"),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.VisionBackend == "" {
		cfg.VisionBackend = "std"
	}

	return cfg, nil
}
