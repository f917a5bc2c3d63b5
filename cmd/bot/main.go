package main

import (
	"log"

	"pcb-advisor/config"
	"pcb-advisor/internal/api/telegram"
	"pcb-advisor/internal/container"
	"pcb-advisor/internal/infrastructure/storage"
	"pcb-advisor/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	thresholds, err := vision.LoadThresholds(cfg.ThresholdsFile)
	if err != nil {
		log.Fatalf("Failed to load thresholds: %v", err)
	}

	extractor, err := vision.NewExtractor(cfg.VisionBackend, thresholds)
	if err != nil {
		log.Fatalf("Failed to create extractor: %v", err)
	}

	// Создаём хранилище пользователей
	userRepo := storage.NewMemoryUserRepository()

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, extractor)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
