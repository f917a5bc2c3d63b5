package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pcb-advisor/internal/container"
	"pcb-advisor/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот-советник по контролю качества печатных плат.

📸 Отправьте мне фото платы, и я подберу рекомендуемые проверки
и требования по сертификации (симуляция, не реальная дефектоскопия).

📋 Команды:
/full — проверки качества + сертификация
/quality — только проверки качества
/certs — только сертификация
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Выберите режим: /full, /quality или /certs
2️⃣ Отправьте фото платы
3️⃣ Получите отчёт: профиль платы, проверки, сертификации

💡 Рекомендации:
• Снимайте при хорошем освещении
• Плата должна занимать большую часть кадра
• Фото должно быть чётким

📋 Команды:
/full — полный анализ
/quality — только качество
/certs — только сертификация
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото платы для анализа."
	msgCancelled       = "❌ Операция отменена. Выберите режим: /full, /quality или /certs."
	msgSendPhoto       = "📸 Сначала выберите режим (/full, /quality или /certs), затем отправьте фото платы."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Анализирую снимок..."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
)

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	services *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		services: services,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.services.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 && user.State == entity.StateAwaitingPhoto {
		b.handlePhoto(ctx, msg, user)
		return
	}

	// Текстовое сообщение или фото без выбранного режима
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.services.UserService.Cancel(ctx, userID, chatID)
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "full":
		b.services.UserService.BeginAnalysis(ctx, userID, chatID, entity.OptionBoth)
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "quality":
		b.services.UserService.BeginAnalysis(ctx, userID, chatID, entity.OptionQualityOnly)
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "certs":
		b.services.UserService.BeginAnalysis(ctx, userID, chatID, entity.OptionCertification)
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "cancel":
		b.services.UserService.Cancel(ctx, userID, chatID)
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handlePhoto обрабатывает входящее фото
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	b.services.UserService.SetState(ctx, user.ID, user.ChatID, entity.StateProcessing)
	b.sendMessage(msg.Chat.ID, msgProcessing)

	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		b.services.UserService.Cancel(ctx, user.ID, user.ChatID)
		return
	}

	result := b.services.AnalyzerService.Analyze(ctx, imageData, user.Option)
	if result.IsError() {
		log.Printf("Analysis failed: %s", result.Details)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
	} else {
		b.sendMessage(msg.Chat.ID, result.Details)
	}

	// Возвращаем в главное меню
	b.services.UserService.Cancel(ctx, user.ID, user.ChatID)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
