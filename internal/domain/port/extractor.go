package port

import (
	"context"

	"pcb-advisor/internal/domain/entity"
)

// FeatureExtractor интерфейс извлечения признаков платы из снимка
type FeatureExtractor interface {
	// Extract декодирует изображение и возвращает набор признаков
	Extract(ctx context.Context, imageData []byte) (entity.FeatureRecord, error)
}
