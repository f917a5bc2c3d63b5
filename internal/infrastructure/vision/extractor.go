package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"

	// Поддерживаемые форматы снимков
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"pcb-advisor/internal/domain/entity"
	"pcb-advisor/internal/domain/port"
)

// StdExtractor извлекает признаки платы средствами стандартного
// декодера изображений. Не требует OpenCV и используется по умолчанию.
type StdExtractor struct {
	thresholds Thresholds
}

// NewStdExtractor создаёт извлекатель с заданными порогами
func NewStdExtractor(t Thresholds) *StdExtractor {
	return &StdExtractor{thresholds: t}
}

// Extract декодирует снимок и возвращает набор признаков.
// Ошибка декодирования уходит наверх, на границу обработки.
func (e *StdExtractor) Extract(ctx context.Context, imageData []byte) (entity.FeatureRecord, error) {
	_ = ctx

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return entity.FeatureRecord{}, fmt.Errorf("decode image: %w", err)
	}

	return extractFromImage(img, e.thresholds), nil
}

// extractFromImage общий путь классификации для всех бэкендов
func extractFromImage(img image.Image, t Thresholds) entity.FeatureRecord {
	s := computeStats(img)

	density := classifyDensity(s.edge, t)
	pcbType := classifyType(s, t)

	return entity.FeatureRecord{
		PCBType:             pcbType,
		ComponentDensity:    density,
		IntendedApplication: classifyApplication(pcbType, density),
		EstimatedLayerCount: estimateLayers(s.edge, t),
		EdgeIntensity:       s.edge,
		Grayscale:           s.grayscale,
		Issues:              collectIssues(s, t),
	}
}

// Проверка реализации интерфейса
var _ port.FeatureExtractor = (*StdExtractor)(nil)
