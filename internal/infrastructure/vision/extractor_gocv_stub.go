//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"pcb-advisor/internal/domain/entity"
	"pcb-advisor/internal/domain/port"
)

// GoCVExtractor заглушка для сборки без тега gocv
type GoCVExtractor struct {
	thresholds Thresholds
}

// NewGoCVExtractor создаёт извлекатель-заглушку (без OpenCV)
func NewGoCVExtractor(t Thresholds) *GoCVExtractor {
	return &GoCVExtractor{thresholds: t}
}

// Extract возвращает ошибку, если сборка без тега gocv
func (e *GoCVExtractor) Extract(ctx context.Context, imageData []byte) (entity.FeatureRecord, error) {
	_ = ctx
	_ = imageData
	return entity.FeatureRecord{}, errors.New("gocv build tag is not enabled")
}

// Проверка реализации интерфейса
var _ port.FeatureExtractor = (*GoCVExtractor)(nil)
