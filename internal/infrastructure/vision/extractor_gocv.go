//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"pcb-advisor/internal/domain/entity"
	"pcb-advisor/internal/domain/port"
)

// GoCVExtractor декодирует и масштабирует снимок через OpenCV,
// дальше статистика и классификация общие со StdExtractor.
// Понимает больше форматов, чем стандартный декодер.
type GoCVExtractor struct {
	thresholds Thresholds
}

// NewGoCVExtractor создаёт извлекатель на базе OpenCV
func NewGoCVExtractor(t Thresholds) *GoCVExtractor {
	return &GoCVExtractor{thresholds: t}
}

// Extract декодирует снимок и возвращает набор признаков
func (e *GoCVExtractor) Extract(ctx context.Context, imageData []byte) (entity.FeatureRecord, error) {
	_ = ctx

	mat, err := decodeToMat(imageData)
	if err != nil {
		return entity.FeatureRecord{}, err
	}
	defer mat.Close()

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(mat, &resized, image.Pt(analysisSize, analysisSize), 0, 0, gocv.InterpolationArea)

	img, err := resized.ToImage()
	if err != nil {
		return entity.FeatureRecord{}, fmt.Errorf("convert image: %w", err)
	}

	return extractFromImage(img, e.thresholds), nil
}

// decodeToMat превращает байты изображения в gocv.Mat
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

// Проверка реализации интерфейса
var _ port.FeatureExtractor = (*GoCVExtractor)(nil)
