package app

import (
	"context"
	"errors"
	"fmt"

	"pcb-advisor/internal/domain/entity"
	"pcb-advisor/internal/domain/port"
	"pcb-advisor/internal/domain/report"
	"pcb-advisor/internal/domain/rules"
)

// AnalyzerService единственная точка входа анализа: снимок и опция
// на входе, готовый результат на выходе. Любой сбой конвертируется
// здесь в единообразный результат-ошибку и не уходит наружу.
type AnalyzerService struct {
	extractor port.FeatureExtractor
}

// NewAnalyzerService создаёт сервис анализа снимков плат
func NewAnalyzerService(extractor port.FeatureExtractor) *AnalyzerService {
	return &AnalyzerService{extractor: extractor}
}

// Analyze прогоняет снимок через конвейер: признаки → правила → отчёт.
// Опции: 1 — качество и сертификация, 2 — только качество, 3 — только
// сертификация; прочие значения дают результат с одним профилем платы.
func (s *AnalyzerService) Analyze(ctx context.Context, imageData []byte, option entity.AnalysisOption) entity.AnalysisResult {
	result, err := s.analyze(ctx, imageData, option)
	if err != nil {
		return errorResult(err)
	}
	return result
}

// analyze выполняет конвейер; паника внутри обработки тоже
// превращается в обычную ошибку.
func (s *AnalyzerService) analyze(ctx context.Context, imageData []byte, option entity.AnalysisOption) (result entity.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("image processing panic: %v", r)
		}
	}()

	if s.extractor == nil {
		return entity.AnalysisResult{}, errors.New("feature extractor is not configured")
	}

	features, err := s.extractor.Extract(ctx, imageData)
	if err != nil {
		return entity.AnalysisResult{}, err
	}

	requirements := rules.Evaluate(features)

	return report.Assemble(option, features, requirements), nil
}

// errorResult единообразная оболочка ошибки обработки
func errorResult(err error) entity.AnalysisResult {
	return entity.AnalysisResult{
		QualityCheckRequired: "Error",
		CertificationNeeded:  "Error",
		Details:              fmt.Sprintf("An error occurred during image processing: %v", err),
	}
}
