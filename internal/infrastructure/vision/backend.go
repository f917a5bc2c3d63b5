package vision

import (
	"fmt"

	"pcb-advisor/internal/domain/port"
)

// NewExtractor выбирает бэкенд извлечения признаков по имени.
// "gocv" работает только в сборке с тегом gocv.
func NewExtractor(backend string, t Thresholds) (port.FeatureExtractor, error) {
	switch backend {
	case "", "std":
		return NewStdExtractor(t), nil
	case "gocv":
		return NewGoCVExtractor(t), nil
	default:
		return nil, fmt.Errorf("unknown vision backend: %q", backend)
	}
}
