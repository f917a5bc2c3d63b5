package vision

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds настраиваемые пороги извлечения признаков.
// Значения по умолчанию взяты из исходной эвристики.
type Thresholds struct {
	DensityMedium   float64 `yaml:"density_medium"`    // нижняя граница medium
	DensityHigh     float64 `yaml:"density_high"`      // нижняя граница high
	DensityVeryHigh float64 `yaml:"density_very_high"` // нижняя граница very_high
	ColorStdMax     float64 `yaml:"color_std_max"`     // порог разброса цвета для замечания
	ComplexityMax   float64 `yaml:"complexity_max"`    // порог сложности для замечания
	LayerDivisor    float64 `yaml:"layer_divisor"`     // делитель для оценки числа слоёв
	MaxLayers       int     `yaml:"max_layers"`        // верхняя граница числа слоёв
	AmberMargin     float64 `yaml:"amber_margin"`      // перевес R и G над B для янтарного тона
}

// DefaultThresholds возвращает пороги по умолчанию
func DefaultThresholds() Thresholds {
	return Thresholds{
		DensityMedium:   10,
		DensityHigh:     15,
		DensityVeryHigh: 20,
		ColorStdMax:     60,
		ComplexityMax:   25,
		LayerDivisor:    5,
		MaxLayers:       8,
		AmberMargin:     15,
	}
}

// LoadThresholds читает пороги из YAML-файла. Пустой путь — значения
// по умолчанию; в файле достаточно указать только изменённые поля.
func LoadThresholds(path string) (Thresholds, error) {
	t := DefaultThresholds()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read thresholds: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse thresholds: %w", err)
	}

	return t, nil
}
