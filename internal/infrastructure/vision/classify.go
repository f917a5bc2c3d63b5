package vision

import (
	"pcb-advisor/internal/domain/entity"
)

// typeOverrideRule цветовое override-правило определения типа платы.
// Правила перебираются по порядку, срабатывает первое подходящее.
type typeOverrideRule struct {
	name   string
	match  func(s rasterStats, t Thresholds) bool
	result entity.PCBType
}

// typeOverrideRules применяются после плотностной оценки типа и имеют
// приоритет над ней. Для чёрно-белых снимков правила пропускаются.
var typeOverrideRules = []typeOverrideRule{
	{
		// Янтарный полиимид при высокой сложности — жёстко-гибкая плата
		name: "amber dense rigid-flex",
		match: func(s rasterStats, t Thresholds) bool {
			return amberTint(s, t) && s.edge >= t.DensityHigh
		},
		result: entity.TypeRigidFlex,
	},
	{
		// Янтарный полиимид — гибкая плата
		name:   "amber flexible",
		match:  func(s rasterStats, t Thresholds) bool { return amberTint(s, t) },
		result: entity.TypeFlexible,
	},
	{
		// Синеватый ламинат часто означает высокочастотный материал
		name: "blue high-frequency",
		match: func(s rasterStats, t Thresholds) bool {
			return s.mean[2] > s.mean[0] && s.mean[2] > s.mean[1]
		},
		result: entity.TypeHighFrequency,
	},
	{
		// Красноватый ламинат — силовые и специальные платы
		name: "red high-power",
		match: func(s rasterStats, t Thresholds) bool {
			return s.mean[0] > s.mean[1] && s.mean[0] > s.mean[2]
		},
		result: entity.TypeHighPower,
	},
}

// amberTint янтарный тон: красный и зелёный каналы заметно выше синего.
// Требуемый перевес исключает нейтрально-серые снимки.
func amberTint(s rasterStats, t Thresholds) bool {
	return s.mean[0] > s.mean[2]+t.AmberMargin && s.mean[1] > s.mean[2]+t.AmberMargin
}

// applicationRule правило вывода области применения из типа и плотности
type applicationRule struct {
	name   string
	match  func(pcbType entity.PCBType, density entity.ComponentDensity) bool
	result entity.Application
}

// applicationRules перебираются по порядку, срабатывает первое подходящее.
// Последнее правило — значение по умолчанию.
var applicationRules = []applicationRule{
	{
		name: "high-frequency telecom",
		match: func(pcbType entity.PCBType, _ entity.ComponentDensity) bool {
			return pcbType == entity.TypeHighFrequency
		},
		result: entity.AppTelecom,
	},
	{
		name: "dense high-power automotive",
		match: func(pcbType entity.PCBType, density entity.ComponentDensity) bool {
			return pcbType == entity.TypeHighPower && density.Rank() >= entity.DensityHigh.Rank()
		},
		result: entity.AppAutomotive,
	},
	{
		name: "high-power industrial",
		match: func(pcbType entity.PCBType, _ entity.ComponentDensity) bool {
			return pcbType == entity.TypeHighPower
		},
		result: entity.AppIndustrial,
	},
	{
		name: "flexible wearables",
		match: func(pcbType entity.PCBType, _ entity.ComponentDensity) bool {
			return pcbType == entity.TypeFlexible
		},
		result: entity.AppWearables,
	},
	{
		name: "rigid-flex medical",
		match: func(pcbType entity.PCBType, _ entity.ComponentDensity) bool {
			return pcbType == entity.TypeRigidFlex
		},
		result: entity.AppMedical,
	},
	{
		name: "dense multilayer aerospace",
		match: func(pcbType entity.PCBType, density entity.ComponentDensity) bool {
			return pcbType == entity.TypeMultilayer && density == entity.DensityVeryHigh
		},
		result: entity.AppAerospace,
	},
	{
		name: "multilayer computing",
		match: func(pcbType entity.PCBType, _ entity.ComponentDensity) bool {
			return pcbType == entity.TypeMultilayer
		},
		result: entity.AppComputing,
	},
	{
		name:   "default consumer electronics",
		match:  func(entity.PCBType, entity.ComponentDensity) bool { return true },
		result: entity.AppConsumerElectronics,
	},
}

// classifyDensity ступенчатая функция плотности монтажа по вариации
// яркости. Границы не пересекаются и покрывают всю ось.
func classifyDensity(edge float64, t Thresholds) entity.ComponentDensity {
	switch {
	case edge < t.DensityMedium:
		return entity.DensityLow
	case edge < t.DensityHigh:
		return entity.DensityMedium
	case edge < t.DensityVeryHigh:
		return entity.DensityHigh
	default:
		return entity.DensityVeryHigh
	}
}

// guessTypeByEdge плотностная оценка типа до цветовых правил
func guessTypeByEdge(edge float64, t Thresholds) entity.PCBType {
	switch {
	case edge < t.DensityMedium:
		return entity.TypeSingleSided
	case edge < t.DensityVeryHigh:
		return entity.TypeDoubleSided
	default:
		return entity.TypeMultilayer
	}
}

// classifyType тип платы: плотностная оценка плюс цветовые override-правила
func classifyType(s rasterStats, t Thresholds) entity.PCBType {
	guess := guessTypeByEdge(s.edge, t)
	if s.grayscale {
		return guess
	}

	for _, rule := range typeOverrideRules {
		if rule.match(s, t) {
			return rule.result
		}
	}

	return guess
}

// classifyApplication область применения по упорядоченному списку правил
func classifyApplication(pcbType entity.PCBType, density entity.ComponentDensity) entity.Application {
	for _, rule := range applicationRules {
		if rule.match(pcbType, density) {
			return rule.result
		}
	}
	return entity.AppUnknown
}

// estimateLayers монотонная оценка числа слоёв с ограничением сверху
func estimateLayers(edge float64, t Thresholds) int {
	layers := int(edge / t.LayerDivisor)
	if layers < 1 {
		layers = 1
	}
	if layers > t.MaxLayers {
		layers = t.MaxLayers
	}
	return layers
}

// collectIssues замечания по снимку; при их отсутствии — заглушка
func collectIssues(s rasterStats, t Thresholds) []string {
	var issues []string

	maxStd := s.std[0]
	for _, v := range s.std[1:] {
		if v > maxStd {
			maxStd = v
		}
	}

	if maxStd > t.ColorStdMax {
		issues = append(issues, "potential color inconsistency")
	}
	if s.edge > t.ComplexityMax {
		issues = append(issues, "high complexity - careful inspection recommended")
	}

	if len(issues) == 0 {
		return []string{entity.IssueNoneDetected}
	}
	return issues
}
