// Package rules отображает признаки платы в требования к контролю
// и сертификации. Чистые функции над таблицами членства: изменение
// правил — это правка данных, а не ветвлений.
package rules

import (
	"sort"

	"pcb-advisor/internal/domain/entity"
)

// Таблицы эскалации уровня контроля. Проверка по типу платы идёт
// раньше проверки по плотности и имеет приоритет.
var (
	comprehensiveTypes = map[entity.PCBType]bool{
		entity.TypeMultilayer:    true,
		entity.TypeHighFrequency: true,
		entity.TypeHighPower:     true,
		entity.TypeRigidFlex:     true,
	}

	comprehensiveDensities = map[entity.ComponentDensity]bool{
		entity.DensityHigh:     true,
		entity.DensityVeryHigh: true,
	}

	enhancedTypes = map[entity.PCBType]bool{
		entity.TypeDoubleSided: true,
		entity.TypeFlexible:    true,
	}
)

// Области применения, требующие UL и ISO9001
var regulatedApplications = map[entity.Application]bool{
	entity.AppIndustrial: true,
	entity.AppMedical:    true,
	entity.AppAutomotive: true,
	entity.AppAerospace:  true,
	entity.AppMilitary:   true,
}

// Области применения, требующие FCC
var emissionApplications = map[entity.Application]bool{
	entity.AppTelecom:   true,
	entity.AppComputing: true,
	entity.AppIoT:       true,
}

// Evaluate вычисляет требования по набору признаков. Функция тотальна:
// любая комбинация признаков даёт ответ.
func Evaluate(f entity.FeatureRecord) entity.RequirementSet {
	return entity.RequirementSet{
		QualityLevel:   qualityLevel(f),
		Certifications: certifications(f.IntendedApplication),
	}
}

// qualityLevel выбирает уровень контроля: сперва полные проверки
// по типу, затем по плотности, затем усиленные, иначе базовые.
func qualityLevel(f entity.FeatureRecord) entity.QualityLevel {
	switch {
	case comprehensiveTypes[f.PCBType] || comprehensiveDensities[f.ComponentDensity]:
		return entity.QualityComprehensive
	case enhancedTypes[f.PCBType] || f.ComponentDensity == entity.DensityMedium:
		return entity.QualityEnhanced
	default:
		return entity.QualityBasic
	}
}

// certifications собирает набор сертификаций для области применения.
// CE и RoHS входят всегда; результат без дубликатов, отсортирован.
func certifications(app entity.Application) []entity.Certification {
	set := map[entity.Certification]bool{
		entity.CertCE:   true,
		entity.CertRoHS: true,
	}

	if regulatedApplications[app] {
		set[entity.CertUL] = true
		set[entity.CertISO9001] = true
	}
	if emissionApplications[app] {
		set[entity.CertFCC] = true
	}
	if app == entity.AppAutomotive {
		set[entity.CertIATF16949] = true
	}
	if app == entity.AppMedical {
		set[entity.CertIEC60950] = true
	}

	certs := make([]entity.Certification, 0, len(set))
	for cert := range set {
		certs = append(certs, cert)
	}
	sort.Slice(certs, func(i, j int) bool { return certs[i] < certs[j] })

	return certs
}
