// Package report разворачивает требования в списки проверок,
// справку по сертификациям и итоговый текстовый отчёт.
// Только таблицы и форматирование, никаких решений.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"pcb-advisor/internal/domain/entity"
)

// Assemble собирает итог анализа. В результат попадают только разделы,
// запрошенные опцией; остальные отсутствуют и в структуре, и в тексте.
func Assemble(option entity.AnalysisOption, f entity.FeatureRecord, req entity.RequirementSet) entity.AnalysisResult {
	var result entity.AnalysisResult

	if option.IncludesQuality() {
		result.QualityCheckRequired = fmt.Sprintf("%s (simulated)", req.QualityLevel)
		result.QualityDetails = qualityChecklist(req.QualityLevel, f)
	}

	if option.IncludesCertification() {
		result.CertificationNeeded = certificationSummary(req.Certifications)
		result.CertificationDetails = certificationDetails(req.Certifications)
	}

	result.Details = renderText(option, f, result)

	return result
}

// qualityChecklist строит упорядоченный список проверок: базовые,
// по уровню контроля, по типу платы, по замечаниям.
func qualityChecklist(level entity.QualityLevel, f entity.FeatureRecord) []string {
	checks := make([]string, 0, len(baseChecks)+8)
	checks = append(checks, baseChecks...)
	checks = append(checks, levelChecks[level]...)
	checks = append(checks, typeChecks[f.PCBType]...)

	for _, issue := range f.Issues {
		if issue == entity.IssueNoneDetected {
			continue
		}
		checks = append(checks, "Detailed inspection for "+issue)
	}

	return checks
}

// certificationSummary строит строку вида "CE (simulated); RoHS (simulated)".
// Набор по умолчанию никогда не пуст, но пустая ветка оставлена на случай
// изменения правил.
func certificationSummary(certs []entity.Certification) string {
	if len(certs) == 0 {
		return "none required"
	}

	parts := make([]string, 0, len(certs))
	for _, cert := range certs {
		parts = append(parts, fmt.Sprintf("%s (simulated)", cert))
	}
	return strings.Join(parts, "; ")
}

// certificationDetails выбирает справку по каждому коду из словаря
func certificationDetails(certs []entity.Certification) map[entity.Certification]entity.CertificationInfo {
	details := make(map[entity.Certification]entity.CertificationInfo, len(certs))
	for _, cert := range certs {
		if info, ok := certCatalog[cert]; ok {
			details[cert] = info
		}
	}
	return details
}

// renderText собирает текстовый отчёт: профиль платы, затем разделы
// по выбранной опции.
func renderText(option entity.AnalysisOption, f entity.FeatureRecord, result entity.AnalysisResult) string {
	lines := []string{
		"PCB Type: " + strings.ToUpper(string(f.PCBType)),
		"Intended Application: " + headline(string(f.IntendedApplication)),
		"Component Density: " + headline(string(f.ComponentDensity)),
		"Estimated Layer Count: " + strconv.Itoa(f.EstimatedLayerCount),
	}

	if f.HasIssues() {
		lines = append(lines, "Detected Issues: "+strings.Join(f.Issues, ", "))
	} else {
		lines = append(lines, "Detected Issues: None")
	}

	if option.IncludesQuality() {
		lines = append(lines, "", "RECOMMENDED QUALITY CHECKS:")
		for i, check := range result.QualityDetails {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, check))
		}
	}

	if option.IncludesCertification() {
		if len(result.CertificationDetails) == 0 {
			lines = append(lines, "", "CERTIFICATION REQUIREMENTS: None specifically detected")
			return strings.TrimRight(strings.Join(lines, "\n"), "\n")
		}
		lines = append(lines, "", "CERTIFICATION REQUIREMENTS:")
		// Порядок повторяет отсортированный набор сертификаций
		certs := strings.Split(result.CertificationNeeded, "; ")
		for _, part := range certs {
			code := entity.Certification(strings.TrimSuffix(part, " (simulated)"))
			info, ok := result.CertificationDetails[code]
			if !ok {
				continue
			}
			lines = append(lines, fmt.Sprintf("• %s: %s", code, info.Description))
			lines = append(lines, "  Requirements:")
			for _, req := range info.Requirements {
				lines = append(lines, "  - "+req)
			}
			lines = append(lines, "")
		}
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// headline заменяет подчёркивания пробелами и поднимает первую букву
func headline(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
