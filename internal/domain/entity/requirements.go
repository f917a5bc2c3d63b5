package entity

// QualityLevel глубина рекомендуемого контроля качества
type QualityLevel string

const (
	QualityBasic         QualityLevel = "basic"
	QualityEnhanced      QualityLevel = "enhanced"
	QualityComprehensive QualityLevel = "comprehensive"
)

// Certification код сертификации из фиксированного словаря
type Certification string

const (
	CertCE        Certification = "CE"
	CertRoHS      Certification = "RoHS"
	CertUL        Certification = "UL"
	CertFCC       Certification = "FCC"
	CertISO9001   Certification = "ISO9001"
	CertIEC60950  Certification = "IEC60950"
	CertIATF16949 Certification = "IATF16949"
)

// RequirementSet итог работы движка правил: уровень контроля
// и отсортированный набор сертификаций без дубликатов.
type RequirementSet struct {
	QualityLevel   QualityLevel
	Certifications []Certification // лексикографический порядок
}

// HasCertification проверяет наличие кода в наборе
func (r RequirementSet) HasCertification(c Certification) bool {
	for _, cert := range r.Certifications {
		if cert == c {
			return true
		}
	}
	return false
}
