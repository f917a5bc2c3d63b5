package entity

// AnalysisOption выбор разделов анализа
type AnalysisOption int

const (
	OptionBoth          AnalysisOption = 1 // качество + сертификация
	OptionQualityOnly   AnalysisOption = 2 // только контроль качества
	OptionCertification AnalysisOption = 3 // только сертификация
)

// IncludesQuality сообщает, нужен ли раздел контроля качества
func (o AnalysisOption) IncludesQuality() bool {
	return o == OptionBoth || o == OptionQualityOnly
}

// IncludesCertification сообщает, нужен ли раздел сертификации
func (o AnalysisOption) IncludesCertification() bool {
	return o == OptionBoth || o == OptionCertification
}

// CertificationInfo описание сертификации и список её требований
type CertificationInfo struct {
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// AnalysisResult итог анализа снимка. Поля разделов присутствуют
// только если раздел запрошен выбранной опцией.
type AnalysisResult struct {
	QualityCheckRequired string                              `json:"quality_check_required,omitempty"`
	QualityDetails       []string                            `json:"quality_details,omitempty"`
	CertificationNeeded  string                              `json:"certification_needed,omitempty"`
	CertificationDetails map[Certification]CertificationInfo `json:"certification_details,omitempty"`
	Details              string                              `json:"details,omitempty"`
}

// IsError сообщает, что результат — оболочка ошибки обработки
func (r AnalysisResult) IsError() bool {
	return r.QualityCheckRequired == "Error" && r.CertificationNeeded == "Error"
}
