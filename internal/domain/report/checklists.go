package report

import "pcb-advisor/internal/domain/entity"

// Базовые проверки, обязательные для любой платы
var baseChecks = []string{
	"Visual inspection for obvious defects",
	"Dimensional verification",
	"Solder joint inspection",
}

// Дополнительные проверки по уровню контроля
var levelChecks = map[entity.QualityLevel][]string{
	entity.QualityBasic: {
		"Basic continuity testing",
		"Simple functional testing",
	},
	entity.QualityEnhanced: {
		"Automated Optical Inspection (AOI)",
		"Complete continuity and isolation testing",
		"Functional testing with basic parameters",
	},
	entity.QualityComprehensive: {
		"Automated Optical Inspection (AOI)",
		"Automated X-ray Inspection (AXI)",
		"In-Circuit Testing (ICT)",
		"Flying Probe Testing",
		"Functional testing with extended parameters",
		"Thermal stress testing",
	},
}

// Проверки, специфичные для типа платы
var typeChecks = map[entity.PCBType][]string{
	entity.TypeMultilayer: {
		"Layer-to-layer registration verification",
		"Buried/blind via inspection",
	},
	entity.TypeFlexible: {
		"Flexibility and bend testing",
		"Delamination inspection",
	},
	entity.TypeRigidFlex: {
		"Flexibility and bend testing",
		"Delamination inspection",
	},
	entity.TypeHighFrequency: {
		"Impedance testing",
		"Signal integrity verification",
	},
	entity.TypeHighPower: {
		"Copper thickness verification",
		"Thermal performance testing",
	},
}

// Справочник сертификаций. Неизвестные коды просто пропускаются.
var certCatalog = map[entity.Certification]entity.CertificationInfo{
	entity.CertCE: {
		Description: "European Conformity - Required for products sold in EU",
		Requirements: []string{
			"EMC Directive compliance",
			"RoHS compliance",
			"Safety testing",
			"Technical documentation",
		},
	},
	entity.CertRoHS: {
		Description: "Restriction of Hazardous Substances - Environmental standard",
		Requirements: []string{
			"No lead, mercury, cadmium, hexavalent chromium, PBBs, PBDEs",
			"Test reports for materials",
			"Declaration of Conformity",
		},
	},
	entity.CertUL: {
		Description: "Underwriters Laboratories - Safety standard",
		Requirements: []string{
			"Safety testing",
			"Flammability testing",
			"Regular factory audits",
			"UL mark application",
		},
	},
	entity.CertFCC: {
		Description: "Federal Communications Commission - US EMC standard",
		Requirements: []string{
			"EMI/EMC testing",
			"Radiated and conducted emissions testing",
			"Technical documentation",
			"FCC Declaration of Conformity or Certification",
		},
	},
	entity.CertISO9001: {
		Description: "Quality management system standard",
		Requirements: []string{
			"Documented quality management system",
			"Process control and traceability",
			"Internal audits and corrective actions",
			"Management review records",
		},
	},
	entity.CertIEC60950: {
		Description: "Safety of information technology equipment",
		Requirements: []string{
			"Electrical safety testing",
			"Insulation and creepage verification",
			"Temperature rise testing",
			"Protective earthing verification",
		},
	},
	entity.CertIATF16949: {
		Description: "Automotive quality management standard",
		Requirements: []string{
			"PPAP documentation",
			"FMEA risk analysis",
			"Statistical process control",
			"Supplier quality management",
		},
	},
}
