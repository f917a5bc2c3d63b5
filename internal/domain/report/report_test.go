package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pcb-advisor/internal/domain/entity"
)

func sampleFeatures() entity.FeatureRecord {
	return entity.FeatureRecord{
		PCBType:             entity.TypeMultilayer,
		ComponentDensity:    entity.DensityHigh,
		IntendedApplication: entity.AppComputing,
		EstimatedLayerCount: 6,
		Issues:              []string{entity.IssueNoneDetected},
	}
}

func sampleRequirements() entity.RequirementSet {
	return entity.RequirementSet{
		QualityLevel:   entity.QualityComprehensive,
		Certifications: []entity.Certification{entity.CertCE, entity.CertFCC, entity.CertRoHS},
	}
}

func TestAssemble_OptionBothHasAllSections(t *testing.T) {
	result := Assemble(entity.OptionBoth, sampleFeatures(), sampleRequirements())

	require.Equal(t, "comprehensive (simulated)", result.QualityCheckRequired)
	require.NotEmpty(t, result.QualityDetails)
	require.Equal(t, "CE (simulated); FCC (simulated); RoHS (simulated)", result.CertificationNeeded)
	require.Len(t, result.CertificationDetails, 3)
	require.Contains(t, result.Details, "RECOMMENDED QUALITY CHECKS:")
	require.Contains(t, result.Details, "CERTIFICATION REQUIREMENTS:")
}

func TestAssemble_QualityOnlyOmitsCertification(t *testing.T) {
	result := Assemble(entity.OptionQualityOnly, sampleFeatures(), sampleRequirements())

	require.NotEmpty(t, result.QualityCheckRequired)
	require.Empty(t, result.CertificationNeeded)
	require.Nil(t, result.CertificationDetails)
	require.NotContains(t, result.Details, "CERTIFICATION REQUIREMENTS")
}

func TestAssemble_CertificationOnlyOmitsQuality(t *testing.T) {
	result := Assemble(entity.OptionCertification, sampleFeatures(), sampleRequirements())

	require.Empty(t, result.QualityCheckRequired)
	require.Nil(t, result.QualityDetails)
	require.NotEmpty(t, result.CertificationNeeded)
	require.NotContains(t, result.Details, "RECOMMENDED QUALITY CHECKS")
}

func TestAssemble_UnknownOptionKeepsOnlyProfile(t *testing.T) {
	result := Assemble(entity.AnalysisOption(9), sampleFeatures(), sampleRequirements())

	require.Empty(t, result.QualityCheckRequired)
	require.Empty(t, result.CertificationNeeded)
	require.Contains(t, result.Details, "PCB Type: MULTILAYER")
	require.NotContains(t, result.Details, "RECOMMENDED QUALITY CHECKS")
	require.NotContains(t, result.Details, "CERTIFICATION REQUIREMENTS")
}

func TestAssemble_ChecklistOrder(t *testing.T) {
	f := sampleFeatures()
	f.Issues = []string{"potential color inconsistency"}

	result := Assemble(entity.OptionQualityOnly, f, sampleRequirements())
	checks := result.QualityDetails

	// Базовые проверки идут первыми
	require.Equal(t, "Visual inspection for obvious defects", checks[0])
	// Проверки уровня следуют за базовыми
	require.Contains(t, checks, "Automated X-ray Inspection (AXI)")
	// Типовые проверки многослойной платы
	require.Contains(t, checks, "Layer-to-layer registration verification")
	require.Contains(t, checks, "Buried/blind via inspection")
	// Замечание превращается в строку осмотра и идёт последним
	require.Equal(t, "Detailed inspection for potential color inconsistency", checks[len(checks)-1])
}

func TestAssemble_TypeSpecificChecks(t *testing.T) {
	tests := []struct {
		pcbType entity.PCBType
		check   string
	}{
		{entity.TypeFlexible, "Flexibility and bend testing"},
		{entity.TypeRigidFlex, "Delamination inspection"},
		{entity.TypeHighFrequency, "Impedance testing"},
		{entity.TypeHighPower, "Thermal performance testing"},
	}

	for _, tt := range tests {
		f := sampleFeatures()
		f.PCBType = tt.pcbType
		result := Assemble(entity.OptionQualityOnly, f, sampleRequirements())
		require.Contains(t, result.QualityDetails, tt.check, "type %s", tt.pcbType)
	}
}

func TestAssemble_SentinelIssueNotInChecklist(t *testing.T) {
	result := Assemble(entity.OptionQualityOnly, sampleFeatures(), sampleRequirements())

	for _, check := range result.QualityDetails {
		require.False(t, strings.Contains(check, entity.IssueNoneDetected))
	}
	require.Contains(t, result.Details, "Detected Issues: None")
}

func TestAssemble_UnknownCertificationOmitted(t *testing.T) {
	req := entity.RequirementSet{
		QualityLevel:   entity.QualityBasic,
		Certifications: []entity.Certification{entity.CertCE, entity.Certification("XYZ")},
	}

	result := Assemble(entity.OptionCertification, sampleFeatures(), req)

	require.Len(t, result.CertificationDetails, 1)
	require.Contains(t, result.CertificationDetails, entity.CertCE)
}

func TestAssemble_EveryKnownCertificationHasCatalogEntry(t *testing.T) {
	certs := []entity.Certification{
		entity.CertCE, entity.CertRoHS, entity.CertUL, entity.CertFCC,
		entity.CertISO9001, entity.CertIEC60950, entity.CertIATF16949,
	}

	req := entity.RequirementSet{QualityLevel: entity.QualityBasic, Certifications: certs}
	result := Assemble(entity.OptionCertification, sampleFeatures(), req)

	require.Len(t, result.CertificationDetails, len(certs))
	for _, cert := range certs {
		info := result.CertificationDetails[cert]
		require.NotEmpty(t, info.Description, "cert %s", cert)
		require.NotEmpty(t, info.Requirements, "cert %s", cert)
	}
}

func TestAssemble_EmptyCertificationSet(t *testing.T) {
	req := entity.RequirementSet{QualityLevel: entity.QualityBasic}

	result := Assemble(entity.OptionCertification, sampleFeatures(), req)

	require.Equal(t, "none required", result.CertificationNeeded)
	require.Contains(t, result.Details, "CERTIFICATION REQUIREMENTS: None specifically detected")
}

func TestAssemble_ProfileBlock(t *testing.T) {
	f := entity.FeatureRecord{
		PCBType:             entity.TypeHighPower,
		ComponentDensity:    entity.DensityVeryHigh,
		IntendedApplication: entity.AppAutomotive,
		EstimatedLayerCount: 4,
		Issues:              []string{"high complexity - careful inspection recommended"},
	}

	result := Assemble(entity.OptionBoth, f, sampleRequirements())

	require.Contains(t, result.Details, "PCB Type: HIGH_POWER")
	require.Contains(t, result.Details, "Intended Application: Automotive")
	require.Contains(t, result.Details, "Component Density: Very high")
	require.Contains(t, result.Details, "Estimated Layer Count: 4")
	require.Contains(t, result.Details, "Detected Issues: high complexity - careful inspection recommended")
}
