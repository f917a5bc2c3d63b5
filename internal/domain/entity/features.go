package entity

// PCBType тип печатной платы, определённый по снимку
type PCBType string

const (
	TypeSingleSided   PCBType = "single_sided"   // односторонняя плата
	TypeDoubleSided   PCBType = "double_sided"   // двусторонняя плата
	TypeMultilayer    PCBType = "multilayer"     // многослойная плата
	TypeHighFrequency PCBType = "high_frequency" // высокочастотная плата
	TypeHighPower     PCBType = "high_power"     // силовая плата
	TypeFlexible      PCBType = "flexible"       // гибкая плата
	TypeRigidFlex     PCBType = "rigid_flex"     // жёстко-гибкая плата
	TypeUnknown       PCBType = "unknown"        // тип не определён
)

// ComponentDensity плотность монтажа компонентов
type ComponentDensity string

const (
	DensityLow      ComponentDensity = "low"
	DensityMedium   ComponentDensity = "medium"
	DensityHigh     ComponentDensity = "high"
	DensityVeryHigh ComponentDensity = "very_high"
)

// densityRank порядок плотностей для сравнения: low < medium < high < very_high
var densityRank = map[ComponentDensity]int{
	DensityLow:      0,
	DensityMedium:   1,
	DensityHigh:     2,
	DensityVeryHigh: 3,
}

// Rank возвращает позицию плотности в порядке возрастания
func (d ComponentDensity) Rank() int {
	return densityRank[d]
}

// Application предполагаемая область применения платы
type Application string

const (
	AppConsumerElectronics Application = "consumer_electronics"
	AppIndustrial          Application = "industrial"
	AppComputing           Application = "computing"
	AppTelecom             Application = "telecom"
	AppWearables           Application = "wearables"
	AppMedical             Application = "medical"
	AppAutomotive          Application = "automotive"
	AppAerospace           Application = "aerospace"
	AppMilitary            Application = "military"
	AppIoT                 Application = "iot"
	AppUnknown             Application = "unknown"
)

// IssueNoneDetected строка-заглушка, когда замечаний по снимку нет
const IssueNoneDetected = "none detected"

// FeatureRecord набор признаков, извлечённых из одного снимка платы.
// Создаётся один раз на вызов и дальше не изменяется.
type FeatureRecord struct {
	PCBType             PCBType          // тип платы
	ComponentDensity    ComponentDensity // плотность монтажа
	IntendedApplication Application      // область применения
	EstimatedLayerCount int              // оценка числа слоёв, >= 1
	EdgeIntensity       float64          // средняя локальная вариация яркости
	Grayscale           bool             // снимок без цветовой информации
	Issues              []string         // замечания; ["none detected"] если пусто
}

// HasIssues сообщает, есть ли настоящие замечания (не заглушка)
func (f FeatureRecord) HasIssues() bool {
	return len(f.Issues) > 0 && f.Issues[0] != IssueNoneDetected
}
