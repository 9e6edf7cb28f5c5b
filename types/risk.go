package types

type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskModerate RiskTier = "moderate"
	RiskHigh     RiskTier = "high"
	RiskCritical RiskTier = "critical"
)

// SchoolRisk is one school's outbreak exposure: the projected scenario
// plus the tier the school lands in and how far its coverage sits from
// the herd-immunity threshold (negative when below it).
type SchoolRisk struct {
	School      School   `json:"school" firestore:"school"`
	Scenario    Scenario `json:"scenario" firestore:"scenario"`
	Tier        RiskTier `json:"tier" firestore:"tier"`
	CoverageGap float64  `json:"coverage_gap" firestore:"coverageGap"`
}
