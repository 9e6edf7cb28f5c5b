package risk

import (
	"sort"

	"go-measlesmonitor/batch"
	"go-measlesmonitor/simulation"
	"go-measlesmonitor/types"
)

// --- Tier thresholds ---

// Projected case counts separating the tiers. A school below the
// epidemic threshold is always low risk regardless of size.
const (
	moderateCaseThreshold = 1.0
	highCaseThreshold     = 25.0
	critCaseThreshold     = 100.0
)

// HerdImmunityThreshold is the coverage that keeps the effective
// reproduction number at or below 1, i.e. 1 - 1/R0.
func HerdImmunityThreshold(r0 float64) float64 {
	return 1 - 1/r0
}

// RankSchools simulates every school in the dataset and orders them
// worst-first by projected case count. Schools whose rows fail
// validation are dropped; the batch layer already logged them.
func RankSchools(list []types.School, params simulation.Parameters) []types.SchoolRisk {
	results := batch.EvaluateSchools(list, params)
	threshold := HerdImmunityThreshold(params.R0)

	ranked := make([]types.SchoolRisk, 0, len(results))
	for i, res := range results {
		if res.Error != "" {
			continue
		}
		ranked = append(ranked, types.SchoolRisk{
			School:      list[i],
			Scenario:    res.Scenario,
			Tier:        classify(res.Scenario.Outcome),
			CoverageGap: list[i].ImmunizationRate - threshold,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		ci, cj := ranked[i].Scenario.Outcome.TotalCases, ranked[j].Scenario.Outcome.TotalCases
		if ci == cj {
			return ranked[i].School.Name < ranked[j].School.Name
		}
		return ci > cj
	})
	return ranked
}

func classify(out simulation.Outcome) types.RiskTier {
	switch {
	case out.AttackRate == 0 || out.TotalCases < moderateCaseThreshold:
		return types.RiskLow
	case out.TotalCases >= critCaseThreshold:
		return types.RiskCritical
	case out.TotalCases >= highCaseThreshold:
		return types.RiskHigh
	default:
		return types.RiskModerate
	}
}
