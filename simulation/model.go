package simulation

import "math"

// Model assumptions. R0 ~ 12 for measles, hospitalization and death
// rates per infection, and the school-exclusion windows: confirmed
// cases isolate 4 days after rash, exposed unvaccinated students are
// quarantined 21 days after last exposure.
const (
	DefaultR0           = 12.0
	HospitalizationRate = 0.20
	DeathRate           = 0.003
	QuarantineDays      = 21
	IsolationDays       = 4
)

// PopulationProfile describes one closed population (a school):
// total enrollment and its MMR immunization rate.
type PopulationProfile struct {
	Enrollment       int     `json:"enrollment"`
	ImmunizationRate float64 `json:"immunization_rate"`
}

// Parameters holds the tunable outbreak parameters.
type Parameters struct {
	R0 float64 `json:"r0"`
}

// DefaultParameters returns the measles defaults.
func DefaultParameters() Parameters {
	return Parameters{R0: DefaultR0}
}

// Outcome is the full derived vector for one outbreak scenario. Every
// intermediate value is kept because the dashboard renders all of them,
// not just the headline case count.
type Outcome struct {
	Susceptible      float64 `json:"susceptible"`
	AttackRate       float64 `json:"attack_rate"`
	TotalCases       float64 `json:"total_cases"`
	Hospitalizations float64 `json:"hospitalizations"`
	Deaths           float64 `json:"deaths"`
	MissedSchoolDays float64 `json:"missed_school_days"`
}

// Compute estimates the impact of a single measles introduction into
// the given population. It is pure and deterministic: identical inputs
// always produce identical outputs.
func Compute(profile PopulationProfile, params Parameters) (Outcome, error) {
	if profile.Enrollment <= 0 {
		return Outcome{}, &InvalidInputError{
			Param:  "enrollment",
			Value:  float64(profile.Enrollment),
			Reason: "must be a positive integer",
		}
	}
	v := profile.ImmunizationRate
	if math.IsNaN(v) || v < 0 || v > 1 {
		return Outcome{}, &InvalidInputError{
			Param:  "immunization_rate",
			Value:  v,
			Reason: "must be between 0 and 1",
		}
	}
	if !(params.R0 > 0) {
		return Outcome{}, &InvalidInputError{
			Param:  "r0",
			Value:  params.R0,
			Reason: "must be greater than 0",
		}
	}

	n := float64(profile.Enrollment)
	susceptible := n * (1 - v)
	susceptibleFraction := susceptible / n

	attackRate, err := finalSize(params.R0 * susceptibleFraction)
	if err != nil {
		return Outcome{}, err
	}

	cases := attackRate * n
	return Outcome{
		Susceptible:      susceptible,
		AttackRate:       attackRate,
		TotalCases:       cases,
		Hospitalizations: HospitalizationRate * cases,
		Deaths:           DeathRate * cases,
		MissedSchoolDays: (susceptible-cases)*QuarantineDays + cases*IsolationDays,
	}, nil
}
