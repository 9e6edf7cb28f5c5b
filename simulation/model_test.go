package simulation

import (
	"errors"
	"math"
	"testing"
)

func TestComputeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		profile PopulationProfile
		params  Parameters
		param   string
	}{
		{
			name:    "zero enrollment",
			profile: PopulationProfile{Enrollment: 0, ImmunizationRate: 0.9},
			params:  DefaultParameters(),
			param:   "enrollment",
		},
		{
			name:    "negative enrollment",
			profile: PopulationProfile{Enrollment: -40, ImmunizationRate: 0.9},
			params:  DefaultParameters(),
			param:   "enrollment",
		},
		{
			name:    "negative immunization rate",
			profile: PopulationProfile{Enrollment: 500, ImmunizationRate: -0.01},
			params:  DefaultParameters(),
			param:   "immunization_rate",
		},
		{
			name:    "immunization rate above 1",
			profile: PopulationProfile{Enrollment: 500, ImmunizationRate: 1.2},
			params:  DefaultParameters(),
			param:   "immunization_rate",
		},
		{
			name:    "NaN immunization rate",
			profile: PopulationProfile{Enrollment: 500, ImmunizationRate: math.NaN()},
			params:  DefaultParameters(),
			param:   "immunization_rate",
		},
		{
			name:    "zero r0",
			profile: PopulationProfile{Enrollment: 500, ImmunizationRate: 0.9},
			params:  Parameters{R0: 0},
			param:   "r0",
		},
		{
			name:    "negative r0",
			profile: PopulationProfile{Enrollment: 500, ImmunizationRate: 0.9},
			params:  Parameters{R0: -3},
			param:   "r0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.profile, tt.params)
			if err == nil {
				t.Fatalf("expected error, got none")
			}
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
			if invalid.Param != tt.param {
				t.Fatalf("expected offending param %q, got %q", tt.param, invalid.Param)
			}
		})
	}
}

func TestComputeBelowThreshold(t *testing.T) {
	// N=500, v=0.95: S=25, s=0.05, R0*s=0.6 <= 1, so no outbreak.
	out, err := Compute(PopulationProfile{Enrollment: 500, ImmunizationRate: 0.95}, DefaultParameters())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if out.Susceptible != 25 {
		t.Errorf("expected 25 susceptible, got %g", out.Susceptible)
	}
	if out.AttackRate != 0 {
		t.Errorf("expected attack rate exactly 0, got %g", out.AttackRate)
	}
	if out.TotalCases != 0 || out.Hospitalizations != 0 || out.Deaths != 0 {
		t.Errorf("expected zero cases/hospitalizations/deaths, got %+v", out)
	}
	if out.MissedSchoolDays != 25*QuarantineDays {
		t.Errorf("expected %d missed days, got %g", 25*QuarantineDays, out.MissedSchoolDays)
	}
}

func TestComputeAboveThreshold(t *testing.T) {
	// N=500, v=0.70: S=150, s=0.30, R0*s=3.6 > 1.
	out, err := Compute(PopulationProfile{Enrollment: 500, ImmunizationRate: 0.70}, DefaultParameters())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if out.Susceptible != 150 {
		t.Errorf("expected 150 susceptible, got %g", out.Susceptible)
	}
	z := out.AttackRate
	if z <= 0.95 || z >= 1 {
		t.Errorf("expected attack rate near 0.97, got %g", z)
	}

	// The returned z must satisfy the final-size equation.
	residual := math.Abs(z - (1 - math.Exp(-DefaultR0*0.30*z)))
	if residual > 1e-8 {
		t.Errorf("fixed-point residual too large: %g", residual)
	}

	if got, want := out.TotalCases, z*500; got != want {
		t.Errorf("expected total cases %g, got %g", want, got)
	}
}

func TestComputeFullCoverage(t *testing.T) {
	out, err := Compute(PopulationProfile{Enrollment: 800, ImmunizationRate: 1}, DefaultParameters())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if out != (Outcome{}) {
		t.Errorf("expected all-zero outcome for full coverage, got %+v", out)
	}
}

func TestComputeZeroCoverage(t *testing.T) {
	out, err := Compute(PopulationProfile{Enrollment: 800, ImmunizationRate: 0}, DefaultParameters())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if out.Susceptible != 800 {
		t.Errorf("expected everyone susceptible, got %g", out.Susceptible)
	}
	// R0*s = 12, near-universal attack rate.
	if out.AttackRate < 0.999 || out.AttackRate >= 1 {
		t.Errorf("expected near-universal attack rate, got %g", out.AttackRate)
	}
}

func TestSusceptibleBounds(t *testing.T) {
	for _, n := range []int{1, 3, 20, 500, 5000} {
		for v := 0.0; v <= 1.0; v += 0.1 {
			out, err := Compute(PopulationProfile{Enrollment: n, ImmunizationRate: v}, DefaultParameters())
			if err != nil {
				t.Fatalf("compute N=%d v=%g: %v", n, v, err)
			}
			if out.Susceptible < 0 || out.Susceptible > float64(n) {
				t.Fatalf("susceptible %g out of [0,%d] for v=%g", out.Susceptible, n, v)
			}
		}
	}
}

func TestCoverageMonotonicity(t *testing.T) {
	// Raising coverage must never raise the attack rate or any of the
	// metrics derived from it.
	prev, err := Compute(PopulationProfile{Enrollment: 500, ImmunizationRate: 0}, DefaultParameters())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	for v := 0.05; v <= 1.0+1e-12; v += 0.05 {
		rate := math.Min(v, 1)
		out, err := Compute(PopulationProfile{Enrollment: 500, ImmunizationRate: rate}, DefaultParameters())
		if err != nil {
			t.Fatalf("compute v=%g: %v", rate, err)
		}
		if out.AttackRate > prev.AttackRate {
			t.Fatalf("attack rate rose from %g to %g at v=%g", prev.AttackRate, out.AttackRate, rate)
		}
		if out.TotalCases > prev.TotalCases {
			t.Fatalf("cases rose from %g to %g at v=%g", prev.TotalCases, out.TotalCases, rate)
		}
		if out.Hospitalizations > prev.Hospitalizations || out.Deaths > prev.Deaths {
			t.Fatalf("derived metrics rose at v=%g", rate)
		}
		prev = out
	}
}

func TestDerivedMetricConsistency(t *testing.T) {
	profiles := []PopulationProfile{
		{Enrollment: 500, ImmunizationRate: 0.70},
		{Enrollment: 500, ImmunizationRate: 0.95},
		{Enrollment: 37, ImmunizationRate: 0.5},
		{Enrollment: 5000, ImmunizationRate: 0.88},
	}
	for _, p := range profiles {
		out, err := Compute(p, DefaultParameters())
		if err != nil {
			t.Fatalf("compute %+v: %v", p, err)
		}
		if out.Hospitalizations != HospitalizationRate*out.TotalCases {
			t.Errorf("hospitalizations not exactly %g of cases for %+v", HospitalizationRate, p)
		}
		if out.Deaths != DeathRate*out.TotalCases {
			t.Errorf("deaths not exactly %g of cases for %+v", DeathRate, p)
		}
		wantMissed := (out.Susceptible-out.TotalCases)*QuarantineDays + out.TotalCases*IsolationDays
		if out.MissedSchoolDays != wantMissed {
			t.Errorf("missed days %g, want %g for %+v", out.MissedSchoolDays, wantMissed, p)
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	profile := PopulationProfile{Enrollment: 742, ImmunizationRate: 0.811}
	first, err := Compute(profile, DefaultParameters())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Compute(profile, DefaultParameters())
		if err != nil {
			t.Fatalf("compute: %v", err)
		}
		if again != first {
			t.Fatalf("run %d differed: %+v vs %+v", i, again, first)
		}
	}
}

func TestComputeTinyEnrollment(t *testing.T) {
	// Single-digit schools must not blow up the solver.
	out, err := Compute(PopulationProfile{Enrollment: 1, ImmunizationRate: 0}, DefaultParameters())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if out.Susceptible != 1 {
		t.Errorf("expected 1 susceptible, got %g", out.Susceptible)
	}
	if out.AttackRate <= 0 || out.AttackRate >= 1 {
		t.Errorf("expected attack rate in (0,1), got %g", out.AttackRate)
	}
}
