package summarization

import (
	"strings"
	"testing"

	"go-measlesmonitor/simulation"
	"go-measlesmonitor/types"
)

func scenarioFor(t *testing.T, enrollment int, rate float64) types.Scenario {
	t.Helper()
	out, err := simulation.Compute(
		simulation.PopulationProfile{Enrollment: enrollment, ImmunizationRate: rate},
		simulation.DefaultParameters(),
	)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return types.Scenario{
		SchoolName:       "Desert Vista Elementary",
		Enrollment:       enrollment,
		ImmunizationRate: rate,
		R0:               simulation.DefaultR0,
		Outcome:          out,
	}
}

func TestFallbackSummaryBelowThreshold(t *testing.T) {
	summary := FallbackSummary(scenarioFor(t, 500, 0.95))

	if !strings.Contains(summary, "Desert Vista Elementary") {
		t.Errorf("summary missing school name: %s", summary)
	}
	if !strings.Contains(summary, "below the outbreak threshold") {
		t.Errorf("expected below-threshold wording, got: %s", summary)
	}
	if !strings.Contains(summary, "525") {
		t.Errorf("expected the 525 missed days in: %s", summary)
	}
}

func TestFallbackSummaryAboveThreshold(t *testing.T) {
	summary := FallbackSummary(scenarioFor(t, 500, 0.70))

	if !strings.Contains(summary, "above the outbreak threshold") {
		t.Errorf("expected above-threshold wording, got: %s", summary)
	}
	if !strings.Contains(summary, "hospitalizations") {
		t.Errorf("expected hospitalizations mention, got: %s", summary)
	}
}

func TestFallbackSummaryDefaultName(t *testing.T) {
	sc := scenarioFor(t, 500, 0.95)
	sc.SchoolName = ""
	if !strings.HasPrefix(FallbackSummary(sc), "This school") {
		t.Errorf("expected generic name fallback")
	}
}

func TestBuildPromptContainsVector(t *testing.T) {
	prompt := buildPrompt(scenarioFor(t, 500, 0.70))
	for _, want := range []string{"500 students", "70.0%", "attack rate", "missed school days"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
