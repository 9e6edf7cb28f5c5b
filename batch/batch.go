package batch

import (
	"log"
	"sync"

	"go-measlesmonitor/simulation"
	"go-measlesmonitor/types"
)

// EvaluateSchools runs one outbreak scenario per school concurrently.
// Each evaluation is independent pure math, so the fan-out needs no
// coordination beyond the WaitGroup. Results keep input order; a
// school whose row fails validation keeps its slot with the error
// recorded.
func EvaluateSchools(list []types.School, params simulation.Parameters) []types.BatchResult {
	results := make([]types.BatchResult, len(list))
	var wg sync.WaitGroup

	for i, sch := range list {
		wg.Add(1)
		go func(i int, sch types.School) {
			defer wg.Done()
			results[i] = evaluate(types.Scenario{
				SchoolID:         sch.ID,
				SchoolName:       sch.Name,
				Enrollment:       sch.Enrollment,
				ImmunizationRate: sch.ImmunizationRate,
				R0:               params.R0,
			}, params)
		}(i, sch)
	}

	wg.Wait()
	return results
}

// EvaluateSweep holds enrollment fixed and evaluates one scenario per
// coverage rate, concurrently, in input order.
func EvaluateSweep(enrollment int, rates []float64, params simulation.Parameters) []types.BatchResult {
	results := make([]types.BatchResult, len(rates))
	var wg sync.WaitGroup

	for i, rate := range rates {
		wg.Add(1)
		go func(i int, rate float64) {
			defer wg.Done()
			results[i] = evaluate(types.Scenario{
				Enrollment:       enrollment,
				ImmunizationRate: rate,
				R0:               params.R0,
			}, params)
		}(i, rate)
	}

	wg.Wait()
	return results
}

func evaluate(scenario types.Scenario, params simulation.Parameters) types.BatchResult {
	out, err := simulation.Compute(simulation.PopulationProfile{
		Enrollment:       scenario.Enrollment,
		ImmunizationRate: scenario.ImmunizationRate,
	}, params)
	if err != nil {
		log.Printf("Error evaluating scenario (N=%d, v=%g): %v", scenario.Enrollment, scenario.ImmunizationRate, err)
		return types.BatchResult{Scenario: scenario, Error: err.Error()}
	}

	scenario.Outcome = out
	return types.BatchResult{Scenario: scenario}
}
