package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-measlesmonitor/cache"
	"go-measlesmonitor/db"
	"go-measlesmonitor/simulation"
	"go-measlesmonitor/types"
)

// SimulateRequest is the custom-values simulation body. R0 is optional
// and defaults to the measles value.
type SimulateRequest struct {
	Enrollment       int     `json:"enrollment"`
	ImmunizationRate float64 `json:"immunization_rate"`
	R0               float64 `json:"r0"`
	SchoolName       string  `json:"school_name"`
}

// SimulateHandler evaluates one custom scenario.
func SimulateHandler(c *gin.Context, outcomes cache.OutcomeCache, firestoreClient *firestore.Client) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.R0 == 0 {
		req.R0 = simulation.DefaultR0
	}

	scenario, ok := runScenario(c, outcomes, types.Scenario{
		SchoolName:       req.SchoolName,
		Enrollment:       req.Enrollment,
		ImmunizationRate: req.ImmunizationRate,
		R0:               req.R0,
	})
	if !ok {
		return
	}

	persistScenario(firestoreClient, scenario)
	c.JSON(http.StatusOK, scenario)
}

// runScenario computes the outcome for a scenario skeleton, going
// through the cache, and writes the appropriate error response on
// failure. The bool reports whether a response is still pending.
func runScenario(c *gin.Context, outcomes cache.OutcomeCache, sc types.Scenario) (types.Scenario, bool) {
	key := cache.Key(sc.Enrollment, sc.ImmunizationRate, sc.R0)
	if cached, hit := outcomes.Get(c.Request.Context(), key); hit {
		sc.Outcome = cached
		sc.ComputedAt = time.Now().UTC().Format(time.RFC3339)
		return sc, true
	}

	out, err := simulation.Compute(
		simulation.PopulationProfile{Enrollment: sc.Enrollment, ImmunizationRate: sc.ImmunizationRate},
		simulation.Parameters{R0: sc.R0},
	)
	if err != nil {
		writeComputeError(c, err)
		return types.Scenario{}, false
	}

	if err := outcomes.Set(c.Request.Context(), key, out); err != nil {
		log.Printf("Warning: failed to cache outcome: %v", err)
	}

	sc.Outcome = out
	sc.ComputedAt = time.Now().UTC().Format(time.RFC3339)
	return sc, true
}

// writeComputeError maps a model error onto its HTTP response.
func writeComputeError(c *gin.Context, err error) {
	var invalid *simulation.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     invalid.Error(),
			"parameter": invalid.Param,
		})
	case errors.Is(err, simulation.ErrNonConvergence):
		// Distinct condition: the model is unstable for these inputs,
		// the caller decides the fallback.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// persistScenario saves the run for the dashboard's history view.
// Persistence is optional and never blocks the response.
func persistScenario(firestoreClient *firestore.Client, sc types.Scenario) {
	if firestoreClient == nil {
		return
	}
	go func() {
		if err := db.SaveScenario(firestoreClient, sc); err != nil {
			log.Printf("Warning: failed to persist scenario: %v", err)
		}
	}()
}
