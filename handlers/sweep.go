package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-measlesmonitor/batch"
	"go-measlesmonitor/simulation"
)

// SweepRequest compares outcomes across coverage levels for one
// enrollment figure.
type SweepRequest struct {
	Enrollment        int       `json:"enrollment"`
	ImmunizationRates []float64 `json:"immunization_rates"`
	R0                float64   `json:"r0"`
}

// SweepHandler evaluates one scenario per requested coverage rate,
// concurrently. Results come back in request order.
func SweepHandler(c *gin.Context) {
	var req SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.ImmunizationRates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "immunization_rates must not be empty",
			"parameter": "immunization_rates",
		})
		return
	}
	if req.R0 == 0 {
		req.R0 = simulation.DefaultR0
	}

	results := batch.EvaluateSweep(req.Enrollment, req.ImmunizationRates, simulation.Parameters{R0: req.R0})
	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}
