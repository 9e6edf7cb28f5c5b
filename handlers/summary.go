package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-measlesmonitor/cache"
	"go-measlesmonitor/simulation"
	"go-measlesmonitor/summarization"
	"go-measlesmonitor/types"
)

// SummaryHandler computes a scenario and returns a plain-language
// recap of it. Without an OpenAI client the deterministic fallback
// text is used.
func SummaryHandler(c *gin.Context, outcomes cache.OutcomeCache, openaiClient *openai.Client) {
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

	summary := summarization.FallbackSummary(scenario)
	generated := false
	if openaiClient != nil {
		text, err := summarization.Summarize(c.Request.Context(), openaiClient, scenario)
		if err != nil {
			log.Printf("Warning: summary generation failed, using fallback: %v", err)
		} else {
			summary = text
			generated = true
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":   summary,
		"generated": generated,
		"scenario":  scenario,
	})
}
