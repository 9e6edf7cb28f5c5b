package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-measlesmonitor/cache"
	"go-measlesmonitor/projection"
	"go-measlesmonitor/schools"
	"go-measlesmonitor/simulation"
	"go-measlesmonitor/types"
)

// ProjectionHandler returns the display projections for one stored
// school's scenario: the daily-case curve and the exclusion calendar.
func ProjectionHandler(c *gin.Context, store *schools.Store, outcomes cache.OutcomeCache) {
	sch, ok := lookupSchool(c, store)
	if !ok {
		return
	}

	r0, ok := parseR0Query(c)
	if !ok {
		return
	}

	days := projection.DefaultCurveDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer", "parameter": "days"})
			return
		}
		days = parsed
	}

	scenario, ok := runScenario(c, outcomes, types.Scenario{
		SchoolID:         sch.ID,
		SchoolName:       sch.Name,
		Enrollment:       sch.Enrollment,
		ImmunizationRate: sch.ImmunizationRate,
		R0:               r0,
	})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scenario":    scenario,
		"daily_cases": projection.EpiCurve(scenario.Outcome.TotalCases, days),
		"calendar": projection.ExclusionCalendar(
			time.Now().UTC(),
			simulation.QuarantineDays,
			projection.DefaultCalendarDays,
		),
	})
}
