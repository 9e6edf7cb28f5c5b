package handlers

import (
	"net/http"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-measlesmonitor/cache"
	"go-measlesmonitor/schools"
	"go-measlesmonitor/simulation"
	"go-measlesmonitor/types"
)

// ListSchoolsHandler returns the loaded school dataset.
func ListSchoolsHandler(c *gin.Context, store *schools.Store) {
	list := store.List()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(list),
		"schools": list,
	})
}

// SimulateSchoolHandler evaluates the outbreak scenario for one stored
// school. R0 can be overridden with the r0 query parameter.
func SimulateSchoolHandler(c *gin.Context, store *schools.Store, outcomes cache.OutcomeCache, firestoreClient *firestore.Client) {
	sch, ok := lookupSchool(c, store)
	if !ok {
		return
	}

	r0, ok := parseR0Query(c)
	if !ok {
		return
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

	persistScenario(firestoreClient, scenario)
	c.JSON(http.StatusOK, scenario)
}

func lookupSchool(c *gin.Context, store *schools.Store) (types.School, bool) {
	id := c.Param("id")
	sch, ok := store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown school id: " + id})
		return types.School{}, false
	}
	return sch, true
}

func parseR0Query(c *gin.Context) (float64, bool) {
	raw := c.Query("r0")
	if raw == "" {
		return simulation.DefaultR0, true
	}
	r0, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "r0 must be a number", "parameter": "r0"})
		return 0, false
	}
	// Rejecting here keeps non-finite values away from handlers that
	// derive thresholds from r0 before any compute runs.
	if !(r0 > 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "r0 must be greater than 0", "parameter": "r0"})
		return 0, false
	}
	return r0, true
}
