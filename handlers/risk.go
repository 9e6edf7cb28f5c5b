package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-measlesmonitor/risk"
	"go-measlesmonitor/schools"
	"go-measlesmonitor/simulation"
)

// RiskHandler simulates every stored school and returns them ranked
// worst-first with their risk tiers.
func RiskHandler(c *gin.Context, store *schools.Store) {
	r0, ok := parseR0Query(c)
	if !ok {
		return
	}
	params := simulation.Parameters{R0: r0}

	ranked := risk.RankSchools(store.List(), params)
	c.JSON(http.StatusOK, gin.H{
		"count":                   len(ranked),
		"herd_immunity_threshold": risk.HerdImmunityThreshold(params.R0),
		"schools":                 ranked,
	})
}
