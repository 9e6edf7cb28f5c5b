package handlers

import (
	"log"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-measlesmonitor/db"
	"go-measlesmonitor/schools"
)

// HistoryHandler returns the persisted scenario runs for one school.
func HistoryHandler(c *gin.Context, store *schools.Store, firestoreClient *firestore.Client) {
	sch, ok := lookupSchool(c, store)
	if !ok {
		return
	}

	if firestoreClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scenario persistence is not configured"})
		return
	}

	scenarios, err := db.GetScenariosForSchool(firestoreClient, sch.ID)
	if err != nil {
		log.Printf("Error fetching scenario history for %s: %v", sch.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch scenario history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"school":    sch,
		"count":     len(scenarios),
		"scenarios": scenarios,
	})
}
