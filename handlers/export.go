package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"go-measlesmonitor/risk"
	"go-measlesmonitor/schools"
	"go-measlesmonitor/simulation"
)

const exportFilename = "school_risks_export.json"

// ExportRisksHandler simulates every stored school and saves the
// ranked results to a local JSON file for offline analysis.
func ExportRisksHandler(c *gin.Context, store *schools.Store) {
	log.Println("Received request to export school risks...")

	ranked := risk.RankSchools(store.List(), simulation.DefaultParameters())
	if len(ranked) == 0 {
		log.Println("No schools loaded to export.")
		c.JSON(http.StatusOK, gin.H{
			"message": "No schools loaded to export.",
			"count":   0,
		})
		return
	}

	jsonData, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		log.Printf("Error marshaling school risks to JSON: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to format school risk data",
			"details": err.Error(),
		})
		return
	}

	file, err := os.Create(exportFilename)
	if err != nil {
		log.Printf("Error creating export file '%s': %v", exportFilename, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create export file",
			"details": err.Error(),
		})
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.Printf("Error closing export file '%s': %v", exportFilename, cerr)
		}
	}()

	if _, err := file.Write(jsonData); err != nil {
		log.Printf("Error writing JSON data to file '%s': %v", exportFilename, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to write data to export file",
			"details": err.Error(),
		})
		return
	}

	log.Printf("Successfully exported %d school risks to %s", len(ranked), exportFilename)
	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Successfully exported %d school risks.", len(ranked)),
		"filename": exportFilename,
		"count":    len(ranked),
	})
}
