package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-measlesmonitor/cache"
	"go-measlesmonitor/handlers"
	"go-measlesmonitor/schools"
)

func SetupRouter(store *schools.Store, outcomes cache.OutcomeCache, firestoreClient *firestore.Client, openaiClient *openai.Client) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to the Measles Monitor!",
		})
	})

	// api routes
	api := r.Group("/api/measles")
	{
		api.POST("/simulate", func(c *gin.Context) {
			handlers.SimulateHandler(c, outcomes, firestoreClient)
		})
		api.POST("/simulate/sweep", handlers.SweepHandler)
		api.POST("/summary", func(c *gin.Context) {
			handlers.SummaryHandler(c, outcomes, openaiClient)
		})
		api.GET("/schools", func(c *gin.Context) {
			handlers.ListSchoolsHandler(c, store)
		})
		api.GET("/schools/:id/simulate", func(c *gin.Context) {
			handlers.SimulateSchoolHandler(c, store, outcomes, firestoreClient)
		})
		api.GET("/schools/:id/projection", func(c *gin.Context) {
			handlers.ProjectionHandler(c, store, outcomes)
		})
		api.GET("/schools/:id/history", func(c *gin.Context) {
			handlers.HistoryHandler(c, store, firestoreClient)
		})
		api.GET("/risk", func(c *gin.Context) {
			handlers.RiskHandler(c, store)
		})
		api.GET("/export", func(c *gin.Context) {
			handlers.ExportRisksHandler(c, store)
		})
	}

	return r
}
