package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-measlesmonitor/cache"
	"go-measlesmonitor/cronjobs"
	"go-measlesmonitor/db"
	"go-measlesmonitor/routes"
	"go-measlesmonitor/schools"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Print and check env
	var openaiClient *openai.Client
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
		openaiClient = openai.NewClient(apiKey)
	} else {
		fmt.Println("OPENAI_API_KEY not set, summaries use fallback text")
	}

	datasetURL := os.Getenv("DATASET_URL")
	if datasetURL == "" {
		datasetURL = cronjobs.DefaultDatasetURL
	}
	fmt.Println("DATASET_URL: ", datasetURL)

	// Init firestore (optional: without credentials the service runs
	// with persistence disabled)
	var firestoreClient *firestore.Client
	if os.Getenv("FIREBASE_CREDENTIALS") != "" {
		var err error
		firestoreClient, err = db.InitFirestore()
		if err != nil {
			log.Fatalf("Failed to initialize Firestore: %v", err)
		}
		defer db.CloseFirestore() // Firestore client is closed on exit
	} else {
		fmt.Println("FIREBASE_CREDENTIALS not set, scenario persistence disabled")
	}

	// Outcome cache: Redis when configured, in-memory otherwise
	var outcomes cache.OutcomeCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		fmt.Println("REDIS_ADDR: ", addr)
		outcomes = cache.NewRedisCache(addr)
	} else {
		outcomes = cache.NewMemoryCache()
	}

	// Load the school dataset, falling back to the last persisted
	// snapshot when the upstream CSV is unreachable
	store := schools.NewStore()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	list, err := schools.FetchDataset(ctx, datasetURL)
	cancel()
	if err != nil {
		log.Printf("Failed to fetch school dataset: %v", err)
		if firestoreClient != nil {
			list, err = db.GetSchoolSnapshot(firestoreClient)
			if err != nil {
				log.Printf("Failed to load school snapshot: %v", err)
			}
		}
	}
	store.Replace(list)
	log.Printf("Loaded %d schools", store.Len())

	// Initialize cron jobs
	cronjobs.InitCronJobs(store, firestoreClient, datasetURL)

	r := routes.SetupRouter(store, outcomes, firestoreClient, openaiClient)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
