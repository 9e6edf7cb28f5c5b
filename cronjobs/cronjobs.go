package cronjobs

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"

	"go-measlesmonitor/db"
	"go-measlesmonitor/schools"
)

// DefaultDatasetURL is the published kindergarten MMR coverage CSV.
const DefaultDatasetURL = "https://raw.githubusercontent.com/mmcalend/USMeaslesData/refs/heads/main/24-25ADHSMMRKCoverage.csv"

const fetchTimeout = 30 * time.Second

// RefreshSchools fetches the coverage dataset and swaps it into the
// store. A failed fetch keeps the previous dataset in place.
func RefreshSchools(store *schools.Store, url string) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	list, err := schools.FetchDataset(ctx, url)
	if err != nil {
		log.Printf("School dataset refresh failed: %v", err)
		return
	}
	if len(list) == 0 {
		log.Println("School dataset refresh returned no rows, keeping previous dataset")
		return
	}

	store.Replace(list)
	log.Printf("School dataset refreshed: %d schools loaded", len(list))
}

func InitCronJobs(store *schools.Store, firestoreClient *firestore.Client, datasetURL string) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Coverage dataset: refresh every 6 hours
	_, err := c.AddFunc("0 */6 * * *", func() {
		log.Println("\nCronJob: School Dataset Refresh Running")
		RefreshSchools(store, datasetURL)
	})
	if err != nil {
		log.Println("Error scheduling School Dataset Refresh", err)
	}

	// Snapshot: persist the dataset nightly so boot can fall back to
	// the last good copy when the upstream CSV is unreachable.
	if firestoreClient != nil {
		_, err = c.AddFunc("30 3 * * *", func() {
			log.Println("\nCronJob: School Snapshot Running")
			if err := db.SaveSchoolSnapshot(firestoreClient, store.List()); err != nil {
				log.Printf("School snapshot failed: %v", err)
			}
		})
		if err != nil {
			log.Println("Error scheduling School Snapshot:", err)
		}
	}

	c.Start()
}
