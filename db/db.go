package db

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-measlesmonitor/types"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// HashString hashes a given string using SHA-256 and returns its hex
// representation. Used for deterministic document IDs.
func HashString(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// FirestoreClient is a singleton Firestore client instance.
var (
	client     *firestore.Client
	clientOnce sync.Once
	clientErr  error
)

// InitFirestore initializes and returns a Firestore client from the
// base64-encoded FIREBASE_CREDENTIALS environment variable.
func InitFirestore() (*firestore.Client, error) {
	clientOnce.Do(func() {
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			clientErr = fmt.Errorf("decoding Firestore credentials: %w", err)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			clientErr = fmt.Errorf("initializing Firebase app: %w", err)
			return
		}

		client, clientErr = app.Firestore(context.Background())
	})

	return client, clientErr
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}

// scenarioID builds the deterministic document ID for a scenario, so
// re-running identical inputs overwrites instead of piling up
// duplicates.
func scenarioID(sc types.Scenario) string {
	canonical := sc.SchoolID + "|" +
		strconv.Itoa(sc.Enrollment) + "|" +
		strconv.FormatFloat(sc.ImmunizationRate, 'g', -1, 64) + "|" +
		strconv.FormatFloat(sc.R0, 'g', -1, 64)
	return HashString(canonical)
}

// SaveScenario persists one simulated scenario.
func SaveScenario(client *firestore.Client, sc types.Scenario) error {
	ctx := context.Background()
	docID := scenarioID(sc)

	_, err := client.Collection("scenarios").Doc(docID).Set(ctx, sc)
	if err != nil {
		return fmt.Errorf("saving scenario %s: %w", docID, err)
	}
	return nil
}

// GetScenario fetches one stored scenario by its document ID.
func GetScenario(client *firestore.Client, id string) (types.Scenario, error) {
	ctx := context.Background()

	doc, err := client.Collection("scenarios").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.Scenario{}, ErrNotFound
		}
		return types.Scenario{}, fmt.Errorf("getting scenario %s: %w", id, err)
	}

	var sc types.Scenario
	if err := doc.DataTo(&sc); err != nil {
		return types.Scenario{}, fmt.Errorf("decoding scenario %s: %w", id, err)
	}
	return sc, nil
}

// GetScenariosForSchool returns the stored scenario history for one
// school.
func GetScenariosForSchool(client *firestore.Client, schoolID string) ([]types.Scenario, error) {
	ctx := context.Background()

	iter := client.Collection("scenarios").
		Where("schoolID", "==", schoolID).
		Documents(ctx)

	var scenarios []types.Scenario
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating scenarios for %s: %w", schoolID, err)
		}

		var sc types.Scenario
		if err := doc.DataTo(&sc); err != nil {
			return nil, fmt.Errorf("decoding scenario %s: %w", doc.Ref.ID, err)
		}
		scenarios = append(scenarios, sc)
	}

	return scenarios, nil
}

// SaveSchoolSnapshot persists the current school dataset so the
// service can boot from the last good copy if the upstream CSV is
// unreachable.
func SaveSchoolSnapshot(client *firestore.Client, list []types.School) error {
	ctx := context.Background()

	for _, sch := range list {
		_, err := client.Collection("schools").Doc(sch.ID).Set(ctx, sch, firestore.MergeAll)
		if err != nil {
			return fmt.Errorf("saving school %s: %w", sch.Name, err)
		}
	}

	log.Printf("Saved snapshot of %d schools", len(list))
	return nil
}

// GetSchoolSnapshot reads back the last persisted school dataset.
func GetSchoolSnapshot(client *firestore.Client) ([]types.School, error) {
	ctx := context.Background()
	iter := client.Collection("schools").Documents(ctx)

	var list []types.School
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating school snapshot: %w", err)
		}

		var sch types.School
		if err := doc.DataTo(&sch); err != nil {
			return nil, fmt.Errorf("decoding school %s: %w", doc.Ref.ID, err)
		}
		sch.ID = doc.Ref.ID
		list = append(list, sch)
	}

	return list, nil
}
