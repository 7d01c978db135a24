package main

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"

	"github.com/recordcandy/recordcandy-server/internal/domain"
)

func main() {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/RecordCandy/data")
	}
	dbPath := filepath.Join(dataPath, "db")

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	var records []domain.Record

	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("records:v1"))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &records)
		})
	})
	if err != nil {
		log.Fatalf("Error reading record collection: %v", err)
	}

	movieCount := 0
	bookCount := 0
	ratingTotal := 0
	tagCounts := make(map[domain.EmotionTag]int)

	for i, rec := range records {
		switch rec.WorkType {
		case domain.WorkTypeMovie:
			movieCount++
		case domain.WorkTypeBook:
			bookCount++
		}
		ratingTotal += rec.Rating
		for _, tag := range rec.EmotionTags {
			tagCounts[tag]++
		}

		// Show the first few records in full.
		if i < 5 {
			fmt.Printf("Record: %s\n", rec.Work.Title)
			fmt.Printf("  ID: %s\n", rec.ID)
			fmt.Printf("  Type: %s\n", rec.WorkType)
			fmt.Printf("  Rating: %d\n", rec.Rating)
			fmt.Printf("  Reviewed: %s\n", rec.ReviewDate.Format("2006-01-02"))
			if rec.OneLineReview != "" {
				fmt.Printf("  Review: %s\n", rec.OneLineReview)
			}
			if len(rec.EmotionTags) > 0 {
				fmt.Printf("  Tags: %v\n", rec.EmotionTags)
			}
			fmt.Println()
		}
	}
	if len(records) > 5 {
		fmt.Printf("... and %d more records\n\n", len(records)-5)
	}

	fmt.Println("=== Summary ===")
	fmt.Printf("Total records: %d\n", len(records))
	fmt.Printf("Movies: %d\n", movieCount)
	fmt.Printf("Books: %d\n", bookCount)
	if len(records) > 0 {
		fmt.Printf("Average rating: %.1f\n", float64(ratingTotal)/float64(len(records)))
	}
	if len(tagCounts) > 0 {
		fmt.Println("Emotion tags:")
		for _, tag := range domain.EmotionTags {
			if n := tagCounts[tag]; n > 0 {
				fmt.Printf("  %s: %d\n", tag, n)
			}
		}
	}
}
