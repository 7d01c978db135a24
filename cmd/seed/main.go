// Package main provides a tool to seed the database with sample records.
//
// This creates a handful of movie and book records so filtering, sorting, and
// the record list UI can be exercised without typing records in by hand.
//
// Usage:
//
//	DATA_PATH=~/RecordCandy/data go run ./cmd/seed
//	DATA_PATH=~/RecordCandy/data go run ./cmd/seed --count 30  # More records
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/recordcandy/recordcandy-server/internal/domain"
	"github.com/recordcandy/recordcandy-server/internal/id"
	"github.com/recordcandy/recordcandy-server/internal/service"
	"github.com/recordcandy/recordcandy-server/internal/store"
)

var count = flag.Int("count", 12, "Number of records to create")

// seedWork pairs a work snapshot with its type so the seeder can mix movies
// and books in one pool.
type seedWork struct {
	workType domain.WorkType
	work     domain.Work
}

var seedWorks = []seedWork{
	{domain.WorkTypeMovie, domain.Work{ID: "tmdb-496243", Title: "기생충", Year: 2019, Genres: []string{"드라마", "스릴러"}, Director: "봉준호"}},
	{domain.WorkTypeMovie, domain.Work{ID: "tmdb-670", Title: "올드보이", Year: 2003, Genres: []string{"스릴러", "미스터리"}, Director: "박찬욱"}},
	{domain.WorkTypeMovie, domain.Work{ID: "tmdb-372058", Title: "너의 이름은.", Year: 2016, Genres: []string{"애니메이션", "로맨스"}, Director: "신카이 마코토"}},
	{domain.WorkTypeMovie, domain.Work{ID: "tmdb-11423", Title: "살인의 추억", Year: 2003, Genres: []string{"범죄", "드라마"}, Director: "봉준호"}},
	{domain.WorkTypeMovie, domain.Work{ID: "tmdb-615457", Title: "남산의 부장들", Year: 2020, Genres: []string{"드라마", "역사"}, Director: "우민호"}},
	{domain.WorkTypeBook, domain.Work{ID: "isbn-8983920718", Title: "해리 포터와 마법사의 돌", Year: 1999, Genres: []string{"판타지"}, Author: "J.K. 롤링"}},
	{domain.WorkTypeBook, domain.Work{ID: "isbn-8936434267", Title: "채식주의자", Year: 2007, Genres: []string{"소설"}, Author: "한강"}},
	{domain.WorkTypeBook, domain.Work{ID: "isbn-8954655972", Title: "아몬드", Year: 2017, Genres: []string{"소설"}, Author: "손원평"}},
	{domain.WorkTypeBook, domain.Work{ID: "isbn-8937473901", Title: "1984", Year: 1949, Genres: []string{"SF"}, Author: "조지 오웰"}},
}

var seedReviews = []string{
	"한 번 더 보고 싶다",
	"기대 이상이었다",
	"여운이 길게 남는다",
	"중반부터 몰입했다",
	"평범했지만 나쁘지 않았다",
	"올해 최고의 작품",
}

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/RecordCandy/data")
	}
	dbPath := filepath.Join(dataPath, "db")

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	records, err := service.NewRecordService(ctx, s, nil)
	if err != nil {
		log.Fatalf("Failed to load records: %v", err)
	}

	existing := len(records.GetAll(ctx))
	fmt.Printf("Found %d existing records\n", existing)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()
	created := 0

	for range *count {
		sw := seedWorks[rng.Intn(len(seedWorks))]

		// Review dates spread over the past 90 days so the date sorts have
		// something to do.
		reviewDate := now.AddDate(0, 0, -rng.Intn(90))

		// Ratings skew high the way real journals do.
		rating := 5 + rng.Intn(6)

		// 0-3 emotion tags per record.
		numTags := rng.Intn(4)
		tags := make([]domain.EmotionTag, 0, numTags)
		for _, j := range rng.Perm(len(domain.EmotionTags))[:numTags] {
			tags = append(tags, domain.EmotionTags[j])
		}

		input := service.CreateRecordInput{
			ID:            id.MustNewRecordID(),
			WorkType:      sw.workType,
			Work:          sw.work,
			Rating:        rating,
			ReviewDate:    reviewDate,
			EmotionTags:   tags,
			RewatchIntent: rng.Float32() < 0.3,
		}
		if rng.Float32() < 0.7 {
			input.OneLineReview = seedReviews[rng.Intn(len(seedReviews))]
		}

		rec, err := records.Add(ctx, input)
		if err != nil {
			log.Printf("Failed to create record for %s: %v", sw.work.Title, err)
			continue
		}

		fmt.Printf("  Created %s record: %s (rating %d)\n", rec.WorkType, rec.Work.Title, rec.Rating)
		created++
	}

	fmt.Printf("\nSeeding complete! Created %d records (%d total)\n", created, existing+created)
}
