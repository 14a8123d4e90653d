package catalog

import (
	"context"
	"log"
	"time"

	"campuspulse-backend/internal/repository"
)

// Loader seeds the resource store at startup when the catalogue is thin.
// It is fire-and-forget: it runs on its own goroutine after a short delay
// and a failure never blocks the application.
type Loader struct {
	repo     *repository.ResourceRepo
	minCount int
	delay    time.Duration
}

func NewLoader(repo *repository.ResourceRepo, minCount int, delay time.Duration) *Loader {
	return &Loader{repo: repo, minCount: minCount, delay: delay}
}

func (l *Loader) Start() {
	go l.run()
}

func (l *Loader) run() {
	// Let the server finish coming up first.
	time.Sleep(l.delay)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	count, err := l.repo.Count(ctx)
	if err != nil {
		log.Printf("catalog: count failed, skipping seed: %v", err)
		return
	}
	if count >= l.minCount {
		log.Printf("catalog: %d resources present, skipping seed", count)
		return
	}

	added := 0
	for _, res := range Seed() {
		inserted, err := l.repo.UpsertByURL(ctx, &res)
		if err != nil {
			log.Printf("catalog: failed to seed %q: %v", res.URL, err)
			continue
		}
		if inserted {
			added++
		}
	}

	log.Printf("catalog: seed complete, %d new resources added", added)
}
