package service

import (
	"context"
	"log"
	"time"

	"github.com/Nithish-ponnusamy/final-devops/internal/model"
)

// Scraper produces one fresh ProfileRecord per call.
type Scraper interface {
	ScrapeProfile(ctx context.Context, username string) (*model.ProfileRecord, error)
}

// ProfileStore persists profile aggregates keyed by username.
type ProfileStore interface {
	Upsert(ctx context.Context, rec *model.ProfileRecord) error
}

// ProfileService scrapes a profile and persists the result. Persistence is a
// side effect: it runs to completion before the response, but its failure
// does not withhold the scraped data from the caller.
type ProfileService struct {
	scraper Scraper
	store   ProfileStore
}

func NewProfileService(scraper Scraper, store ProfileStore) *ProfileService {
	return &ProfileService{scraper: scraper, store: store}
}

// Fetch scrapes username, stamps fetchedAt, and upserts the record. The
// record is returned even when the upsert fails; the failure is only logged.
func (s *ProfileService) Fetch(ctx context.Context, username string) (*model.ProfileRecord, error) {
	rec, err := s.scraper.ScrapeProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	rec.FetchedAt = time.Now().UTC()

	if err := s.store.Upsert(ctx, rec); err != nil {
		log.Printf("profile: upsert %q failed, returning unpersisted result: %v", username, err)
	}

	return rec, nil
}
