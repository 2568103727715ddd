package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/config"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/models"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/scraper"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/storage"
)

// Searcher renders a results page and yields raw records from it.
type Searcher interface {
	FetchListings(ctx context.Context, url string, maxCards int) ([]models.RawRecord, error)
}

// RecommendService sequences the pipeline: build URL, fetch, normalize, rank,
// wrap. All fatal conditions are absorbed here and converted into the failure
// shape of the outcome; nothing propagates as an error across this boundary.
// One failed attempt is a failed request; there are no retries.
type RecommendService struct {
	search     config.SearchConfig
	searcher   Searcher
	normalizer *Normalizer
	ranker     *Ranker
	runs       *storage.RunStore
}

func NewRecommendService(search config.SearchConfig, searcher Searcher, normalizer *Normalizer, ranker *Ranker, runs *storage.RunStore) *RecommendService {
	return &RecommendService{
		search:     search,
		searcher:   searcher,
		normalizer: normalizer,
		ranker:     ranker,
		runs:       runs,
	}
}

// Recommend runs one request end to end and wraps the outcome in a fresh
// envelope, truncated to the configured result cap.
func (s *RecommendService) Recommend(ctx context.Context, prefs models.Preferences) *models.RecommendationEnvelope {
	outcome := s.runSearch(ctx, prefs)

	env := &models.RecommendationEnvelope{
		Success:         outcome.Success,
		Recommendations: []models.Record{},
		Preferences:     prefs,
		SearchURL:       outcome.SearchURL,
		GeneratedAt:     time.Now(),
		Error:           outcome.Error,
	}

	if outcome.Success {
		total := len(outcome.Records)
		env.TotalFound = &total

		top := outcome.Records
		if len(top) > s.search.MaxResults {
			top = top[:s.search.MaxResults]
		}
		env.Recommendations = top
	}

	return env
}

func (s *RecommendService) runSearch(ctx context.Context, prefs models.Preferences) models.ScrapeOutcome {
	searchURL := scraper.BuildSearchURL(prefs, s.search)

	run := &models.SearchRun{
		ID:        uuid.NewString(),
		Location:  prefs.Location,
		SearchURL: searchURL,
		StartedAt: time.Now(),
		Status:    models.RunStatusRunning,
	}
	s.trackStart(run)

	log.Printf("[%s] Searching: %s", run.ID[:8], searchURL)

	raws, err := s.searcher.FetchListings(ctx, searchURL, s.search.MaxCards)
	if err != nil {
		return s.fail(run, prefs, searchURL, err)
	}
	if len(raws) == 0 {
		return s.fail(run, prefs, searchURL, fmt.Errorf("no valid property records extracted"))
	}

	records := make([]models.Record, 0, len(raws))
	for _, raw := range raws {
		records = append(records, s.normalizer.FromRaw(raw))
	}

	ranked := s.ranker.Rank(records, prefs)

	run.Extracted = len(raws)
	run.Ranked = len(ranked)
	run.Returned = min(len(ranked), s.search.MaxResults)
	s.trackFinish(run, models.RunStatusCompleted, "")

	log.Printf("[%s] Done: %d extracted, %d ranked", run.ID[:8], len(raws), len(ranked))

	return models.ScrapeOutcome{
		Success:        true,
		TotalExtracted: len(raws),
		Records:        ranked,
		SearchURL:      searchURL,
		Preferences:    prefs,
	}
}

func (s *RecommendService) fail(run *models.SearchRun, prefs models.Preferences, searchURL string, err error) models.ScrapeOutcome {
	log.Printf("[%s] Search failed: %v", run.ID[:8], err)
	s.trackFinish(run, models.RunStatusFailed, err.Error())

	return models.ScrapeOutcome{
		Success:     false,
		Records:     []models.Record{},
		SearchURL:   searchURL,
		Preferences: prefs,
		Error:       err.Error(),
	}
}

func (s *RecommendService) trackStart(run *models.SearchRun) {
	if s.runs == nil {
		return
	}
	if err := s.runs.CreateRun(run); err != nil {
		log.Printf("Warning: failed to record run: %v", err)
	}
	if err := s.runs.Log(run.ID, models.LogLevelInfo, "search started: "+run.SearchURL); err != nil {
		log.Printf("Warning: failed to log run event: %v", err)
	}
}

func (s *RecommendService) trackFinish(run *models.SearchRun, status models.RunStatus, errDetail string) {
	now := time.Now()
	run.FinishedAt = &now
	run.Status = status
	run.ErrorDetail = errDetail

	if s.runs == nil {
		return
	}
	if err := s.runs.UpdateRun(run); err != nil {
		log.Printf("Warning: failed to update run: %v", err)
	}
	if errDetail != "" {
		if err := s.runs.Log(run.ID, models.LogLevelError, errDetail); err != nil {
			log.Printf("Warning: failed to log run event: %v", err)
		}
	}
}
