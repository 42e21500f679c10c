package services

import (
	"math/rand"
	"sync"
	"time"

	"acutia-backend/internal/models"
	"acutia-backend/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	// MatchDelay is the fixed simulated processing latency of a search.
	MatchDelay = 2500 * time.Millisecond

	// Fraction bounds of the candidate pool a search may return.
	matchFractionMin = 0.4
	matchFractionMax = 0.7

	// Score bounds: floor(60 + 38*r) for r in [0,1) yields 60..97.
	matchScoreBase = 60
	matchScoreSpan = 38
)

// MatchService simulates a face-match search over the catalog photo pool.
// The uploaded image is opaque and never inspected; matches are a random
// subset of the pool with random similarity scores. Each search overwrites
// the persisted matched-photos working set; there is no cancellation, a
// started search always completes and persists its result.
type MatchService struct {
	catalog *CatalogService
	matches *repository.MatchRepository
	delay   time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMatchService creates a match service with the production delay and an
// entropy-seeded random source.
func NewMatchService(catalog *CatalogService, matches *repository.MatchRepository) *MatchService {
	return NewMatchServiceWithRand(catalog, matches, rand.New(rand.NewSource(time.Now().UnixNano())), MatchDelay)
}

// NewMatchServiceWithRand creates a match service with an injected random
// source and delay, so tests can pin the draws and skip the latency.
func NewMatchServiceWithRand(catalog *CatalogService, matches *repository.MatchRepository, rng *rand.Rand, delay time.Duration) *MatchService {
	return &MatchService{
		catalog: catalog,
		matches: matches,
		rng:     rng,
		delay:   delay,
	}
}

// Matched retrieves the photos persisted by the most recent search.
func (s *MatchService) Matched() []models.Photo {
	return s.matches.Get()
}

// SetMatched replaces the matched-photos working set without running a
// search.
func (s *MatchService) SetMatched(photos []models.Photo) []models.Photo {
	s.matches.Set(photos)
	return photos
}

// Search runs the simulated match against the catalog pool, scoped to
// eventID when non-empty. It blocks for the simulated processing delay,
// then selects between 40% and 70% of the pool uniformly at random, scores
// each selected photo in [60, 97] and persists the result. An empty pool
// yields an empty match list after the same delay, not an error.
func (s *MatchService) Search(eventID string) models.MatchResult {
	start := time.Now()

	time.Sleep(s.delay)

	var pool []models.Photo
	if eventID != "" {
		pool = s.catalog.PhotosByEvent(eventID)
	} else {
		pool = s.catalog.Photos()
	}

	matched := s.draw(pool)
	s.matches.Set(matched)

	elapsed := time.Since(start).Milliseconds()
	log.Info().
		Str("event_id", eventID).
		Int("pool", len(pool)).
		Int("matches", len(matched)).
		Int64("elapsed_ms", elapsed).
		Msg("Match search completed")

	return models.MatchResult{Matches: matched, ProcessingTimeMs: elapsed}
}

// draw picks floor(poolSize*u) photos for u uniform in [0.4, 0.7) via a
// uniform shuffle, then assigns each an independent score.
func (s *MatchService) draw(pool []models.Photo) []models.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()

	fraction := matchFractionMin + s.rng.Float64()*(matchFractionMax-matchFractionMin)
	count := int(float64(len(pool)) * fraction)

	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	matched := make([]models.Photo, 0, count)
	for _, p := range pool[:count] {
		p.MatchScore = matchScoreBase + int(s.rng.Float64()*matchScoreSpan)
		matched = append(matched, p)
	}
	return matched
}
