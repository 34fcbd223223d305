package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"dreamtrip/internal/catalog"
	"dreamtrip/internal/model"
	"dreamtrip/internal/repository"

	"github.com/google/uuid"
)

// RecommendationService answers recommend-model requests
type RecommendationService struct {
	catalog     *catalog.Catalog
	recommender *Recommender
	narrator    Narrator
	journal     repository.Journal
	cache       repository.CacheRepository
	now         func() time.Time
}

// NewRecommendationService wires the recommender to its collaborators.
// narrator, journal and cache may be nil.
func NewRecommendationService(cat *catalog.Catalog, narrator Narrator, journal repository.Journal, cache repository.CacheRepository) *RecommendationService {
	return &RecommendationService{
		catalog:     cat,
		recommender: NewRecommender(cat),
		narrator:    narrator,
		journal:     journal,
		cache:       cache,
		now:         time.Now,
	}
}

type cachedRecommendation struct {
	Response model.Recommendation `json:"response"`
	Scores   []float32            `json:"scores"`
}

// Recommend selects, scores and explains a model for prefs. A nil prefs is
// treated as an empty questionnaire.
func (s *RecommendationService) Recommend(ctx context.Context, prefs *model.Preferences) (*model.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = &model.Preferences{}
	}

	key := recommendationCacheKey(prefs)
	if cached, ok := s.fromCache(ctx, key); ok {
		s.logRecommendation(ctx, prefs, &cached.Response, cached.Scores)
		return &cached.Response, nil
	}

	m := s.recommender.Recommend(prefs)
	scores := s.recommender.ScoreAll(prefs, m.ID)
	analysis := s.recommender.Explain(prefs, m.ID)

	if s.narrator != nil && s.narrator.IsEnabled() {
		text, err := s.narrator.Narrate(ctx, prefs, m, analysis)
		if err != nil {
			log.Printf("Warning: narration failed, using template: %v", err)
		} else {
			analysis = text
		}
	}

	resp := &model.Recommendation{
		Model:       m.Name,
		ModelID:     m.ID,
		Analysis:    analysis,
		MatchScores: s.byName(scores),
	}
	vec := s.recommender.ScoreVector(scores)

	s.toCache(ctx, key, cachedRecommendation{Response: *resp, Scores: vec})
	s.logRecommendation(ctx, prefs, resp, vec)

	return resp, nil
}

// byName rekeys id-keyed scores by display name
func (s *RecommendationService) byName(scores map[string]int) map[string]int {
	out := make(map[string]int, len(scores))
	for id, score := range scores {
		name := id
		if m, ok := s.catalog.Get(id); ok {
			name = m.Name
		}
		out[name] = score
	}
	return out
}

func (s *RecommendationService) fromCache(ctx context.Context, key string) (*cachedRecommendation, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var cached cachedRecommendation
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		log.Printf("Warning: discarding unreadable cache entry %s: %v", key, err)
		return nil, false
	}
	return &cached, true
}

func (s *RecommendationService) toCache(ctx context.Context, key string, entry cachedRecommendation) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Printf("Warning: failed to encode cache entry: %v", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(data)); err != nil {
		log.Printf("Warning: failed to cache recommendation: %v", err)
	}
}

func (s *RecommendationService) logRecommendation(ctx context.Context, prefs *model.Preferences, resp *model.Recommendation, vec []float32) {
	if s.journal == nil {
		return
	}
	rec := model.RecommendationRecord{
		ID:          uuid.NewString(),
		Preferences: *prefs,
		ModelID:     resp.ModelID,
		Analysis:    resp.Analysis,
		Scores:      vec,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.journal.LogRecommendation(ctx, rec); err != nil {
		log.Printf("Warning: failed to journal recommendation: %v", err)
	}
}

// recommendationCacheKey fingerprints the answers as the recommender sees
// them, so inputs that parse alike share a key and inputs that parse
// differently never do.
func recommendationCacheKey(prefs *model.Preferences) string {
	p := normalized(prefs)
	budget := "-"
	if p.budgetOK {
		budget = strconv.FormatFloat(p.budget, 'f', -1, 64)
	}
	parts := []string{p.usage, p.lifestyle, p.location, budget}
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return "rec:" + hex.EncodeToString(sum[:])
}
