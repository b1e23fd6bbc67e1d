package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/ksaeil2001/capss/internal/cache"
	"github.com/ksaeil2001/capss/internal/domain"
	"github.com/ksaeil2001/capss/internal/engine"
	"github.com/ksaeil2001/capss/internal/repository"
)

type Service struct {
	repo   *repository.Repository
	cache  *cache.Cache
	engine *engine.Engine

	anonTokenTTL    time.Duration
	sessionTokenTTL time.Duration
}

func NewService(repo *repository.Repository, cache *cache.Cache, eng *engine.Engine, anonTTL, sessionTTL time.Duration) *Service {
	return &Service{
		repo:            repo,
		cache:           cache,
		engine:          eng,
		anonTokenTTL:    anonTTL,
		sessionTokenTTL: sessionTTL,
	}
}

// Recommend computes (or serves from cache) the full recommendation for a
// profile. The engine is deterministic, so identical profiles share one cache
// entry. Cache failures are logged and never fail the request.
func (s *Service) Recommend(ctx context.Context, p *domain.UserProfile) (*domain.RecommendResult, error) {
	digest, digestErr := profileDigest(p)
	if digestErr != nil {
		log.Printf("[service] profile digest error: %v", digestErr)
	} else {
		cached, found, err := s.cache.GetRecommendation(ctx, digest)
		if err != nil {
			log.Printf("[service] cache get error: %v", err)
		}
		if found {
			return &domain.RecommendResult{Recommendation: cached, CacheHit: true}, nil
		}
	}

	rec, err := s.engine.Recommend(p)
	if err != nil {
		return nil, err
	}

	if digestErr == nil {
		if err := s.cache.SetRecommendation(ctx, digest, rec); err != nil {
			log.Printf("[service] cache set error: %v", err)
		}
	}

	return &domain.RecommendResult{Recommendation: rec, CacheHit: false}, nil
}

// Summarize serves the preview workflow. It goes through Recommend so that
// preview and final calls share one computation path and one cache entry.
func (s *Service) Summarize(ctx context.Context, p *domain.UserProfile) (*domain.Summary, error) {
	result, err := s.Recommend(ctx, p)
	if err != nil {
		return nil, err
	}
	summary := result.Recommendation.Summary
	return &summary, nil
}

// SaveHistory persists the profile snapshot and the recommendation for a
// registered user.
func (s *Service) SaveHistory(ctx context.Context, userID int64, p *domain.UserProfile, rec *domain.DietRecommendation) error {
	profileID, err := s.repo.SaveProfile(ctx, userID, p)
	if err != nil {
		return err
	}
	if _, err := s.repo.SaveRecommendation(ctx, userID, &profileID, rec); err != nil {
		return err
	}
	return nil
}

// History returns a registered user's stored recommendations, newest first.
func (s *Service) History(ctx context.Context, userID int64) ([]domain.StoredRecommendation, error) {
	return s.repo.ListRecommendationsByUser(ctx, userID)
}

// profileDigest builds the cache key: a hex sha256 over the canonical profile
// JSON. fmt-style keys (the usual approach for id+limit) cannot cover a
// 13-field struct with optionals.
func profileDigest(p *domain.UserProfile) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
