package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stylecrate/outfit-service/internal/cache"
	"github.com/stylecrate/outfit-service/internal/calendar"
	"github.com/stylecrate/outfit-service/internal/domain"
	"github.com/stylecrate/outfit-service/internal/engine"
	"github.com/stylecrate/outfit-service/internal/repository"
	"github.com/stylecrate/outfit-service/internal/weather"
)

const feedbackRetries = 3

type Service struct {
	repo     *repository.Repository
	cache    *cache.Cache
	weather  *weather.Client
	calendar *calendar.Client
	engine   *engine.Engine
}

func NewService(repo *repository.Repository, cache *cache.Cache, weatherClient *weather.Client, calendarClient *calendar.Client, eng *engine.Engine) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		weather:  weatherClient,
		calendar: calendarClient,
		engine:   eng,
	}
}

// RecommendationOutcome bundles the engine result with its persisted id, the
// cache flag, and the request's diagnostics trail.
type RecommendationOutcome struct {
	RecommendationID string
	Result           domain.RecommendationResult
	CacheHit         bool
	Diagnostics      domain.DiagnosticsRecord
}

func (s *Service) GetRecommendation(ctx context.Context, userID int64) (*RecommendationOutcome, error) {
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	day := time.Now().UTC().Format("2006-01-02")

	// Check cache
	entry, found, err := s.cache.Get(ctx, userID, day)
	if err != nil {
		log.Printf("[service] cache get error for user %d: %v", userID, err)
	}
	if found {
		return &RecommendationOutcome{
			RecommendationID: entry.RecommendationID,
			Result:           entry.Result,
			CacheHit:         true,
		}, nil
	}

	diag := engine.NewCollector()

	// Fetch all collaborator inputs concurrently; the engine runs only once
	// every required input has resolved.
	var (
		wg         sync.WaitGroup
		items      []domain.ClothingItem
		prefs      domain.UserPreferences
		weatherCtx domain.WeatherContext
		occasion   domain.OccasionContext

		itemsErr, prefsErr, weatherErr, occErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		items, itemsErr = s.repo.GetWardrobe(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		prefs, prefsErr = s.repo.GetPreferences(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		weatherCtx, weatherErr = s.weather.Fetch(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		occasion, occErr = s.calendar.Fetch(ctx, userID)
	}()
	wg.Wait()

	if itemsErr != nil {
		return nil, fmt.Errorf("fetch wardrobe: %w", itemsErr)
	}
	if prefsErr != nil {
		return nil, fmt.Errorf("fetch preferences: %w", prefsErr)
	}
	if weatherErr != nil {
		return nil, weatherErr
	}
	// Calendar is optional: absence degrades to an empty occasion context.
	if occErr != nil {
		log.Printf("[service] calendar unavailable for user %d: %v", userID, occErr)
		diag.Warn("calendar unavailable; proceeding without occasion context")
		occasion = domain.OccasionContext{}
	}

	result, err := s.engine.Recommend(engine.Request{
		Items:       items,
		Weather:     weatherCtx,
		Occasion:    occasion,
		Preferences: prefs,
		Now:         time.Now().UTC(),
	}, diag)
	if err != nil {
		return nil, err
	}

	recID := uuid.NewString()
	itemIDs := make([]int64, len(result.Items))
	for i, item := range result.Items {
		itemIDs[i] = item.ID
	}
	if err := s.repo.SaveRecommendation(ctx, domain.StoredRecommendation{
		ID:           recID,
		UserID:       userID,
		ItemIDs:      itemIDs,
		Confidence:   result.Confidence,
		Reasoning:    result.Reasoning,
		MissingItems: result.MissingItems,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	if cacheErr := s.cache.Set(ctx, userID, day, cache.Entry{
		RecommendationID: recID,
		Result:           result,
	}); cacheErr != nil {
		log.Printf("[service] cache set error for user %d: %v", userID, cacheErr)
	}

	return &RecommendationOutcome{
		RecommendationID: recID,
		Result:           result,
		Diagnostics:      diag.Record(),
	}, nil
}

// ProcessFeedback applies one like/dislike signal to the user's preference
// weights. The write is a compare-and-swap on the preference version;
// conflicts from concurrent feedback re-read and retry so no update is lost.
func (s *Service) ProcessFeedback(ctx context.Context, userID int64, recommendationID string, liked bool) (domain.UserPreferences, error) {
	rec, err := s.repo.GetRecommendation(ctx, userID, recommendationID)
	if err != nil {
		return domain.UserPreferences{}, err
	}

	items, err := s.repo.GetItemsByIDs(ctx, userID, rec.ItemIDs)
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("fetch outfit items: %w", err)
	}

	var updated domain.UserPreferences
	var writeErr error
	for attempt := 0; attempt < feedbackRetries; attempt++ {
		prefs, err := s.repo.GetPreferences(ctx, userID)
		if err != nil {
			return domain.UserPreferences{}, fmt.Errorf("fetch preferences: %w", err)
		}

		updated = engine.Adjust(prefs, items, liked)

		writeErr = s.repo.UpdatePreferences(ctx, updated)
		if writeErr == nil {
			break
		}
		if errors.Is(writeErr, domain.ErrVersionConflict) {
			log.Printf("[service] preference version conflict for user %d, retrying (%d/%d)", userID, attempt+1, feedbackRetries)
			continue
		}
		return domain.UserPreferences{}, writeErr
	}
	if writeErr != nil {
		return domain.UserPreferences{}, writeErr
	}

	if cacheErr := s.cache.ClearUserCache(ctx, userID); cacheErr != nil {
		log.Printf("[service] cache invalidation error for user %d: %v", userID, cacheErr)
	}

	return updated, nil
}

// MarkItemWorn stamps an item as worn now and clears the user's cached outfit
// so the cooldown filter sees the change immediately.
func (s *Service) MarkItemWorn(ctx context.Context, userID, itemID int64) error {
	if err := s.repo.MarkItemWorn(ctx, userID, itemID, time.Now().UTC()); err != nil {
		return err
	}
	if err := s.cache.ClearUserCache(ctx, userID); err != nil {
		log.Printf("[service] cache invalidation error for user %d: %v", userID, err)
	}
	return nil
}
