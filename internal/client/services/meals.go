// Package services contains the application services behind the CLI:
// meal history with cache fallback and superseded-fetch handling, and
// profile management.
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nutriapp/nutricli/internal/client/api"
	"github.com/nutriapp/nutricli/internal/client/cache"
	"github.com/nutriapp/nutricli/internal/client/models"
	"github.com/nutriapp/nutricli/internal/logging"
)

// ErrStaleFetch marks a history fetch that was superseded by a newer one
// before it completed. It is an expected, silent outcome: callers must
// not surface it to the user.
var ErrStaleFetch = errors.New("history fetch superseded")

// MealService is the meal-facing application service.
type MealService interface {
	// RefreshHistory fetches the full history. A new call supersedes any
	// in-flight one: the older request is cancelled and, should its
	// response still arrive, discarded. fromCache reports that the
	// backend was unreachable and the local snapshot was served instead.
	RefreshHistory(ctx context.Context) (meals []models.Meal, fromCache bool, err error)

	// Current returns the last applied history list.
	Current() []models.Meal

	Detail(ctx context.Context, id string) (*models.MealDetail, error)
	Delete(ctx context.Context, id string) error
	Analyse(ctx context.Context, filename string, image []byte) (*models.AnalysisResult, error)
	Save(ctx context.Context, filename string, image []byte, analysis models.Analysis, recommendation string) (*models.Meal, error)
	DaySummary(ctx context.Context, date string) (*models.DaySummary, error)
}

type mealService struct {
	client api.Client
	repo   *cache.Repository
	log    logging.Logger
	now    func() time.Time

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	meals  []models.Meal
}

// NewMealService builds a MealService. repo may be nil, in which case
// there is no offline fallback.
func NewMealService(client api.Client, repo *cache.Repository, log logging.Logger) MealService {
	return &mealService{client: client, repo: repo, log: log, now: time.Now}
}

func (s *mealService) RefreshHistory(ctx context.Context) ([]models.Meal, bool, error) {
	s.mu.Lock()
	if s.cancel != nil {
		// Supersede the in-flight fetch.
		s.cancel()
	}
	s.seq++
	mySeq := s.seq
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	meals, err := s.client.HistoryMeals(fetchCtx)

	s.mu.Lock()
	stale := s.seq != mySeq
	if !stale && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	if stale || errors.Is(err, context.Canceled) {
		return nil, false, ErrStaleFetch
	}

	if err != nil {
		if errors.Is(err, api.ErrUnavailable) && s.repo != nil {
			cached, cacheErr := s.repo.All(ctx)
			if cacheErr == nil && len(cached) > 0 {
				s.log.Warn(ctx, "server unavailable, serving cached history",
					"meals", len(cached))
				s.apply(mySeq, cached)
				return cached, true, nil
			}
		}
		return nil, false, err
	}

	s.apply(mySeq, meals)
	if s.repo != nil {
		if cacheErr := s.repo.Replace(ctx, meals, s.now()); cacheErr != nil {
			s.log.Warn(ctx, "failed to refresh history cache", "error", cacheErr)
		}
	}
	return meals, false, nil
}

// apply replaces the in-memory list wholesale, but only if no newer
// fetch has been applied meanwhile.
func (s *mealService) apply(seq uint64, meals []models.Meal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq != seq {
		return
	}
	s.meals = meals
}

func (s *mealService) Current() []models.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meals
}

func (s *mealService) Detail(ctx context.Context, id string) (*models.MealDetail, error) {
	return s.client.MealDetail(ctx, id)
}

// Delete removes the meal on the server and, only after the server
// acknowledged, drops it from the local list and snapshot.
func (s *mealService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteMeal(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := make([]models.Meal, 0, len(s.meals))
	for _, m := range s.meals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.meals = kept
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Delete(ctx, id); err != nil {
			s.log.Warn(ctx, "failed to drop meal from cache", "id", id, "error", err)
		}
	}
	return nil
}

func (s *mealService) Analyse(ctx context.Context, filename string, image []byte) (*models.AnalysisResult, error) {
	return s.client.AnalyseMeal(ctx, filename, image)
}

func (s *mealService) Save(ctx context.Context, filename string, image []byte, analysis models.Analysis, recommendation string) (*models.Meal, error) {
	return s.client.SaveAnalysis(ctx, filename, image, analysis, recommendation)
}

func (s *mealService) DaySummary(ctx context.Context, date string) (*models.DaySummary, error) {
	return s.client.DaySummary(ctx, date)
}
