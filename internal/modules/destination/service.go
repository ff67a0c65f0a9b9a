package destination

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"travelhub/internal/cache"
	"travelhub/internal/domain"
	pkgvalidator "travelhub/internal/pkg/validator"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100

	popularCacheTTL = 5 * time.Minute
)

type Service struct {
	repo  DestinationRepository
	cache *cache.Cache
}

func NewService(repo DestinationRepository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

// List fetches the active set and runs the in-memory filter/sort pass
// before paginating. Every call recomputes the view from scratch.
func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Destination, int, error) {
	all, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, 0, err
	}

	if q.Country != "" {
		narrowed := make([]domain.Destination, 0, len(all))
		for _, d := range all {
			if strings.EqualFold(d.Country, q.Country) {
				narrowed = append(narrowed, d)
			}
		}
		all = narrowed
	}

	filtered := Filter(all, q.Q, Filters{
		Category:  q.Category,
		MinBudget: q.MinBudget,
		MaxBudget: q.MaxBudget,
	})
	sorted := SortBy(filtered, q.Sort)

	total := len(sorted)
	page, limit := normalizePage(q.Page, q.Limit)
	return pageSlice(sorted, page, limit), total, nil
}

// Search is the q-driven variant: filter only, no pagination.
func (s *Service) Search(ctx context.Context, query string, f Filters) ([]domain.Destination, error) {
	all, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(all, query, f), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Destination, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return d, nil
}

func (s *Service) Popular(ctx context.Context, limit int) ([]domain.Destination, error) {
	if limit <= 0 || limit > maxLimit {
		limit = 10
	}

	key := fmt.Sprintf("destinations:popular:%d", limit)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached []domain.Destination
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	out, err := s.repo.Popular(ctx, limit)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(out); err == nil {
		_ = s.cache.Set(ctx, key, string(raw), popularCacheTTL)
	}
	return out, nil
}

func (s *Service) ByCategory(ctx context.Context, category string, q ListQuery) ([]domain.Destination, int, error) {
	if _, ok := domain.ParseDestinationCategory(category); !ok {
		return nil, 0, ErrInvalidCategory
	}
	q.Category = category
	return s.List(ctx, q)
}

/* ---------- ADMIN ---------- */

func (s *Service) Create(ctx context.Context, req CreateDestinationRequest) (*domain.Destination, error) {
	cat, ok := domain.ParseDestinationCategory(req.Category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	d := &domain.Destination{
		Name:              req.Name,
		Description:       req.Description,
		Country:           req.Country,
		City:              req.City,
		Category:          cat,
		Images:            req.Images,
		Coordinates:       req.Coordinates,
		PopularActivities: req.PopularActivities,
		BestTimeToVisit:   req.BestTimeToVisit,
		EstimatedBudget:   req.EstimatedBudget,
		IsActive:          true,
	}
	if err := pkgvalidator.Check(d); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	s.invalidatePopular(ctx)
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateDestinationRequest) (*domain.Destination, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Description != nil {
		d.Description = *req.Description
	}
	if req.Country != nil {
		d.Country = *req.Country
	}
	if req.City != nil {
		d.City = *req.City
	}
	if req.Category != nil {
		cat, ok := domain.ParseDestinationCategory(*req.Category)
		if !ok {
			return nil, ErrInvalidCategory
		}
		d.Category = cat
	}
	if req.Images != nil {
		d.Images = req.Images
	}
	if req.Coordinates != nil {
		d.Coordinates = req.Coordinates
	}
	if req.PopularActivities != nil {
		d.PopularActivities = req.PopularActivities
	}
	if req.BestTimeToVisit != nil {
		d.BestTimeToVisit = *req.BestTimeToVisit
	}
	if req.EstimatedBudget != nil {
		d.EstimatedBudget = req.EstimatedBudget
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}

	if err := pkgvalidator.Check(d); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	s.invalidatePopular(ctx)
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePopular(ctx)
	return nil
}

func (s *Service) invalidatePopular(ctx context.Context) {
	// only the common limits are cached; clearing a handful of keys is
	// simpler than tracking them
	for _, limit := range []int{5, 10, 20} {
		_ = s.cache.Delete(ctx, fmt.Sprintf("destinations:popular:%d", limit))
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func pageSlice(list []domain.Destination, page, limit int) []domain.Destination {
	start := (page - 1) * limit
	if start >= len(list) {
		return []domain.Destination{}
	}
	end := start + limit
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
