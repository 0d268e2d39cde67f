package service

import (
	"context"
	"fmt"
	"log/slog"

	"eatplus/order-svc/internal/domain"
)

type CatalogService struct {
	repo  CatalogRepository
	cache CatalogCache
	media MediaResolver
	log   *slog.Logger
}

func NewCatalogService(repo CatalogRepository, cache CatalogCache, media MediaResolver, log *slog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, media: media, log: log}
}

// ListRestaurants returns verified, available restaurants newest first. The
// list is served from cache when possible; cache faults fall through to the
// repository.
func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetRestaurants(ctx)
		if err != nil {
			s.log.Warn("catalog cache read failed", "err", err)
		}
		if ok {
			return s.resolveRestaurants(cached), nil
		}
	}

	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetRestaurants(ctx, restaurants); err != nil {
			s.log.Warn("catalog cache write failed", "err", err)
		}
	}
	return s.resolveRestaurants(restaurants), nil
}

// GetRestaurant hides restaurants that are not listed.
func (s *CatalogService) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	r, err := s.listedRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	resolved := *r
	resolved.ImageURL = s.media.URL(r.ImageURL)
	return &resolved, nil
}

func (s *CatalogService) ListMenuSections(ctx context.Context, restaurantID int64) ([]domain.MenuSection, error) {
	if _, err := s.listedRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	sections, err := s.repo.ListMenuSections(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list menu sections: %w", err)
	}
	return sections, nil
}

// ListItems returns the restaurant's available items, narrowed to the
// fulfillment type when one is given.
func (s *CatalogService) ListItems(ctx context.Context, restaurantID int64, orderFor domain.OrderFor) ([]domain.Item, error) {
	if _, err := s.listedRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, restaurantID, orderFor)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	for i := range items {
		items[i].ImageURL = s.media.URL(items[i].ImageURL)
	}
	return items, nil
}

func (s *CatalogService) ListOptions(ctx context.Context, itemID int64) ([]domain.Option, error) {
	if _, err := s.repo.GetItem(ctx, itemID); err != nil {
		return nil, fmt.Errorf("item %d: %w", itemID, err)
	}
	options, err := s.repo.ListOptions(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list options: %w", err)
	}
	return options, nil
}

func (s *CatalogService) ListChoices(ctx context.Context, itemID int64) ([]domain.Choice, error) {
	options, err := s.ListOptions(ctx, itemID)
	if err != nil {
		return nil, err
	}
	choices := []domain.Choice{}
	for _, opt := range options {
		choices = append(choices, opt.Choices...)
	}
	return choices, nil
}

func (s *CatalogService) listedRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	r, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("restaurant %d: %w", id, err)
	}
	if !r.Listed() {
		return nil, fmt.Errorf("restaurant %d: %w", id, domain.ErrNotFound)
	}
	return r, nil
}

func (s *CatalogService) resolveRestaurants(in []domain.Restaurant) []domain.Restaurant {
	out := make([]domain.Restaurant, len(in))
	for i, r := range in {
		r.ImageURL = s.media.URL(r.ImageURL)
		out[i] = r
	}
	return out
}
