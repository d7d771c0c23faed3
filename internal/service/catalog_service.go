package service

import (
	"context"
	"fmt"
	"log"

	"github.com/dom/rift-companion/internal/catalog"
	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/repository"
)

type CatalogService struct {
	repos *repository.Repositories
}

func NewCatalogService(repos *repository.Repositories) *CatalogService {
	return &CatalogService{repos: repos}
}

// SearchChampions lists champions in catalog order, optionally filtered by a
// name substring and with already-picked IDs left out
func (s *CatalogService) SearchChampions(ctx context.Context, query string, exclude []string) ([]domain.Champion, error) {
	all, err := s.champions(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.SearchChampions(all, query, exclude), nil
}

func (s *CatalogService) GetChampion(ctx context.Context, id string) (*domain.Champion, error) {
	return s.repos.Champion.GetByID(ctx, id)
}

// ListItems returns every item, or only those in category when it is non-empty
func (s *CatalogService) ListItems(ctx context.Context, category domain.ItemCategory) ([]domain.Item, error) {
	if category != "" && !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
	}

	all, err := s.items(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return all, nil
	}
	return catalog.ItemsByCategory(all, category), nil
}

func (s *CatalogService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.repos.Item.GetByID(ctx, id)
}

func (s *CatalogService) ListRunes(ctx context.Context) ([]domain.Rune, error) {
	runes, err := s.repos.Rune.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runes: %w", err)
	}
	result := make([]domain.Rune, len(runes))
	for i, r := range runes {
		result[i] = *r
	}
	return result, nil
}

// Sync re-seeds the active storage backend from the built-in dataset
func (s *CatalogService) Sync(ctx context.Context) (*repository.SeedResult, error) {
	cat := catalog.Default()
	if err := catalog.Validate(cat); err != nil {
		return nil, err
	}

	result, err := repository.Seed(ctx, s.repos, cat)
	if err != nil {
		log.Printf("ERROR [catalog.Sync] version=%s: %v", catalog.Version, err)
		return nil, fmt.Errorf("failed to sync catalog: %w", err)
	}

	log.Printf("[catalog.Sync] seeded %d champions, %d items, %d runes (version %s)",
		result.Champions, result.Items, result.Runes, result.Version)
	return result, nil
}

func (s *CatalogService) champions(ctx context.Context) ([]domain.Champion, error) {
	champions, err := s.repos.Champion.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list champions: %w", err)
	}
	result := make([]domain.Champion, len(champions))
	for i, ch := range champions {
		result[i] = *ch
	}
	return result, nil
}

func (s *CatalogService) items(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repos.Item.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	result := make([]domain.Item, len(items))
	for i, it := range items {
		result[i] = *it
	}
	return result, nil
}
