package repository

import (
	"context"
	"fmt"

	"github.com/dom/rift-companion/internal/catalog"
	"github.com/dom/rift-companion/internal/domain"
)

// SeedResult reports how many rows each table received
type SeedResult struct {
	Champions int    `json:"champions"`
	Items     int    `json:"items"`
	Runes     int    `json:"runes"`
	Version   string `json:"version"`
}

// Seed upserts the static dataset into repos. Positions are written so that
// GetAll keeps catalog order on every backend.
func Seed(ctx context.Context, repos *Repositories, cat *catalog.Catalog) (*SeedResult, error) {
	champions := make([]*domain.Champion, len(cat.Champions))
	for i := range cat.Champions {
		champions[i] = &cat.Champions[i]
	}
	if err := repos.Champion.UpsertMany(ctx, champions); err != nil {
		return nil, fmt.Errorf("seed champions: %w", err)
	}

	items := make([]*domain.Item, len(cat.Items))
	for i := range cat.Items {
		items[i] = &cat.Items[i]
	}
	if err := repos.Item.UpsertMany(ctx, items); err != nil {
		return nil, fmt.Errorf("seed items: %w", err)
	}

	runes := make([]*domain.Rune, len(cat.Runes))
	for i := range cat.Runes {
		runes[i] = &cat.Runes[i]
	}
	if err := repos.Rune.UpsertMany(ctx, runes); err != nil {
		return nil, fmt.Errorf("seed runes: %w", err)
	}

	return &SeedResult{
		Champions: len(champions),
		Items:     len(items),
		Runes:     len(runes),
		Version:   catalog.Version,
	}, nil
}
