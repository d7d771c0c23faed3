package repository

import (
	"context"

	"github.com/dom/rift-companion/internal/domain"
)

// GetAll implementations return rows in catalog order (Position ascending).
// GetByID returns a wrapped domain not-found error for unknown IDs.

type ChampionRepository interface {
	UpsertMany(ctx context.Context, champions []*domain.Champion) error
	GetAll(ctx context.Context) ([]*domain.Champion, error)
	GetByID(ctx context.Context, id string) (*domain.Champion, error)
}

type ItemRepository interface {
	UpsertMany(ctx context.Context, items []*domain.Item) error
	GetAll(ctx context.Context) ([]*domain.Item, error)
	GetByID(ctx context.Context, id string) (*domain.Item, error)
}

type RuneRepository interface {
	UpsertMany(ctx context.Context, runes []*domain.Rune) error
	GetAll(ctx context.Context) ([]*domain.Rune, error)
	GetByID(ctx context.Context, id string) (*domain.Rune, error)
}

type Repositories struct {
	Champion ChampionRepository
	Item     ItemRepository
	Rune     RuneRepository
}
