// Package memory serves catalog storage straight from the static dataset.
// It is the default backend and needs no external services.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dom/rift-companion/internal/catalog"
	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/repository"
)

type store struct {
	mu  sync.RWMutex
	cat *catalog.Catalog
}

func NewRepositories(cat *catalog.Catalog) *repository.Repositories {
	s := &store{cat: cat}
	return &repository.Repositories{
		Champion: &championRepository{s: s},
		Item:     &itemRepository{s: s},
		Rune:     &runeRepository{s: s},
	}
}

type championRepository struct {
	s *store
}

func (r *championRepository) UpsertMany(ctx context.Context, champions []*domain.Champion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, ch := range champions {
		replaced := false
		for i := range r.s.cat.Champions {
			if r.s.cat.Champions[i].ID == ch.ID {
				r.s.cat.Champions[i] = *ch
				replaced = true
				break
			}
		}
		if !replaced {
			r.s.cat.Champions = append(r.s.cat.Champions, *ch)
		}
	}
	return nil
}

func (r *championRepository) GetAll(ctx context.Context) ([]*domain.Champion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*domain.Champion, len(r.s.cat.Champions))
	for i := range r.s.cat.Champions {
		ch := r.s.cat.Champions[i]
		result[i] = &ch
	}
	return result, nil
}

func (r *championRepository) GetByID(ctx context.Context, id string) (*domain.Champion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ch, err := r.s.cat.Champion(id)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

type itemRepository struct {
	s *store
}

func (r *itemRepository) UpsertMany(ctx context.Context, items []*domain.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, it := range items {
		stored := copyItem(*it)
		replaced := false
		for i := range r.s.cat.Items {
			if r.s.cat.Items[i].ID == it.ID {
				r.s.cat.Items[i] = stored
				replaced = true
				break
			}
		}
		if !replaced {
			r.s.cat.Items = append(r.s.cat.Items, stored)
		}
	}
	return nil
}

func (r *itemRepository) GetAll(ctx context.Context) ([]*domain.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*domain.Item, len(r.s.cat.Items))
	for i := range r.s.cat.Items {
		it := copyItem(r.s.cat.Items[i])
		result[i] = &it
	}
	return result, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	it, err := r.s.cat.Item(id)
	if err != nil {
		return nil, err
	}
	it = copyItem(it)
	return &it, nil
}

type runeRepository struct {
	s *store
}

func (r *runeRepository) UpsertMany(ctx context.Context, runes []*domain.Rune) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, ru := range runes {
		replaced := false
		for i := range r.s.cat.Runes {
			if r.s.cat.Runes[i].ID == ru.ID {
				r.s.cat.Runes[i] = *ru
				replaced = true
				break
			}
		}
		if !replaced {
			r.s.cat.Runes = append(r.s.cat.Runes, *ru)
		}
	}
	return nil
}

func (r *runeRepository) GetAll(ctx context.Context) ([]*domain.Rune, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*domain.Rune, len(r.s.cat.Runes))
	for i := range r.s.cat.Runes {
		ru := r.s.cat.Runes[i]
		result[i] = &ru
	}
	return result, nil
}

func (r *runeRepository) GetByID(ctx context.Context, id string) (*domain.Rune, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ru, err := r.s.cat.Rune(id)
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}
	return &ru, nil
}

// copyItem detaches the tag slice so callers cannot edit stored items
func copyItem(it domain.Item) domain.Item {
	it.Tags = append(it.Tags[:0:0], it.Tags...)
	return it
}
