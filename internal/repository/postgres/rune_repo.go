package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dom/rift-companion/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type runeRepository struct {
	db *gorm.DB
}

func NewRuneRepository(db *gorm.DB) *runeRepository {
	return &runeRepository{db: db}
}

func (r *runeRepository) UpsertMany(ctx context.Context, runes []*domain.Rune) error {
	if len(runes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(runes).Error
}

func (r *runeRepository) GetAll(ctx context.Context) ([]*domain.Rune, error) {
	var runes []*domain.Rune
	err := r.db.WithContext(ctx).Order("position ASC, id ASC").Find(&runes).Error
	if err != nil {
		return nil, err
	}
	return runes, nil
}

func (r *runeRepository) GetByID(ctx context.Context, id string) (*domain.Rune, error) {
	var ru domain.Rune
	err := r.db.WithContext(ctx).First(&ru, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRuneNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &ru, nil
}
