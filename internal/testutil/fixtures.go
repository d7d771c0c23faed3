package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/dom/rift-companion/internal/domain"
	"gorm.io/gorm"
)

var fixtureSeq atomic.Int64

// ChampionBuilder creates test champions
type ChampionBuilder struct {
	champion domain.Champion
}

// NewChampionBuilder creates a physical ranged marksman with low CC and mobility
func NewChampionBuilder() *ChampionBuilder {
	id := fmt.Sprintf("champion_%d", fixtureSeq.Add(1))
	return &ChampionBuilder{champion: domain.Champion{
		ID:         id,
		Name:       id,
		Role:       domain.RoleADC,
		DamageType: domain.DamagePhysical,
		Archetype:  domain.ArchetypeMarksman,
		PowerCurve: domain.CurveLinear,
		Range:      domain.RangeRanged,
		CCDensity:  domain.LevelLow,
		Mobility:   domain.LevelLow,
	}}
}

func (b *ChampionBuilder) WithID(id string) *ChampionBuilder {
	b.champion.ID = id
	b.champion.Name = id
	return b
}

func (b *ChampionBuilder) WithName(name string) *ChampionBuilder {
	b.champion.Name = name
	return b
}

func (b *ChampionBuilder) WithDamage(d domain.DamageType) *ChampionBuilder {
	b.champion.DamageType = d
	return b
}

func (b *ChampionBuilder) WithArchetype(a domain.Archetype) *ChampionBuilder {
	b.champion.Archetype = a
	return b
}

func (b *ChampionBuilder) WithCurve(c domain.PowerCurve) *ChampionBuilder {
	b.champion.PowerCurve = c
	return b
}

func (b *ChampionBuilder) WithCC(l domain.Level) *ChampionBuilder {
	b.champion.CCDensity = l
	return b
}

func (b *ChampionBuilder) WithMobility(l domain.Level) *ChampionBuilder {
	b.champion.Mobility = l
	return b
}

func (b *ChampionBuilder) WithPosition(p int) *ChampionBuilder {
	b.champion.Position = p
	return b
}

// Value returns the champion without persisting it
func (b *ChampionBuilder) Value() domain.Champion {
	return b.champion
}

// Build creates the champion in the database
func (b *ChampionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Champion {
	t.Helper()

	champion := b.champion
	if err := db.Create(&champion).Error; err != nil {
		t.Fatalf("failed to create champion: %v", err)
	}
	return &champion
}

// ItemBuilder creates test items
type ItemBuilder struct {
	item domain.Item
}

// NewItemBuilder creates an untagged offensive-physical item costing 3000
func NewItemBuilder() *ItemBuilder {
	id := fmt.Sprintf("item_%d", fixtureSeq.Add(1))
	return &ItemBuilder{item: domain.Item{
		ID:       id,
		Name:     id,
		Cost:     3000,
		Category: domain.CategoryOffensivePhysical,
	}}
}

func (b *ItemBuilder) WithID(id string) *ItemBuilder {
	b.item.ID = id
	b.item.Name = id
	return b
}

func (b *ItemBuilder) WithCost(cost int) *ItemBuilder {
	b.item.Cost = cost
	return b
}

func (b *ItemBuilder) WithCategory(c domain.ItemCategory) *ItemBuilder {
	b.item.Category = c
	return b
}

func (b *ItemBuilder) WithTags(tags ...domain.ItemTag) *ItemBuilder {
	b.item.Tags = tags
	return b
}

func (b *ItemBuilder) WithStats(stats domain.StatBlock) *ItemBuilder {
	b.item.Stats = stats
	return b
}

func (b *ItemBuilder) WithPosition(p int) *ItemBuilder {
	b.item.Position = p
	return b
}

// Value returns the item without persisting it
func (b *ItemBuilder) Value() domain.Item {
	return b.item
}

// Build creates the item in the database
func (b *ItemBuilder) Build(t *testing.T, db *gorm.DB) *domain.Item {
	t.Helper()

	item := b.item
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	return &item
}

// NewJSONRequest creates an HTTP request with a JSON body and an optional bearer token
func NewJSONRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// PostJSON sends body to url and returns the response
func PostJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(NewJSONRequest(t, http.MethodPost, url, body, ""))
	if err != nil {
		t.Fatalf("request to %s failed: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
