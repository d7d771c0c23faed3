// Package catalog holds the static reference dataset: champions, items and
// runes keyed by lowercase slugs. The package-level tables are never handed
// out; every accessor returns copies.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dom/rift-companion/internal/domain"
	"gorm.io/datatypes"
)

// Version identifies the game patch the dataset reflects
const Version = "7.0c"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

type Catalog struct {
	Champions []domain.Champion
	Items     []domain.Item
	Runes     []domain.Rune
}

// Default returns a fresh copy of the built-in dataset with catalog positions set.
func Default() *Catalog {
	c := &Catalog{
		Champions: make([]domain.Champion, len(champions)),
		Items:     make([]domain.Item, len(items)),
		Runes:     make([]domain.Rune, len(runes)),
	}

	for i, ch := range champions {
		ch.Position = i
		c.Champions[i] = ch
	}
	for i, it := range items {
		it.Position = i
		it.Tags = append(datatypes.JSONSlice[domain.ItemTag](nil), it.Tags...)
		c.Items[i] = it
	}
	for i, r := range runes {
		r.Position = i
		c.Runes[i] = r
	}

	return c
}

// MustLoad returns the validated default dataset and panics if it is malformed.
func MustLoad() *Catalog {
	c := Default()
	if err := Validate(c); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Validate checks identifiers, enumerations, costs and the item tag vocabulary.
func Validate(c *Catalog) error {
	seen := make(map[string]bool, len(c.Champions))
	for _, ch := range c.Champions {
		if !slugPattern.MatchString(ch.ID) {
			return fmt.Errorf("%w: champion id %q is not a lowercase slug", domain.ErrInvalidCatalog, ch.ID)
		}
		if seen[ch.ID] {
			return fmt.Errorf("%w: duplicate champion id %q", domain.ErrInvalidCatalog, ch.ID)
		}
		seen[ch.ID] = true

		if !ch.Role.IsValid() || !ch.DamageType.IsValid() || !ch.Archetype.IsValid() ||
			!ch.PowerCurve.IsValid() || !ch.Range.IsValid() || !ch.CCDensity.IsValid() || !ch.Mobility.IsValid() {
			return fmt.Errorf("%w: champion %q has an invalid attribute", domain.ErrInvalidCatalog, ch.ID)
		}
	}

	seen = make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if !slugPattern.MatchString(it.ID) {
			return fmt.Errorf("%w: item id %q is not a lowercase slug", domain.ErrInvalidCatalog, it.ID)
		}
		if seen[it.ID] {
			return fmt.Errorf("%w: duplicate item id %q", domain.ErrInvalidCatalog, it.ID)
		}
		seen[it.ID] = true

		if it.Cost <= 0 {
			return fmt.Errorf("%w: item %q has non-positive cost %d", domain.ErrInvalidCatalog, it.ID, it.Cost)
		}
		if !it.Category.IsValid() {
			return fmt.Errorf("%w: item %q has invalid category %q", domain.ErrInvalidCatalog, it.ID, it.Category)
		}
		for _, tag := range it.Tags {
			if _, err := domain.ParseItemTag(string(tag)); err != nil {
				return fmt.Errorf("%w: item %q: %w", domain.ErrInvalidCatalog, it.ID, err)
			}
		}
	}

	seen = make(map[string]bool, len(c.Runes))
	for _, r := range c.Runes {
		if !slugPattern.MatchString(r.ID) {
			return fmt.Errorf("%w: rune id %q is not a lowercase slug", domain.ErrInvalidCatalog, r.ID)
		}
		if seen[r.ID] {
			return fmt.Errorf("%w: duplicate rune id %q", domain.ErrInvalidCatalog, r.ID)
		}
		seen[r.ID] = true
	}

	return nil
}

func (c *Catalog) Champion(id string) (domain.Champion, error) {
	for _, ch := range c.Champions {
		if ch.ID == id {
			return ch, nil
		}
	}
	return domain.Champion{}, fmt.Errorf("%w: %s", domain.ErrChampionNotFound, id)
}

func (c *Catalog) Item(id string) (domain.Item, error) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, nil
		}
	}
	return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
}

func (c *Catalog) Rune(id string) (domain.Rune, error) {
	for _, r := range c.Runes {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Rune{}, fmt.Errorf("%w: %s", domain.ErrRuneNotFound, id)
}

// SearchChampions filters champions whose name contains query (case-insensitive),
// skipping any ID in exclude. An empty query matches everything.
func SearchChampions(all []domain.Champion, query string, exclude []string) []domain.Champion {
	q := strings.ToLower(strings.TrimSpace(query))
	skip := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}

	result := make([]domain.Champion, 0, len(all))
	for _, ch := range all {
		if skip[ch.ID] {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(ch.Name), q) {
			continue
		}
		result = append(result, ch)
	}
	return result
}

// ItemsByCategory keeps catalog order
func ItemsByCategory(all []domain.Item, category domain.ItemCategory) []domain.Item {
	result := make([]domain.Item, 0, len(all))
	for _, it := range all {
		if it.Category == category {
			result = append(result, it)
		}
	}
	return result
}

func tags(t ...domain.ItemTag) datatypes.JSONSlice[domain.ItemTag] {
	return datatypes.JSONSlice[domain.ItemTag](t)
}
