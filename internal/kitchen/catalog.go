/*
Package kitchen
File: catalog.go
Description:
    Loads the embedded ingredient table (ingredients.yaml) and exposes
    read-only lookup and enumeration. The table is build-time data, so a
    malformed file is a programming error and MustLoad panics on it.
*/

package kitchen

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed ingredients.yaml
var defaultCatalogYAML []byte

// ErrDuplicateIngredient is returned when two catalog rows share a key.
var ErrDuplicateIngredient = errors.New("duplicate ingredient key")

// catalogFile maps directly onto ingredients.yaml.
type catalogFile struct {
	Ingredients []Ingredient `yaml:"ingredients"`
}

// Catalog is the immutable ingredient table.
type Catalog struct {
	items []Ingredient
	byKey map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustLoad(defaultCatalogYAML)
	})
	return defaultCatalog
}

// MustLoad is Load for build-time data.
func MustLoad(data []byte) *Catalog {
	c, err := Load(data)
	if err != nil {
		panic(fmt.Sprintf("kitchen: invalid catalog: %v", err))
	}
	return c
}

// Load decodes and validates a catalog document.
func Load(data []byte) (*Catalog, error) {
	// 1. Unmarshal into the file struct
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(f.Ingredients) == 0 {
		return nil, errors.New("catalog has no ingredients")
	}

	// 2. Validate every row against its struct tags
	v := validator.New()
	c := &Catalog{
		items: make([]Ingredient, 0, len(f.Ingredients)),
		byKey: make(map[string]int, len(f.Ingredients)),
	}
	for _, ing := range f.Ingredients {
		if err := v.Struct(ing); err != nil {
			return nil, fmt.Errorf("ingredient %q: %w", ing.Key, err)
		}
		if _, dup := c.byKey[ing.Key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIngredient, ing.Key)
		}

		// 3. Index in declared order
		c.byKey[ing.Key] = len(c.items)
		c.items = append(c.items, ing)
	}
	return c, nil
}

// Get retrieves an ingredient by key.
func (c *Catalog) Get(key string) (Ingredient, bool) {
	idx, ok := c.byKey[key]
	if !ok {
		return Ingredient{}, false
	}
	return c.items[idx], true
}

// All returns every ingredient in declared order. The slice is a copy.
func (c *Catalog) All() []Ingredient {
	out := make([]Ingredient, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of ingredients in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
