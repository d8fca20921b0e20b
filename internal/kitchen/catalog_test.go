package kitchen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.Equal(t, 19, c.Len())

	mushroom, ok := c.Get("mushroom")
	require.True(t, ok)
	assert.Equal(t, 3, mushroom.Cost)
	assert.Equal(t, AllergenFungi, mushroom.Allergen)
	assert.Equal(t, FlavorVector{Sour: 0, Sweet: 1, Bitter: 2, Salty: 1, Umami: 8, Spicy: 0}, mushroom.Flavor())

	_, ok = c.Get("beef")
	assert.False(t, ok)
}

func TestDefaultCatalog_AllergenCoverage(t *testing.T) {
	free := 0
	tags := map[Allergen]int{}
	for _, ing := range Default().All() {
		if ing.Allergen == AllergenNone {
			free++
			continue
		}
		tags[ing.Allergen]++
	}

	// roughly half the catalog is allergen-free
	assert.Equal(t, 9, free)
	for _, a := range Allergens {
		assert.Positive(t, tags[a], "allergen %s should appear in the catalog", a)
	}
}

func TestDefaultCatalog_DeclaredOrder(t *testing.T) {
	all := Default().All()
	assert.Equal(t, "mushroom", all[0].Key)
	assert.Equal(t, "seaweed", all[len(all)-1].Key)

	// callers get a copy
	all[0].Cost = 999
	first, _ := Default().Get("mushroom")
	assert.Equal(t, 3, first.Cost)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "ingredients: []"},
		{"attribute out of range", "ingredients:\n  - {key: x, name: X, cost: 1, umami: 10}"},
		{"zero cost", "ingredients:\n  - {key: x, name: X, cost: 0}"},
		{"unknown allergen", "ingredients:\n  - {key: x, name: X, cost: 1, allergen: peanut}"},
		{"duplicate key", "ingredients:\n  - {key: x, name: X, cost: 1}\n  - {key: x, name: Y, cost: 1}"},
		{"bad yaml", "ingredients: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load([]byte(tt.doc))
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestFlavorVector_Distance(t *testing.T) {
	a := FlavorVector{Umami: 8, Sweet: 1, Bitter: 2, Salty: 1}
	b := FlavorVector{Umami: 9}

	assert.InDelta(t, 2.6458, a.Distance(b), 0.0001)
	assert.Zero(t, a.Distance(a))
	assert.Equal(t, a.Distance(b), b.Distance(a))
}

func TestIngredient_HasAllergen(t *testing.T) {
	lemon, _ := Default().Get("lemon")
	carrot, _ := Default().Get("carrot")

	assert.True(t, lemon.HasAllergen(AllergenCitrus))
	assert.False(t, lemon.HasAllergen(AllergenSoy))
	assert.False(t, carrot.HasAllergen(AllergenNone))
}
