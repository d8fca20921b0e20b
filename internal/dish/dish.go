/*
Package dish
File: dish.go
Description:
    The dish flavor engine. A dish is an ordered list of staged ingredient
    units; its flavor is the per-axis sum diluted by the number of units.

    Dilution: D = 1 + (N-1) * DilutionStep
      1 unit  -> 100% strength
      2 units -> 74%
      3 units -> 59%
      4 units -> 49%
      5 units -> 42%
*/

package dish

import (
	"errors"

	"github.com/everforgeworks/umami-lab/internal/kitchen"
)

// MaxIngredients is the most units a dish can hold.
const MaxIngredients = 5

// DilutionStep is the strength lost per extra unit.
const DilutionStep = 0.35

var (
	// ErrDishFull is returned when staging a sixth unit.
	ErrDishFull = errors.New("dish already holds the maximum number of ingredients")
	// ErrInvalidIndex is returned when removing a position that does not exist.
	ErrInvalidIndex = errors.New("no ingredient at that position")
)

// DilutionFactor returns D for n staged units. n < 1 is treated as 1.
func DilutionFactor(n int) float64 {
	if n < 1 {
		return 1
	}
	return 1 + float64(n-1)*DilutionStep
}

// Flavor aggregates the ingredients into a single diluted vector.
// Repeated ingredients contribute once per occurrence. No rounding is applied.
func Flavor(selected []kitchen.Ingredient) kitchen.FlavorVector {
	if len(selected) == 0 {
		return kitchen.FlavorVector{}
	}

	// 1. Sum raw values
	var raw kitchen.FlavorVector
	for _, ing := range selected {
		raw = raw.Plus(ing.Flavor())
	}

	// 2. Dilute by unit count, not distinct count
	return raw.Div(DilutionFactor(len(selected)))
}

// Dish is the set of units staged for the current customer.
type Dish struct {
	items []kitchen.Ingredient
}

// Add stages one unit.
func (d *Dish) Add(ing kitchen.Ingredient) error {
	if d.IsFull() {
		return ErrDishFull
	}
	d.items = append(d.items, ing)
	return nil
}

// Remove unstages the unit at index and returns it.
func (d *Dish) Remove(index int) (kitchen.Ingredient, error) {
	if index < 0 || index >= len(d.items) {
		return kitchen.Ingredient{}, ErrInvalidIndex
	}
	ing := d.items[index]
	d.items = append(d.items[:index], d.items[index+1:]...)
	return ing, nil
}

// Len is the number of staged units.
func (d *Dish) Len() int {
	return len(d.items)
}

// IsFull reports whether another unit can be staged.
func (d *Dish) IsFull() bool {
	return len(d.items) >= MaxIngredients
}

// Items returns a copy of the staged units in order.
func (d *Dish) Items() []kitchen.Ingredient {
	out := make([]kitchen.Ingredient, len(d.items))
	copy(out, d.items)
	return out
}

// Keys returns the staged ingredient keys in order.
func (d *Dish) Keys() []string {
	keys := make([]string, len(d.items))
	for i, ing := range d.items {
		keys[i] = ing.Key
	}
	return keys
}

// Flavor is the live diluted vector of the staged units.
func (d *Dish) Flavor() kitchen.FlavorVector {
	return Flavor(d.items)
}

// Clear drops every staged unit.
func (d *Dish) Clear() {
	d.items = nil
}
