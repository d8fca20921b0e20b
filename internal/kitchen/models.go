/*
Package kitchen
File: models.go
Description:
    Defines the static kitchen data: ingredients, allergen tags and the
    six-axis flavor vector every other package works with.

    No game logic lives here; the only behavior is vector arithmetic.
*/

package kitchen

import "math"

// Allergen is a closed set of tags an ingredient may carry and a customer may declare.
type Allergen string

const (
	AllergenNone       Allergen = ""
	AllergenSoy        Allergen = "soy"
	AllergenCitrus     Allergen = "citrus"
	AllergenNightshade Allergen = "nightshade"
	AllergenFungi      Allergen = "fungi"
	AllergenAllium     Allergen = "allium"
)

// Allergens lists every declarable allergen in the order customers draw them.
var Allergens = []Allergen{
	AllergenSoy,
	AllergenCitrus,
	AllergenNightshade,
	AllergenFungi,
	AllergenAllium,
}

// Axis names one of the six taste dimensions.
type Axis string

const (
	AxisSour   Axis = "sour"
	AxisSweet  Axis = "sweet"
	AxisBitter Axis = "bitter"
	AxisSalty  Axis = "salty"
	AxisUmami  Axis = "umami"
	AxisSpicy  Axis = "spicy"
)

// Axes is the canonical axis order used for iteration and display.
var Axes = []Axis{AxisSour, AxisSweet, AxisBitter, AxisSalty, AxisUmami, AxisSpicy}

// Ingredient is one row of the catalog. Values are immutable after load.
type Ingredient struct {
	Key      string   `yaml:"key" json:"key" validate:"required"`       // Unique ID (e.g., "soySauce")
	Name     string   `yaml:"name" json:"name" validate:"required"`     // Display name
	Emoji    string   `yaml:"emoji" json:"emoji"`                       // Presentation hint only
	Cost     int      `yaml:"cost" json:"cost" validate:"gt=0"`         // Purchase price in dollars
	Allergen Allergen `yaml:"allergen" json:"allergen,omitempty" validate:"omitempty,oneof=soy citrus nightshade fungi allium"`

	// Flavor intensities, each 0-9.
	Sour   int `yaml:"sour" json:"sour" validate:"min=0,max=9"`
	Sweet  int `yaml:"sweet" json:"sweet" validate:"min=0,max=9"`
	Bitter int `yaml:"bitter" json:"bitter" validate:"min=0,max=9"`
	Salty  int `yaml:"salty" json:"salty" validate:"min=0,max=9"`
	Umami  int `yaml:"umami" json:"umami" validate:"min=0,max=9"`
	Spicy  int `yaml:"spicy" json:"spicy" validate:"min=0,max=9"`
}

// Flavor returns the ingredient's raw contribution as a vector.
func (i Ingredient) Flavor() FlavorVector {
	return FlavorVector{
		Sour:   float64(i.Sour),
		Sweet:  float64(i.Sweet),
		Bitter: float64(i.Bitter),
		Salty:  float64(i.Salty),
		Umami:  float64(i.Umami),
		Spicy:  float64(i.Spicy),
	}
}

// HasAllergen reports whether the ingredient carries the given tag.
// AllergenNone never matches.
func (i Ingredient) HasAllergen(a Allergen) bool {
	return a != AllergenNone && i.Allergen == a
}

// FlavorVector is a point in the six-axis taste space.
type FlavorVector struct {
	Sour   float64 `json:"sour"`
	Sweet  float64 `json:"sweet"`
	Bitter float64 `json:"bitter"`
	Salty  float64 `json:"salty"`
	Umami  float64 `json:"umami"`
	Spicy  float64 `json:"spicy"`
}

// Get returns the component for a single axis.
func (v FlavorVector) Get(a Axis) float64 {
	switch a {
	case AxisSour:
		return v.Sour
	case AxisSweet:
		return v.Sweet
	case AxisBitter:
		return v.Bitter
	case AxisSalty:
		return v.Salty
	case AxisUmami:
		return v.Umami
	case AxisSpicy:
		return v.Spicy
	}
	return 0
}

// Plus adds two vectors component-wise.
func (v FlavorVector) Plus(o FlavorVector) FlavorVector {
	return FlavorVector{
		Sour:   v.Sour + o.Sour,
		Sweet:  v.Sweet + o.Sweet,
		Bitter: v.Bitter + o.Bitter,
		Salty:  v.Salty + o.Salty,
		Umami:  v.Umami + o.Umami,
		Spicy:  v.Spicy + o.Spicy,
	}
}

// Div divides every component by d.
func (v FlavorVector) Div(d float64) FlavorVector {
	return FlavorVector{
		Sour:   v.Sour / d,
		Sweet:  v.Sweet / d,
		Bitter: v.Bitter / d,
		Salty:  v.Salty / d,
		Umami:  v.Umami / d,
		Spicy:  v.Spicy / d,
	}
}

// Distance computes the Euclidean distance between two vectors across all six axes.
func (v FlavorVector) Distance(o FlavorVector) float64 {
	sum := 0.0
	for _, a := range Axes {
		d := v.Get(a) - o.Get(a)
		sum += d * d
	}
	return math.Sqrt(sum)
}
