/*
Package customer
File: models.go
Description:
    Defines the customer profile produced by the generator and the
    fixed name/avatar pools it draws from.
*/

package customer

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/everforgeworks/umami-lab/internal/kitchen"
)

// Profile is the flavor-preference archetype a customer is drawn from.
type Profile string

const (
	ProfileSweetLover  Profile = "sweet-lover"
	ProfileUmamiLover  Profile = "umami-lover"
	ProfileSourLover   Profile = "sour-lover"
	ProfileSpicyLover  Profile = "spicy-lover"
	ProfileSaltyLover  Profile = "salty-lover"
	ProfileBitterLover Profile = "bitter-lover"
	ProfileBalanced    Profile = "balanced"
)

// Profiles is the draw order for archetypes.
var Profiles = []Profile{
	ProfileSweetLover,
	ProfileUmamiLover,
	ProfileSourLover,
	ProfileSpicyLover,
	ProfileSaltyLover,
	ProfileBitterLover,
	ProfileBalanced,
}

// BoldThreshold splits the "bold" and "mild" generation branches.
const BoldThreshold = 0.6

// DefaultPatience is carried on every customer. Nothing consumes it yet.
const DefaultPatience = 60

// Customer is one generated guest in the daily queue.
type Customer struct {
	ID        string               `json:"id"`                // Unique runtime ID
	Name      string               `json:"name"`              // Display name from the fixed pool
	Avatar    string               `json:"avatar"`            // Display avatar from the fixed pool
	Target    kitchen.FlavorVector `json:"target"`            // Flavor the customer wants
	Tolerance float64              `json:"tolerance"`         // Higher = more forgiving
	Patience  int                  `json:"patience"`          // Reserved
	Tip       int                  `json:"tip"`               // Base tip, 5-9
	Intensity float64              `json:"intensity"`         // > BoldThreshold means bold
	Profile   Profile              `json:"profile"`           // Archetype
	Allergy   kitchen.Allergen     `json:"allergy,omitempty"` // Empty when none declared
}

// IsBold reports whether the customer came from the bold branch.
func (c Customer) IsBold() bool {
	return c.Intensity > BoldThreshold
}

// IntensityLabel is the short description shown next to the customer.
func (c Customer) IntensityLabel() string {
	if c.IsBold() {
		return "Bold Flavors"
	}
	return "Mild Flavors"
}

// ToleranceLabel buckets the tolerance for display.
func (c Customer) ToleranceLabel() string {
	switch {
	case c.Tolerance < 2.5:
		return "Very Low"
	case c.Tolerance < 3:
		return "Low"
	case c.Tolerance < 3.5:
		return "Medium"
	default:
		return "High"
	}
}

// ProfileLabel turns "sweet-lover" into "Sweet Lover".
func (c Customer) ProfileLabel() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c.Profile), "-", " "))
}

// MarshalJSON publishes the display labels next to the raw fields.
func (c Customer) MarshalJSON() ([]byte, error) {
	type plain Customer
	return json.Marshal(struct {
		plain
		ProfileLabel   string `json:"profile_label"`
		ToleranceLabel string `json:"tolerance_label"`
		IntensityLabel string `json:"intensity_label"`
	}{
		plain:          plain(c),
		ProfileLabel:   c.ProfileLabel(),
		ToleranceLabel: c.ToleranceLabel(),
		IntensityLabel: c.IntensityLabel(),
	})
}

// HasAllergy reports whether the customer declared an allergen.
func (c Customer) HasAllergy() bool {
	return c.Allergy != kitchen.AllergenNone
}

// Avatars is the fixed avatar pool.
var Avatars = []string{
	"👨‍🍳", "👩‍🍳", "🧑‍🍳", "👴", "👵", "👨‍💼", "👩‍💼", "👨‍🎓", "👩‍🎓", "🧑‍🎨",
	"👨‍🔬", "👩‍🔬", "🧙‍♂️", "🧙‍♀️", "🤴", "👸", "🧑‍🌾", "👨‍🏫", "👩‍🏫", "🧑‍⚕️",
}

// Names is the fixed name pool. Repeats across a queue are allowed.
var Names = []string{
	"Chef Mario", "Baker Betty", "Professor Chen", "Detective Davis", "Artist Amy",
	"Scientist Sam", "Wizard Walter", "Queen Quincy", "Farmer Fred", "Teacher Tina",
	"Doctor Diana", "Critic Carlos", "Foodie Fiona", "Gourmet Gary", "Epicurean Emma",
	"Connoisseur Connor", "Taste-tester Tara", "Savant Steven", "Maven Maya", "Expert Eric",
}
