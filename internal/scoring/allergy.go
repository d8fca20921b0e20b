package scoring

import "github.com/everforgeworks/umami-lab/internal/kitchen"

// CheckAllergy reports whether any selected ingredient carries the customer's declared allergen.
// It must run before Score on every serve.
func CheckAllergy(selected []kitchen.Ingredient, allergy kitchen.Allergen) bool {
	if allergy == kitchen.AllergenNone {
		return false
	}
	for _, ing := range selected {
		if ing.HasAllergen(allergy) {
			return true
		}
	}
	return false
}
