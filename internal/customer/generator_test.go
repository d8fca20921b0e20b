package customer

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everforgeworks/umami-lab/internal/kitchen"
)

// scripted replays a fixed list of draws and fails the test if it runs dry.
func scripted(t *testing.T, vals ...float64) RandomSource {
	t.Helper()
	i := 0
	return func() float64 {
		if i >= len(vals) {
			t.Fatalf("random source exhausted after %d draws", len(vals))
		}
		v := vals[i]
		i++
		return v
	}
}

func fixedID() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("cust-%d", n)
	}
}

func TestGenerate_BoldSweetLover(t *testing.T) {
	// intensity, profile, strong, mild, base, tolerance, name, avatar, tip
	rnd := scripted(t, 0.9, 0.0, 0.5, 0.0, 0.99, 0.5, 0.0, 0.05, 0.99)
	g := NewGenerator(rnd).WithIDFunc(fixedID())

	c := g.Generate(1)

	assert.Equal(t, "cust-1", c.ID)
	assert.Equal(t, ProfileSweetLover, c.Profile)
	assert.True(t, c.IsBold())
	assert.Equal(t, kitchen.FlavorVector{Sour: 2, Sweet: 8, Bitter: 0, Salty: 2, Umami: 2, Spicy: 2}, c.Target)
	assert.InDelta(t, 2.5, c.Tolerance, 1e-9)
	assert.Equal(t, "Chef Mario", c.Name)
	assert.Equal(t, Avatars[1], c.Avatar)
	assert.Equal(t, 9, c.Tip)
	assert.Equal(t, DefaultPatience, c.Patience)
	assert.False(t, c.HasAllergy())
}

func TestGenerate_MildUmamiLoverWithAllergy(t *testing.T) {
	// intensity, profile, strong, mild, base, low, veryLow, tolerance,
	// allergy roll, allergen, name, avatar, tip
	rnd := scripted(t, 0.3, 0.15, 0.0, 0.7, 0.0, 0.6, 0.4, 0.5, 0.1, 0.0, 0.999, 0.5, 0.0)
	g := NewGenerator(rnd).WithIDFunc(fixedID())

	c := g.Generate(5)

	assert.Equal(t, ProfileUmamiLover, c.Profile)
	assert.False(t, c.IsBold())
	assert.Equal(t, kitchen.FlavorVector{Sour: 0, Sweet: 3, Bitter: 0, Salty: 4, Umami: 5, Spicy: 0}, c.Target)
	assert.InDelta(t, 3.75, c.Tolerance, 1e-9)
	assert.Equal(t, kitchen.AllergenSoy, c.Allergy)
	assert.Equal(t, "Expert Eric", c.Name)
	assert.Equal(t, Avatars[10], c.Avatar)
	assert.Equal(t, 5, c.Tip)
}

func TestGenerate_AllergyRollMissesSkipsAllergenDraw(t *testing.T) {
	// bold balanced; allergy roll 0.4 is not below the 40% threshold
	rnd := scripted(t, 0.61, 0.99, 0.0, 0.0, 0.0, 0.0, 0.4, 0.0, 0.0, 0.0)
	c := NewGenerator(rnd).Generate(7)

	assert.Equal(t, ProfileBalanced, c.Profile)
	assert.Equal(t, kitchen.FlavorVector{Sour: 3, Sweet: 3, Bitter: 2, Salty: 3, Umami: 4, Spicy: 2}, c.Target)
	assert.False(t, c.HasAllergy())
	assert.Equal(t, "Chef Mario", c.Name)
	assert.Equal(t, 5, c.Tip)
	assert.NotEmpty(t, c.ID)
}

func TestGenerate_IntensityBoundaryIsMild(t *testing.T) {
	// exactly 0.6 belongs to the mild branch and draws low/veryLow
	rnd := scripted(t, 0.6, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0)
	c := NewGenerator(rnd).Generate(1)

	assert.False(t, c.IsBold())
	assert.Equal(t, kitchen.FlavorVector{Sour: 0, Sweet: 3, Bitter: 0, Salty: 2, Umami: 2, Spicy: 0}, c.Target)
	assert.InDelta(t, 3.0, c.Tolerance, 1e-9)
}

func TestGenerate_Ranges(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)).Float64)
	signature := map[Profile]kitchen.Axis{
		ProfileSweetLover:  kitchen.AxisSweet,
		ProfileUmamiLover:  kitchen.AxisUmami,
		ProfileSourLover:   kitchen.AxisSour,
		ProfileSpicyLover:  kitchen.AxisSpicy,
		ProfileSaltyLover:  kitchen.AxisSalty,
		ProfileBitterLover: kitchen.AxisBitter,
	}

	for i := 0; i < 2000; i++ {
		day := 1 + i%15
		c := g.Generate(day)

		require.GreaterOrEqual(t, c.Tip, 5)
		require.LessOrEqual(t, c.Tip, 9)
		if day < AllergyStartDay {
			require.False(t, c.HasAllergy(), "no allergies before day %d", AllergyStartDay)
		}

		for _, a := range kitchen.Axes {
			v := c.Target.Get(a)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 9.0)
		}

		if c.IsBold() {
			require.GreaterOrEqual(t, c.Tolerance, 2.0)
			require.Less(t, c.Tolerance, 3.0)
			if axis, ok := signature[c.Profile]; ok {
				require.GreaterOrEqual(t, c.Target.Get(axis), 7.0, "bold signature axis uses strong value")
			}
		} else {
			require.GreaterOrEqual(t, c.Tolerance, 3.0)
			require.Less(t, c.Tolerance, 4.5)
			for _, a := range kitchen.Axes {
				require.LessOrEqual(t, c.Target.Get(a), 5.0, "mild targets stay flat")
			}
		}
	}
}

func TestCustomerLabels(t *testing.T) {
	c := Customer{Profile: ProfileBitterLover, Tolerance: 2.4, Intensity: 0.7}
	assert.Equal(t, "Bitter Lover", c.ProfileLabel())
	assert.Equal(t, "Very Low", c.ToleranceLabel())
	assert.Equal(t, "Bold Flavors", c.IntensityLabel())

	c = Customer{Profile: ProfileBalanced, Tolerance: 3.2, Intensity: 0.2}
	assert.Equal(t, "Balanced", c.ProfileLabel())
	assert.Equal(t, "Medium", c.ToleranceLabel())
	assert.Equal(t, "Mild Flavors", c.IntensityLabel())

	assert.Equal(t, "Low", Customer{Tolerance: 2.9}.ToleranceLabel())
	assert.Equal(t, "High", Customer{Tolerance: 4.1}.ToleranceLabel())
}

func TestCustomerJSONCarriesLabels(t *testing.T) {
	c := Customer{ID: "c1", Name: "Chef Mario", Profile: ProfileSpicyLover, Tolerance: 3.6, Intensity: 0.9, Tip: 7}

	data, err := json.Marshal(&c)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Spicy Lover", got["profile_label"])
	assert.Equal(t, "High", got["tolerance_label"])
	assert.Equal(t, "Bold Flavors", got["intensity_label"])
	assert.Equal(t, "spicy-lover", got["profile"])
	assert.Equal(t, "Chef Mario", got["name"])
	assert.Equal(t, float64(7), got["tip"])
	assert.NotContains(t, got, "allergy", "no allergen declared")

	var back Customer
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, back)
}
