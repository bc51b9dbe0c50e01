package recipe

import (
	"math/rand"
	"strings"
	"testing"
)

func newTestMock(t *testing.T) *MockSynthesizer {
	t.Helper()
	return NewMockSynthesizer(rand.New(rand.NewSource(42)))
}

func TestSynthesizeCount(t *testing.T) {
	m := newTestMock(t)
	for i := 0; i < 20; i++ {
		got := m.Synthesize(Input{Ingredients: []string{"kale"}, MealType: MealAny, TimeEnergyLevel: 50})
		if len(got) < 1 || len(got) > 3 {
			t.Fatalf("expected 1..3 recipes, got %d", len(got))
		}
	}
}

func TestSynthesizeTitles(t *testing.T) {
	tests := []struct {
		meal MealType
		want string
	}{
		{MealBreakfast, "Kale Breakfast Bowl"},
		{MealLunch, "Quick Kale Lunch"},
		{MealDinner, "Homestyle Kale Dinner"},
		{MealDessert, "Sweet Kale Treat"},
		{MealSnack, "Kale Snack Bites"},
		{MealAny, "Kale Delight"},
	}

	m := newTestMock(t)
	for _, tt := range tests {
		t.Run(string(tt.meal), func(t *testing.T) {
			got := m.Synthesize(Input{Ingredients: []string{"kale"}, MealType: tt.meal, TimeEnergyLevel: 50})
			for _, r := range got {
				if r.Title != tt.want {
					t.Errorf("title = %q, want %q", r.Title, tt.want)
				}
			}
		})
	}
}

func TestSynthesizeRecipeShape(t *testing.T) {
	m := newTestMock(t)
	in := Input{
		Ingredients:     []string{"kale", "quinoa", "lemon"},
		MealType:        MealAny,
		TimeEnergyLevel: 50,
	}

	for _, r := range m.Synthesize(in) {
		if !strings.HasPrefix(r.ID, "custom-") {
			t.Errorf("id = %q, want custom- prefix", r.ID)
		}
		if r.CookTime != "15 mins" {
			t.Errorf("cook time = %q, want 15 mins", r.CookTime)
		}
		if r.PrepTime != "10 mins" {
			t.Errorf("prep time = %q, want 10 mins", r.PrepTime)
		}
		if r.Servings < 2 || r.Servings > 5 {
			t.Errorf("servings = %d, want 2..5", r.Servings)
		}
		if r.Complexity != ComplexityModerate {
			t.Errorf("complexity = %s, want %s", r.Complexity, ComplexityModerate)
		}
		if len(r.Instructions) != 6 {
			t.Errorf("instructions = %d steps, want 6", len(r.Instructions))
		}
		if len(r.Nutrients) < 3 {
			t.Errorf("nutrients = %d entries, want at least 3", len(r.Nutrients))
		}

		// 使用者食材加上常備三樣
		if len(r.Ingredients) != len(in.Ingredients)+3 {
			t.Errorf("ingredients = %d, want %d", len(r.Ingredients), len(in.Ingredients)+3)
		}
		joined := strings.ToLower(strings.Join(r.Ingredients, " "))
		for _, staple := range []string{"salt", "pepper", "olive oil"} {
			if !strings.Contains(joined, staple) {
				t.Errorf("missing pantry staple %q in %v", staple, r.Ingredients)
			}
		}
		for _, ing := range r.Ingredients {
			if !strings.Contains(ing, " - ") {
				t.Errorf("ingredient %q missing quantity", ing)
			}
		}

		wantTags := []string{"any", "kale", "quinoa"}
		if len(r.Tags) != len(wantTags) {
			t.Fatalf("tags = %v, want %v", r.Tags, wantTags)
		}
		for i, tag := range wantTags {
			if r.Tags[i] != tag {
				t.Errorf("tag %d = %q, want %q", i, r.Tags[i], tag)
			}
		}

		if !strings.Contains(r.Description, "kale, quinoa, lemon") {
			t.Errorf("description %q does not list ingredients", r.Description)
		}
	}
}

func TestSynthesizeEmptyIngredients(t *testing.T) {
	m := newTestMock(t)
	got := m.Synthesize(Input{MealType: MealAny, TimeEnergyLevel: 50})
	for _, r := range got {
		if r.Title != "Food Delight" {
			t.Errorf("title = %q, want Food Delight", r.Title)
		}
	}
}

func TestSynthesizeUniqueIDs(t *testing.T) {
	m := newTestMock(t)
	seen := map[string]bool{}
	got := m.Synthesize(Input{Ingredients: []string{"kale"}, MealType: MealAny, TimeEnergyLevel: 50})
	for _, r := range got {
		if seen[r.ID] {
			t.Fatalf("duplicate recipe id %q", r.ID)
		}
		seen[r.ID] = true
	}
}
