package recipe

import "testing"

func titles(recipes []Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Title
	}
	return out
}

func containsTitle(recipes []Recipe, title string) bool {
	for _, r := range recipes {
		if r.Title == title {
			return true
		}
	}
	return false
}

func TestFilter(t *testing.T) {
	cat := Catalog()

	tests := []struct {
		name        string
		in          Input
		wantTitle   string
		rejectTitle string
	}{
		{
			name:      "chicken rice dinner matches chicken and rice bowl",
			in:        Input{Ingredients: []string{"chicken", "rice"}, MealType: MealDinner},
			wantTitle: "Chicken and Rice Bowl",
		},
		{
			name:        "excluded ingredient removes matching recipe",
			in:          Input{Ingredients: []string{"rice"}, ExcludedIngredients: []string{"chicken"}, MealType: MealAny},
			rejectTitle: "Chicken and Rice Bowl",
		},
		{
			name:      "meal type any ignores tags",
			in:        Input{Ingredients: []string{"flour"}, MealType: MealAny},
			wantTitle: "Classic Pancakes",
		},
		{
			name:        "meal type restricts by tag",
			in:          Input{Ingredients: []string{"flour"}, MealType: MealDinner},
			rejectTitle: "Classic Pancakes",
		},
		{
			name:      "matching is case insensitive",
			in:        Input{Ingredients: []string{"CHICKEN"}, MealType: MealAny},
			wantTitle: "Chicken and Rice Bowl",
		},
		{
			name:      "nutrient preference matches by name",
			in:        Input{Ingredients: []string{"chicken"}, MealType: MealDinner, NutrientPreferences: []string{"protein"}},
			wantTitle: "Chicken and Rice Bowl",
		},
		{
			name:      "nutrient preference is case insensitive",
			in:        Input{Ingredients: []string{"chicken"}, MealType: MealDinner, NutrientPreferences: []string{"PROTEIN"}},
			wantTitle: "Chicken and Rice Bowl",
		},
		{
			name:      "one matching nutrient among several is enough",
			in:        Input{Ingredients: []string{"chicken"}, MealType: MealDinner, NutrientPreferences: []string{"magnesium", "fiber"}},
			wantTitle: "Chicken and Rice Bowl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(cat, tt.in)
			if tt.wantTitle != "" && !containsTitle(got, tt.wantTitle) {
				t.Errorf("expected %q in results, got %v", tt.wantTitle, titles(got))
			}
			if tt.rejectTitle != "" && containsTitle(got, tt.rejectTitle) {
				t.Errorf("did not expect %q in results, got %v", tt.rejectTitle, titles(got))
			}
		})
	}
}

func TestFilterNoMatch(t *testing.T) {
	got := Filter(Catalog(), Input{Ingredients: []string{"kale"}, MealType: MealAny})
	if len(got) != 0 {
		t.Fatalf("expected no matches for kale, got %v", titles(got))
	}
}

func TestFilterNutrientPreferenceNoMatch(t *testing.T) {
	got := Filter(Catalog(), Input{
		Ingredients:         []string{"chicken"},
		MealType:            MealDinner,
		NutrientPreferences: []string{"magnesium"},
	})
	if len(got) != 0 {
		t.Fatalf("expected no matches when no requested nutrient is present, got %v", titles(got))
	}
}

func TestFilterDoesNotMutateCatalog(t *testing.T) {
	cat := Catalog()
	before := len(cat[0].Ingredients)

	matches := Filter(cat, Input{Ingredients: []string{"chicken"}, MealType: MealAny})
	for i := range matches {
		matches[i] = matches[i].WithImage("http://example.com/other.png")
	}

	if len(cat[0].Ingredients) != before {
		t.Fatal("catalog ingredients changed")
	}
	for _, r := range Catalog() {
		if r.Image == "http://example.com/other.png" {
			t.Fatal("catalog image changed through filter result")
		}
	}
}

func TestCatalogEntries(t *testing.T) {
	cat := Catalog()
	if len(cat) != 5 {
		t.Fatalf("expected 5 catalog entries, got %d", len(cat))
	}
	for _, r := range cat {
		if r.ID == "" || r.Title == "" || r.Image == "" {
			t.Errorf("catalog entry %q missing required fields", r.Title)
		}
		if len(r.Nutrients) == 0 {
			t.Errorf("catalog entry %q has no nutrients", r.Title)
		}
		if r.Complexity == "" {
			t.Errorf("catalog entry %q has no complexity", r.Title)
		}
	}
}
