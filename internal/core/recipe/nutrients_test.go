package recipe

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func newTestNutrients(t *testing.T) *NutrientSynthesizer {
	t.Helper()
	return NewNutrientSynthesizer(rand.New(rand.NewSource(1)))
}

func parseAmount(t *testing.T, amount string) (int, string) {
	t.Helper()
	parts := strings.SplitN(amount, " ", 2)
	if len(parts) != 2 {
		t.Fatalf("malformed amount %q", amount)
	}
	v, err := strconv.Atoi(parts[0])
	if err != nil {
		t.Fatalf("malformed amount %q: %v", amount, err)
	}
	return v, parts[1]
}

func TestSynthesizeDefaults(t *testing.T) {
	s := newTestNutrients(t)
	got := s.Synthesize(nil)

	wantNames := []string{"Calories", "Protein", "Carbohydrates", "Fat", "Fiber"}
	if len(got) != len(wantNames) {
		t.Fatalf("expected %d nutrients, got %d", len(wantNames), len(got))
	}
	for i, want := range wantNames {
		if got[i].Name != want {
			t.Errorf("nutrient %d = %q, want %q", i, got[i].Name, want)
		}
	}

	cal, unit := parseAmount(t, got[0].Amount)
	if unit != "kcal" {
		t.Errorf("calories unit = %q, want kcal", unit)
	}
	if cal < 200 || cal > 700 {
		t.Errorf("calories = %d, want 200..700", cal)
	}
	if got[0].PercentDailyValue != "" {
		t.Errorf("calories should have no daily value, got %q", got[0].PercentDailyValue)
	}

	for _, n := range got[1:] {
		v, unit := parseAmount(t, n.Amount)
		if unit != "g" {
			t.Errorf("%s unit = %q, want g", n.Name, unit)
		}
		if v < 2 || v > 35 {
			t.Errorf("%s amount = %d, want 2..35", n.Name, v)
		}
		if n.PercentDailyValue == "" {
			t.Errorf("%s missing daily value", n.Name)
		}
	}
}

func TestSynthesizePreferences(t *testing.T) {
	s := newTestNutrients(t)

	t.Run("known name maps to default entry", func(t *testing.T) {
		got := s.Synthesize([]string{"protein"})
		if got[0].Name != "Protein" {
			t.Fatalf("first nutrient = %q, want Protein", got[0].Name)
		}
	})

	t.Run("unknown name is fabricated", func(t *testing.T) {
		got := s.Synthesize([]string{"omega-3"})
		if got[0].Name != "Omega-3" {
			t.Fatalf("first nutrient = %q, want Omega-3", got[0].Name)
		}
		v, unit := parseAmount(t, got[0].Amount)
		if unit != "g" && unit != "mg" {
			t.Errorf("fabricated unit = %q, want g or mg", unit)
		}
		if v < 10 || v > 110 {
			t.Errorf("fabricated amount = %d, want 10..110", v)
		}
		if got[0].PercentDailyValue == "" {
			t.Error("fabricated nutrient missing daily value")
		}
	})

	t.Run("result is padded to at least three entries", func(t *testing.T) {
		got := s.Synthesize([]string{"iron"})
		if len(got) < 3 {
			t.Fatalf("expected at least 3 nutrients, got %d", len(got))
		}
	})

	t.Run("duplicate known names collapse", func(t *testing.T) {
		got := s.Synthesize([]string{"Protein", "protein", "PROTEIN"})
		count := 0
		for _, n := range got {
			if n.Name == "Protein" {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("Protein appears %d times, want 1", count)
		}
	})

	t.Run("blank preferences are skipped", func(t *testing.T) {
		got := s.Synthesize([]string{"  ", ""})
		for _, n := range got {
			if strings.TrimSpace(n.Name) == "" {
				t.Fatal("blank nutrient name in result")
			}
		}
	})
}
