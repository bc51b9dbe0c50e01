package recipe

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// MockSynthesizer 本地食譜合成器
// 菜單過濾與 AI 生成都落空時的最後防線，任何輸入都能憑空組出食譜
type MockSynthesizer struct {
	mu        sync.Mutex
	rng       *rand.Rand
	nutrients *NutrientSynthesizer
	now       func() time.Time
}

// NewMockSynthesizer 建立合成器，rng 決定所有隨機值以便測試
func NewMockSynthesizer(rng *rand.Rand) *MockSynthesizer {
	return &MockSynthesizer{
		rng:       rng,
		nutrients: NewNutrientSynthesizer(rng),
		now:       time.Now,
	}
}

// Synthesize 合成 1 至 3 份食譜
func (m *MockSynthesizer) Synthesize(in Input) []Recipe {
	m.mu.Lock()
	defer m.mu.Unlock()

	mainIngredient := "food"
	if len(in.Ingredients) > 0 {
		mainIngredient = in.Ingredients[0]
	}

	count := m.rng.Intn(3) + 1
	out := make([]Recipe, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, m.build(i, in, mainIngredient))
	}
	return out
}

func (m *MockSynthesizer) build(i int, in Input, mainIngredient string) Recipe {
	ingredients := make([]string, 0, len(in.Ingredients)+3)
	ingredients = append(ingredients, in.Ingredients...)
	ingredients = append(ingredients, "salt", "pepper", "olive oil")

	measured := make([]string, len(ingredients))
	for j, ing := range ingredients {
		unit := "cup"
		if m.rng.Intn(2) == 0 {
			unit = "tbsp"
		}
		measured[j] = fmt.Sprintf("%s - %d %s", capitalize(ing), m.rng.Intn(3)+1, unit)
	}

	tags := make([]string, 0, 3)
	tags = append(tags, string(in.MealType))
	for j, ing := range in.Ingredients {
		if j >= 2 {
			break
		}
		tags = append(tags, ing)
	}

	level := in.TimeEnergyLevel
	return Recipe{
		ID:           fmt.Sprintf("custom-%d-%d", i, m.now().UnixMilli()),
		Title:        mockTitle(in.MealType, mainIngredient),
		Description:  fmt.Sprintf("A delicious %s recipe using %s.", in.MealType, strings.Join(in.Ingredients, ", ")),
		Ingredients:  measured,
		Instructions: InstructionSteps(level),
		CookTime:     CookTime(level),
		PrepTime:     PrepTime(level),
		Servings:     m.rng.Intn(4) + 2,
		Tags:         tags,
		Nutrients:    m.nutrients.Synthesize(in.NutrientPreferences),
		Complexity:   ComplexityFor(level),
		DishesUsed:   DishesUsed(level),
	}
}

// mockTitle 依餐別套用標題樣板
func mockTitle(meal MealType, mainIngredient string) string {
	main := capitalize(mainIngredient)
	switch meal {
	case MealBreakfast:
		return main + " Breakfast Bowl"
	case MealLunch:
		return "Quick " + main + " Lunch"
	case MealDinner:
		return "Homestyle " + main + " Dinner"
	case MealDessert:
		return "Sweet " + main + " Treat"
	case MealSnack:
		return main + " Snack Bites"
	default:
		return main + " Delight"
	}
}
