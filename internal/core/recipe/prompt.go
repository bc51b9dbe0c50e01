package recipe

import (
	"fmt"
	"strings"

	"recipe-ideas/internal/pkg/common"
)

// BuildPrompt 組出文字生成的 prompt
// 輸出格式直接內嵌 JSON 範例，降低模型偏離格式的機率
func BuildPrompt(in Input) string {
	var b strings.Builder
	b.WriteString("You are a recipe generator. Create recipe ideas as a JSON array.\n\n")

	fmt.Fprintf(&b, "Available ingredients: %s\n", common.StringSliceToString(in.Ingredients))
	if len(in.ExcludedIngredients) > 0 {
		fmt.Fprintf(&b, "Never use these ingredients: %s\n", common.StringSliceToString(in.ExcludedIngredients))
	}
	fmt.Fprintf(&b, "Meal type: %s\n", in.MealType)
	if len(in.NutrientPreferences) > 0 {
		fmt.Fprintf(&b, "Highlight these nutrients: %s\n", common.StringSliceToString(in.NutrientPreferences))
	}
	fmt.Fprintf(&b, "Complexity: %s (%s cook time, about %d instruction steps)\n",
		ComplexityFor(in.TimeEnergyLevel), CookTime(in.TimeEnergyLevel), len(InstructionSteps(in.TimeEnergyLevel)))

	b.WriteString(`
Respond with ONLY a JSON array of 1 to 3 recipes, no commentary:
[
  {
    "title": "Recipe name",
    "description": "One sentence description",
    "ingredients": ["Ingredient - amount unit"],
    "instructions": ["Step one.", "Step two."],
    "cook_time": "20 mins",
    "prep_time": "10 mins",
    "servings": 2,
    "tags": ["dinner", "chicken"],
    "nutrients": [{"name": "Calories", "amount": "450 kcal"}]
  }
]
`)
	return b.String()
}

// aiRecipe 模型回應的寬鬆結構，缺欄位交由補值流程處理
type aiRecipe struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	CookTime     string     `json:"cook_time"`
	PrepTime     string     `json:"prep_time"`
	Servings     int        `json:"servings"`
	Tags         []string   `json:"tags"`
	Nutrients    []Nutrient `json:"nutrients"`
}

// ParseAIRecipes 解析模型回覆並補齊缺漏欄位
// 模型經常夾帶說明文字或 markdown 圍欄，先抽出 JSON 再寬鬆解析
func (m *MockSynthesizer) ParseAIRecipes(content string, in Input) ([]Recipe, error) {
	jsonStr, err := common.ExtractJSON(content)
	if err != nil {
		return nil, common.NewError(common.ErrCodeParseError, "AI 回應不含 JSON", 502, err)
	}

	var raw []aiRecipe
	if err := common.ParseJSON(jsonStr, &raw); err != nil {
		// 模型偶爾漏掉鍵的引號，修補後再試一次
		repaired := common.QuoteJSONKeys(jsonStr)
		if err2 := common.ParseJSON(repaired, &raw); err2 != nil {
			// 也可能回單一物件而非陣列
			var one aiRecipe
			if err3 := common.ParseJSON(repaired, &one); err3 != nil {
				return nil, common.NewError(common.ErrCodeParseError, "AI 回應 JSON 解析失敗", 502, err)
			}
			raw = []aiRecipe{one}
		}
	}
	if len(raw) == 0 {
		return nil, common.NewError(common.ErrCodeParseError, "AI 回應不含任何食譜", 502, nil)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Recipe, 0, len(raw))
	for i, r := range raw {
		out = append(out, m.fill(i, r, in))
	}
	return out, nil
}

// fill 用本地推導值補齊模型漏掉的欄位
func (m *MockSynthesizer) fill(i int, r aiRecipe, in Input) Recipe {
	level := in.TimeEnergyLevel

	rec := Recipe{
		ID:           fmt.Sprintf("custom-%d-%d", i, m.now().UnixMilli()),
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		CookTime:     r.CookTime,
		PrepTime:     r.PrepTime,
		Servings:     r.Servings,
		Tags:         r.Tags,
		Nutrients:    r.Nutrients,
		Complexity:   ComplexityFor(level),
		DishesUsed:   DishesUsed(level),
	}

	if rec.Title == "" {
		main := "food"
		if len(in.Ingredients) > 0 {
			main = in.Ingredients[0]
		}
		rec.Title = mockTitle(in.MealType, main)
	}
	if rec.Description == "" {
		rec.Description = fmt.Sprintf("A delicious %s recipe using %s.", in.MealType, strings.Join(in.Ingredients, ", "))
	}
	if len(rec.Ingredients) == 0 {
		rec.Ingredients = append(rec.Ingredients, in.Ingredients...)
	}
	if len(rec.Instructions) == 0 {
		rec.Instructions = InstructionSteps(level)
	}
	if rec.CookTime == "" {
		rec.CookTime = CookTime(level)
	}
	if rec.PrepTime == "" {
		rec.PrepTime = PrepTime(level)
	}
	if rec.Servings <= 0 {
		rec.Servings = m.rng.Intn(4) + 2
	}
	if len(rec.Tags) == 0 {
		rec.Tags = append(rec.Tags, string(in.MealType))
		for j, ing := range in.Ingredients {
			if j >= 2 {
				break
			}
			rec.Tags = append(rec.Tags, ing)
		}
	}
	if len(rec.Nutrients) == 0 {
		rec.Nutrients = m.nutrients.Synthesize(in.NutrientPreferences)
	}
	return rec
}
