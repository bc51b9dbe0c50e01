package recipe

import "strings"

// Filter 從固定菜單中挑出相容的食譜
// 規則：至少命中一項使用者食材、不含任何排除食材、餐別相符（any 不限制）、
// 有指定營養偏好時至少命中一項營養素
// 比對一律用不分大小寫的子字串，且絕不修改菜單本身
func Filter(catalog []Recipe, in Input) []Recipe {
	out := make([]Recipe, 0, len(catalog))
	for _, r := range catalog {
		if !containsAny(r.Ingredients, in.Ingredients) {
			continue
		}
		if containsAny(r.Ingredients, in.ExcludedIngredients) {
			continue
		}
		if in.MealType != MealAny && !hasTag(r.Tags, string(in.MealType)) {
			continue
		}
		if len(in.NutrientPreferences) > 0 && !matchesNutrient(r.Nutrients, in.NutrientPreferences) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func containsAny(recipeIngredients, wanted []string) bool {
	for _, ing := range recipeIngredients {
		low := strings.ToLower(ing)
		for _, w := range wanted {
			if w == "" {
				continue
			}
			if strings.Contains(low, strings.ToLower(w)) {
				return true
			}
		}
	}
	return false
}

// matchesNutrient 任一偏好營養素命中任一條目名稱即算相符
func matchesNutrient(nutrients []Nutrient, wanted []string) bool {
	for _, n := range nutrients {
		low := strings.ToLower(n.Name)
		for _, w := range wanted {
			if w == "" {
				continue
			}
			if strings.Contains(low, strings.ToLower(w)) {
				return true
			}
		}
	}
	return false
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Catalog 回傳固定菜單的複本，呼叫端可安全修改
func Catalog() []Recipe {
	out := make([]Recipe, len(catalog))
	copy(out, catalog)
	return out
}

// 固定菜單，快速路徑的資料來源
var catalog = []Recipe{
	{
		ID:          "recipe-1",
		Title:       "Simple Vegetable Stir Fry",
		Description: "A quick and easy vegetable stir fry that's perfect for a weeknight dinner.",
		Ingredients: []string{
			"Bell peppers - 2 medium",
			"Broccoli - 1 cup",
			"Carrots - 2 medium",
			"Onion - 1 medium",
			"Garlic - 3 cloves",
			"Ginger - 1 tbsp",
			"Soy sauce - 3 tbsp",
			"Vegetable oil - 2 tbsp",
			"Salt - to taste",
			"Pepper - to taste",
		},
		Instructions: []string{
			"Chop all vegetables into bite-sized pieces.",
			"Heat oil in a large pan or wok over medium-high heat.",
			"Add onion, garlic, and ginger. Sauté for 1-2 minutes until fragrant.",
			"Add the harder vegetables (carrots, broccoli) first and stir fry for 3-4 minutes.",
			"Add bell peppers and continue cooking for 2-3 minutes.",
			"Add soy sauce, salt, and pepper. Stir well to combine.",
			"Cook for another 2-3 minutes until vegetables are tender but still crisp.",
			"Serve hot with rice or noodles.",
		},
		CookTime: "15 mins",
		PrepTime: "10 mins",
		Servings: 4,
		Image:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
		Tags:     []string{"dinner", "lunch", "vegetarian", "quick"},
		Nutrients: []Nutrient{
			{Name: "Calories", Amount: "220 kcal"},
			{Name: "Protein", Amount: "6 g", PercentDailyValue: "12%"},
			{Name: "Carbohydrates", Amount: "24 g", PercentDailyValue: "9%"},
			{Name: "Fat", Amount: "11 g", PercentDailyValue: "14%"},
			{Name: "Fiber", Amount: "7 g", PercentDailyValue: "25%"},
		},
		Complexity: ComplexityQuickEasy,
		DishesUsed: 2,
	},
	{
		ID:          "recipe-2",
		Title:       "Classic Pancakes",
		Description: "Fluffy and delicious pancakes that are perfect for a weekend breakfast.",
		Ingredients: []string{
			"All-purpose flour - 1 cup",
			"Sugar - 2 tbsp",
			"Baking powder - 2 tsp",
			"Salt - 1/4 tsp",
			"Milk - 1 cup",
			"Egg - 1 large",
			"Butter - 2 tbsp, melted",
			"Vanilla extract - 1 tsp",
		},
		Instructions: []string{
			"In a large bowl, whisk together flour, sugar, baking powder, and salt.",
			"In another bowl, beat the egg, then add milk, melted butter, and vanilla extract.",
			"Pour the wet ingredients into the dry ingredients and stir until just combined. Don't overmix.",
			"Heat a griddle or frying pan over medium heat. Lightly grease with butter or oil.",
			"Pour 1/4 cup of batter onto the griddle for each pancake.",
			"Cook until bubbles form on the surface, then flip and cook until golden brown.",
			"Serve warm with maple syrup, fruits, or your favorite toppings.",
		},
		CookTime: "15 mins",
		PrepTime: "5 mins",
		Servings: 4,
		Image:    "https://images.unsplash.com/photo-1567620832903-9fc6debc209f",
		Tags:     []string{"breakfast", "sweet", "classic"},
		Nutrients: []Nutrient{
			{Name: "Calories", Amount: "340 kcal"},
			{Name: "Protein", Amount: "9 g", PercentDailyValue: "18%"},
			{Name: "Carbohydrates", Amount: "45 g", PercentDailyValue: "16%"},
			{Name: "Fat", Amount: "13 g", PercentDailyValue: "17%"},
			{Name: "Fiber", Amount: "2 g", PercentDailyValue: "7%"},
		},
		Complexity: ComplexityModerate,
		DishesUsed: 3,
	},
	{
		ID:          "recipe-3",
		Title:       "Chicken and Rice Bowl",
		Description: "A satisfying bowl of seasoned chicken and rice with vegetables.",
		Ingredients: []string{
			"Chicken breast - 2 medium",
			"Rice - 1 cup",
			"Bell peppers - 1 medium",
			"Broccoli - 1 cup",
			"Onion - 1 medium",
			"Garlic - 2 cloves",
			"Olive oil - 2 tbsp",
			"Soy sauce - 2 tbsp",
			"Salt - to taste",
			"Pepper - to taste",
		},
		Instructions: []string{
			"Cook rice according to package instructions.",
			"Cut chicken into bite-sized pieces and season with salt and pepper.",
			"Heat olive oil in a large pan over medium-high heat.",
			"Add chicken and cook until no longer pink, about 5-7 minutes.",
			"Add garlic and onion, sauté for 1-2 minutes.",
			"Add bell peppers and broccoli, cook for another 3-4 minutes.",
			"Add soy sauce and stir to combine.",
			"Serve chicken and vegetables over rice.",
		},
		CookTime: "20 mins",
		PrepTime: "10 mins",
		Servings: 2,
		Image:    "https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
		Tags:     []string{"dinner", "lunch", "protein", "chicken"},
		Nutrients: []Nutrient{
			{Name: "Calories", Amount: "520 kcal"},
			{Name: "Protein", Amount: "34 g", PercentDailyValue: "48%"},
			{Name: "Carbohydrates", Amount: "48 g", PercentDailyValue: "17%"},
			{Name: "Fat", Amount: "18 g", PercentDailyValue: "23%"},
			{Name: "Fiber", Amount: "4 g", PercentDailyValue: "14%"},
		},
		Complexity: ComplexityModerate,
		DishesUsed: 3,
	},
	{
		ID:          "recipe-4",
		Title:       "Fruit Smoothie Bowl",
		Description: "A refreshing and nutritious smoothie bowl topped with fresh fruits and granola.",
		Ingredients: []string{
			"Banana - 1 frozen",
			"Berries - 1 cup, mixed",
			"Greek yogurt - 1/2 cup",
			"Honey - 1 tbsp",
			"Almond milk - 1/4 cup",
			"Granola - 1/4 cup",
			"Fresh fruits for topping - as desired",
		},
		Instructions: []string{
			"Add frozen banana, berries, Greek yogurt, honey, and almond milk to a blender.",
			"Blend until smooth and creamy. Add more almond milk if needed for desired consistency.",
			"Pour the smoothie into a bowl.",
			"Top with granola and fresh fruits.",
			"Serve immediately.",
		},
		CookTime: "0 mins",
		PrepTime: "10 mins",
		Servings: 1,
		Image:    "https://images.unsplash.com/photo-1493770348161-369560ae357d",
		Tags:     []string{"breakfast", "snack", "healthy", "fruit"},
		Nutrients: []Nutrient{
			{Name: "Calories", Amount: "310 kcal"},
			{Name: "Protein", Amount: "14 g", PercentDailyValue: "25%"},
			{Name: "Carbohydrates", Amount: "52 g", PercentDailyValue: "19%"},
			{Name: "Fat", Amount: "6 g", PercentDailyValue: "8%"},
			{Name: "Fiber", Amount: "6 g", PercentDailyValue: "21%"},
		},
		Complexity: ComplexityQuickEasy,
		DishesUsed: 2,
	},
	{
		ID:          "recipe-5",
		Title:       "Mediterranean Pasta Salad",
		Description: "A light and flavorful pasta salad with Mediterranean ingredients.",
		Ingredients: []string{
			"Pasta - 2 cups, cooked",
			"Cherry tomatoes - 1 cup, halved",
			"Cucumber - 1 medium, diced",
			"Red onion - 1/4 cup, diced",
			"Olives - 1/2 cup, halved",
			"Feta cheese - 1/2 cup, crumbled",
			"Olive oil - 3 tbsp",
			"Lemon juice - 2 tbsp",
			"Dried oregano - 1 tsp",
			"Salt - to taste",
			"Pepper - to taste",
		},
		Instructions: []string{
			"Cook pasta according to package instructions. Drain and let cool.",
			"In a large bowl, combine pasta, tomatoes, cucumber, red onion, olives, and feta cheese.",
			"In a small bowl, whisk together olive oil, lemon juice, dried oregano, salt, and pepper.",
			"Pour the dressing over the pasta salad and toss to combine.",
			"Chill for at least 30 minutes before serving.",
			"Serve cold as a side dish or light meal.",
		},
		CookTime: "10 mins",
		PrepTime: "15 mins",
		Servings: 4,
		Image:    "https://images.unsplash.com/photo-1473093295043-cdd812d0e601",
		Tags:     []string{"lunch", "dinner", "salad", "pasta"},
		Nutrients: []Nutrient{
			{Name: "Calories", Amount: "410 kcal"},
			{Name: "Protein", Amount: "12 g", PercentDailyValue: "22%"},
			{Name: "Carbohydrates", Amount: "46 g", PercentDailyValue: "16%"},
			{Name: "Fat", Amount: "20 g", PercentDailyValue: "26%"},
			{Name: "Fiber", Amount: "5 g", PercentDailyValue: "18%"},
		},
		Complexity: ComplexityModerate,
		DishesUsed: 4,
	},
}
