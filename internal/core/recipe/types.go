package recipe

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"recipe-ideas/internal/pkg/common"
)

// MealType 餐別
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealDessert   MealType = "dessert"
	MealSnack     MealType = "snack"
	MealAny       MealType = "any"
)

// ValidMealType 檢查餐別是否在列舉內
func ValidMealType(t MealType) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealDessert, MealSnack, MealAny:
		return true
	}
	return false
}

// Complexity 複雜度層級，由 time/energy 偏好推導
type Complexity string

const (
	ComplexityQuickEasy Complexity = "Quick & Easy"
	ComplexityModerate  Complexity = "Moderate"
	ComplexityInvolved  Complexity = "Involved"
	ComplexityGourmet   Complexity = "Gourmet"
)

// Nutrient 營養素條目
type Nutrient struct {
	Name              string `json:"name"`
	Amount            string `json:"amount"`
	PercentDailyValue string `json:"percent_daily_value,omitempty"`
}

// Input 一次生成請求的輸入，僅存活於單次呼叫
type Input struct {
	Ingredients         []string `json:"ingredients"`
	ExcludedIngredients []string `json:"excluded_ingredients"`
	MealType            MealType `json:"meal_type"`
	NutrientPreferences []string `json:"nutrient_preferences"`
	TimeEnergyLevel     int      `json:"time_energy_level"`
}

// DefaultTimeEnergyLevel 未指定 time/energy 偏好時的預設值
const DefaultTimeEnergyLevel = 50

// Normalize 整理輸入：餐別空值視為 any，time/energy 夾限到 [0,100]
func (in *Input) Normalize() {
	if in.MealType == "" {
		in.MealType = MealAny
	}
	if in.TimeEnergyLevel < 0 {
		in.TimeEnergyLevel = 0
	}
	if in.TimeEnergyLevel > 100 {
		in.TimeEnergyLevel = 100
	}
}

// Validate 驗證輸入，食材清單不可為空
func (in *Input) Validate() error {
	if len(in.Ingredients) == 0 {
		return common.NewValidationError("no ingredients provided: add at least one ingredient to generate recipes")
	}
	if !ValidMealType(in.MealType) {
		return common.NewValidationError("unknown meal type: " + string(in.MealType))
	}
	return nil
}

// Recipe 食譜卡片，建構後不可變更
type Recipe struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	CookTime     string     `json:"cook_time"`
	PrepTime     string     `json:"prep_time"`
	Servings     int        `json:"servings"`
	Image        string     `json:"image"`
	Tags         []string   `json:"tags"`
	Nutrients    []Nutrient `json:"nutrients"`
	Complexity   Complexity `json:"complexity,omitempty"`
	DishesUsed   int        `json:"dishes_used,omitempty"`
}

// WithImage 回傳替換圖片後的複本，原始食譜維持不變
func (r Recipe) WithImage(url string) Recipe {
	cp := r
	cp.Image = url
	return cp
}

// capitalize 首字母大寫、其餘小寫
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
