package recipe

import (
	"fmt"
	"math/rand"
	"strings"
)

// defaultNutrient 預設營養素的數值範圍
type defaultNutrient struct {
	name   string
	unit   string
	min    int
	max    int
	pdvMin int
	pdvMax int
	hasPDV bool
}

// 預設五大營養素，順序固定
var defaultNutrients = []defaultNutrient{
	{name: "Calories", unit: "kcal", min: 200, max: 700},
	{name: "Protein", unit: "g", min: 2, max: 35, pdvMin: 5, pdvMax: 50, hasPDV: true},
	{name: "Carbohydrates", unit: "g", min: 2, max: 35, pdvMin: 5, pdvMax: 50, hasPDV: true},
	{name: "Fat", unit: "g", min: 2, max: 35, pdvMin: 5, pdvMax: 50, hasPDV: true},
	{name: "Fiber", unit: "g", min: 2, max: 35, pdvMin: 5, pdvMax: 50, hasPDV: true},
}

// minNutrients 合成結果的最低條目數
const minNutrients = 3

// NutrientSynthesizer 依使用者偏好合成營養素資料
type NutrientSynthesizer struct {
	rng *rand.Rand
}

// NewNutrientSynthesizer 建立營養素合成器，rng 決定所有隨機數值
func NewNutrientSynthesizer(rng *rand.Rand) *NutrientSynthesizer {
	return &NutrientSynthesizer{rng: rng}
}

// Synthesize 合成營養素清單
// 偏好為空時回傳完整預設集合；否則逐項比對，未知名稱以可信的假數值補上，
// 最後補足預設項目至最低條目數
func (s *NutrientSynthesizer) Synthesize(preferences []string) []Nutrient {
	if len(preferences) == 0 {
		out := make([]Nutrient, 0, len(defaultNutrients))
		for _, d := range defaultNutrients {
			out = append(out, s.fromDefault(d))
		}
		return out
	}

	used := make(map[string]bool, len(preferences))
	out := make([]Nutrient, 0, len(preferences)+minNutrients)
	for _, pref := range preferences {
		name := strings.TrimSpace(pref)
		if name == "" {
			continue
		}
		if d, ok := matchDefault(name); ok {
			if !used[d.name] {
				used[d.name] = true
				out = append(out, s.fromDefault(d))
			}
			continue
		}
		out = append(out, s.fabricate(name))
	}

	for _, d := range defaultNutrients {
		if len(out) >= minNutrients {
			break
		}
		if used[d.name] {
			continue
		}
		used[d.name] = true
		out = append(out, s.fromDefault(d))
	}
	return out
}

// matchDefault 不分大小寫比對預設營養素名稱
func matchDefault(name string) (defaultNutrient, bool) {
	for _, d := range defaultNutrients {
		if strings.EqualFold(d.name, name) {
			return d, true
		}
	}
	return defaultNutrient{}, false
}

func (s *NutrientSynthesizer) fromDefault(d defaultNutrient) Nutrient {
	n := Nutrient{
		Name:   d.name,
		Amount: fmt.Sprintf("%d %s", s.between(d.min, d.max), d.unit),
	}
	if d.hasPDV {
		n.PercentDailyValue = fmt.Sprintf("%d%%", s.between(d.pdvMin, d.pdvMax))
	}
	return n
}

// fabricate 替未知的營養素偏好捏造數值
func (s *NutrientSynthesizer) fabricate(name string) Nutrient {
	unit := "g"
	if s.rng.Intn(2) == 0 {
		unit = "mg"
	}
	return Nutrient{
		Name:              capitalize(name),
		Amount:            fmt.Sprintf("%d %s", s.between(10, 110), unit),
		PercentDailyValue: fmt.Sprintf("%d%%", s.between(5, 55)),
	}
}

func (s *NutrientSynthesizer) between(min, max int) int {
	return s.rng.Intn(max-min+1) + min
}
