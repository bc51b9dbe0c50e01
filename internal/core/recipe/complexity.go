package recipe

import "fmt"

// ComplexityFor 依 time/energy 偏好對應複雜度層級
// 0–25 Quick & Easy、26–50 Moderate、51–75 Involved、76–100 Gourmet
func ComplexityFor(level int) Complexity {
	switch {
	case level <= 25:
		return ComplexityQuickEasy
	case level <= 50:
		return ComplexityModerate
	case level <= 75:
		return ComplexityInvolved
	default:
		return ComplexityGourmet
	}
}

// DishesUsed 估算需要動用的鍋具數量，至少 1
func DishesUsed(level int) int {
	n := level/25 + 1
	if n < 1 {
		n = 1
	}
	return n
}

// CookTime 依 time/energy 偏好推導烹調時間
func CookTime(level int) string {
	return fmt.Sprintf("%d mins", level/5+5)
}

// PrepTime 依 time/energy 偏好推導備料時間
func PrepTime(level int) string {
	return fmt.Sprintf("%d mins", level/10+5)
}

// InstructionSteps 回傳對應複雜度的固定步驟清單
func InstructionSteps(level int) []string {
	steps := instructionSets[ComplexityFor(level)]
	out := make([]string, len(steps))
	copy(out, steps)
	return out
}

var instructionSets = map[Complexity][]string{
	ComplexityQuickEasy: {
		"Prep all ingredients: wash, chop, and measure everything before you start.",
		"Heat a single pan over medium-high heat with a drizzle of olive oil.",
		"Add the main ingredients and cook, stirring occasionally, until done.",
		"Season to taste with salt and pepper, then serve immediately.",
	},
	ComplexityModerate: {
		"Wash and chop all produce, then measure out the remaining ingredients.",
		"Season the main ingredients and let them rest while you prepare the base.",
		"Heat olive oil in a large pan over medium heat.",
		"Cook the main ingredients until lightly browned on all sides.",
		"Add the supporting ingredients and simmer until everything is tender.",
		"Adjust the seasoning, plate, and garnish before serving.",
	},
	ComplexityInvolved: {
		"Read through the whole recipe, then prep and portion every ingredient.",
		"Marinate or season the main ingredients and set aside for 15 minutes.",
		"Preheat the oven and prepare a second pan for the accompaniment.",
		"Sear the main ingredients over high heat to build a flavorful crust.",
		"Deglaze the pan and build a quick sauce from the browned bits.",
		"Cook the accompaniment separately while the main component finishes.",
		"Combine the components and simmer gently so the flavors meld.",
		"Taste and balance the seasoning with salt, pepper, and acid.",
		"Rest briefly, then plate the components and spoon the sauce over.",
	},
	ComplexityGourmet: {
		"Mise en place: prep, measure, and arrange every ingredient before cooking.",
		"Make a marinade and coat the main ingredients; refrigerate for 30 minutes.",
		"Prepare a stock or flavor base and keep it warm on a back burner.",
		"Preheat the oven and line a tray for the roasted components.",
		"Sear the marinated ingredients in batches to avoid crowding the pan.",
		"Transfer to the oven and roast until just cooked through.",
		"Reduce the flavor base into a glossy sauce, whisking in cold butter.",
		"Blanch and shock the vegetables to keep their color and bite.",
		"Reheat the vegetables in butter and season each component separately.",
		"Warm the plates and arrange the components with attention to height.",
		"Spoon the sauce around the plate and finish with fresh herbs.",
		"Wipe the plate edges clean before presenting.",
		"Serve immediately while every component is at its best temperature.",
	},
}
