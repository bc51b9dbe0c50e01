package speech

import (
	"fmt"
	"strings"

	"recipe-ideas/internal/core/recipe"
)

// RecipeScript 把食譜卡片轉成適合朗讀的敘述文字
func RecipeScript(r recipe.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s. %s\n", r.Title, r.Description)
	fmt.Fprintf(&b, "This recipe serves %d and takes %s to prepare and %s to cook.\n", r.Servings, r.PrepTime, r.CookTime)

	if len(r.Ingredients) > 0 {
		b.WriteString("You will need: ")
		b.WriteString(strings.Join(r.Ingredients, ", "))
		b.WriteString(".\n")
	}

	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "Step %d. %s\n", i+1, step)
	}

	b.WriteString("Enjoy your meal!")
	return b.String()
}
