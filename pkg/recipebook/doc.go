// Package recipebook implements the coffee maker's recipe catalog.
//
// A Book has a fixed number of slots (defaults.RecipeBookCapacity, three by
// default). Each slot is either empty or holds one recipe, and slot indices
// never move:
//
//   - AddRecipe fills the first empty slot and reports false when the book is
//     full or the name is already taken.
//   - EditRecipe swaps the recipe in an occupied slot; the slot keeps its name.
//   - DeleteRecipe empties a slot without compacting the others.
//   - Recipes returns every slot, with nil for empty ones.
//
// None of these operations return errors. Rejections are expected outcomes
// and are reported through the boolean results.
package recipebook
