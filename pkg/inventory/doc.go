// Package inventory tracks the ingredients held by a coffee maker.
//
// An Inventory keeps four counters (coffee, milk, sugar, chocolate) that
// start at defaults.InitialStock units each. Restocking takes textual amounts
// and is all-or-nothing: a single malformed or negative value rejects the
// whole request with an errors.ErrCodeInventory error and no counter changes.
//
// Consumption is driven by a recipe. UseIngredients either takes every
// ingredient the recipe needs or takes nothing at all:
//
//	inv := inventory.New()
//	if err := inv.AddIngredients("4", "7", "0", "9"); err != nil {
//	    return err
//	}
//	if !inv.UseIngredients(r) {
//	    // not enough stock; counters unchanged
//	}
//
// Levels are exported as the coffeemaker_ingredient_units Prometheus gauge.
package inventory
