// Package machine implements the coffee maker itself: a recipe book and an
// ingredient inventory behind a purchase workflow.
//
// # Purchases
//
// MakeCoffee(selection, payment) returns the coins handed back to the
// customer. A drink is made only when the selection names an occupied slot,
// the payment covers the price and the inventory covers every ingredient. In
// that case the ingredients are consumed and payment minus price is returned.
// In every other case the full payment comes back and nothing changes.
//
// Purchase runs the same workflow and returns a Receipt whose Outcome says
// why a payment was refunded. Refunds are normal results, not errors.
//
// # Usage
//
//	m := machine.New()
//	r, _ := recipe.Build("Coffee", "3", "1", "1", "0", "50")
//	m.AddRecipe(r)
//
//	change := m.MakeCoffee(0, 75) // 25
//
// # Errors
//
// Only AddInventory returns an error, for malformed or negative restock
// amounts (errors.ErrCodeInventory). Recipe field errors are raised by the
// recipe setters before a recipe reaches the machine.
//
// # Metrics
//
//   - coffeemaker_purchases_total{outcome}
//   - coffeemaker_revenue_total
package machine
